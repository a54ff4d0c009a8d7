package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/app"
	"github.com/doeshing/ha-assist/internal/infrastructure/cli/commands"
)

// EnvDebug turns on debug logging when set to 1 or true.
const EnvDebug = "HA_ASSIST_DEBUG"

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned Env must be closed
// after execution to release the history database.
func NewRootCmd(opts Options) (*cobra.Command, *commands.Env) {
	env := &commands.Env{Options: app.Options{Verbose: opts.Verbose}}

	root := &cobra.Command{
		Use:   "ha-assist",
		Short: "Home Assistant conversation plugin for launchers",
		Long: `ha-assist suggests previously successful Home Assistant queries as you type
and sends the selected one to the conversation API.

Launchers talk to it through 'ha-assist serve'; the other commands are for
scripting and maintenance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&env.Options.ConfigDir, "config-dir", "", "Config directory (default $HA_ASSIST_CONFIG_DIR or $XDG_CONFIG_HOME/ha-assist)")
	root.PersistentFlags().BoolVarP(&env.Options.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging on stderr")

	root.AddCommand(
		commands.NewMatchCommand(env),
		commands.NewConfirmCommand(env),
		commands.NewServeCommand(env),
		commands.NewInfoCommand(),
		commands.NewInitCommand(env),
		commands.NewConfigCommand(env),
		commands.NewHistoryCommand(env),
		commands.NewDoctorCommand(env),
		commands.NewVersionCommand(),
	)
	return root, env
}

// VerboseFromEnv reports whether EnvDebug requests debug logging.
func VerboseFromEnv() bool {
	v := os.Getenv(EnvDebug)
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
