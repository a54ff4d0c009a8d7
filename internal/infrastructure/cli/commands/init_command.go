package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/infrastructure/config"
)

// NewInitCommand writes the default configuration file.
func NewInitCommand(env *Env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create ha-assist.yaml in the config directory.

After initialization:
  1. Set ha_url to your Home Assistant address
  2. Set ha_token to a long-lived access token (or export HA_ASSIST_TOKEN)
  3. Run 'ha-assist doctor' to verify the setup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NewFileLoader(env.Options.ConfigDir).WriteDefault(force)
			if err != nil {
				return fmt.Errorf("init: %w (use --force to overwrite)", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}
