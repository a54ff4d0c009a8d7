package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewMatchCommand prints the candidates for one launcher input.
func NewMatchCommand(env *Env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "match <input>",
		Short: "Show the candidates for launcher input",
		Long: `Show the candidates the launcher would render for <input>.

Input must start with the configured prefix (":ha" by default), for example:
  ha-assist match ":ha turn on"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := env.Container(cmd.Context())
			if err != nil {
				return err
			}
			candidates := container.AssistService.Match(cmd.Context(), strings.Join(args, " "))
			return renderCandidates(cmd.OutOrStdout(), candidates, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print candidates as JSON")
	return cmd
}
