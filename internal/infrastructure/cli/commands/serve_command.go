package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/infrastructure/host"
)

// NewServeCommand runs the launcher protocol on stdin/stdout.
func NewServeCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer launcher requests on stdin/stdout",
		Long: `Read one JSON request per line from stdin and write one JSON response per line.

Requests:
  {"type":"match","input":":ha lights"}
  {"type":"confirm","title":"turn on lights"}
  {"type":"info"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := env.Container(cmd.Context())
			if err != nil {
				return err
			}
			server := host.NewServer(container.AssistService, container.Logger)
			return server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
