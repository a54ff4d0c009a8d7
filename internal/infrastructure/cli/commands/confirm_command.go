package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewConfirmCommand sends a query to Home Assistant as if it had been selected
// in the launcher.
func NewConfirmCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <query>",
		Short: "Send a query to Home Assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := env.Container(cmd.Context())
			if err != nil {
				return err
			}
			title := strings.Join(args, " ")
			container.AssistService.Confirm(cmd.Context(), title)

			// The reply only lives in this process's cache, so show it here.
			resp, ok := container.ResponseCache.Take(title)
			if !ok {
				return fmt.Errorf(ErrConfirmationFailed, title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", resp.Kind, resp.Speech)
			if !resp.Kind.Successful() {
				return fmt.Errorf("home assistant reported an error")
			}
			return nil
		},
	}
}
