package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/domain"
)

// NewInfoCommand prints the plugin identity.
func NewInfoCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show plugin name and icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := domain.Info()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
					"name": info.Name,
					"icon": info.Icon,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", info.Name, info.Icon)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
