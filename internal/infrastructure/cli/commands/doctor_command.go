package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/application/doctor"
	"github.com/doeshing/ha-assist/internal/infrastructure/config"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, cmd.OutOrStdout(), env)
		},
	}
}

// runDoctorDiagnostics reports even when the container cannot be built, so a
// broken config still gets a readable diagnosis.
func runDoctorDiagnostics(cmd *cobra.Command, out io.Writer, env *Env) error {
	ctx := cmd.Context()

	service := &doctor.Service{ConfigProvider: config.NewFileLoader(env.Options.ConfigDir)}
	if container, err := env.Container(ctx); err == nil {
		service = container.DoctorService
	}

	report, err := service.Run(ctx)
	renderDoctorReport(out, report)

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	if report.Failed() {
		return fmt.Errorf("diagnostics found problems")
	}
	return nil
}
