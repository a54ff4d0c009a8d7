package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configapp "github.com/doeshing/ha-assist/internal/application/config"
	"github.com/doeshing/ha-assist/internal/domain"
	configinfra "github.com/doeshing/ha-assist/internal/infrastructure/config"
)

const (
	envKeyEditor                = "EDITOR"
	defaultEditor               = "vi"
	redactedToken               = "<redacted>"
	msgConfigurationValid       = "Configuration valid"
	msgNoDifferencesFromDefault = "No differences from default configuration."
)

// NewConfigCommand creates the config command with all subcommands. They read
// the file directly so a config that fails validation can still be inspected.
func NewConfigCommand(env *Env) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ha-assist configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), loader(env))
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective configuration (token redacted)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd.Context(), cmd.OutOrStdout(), loader(env))
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), loader(env).Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				return validateConfiguration(cmd.Context(), cmd.OutOrStdout(), loader(env))
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit configuration in $EDITOR",
			RunE: func(cmd *cobra.Command, args []string) error {
				return editConfigurationInEditor(loader(env))
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show diff versus default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigurationDiff(cmd.Context(), cmd.OutOrStdout(), loader(env))
			},
		},
	)

	return configCmd
}

func loader(env *Env) *configinfra.FileLoader {
	return configinfra.NewFileLoader(env.Options.ConfigDir)
}

// showConfiguration displays the effective configuration in YAML format
func showConfiguration(ctx context.Context, out io.Writer, loader *configinfra.FileLoader) error {
	cfg, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(redact(cfg))
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Fprint(out, string(data))
	return nil
}

func validateConfiguration(ctx context.Context, out io.Writer, loader *configinfra.FileLoader) error {
	cfg, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Fprintln(out, msgConfigurationValid)
	return nil
}

// editConfigurationInEditor opens the configuration file in the user's editor
func editConfigurationInEditor(loader *configinfra.FileLoader) error {
	editorCommand := getEditorCommand()
	cmd := exec.Command(editorCommand, loader.Path())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editorCommand, err)
	}
	return nil
}

// showConfigurationDiff shows the difference between current and default configuration
func showConfigurationDiff(ctx context.Context, out io.Writer, loader *configinfra.FileLoader) error {
	currentConfig, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load current configuration: %w", err)
	}
	defaultConfig, err := configinfra.DefaultConfig()
	if err != nil {
		return err
	}

	diff := cmp.Diff(redact(defaultConfig), redact(currentConfig))
	if diff == "" {
		fmt.Fprintln(out, msgNoDifferencesFromDefault)
		return nil
	}

	fmt.Fprintln(out, diff)
	return nil
}

func getEditorCommand() string {
	if editor := os.Getenv(envKeyEditor); editor != "" {
		return editor
	}
	return defaultEditor
}

func redact(cfg domain.Config) domain.Config {
	if cfg.Token != "" {
		cfg.Token = redactedToken
	}
	return cfg
}
