package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(env *Env) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect remembered queries",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(env),
		newHistoryTopCommand(env),
		newHistoryClearCommand(env),
		newHistoryExportCommand(env),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(env *Env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd.Context(), env)
			if err != nil {
				return err
			}
			return listHistoryEntries(cmd.Context(), cmd.OutOrStdout(), store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	return cmd
}

// newHistoryTopCommand creates the 'history top' subcommand
func newHistoryTopCommand(env *Env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show queries by how often they succeeded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd.Context(), env)
			if err != nil {
				return err
			}
			return showTopQueries(cmd.Context(), cmd.OutOrStdout(), store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max queries to show (0 for all)")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd.Context(), env)
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd.Context(), env)
			if err != nil {
				return err
			}
			if err := store.ExportJSON(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

// historyStore returns the container's store, refusing a degraded one since
// administrative commands have nothing to show without a database.
func historyStore(ctx context.Context, env *Env) (ports.HistoryAdmin, error) {
	container, err := env.Container(ctx)
	if err != nil {
		return nil, err
	}
	if container.HistoryStore == nil || !container.HistoryStore.Available() {
		return nil, fmt.Errorf("%s: %w", ErrHistoryStoreUnavailable, domain.ErrStoreUnavailable)
	}
	return container.HistoryStore, nil
}

// listHistoryEntries lists recent history entries, newest first
func listHistoryEntries(ctx context.Context, out io.Writer, store ports.HistoryAdmin, limit int) error {
	entries, err := store.Entries(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve history entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%d | %s\n", entry.ID, entry.Query)
	}
	return nil
}

// showTopQueries prints the grouped history the ranker sees
func showTopQueries(ctx context.Context, out io.Writer, store ports.HistoryAdmin, limit int) error {
	ranked, err := store.Ranked(ctx)
	if err != nil {
		return fmt.Errorf("failed to rank history: %w", err)
	}
	if len(ranked) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNT\tQUERY")
	for _, rq := range ranked {
		fmt.Fprintf(tw, "%d\t%s\n", rq.Frequency, rq.Query)
	}
	return tw.Flush()
}
