package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/roteiro/foundation/utils/stringx"
	"github.com/msto63/roteiro/internal/report"
	"github.com/msto63/roteiro/internal/store"
)

var (
	historyLimit     int
	historySource    string
	historyDestino   string
	historyFormat    string
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs",
	Long: `Lists, shows and removes runs recorded with "roteiro run --save".

Examples:
  roteiro history list
  roteiro history list --destino Lisboa --limit 5
  roteiro history show <id> --format styled
  roteiro history delete <id>
  roteiro history prune --older-than 720h`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render the report of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than a given age",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyPruneCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyListCmd.Flags().StringVar(&historySource, "source", "", "only runs of this source file")
	historyListCmd.Flags().StringVar(&historyDestino, "destino", "", "only runs with this destination")

	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "report format (default from config)")

	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "minimum age of pruned runs")
}

// withStore runs fn with an opened history store
func withStore(fn func(a *app, s *store.Store) error) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(a, s)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return withStore(func(a *app, s *store.Store) error {
		filter := store.Filter{
			SourcePath: historySource,
			Destino:    historyDestino,
			Limit:      historyLimit,
		}
		runs, err := s.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No recorded runs.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-20s  %10s  %10s\n", "ID", "CREATED", "DESTINO", "BUDGET", "CUSTO")
		fmt.Fprintln(out, strings.Repeat("-", 103))
		for _, run := range runs {
			destino := stringx.Truncate(stringx.FromBlankDefault(run.Destino, report.NotAvailable), 20, "...")
			marker := ""
			if run.OverBudget() {
				marker = " !"
			}
			fmt.Fprintf(out, "%-36s  %-19s  %-20s  %10d  %10d%s\n",
				run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04:05"), destino,
				run.Budget, run.TotalCusto, marker)
		}
		return nil
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withStore(func(a *app, s *store.Store) error {
		run, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		format := historyFormat
		if format == "" {
			format = a.cfg.Report.Format
		}
		renderer, err := report.ByName(format)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s  %s  %s\n", run.ID, run.CreatedAt.Local().Format(time.RFC3339), run.SourcePath)
		return renderer.Render(out, run.Trip)
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	return withStore(func(a *app, s *store.Store) error {
		if err := s.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	})
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	return withStore(func(a *app, s *store.Store) error {
		deleted, err := s.Prune(cmd.Context(), historyOlderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d runs older than %s\n", deleted, historyOlderThan)
		return nil
	})
}
