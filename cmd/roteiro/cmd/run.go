package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	"github.com/msto63/roteiro/foundation/roteiro"
	"github.com/msto63/roteiro/internal/report"
	"github.com/msto63/roteiro/internal/store"
	"github.com/msto63/roteiro/internal/watch"
)

var (
	runFormat string
	runOutput string
	runSave   bool
	runWatch  bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Interpret an itinerary and render the trip report",
	Long: `Interprets an itinerary and renders the trip report.

Formats:
  text    plain report (default)
  styled  colored terminal report
  yaml    structured report as YAML
  json    structured report as JSON

Examples:
  roteiro run lisboa.rot
  roteiro run lisboa.rot --format styled
  roteiro run lisboa.rot --format yaml --output lisboa.yaml
  roteiro run lisboa.rot --save
  roteiro run lisboa.rot --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "report format (default from config)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the report to a file instead of stdout")
	runCmd.Flags().BoolVar(&runSave, "save", false, "record the run in the history")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run whenever the file changes")
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	format := runFormat
	if format == "" {
		format = a.cfg.Report.Format
	}
	renderer, err := report.ByName(format)
	if err != nil {
		return err
	}

	output := runOutput
	if output == "" {
		output = a.cfg.Report.Output
	}

	var history *store.Store
	if runSave || a.cfg.Store.Enabled {
		history, err = a.openStore()
		if err != nil {
			return err
		}
		defer history.Close()
	}

	r := &runner{
		app:      a,
		renderer: renderer,
		output:   output,
		history:  history,
		stdin:    cmd.InOrStdin(),
		stdout:   cmd.OutOrStdout(),
	}

	path := args[0]
	if !runWatch {
		return r.once(cmd.Context(), path)
	}
	if path == "-" {
		return fmt.Errorf("--watch needs a file, not stdin")
	}
	return r.watch(cmd.Context(), path)
}

// runner interprets, renders and optionally records one source file
type runner struct {
	app      *app
	renderer report.Renderer
	output   string
	history  *store.Store
	stdin    io.Reader
	stdout   io.Writer
}

func (r *runner) once(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := readSource(path, r.stdin)
	if err != nil {
		return err
	}

	trip, err := r.app.engine.Interpret(ctx, source)
	if err != nil {
		return err
	}

	if r.output != "" {
		if err := report.WriteFile(r.renderer, trip, r.output); err != nil {
			return err
		}
		r.app.logger.Info("Report written", mdwlog.Fields{"path": r.output, "format": r.renderer.Name()})
	} else if err := r.renderer.Render(r.stdout, trip); err != nil {
		return err
	}

	if r.history != nil {
		sourcePath := path
		if abs, err := filepath.Abs(path); err == nil && path != "-" {
			sourcePath = abs
		}
		run, err := r.history.Save(ctx, sourcePath, roteiro.SourceHash(source), trip)
		if err != nil {
			return err
		}
		r.app.logger.Info("Run recorded", mdwlog.Fields{"id": run.ID})
	}
	return nil
}

func (r *runner) watch(parent context.Context, path string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.once(ctx, path); err != nil {
		r.report(err)
	}

	w, err := watch.New(watch.Options{
		Paths:    []string{path},
		Debounce: r.app.cfg.Watch.Debounce.Duration,
		Logger:   r.app.logger,
		OnChange: func(ctx context.Context, changed string) {
			fmt.Fprintf(os.Stderr, "\n--- %s changed, re-running ---\n", filepath.Base(changed))
			if err := r.once(ctx, changed); err != nil {
				r.report(err)
			}
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", path)
	return w.Run(ctx)
}

// report prints an error without ending watch mode
func (r *runner) report(err error) {
	r.app.logger.LogError(err)
	printError("run failed", err)
}
