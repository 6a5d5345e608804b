package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	"github.com/msto63/roteiro/internal/tui/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse an itinerary in the terminal viewer",
	Long: `Opens the interactive viewer with the styled trip report.

Logs go to roteiro.log in the data directory while the viewer is open.

Keys:
  ↑/↓         Scroll
  PgUp/PgDn   Page
  g / G       Top / bottom
  r           Reload the file
  q / Esc     Quit
  Ctrl+C      Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("Viewer started", mdwlog.Fields{
		"file": filepath.Base(args[0]),
	})
	return viewer.Run(viewer.Config{
		Path:        args[0],
		Interpreter: a.engine,
	})
}
