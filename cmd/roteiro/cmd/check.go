package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check itineraries for lexical and syntax errors",
	Long: `Parses each itinerary without evaluating it and reports the first
error per file. Exits non-zero if any file is invalid.

Examples:
  roteiro check lisboa.rot
  roteiro check trips/*.rot`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	var firstErr error
	for _, path := range args {
		source, err := readSource(path, cmd.InOrStdin())
		if err == nil {
			var program *mdwast.Program
			program, err = a.engine.Parse(source)
			if err == nil {
				fmt.Fprintf(out, "ok      %s (%d statements)\n", path, len(program.Statements))
				continue
			}
		}
		fmt.Fprintf(out, "FAIL    %s: %v\n", path, err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
