package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print an itinerary in canonical form",
	Long: `Parses an itinerary and prints it in canonical form: one statement
per line and four-space indented day bodies. Comments and stray top-level
words are not kept.

Examples:
  roteiro fmt lisboa.rot
  roteiro fmt --write lisboa.rot`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "rewrite the file in place")
}

func runFmt(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	path := args[0]
	source, err := readSource(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	program, err := a.engine.Parse(source)
	if err != nil {
		return err
	}
	formatted := mdwast.Format(program)

	if !fmtWrite || path == "-" {
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	}

	if formatted == source {
		a.logger.Debug("Already formatted", mdwlog.Fields{"path": path})
		return nil
	}
	return writeFileAtomic(path, []byte(formatted))
}

// writeFileAtomic replaces path through a temporary file in the same directory
func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".roteiro-fmt-*")
	if err != nil {
		return mdwerror.Wrap(err, "failed to write formatted file").WithCode(mdwerror.CodeInternal)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return mdwerror.Wrap(err, "failed to write formatted file").WithCode(mdwerror.CodeInternal)
	}
	if err := tmp.Close(); err != nil {
		return mdwerror.Wrap(err, "failed to write formatted file").WithCode(mdwerror.CodeInternal)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return mdwerror.Wrap(err, "failed to write formatted file").WithCode(mdwerror.CodeInternal)
	}
	return os.Rename(tmp.Name(), path)
}
