package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwast "github.com/msto63/roteiro/foundation/roteiro/ast"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of an itinerary",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	source, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	program, err := a.engine.Parse(source)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), mdwast.Dump(program))
	return nil
}
