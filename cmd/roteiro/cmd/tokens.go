package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of an itinerary",
	Long: `Prints one token per line with its position. Comments are removed
before lexing, as for every other command. On a lexical error the tokens
read so far are printed before the error.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	source, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	tokens, err := a.engine.Tokens(source)
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%4d:%-4d %s\n", tok.Line, tok.Column, tok)
	}
	return err
}
