package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwevaluator "github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <field>",
	Short: "Print one field of the interpreted trip state",
	Long: `Interprets an itinerary and prints a single trip state field.
Unset fields print as "null".

Fields: ` + strings.Join(mdwevaluator.FieldNames, ", ") + `

Examples:
  roteiro get lisboa.rot total_custo
  roteiro get lisboa.rot itinerario`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	source, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	trip, err := a.engine.Interpret(cmd.Context(), source)
	if err != nil {
		return err
	}

	value, err := trip.Field(args[1])
	if err != nil {
		return mdwerror.Wrap(err, "unknown field").
			WithCode(mdwerror.CodeLookup).
			WithOperation("cmd.get").
			WithDetail("field", args[1])
	}
	return printValue(cmd.OutOrStdout(), value)
}

// printValue prints scalars bare and the itinerary as YAML
func printValue(w io.Writer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	case mdwevaluator.Itinerary:
		if len(v) == 0 {
			_, err := fmt.Fprintln(w, "{}")
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
