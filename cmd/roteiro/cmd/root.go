package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "roteiro",
	Short: "roteiro - Interpreter for travel itineraries",
	Long: `roteiro interprets travel itineraries written in a small language
with Portuguese keywords and renders them as a trip report.

Example itinerary:
  destino "Lisboa", país = "Portugal"
  viagem de 2025-05-01 até 2025-05-03
  budget 500 USD

  dia 1 {
      atividade "Museu"
      custo 50 USD
  }

  para cada dia in 2..3 {
      atividade "Passeio"
  }

A file argument of "-" reads the itinerary from stdin.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $ROTEIRO_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default from config)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
