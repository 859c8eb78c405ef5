// Package main is the entry point for the genesys-dice server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/cmd/server/client"
	"github.com/KirkDiggler/genesys-dice/internal/config"
)

// cfg is loaded from the environment before any command runs; flags
// override it
var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "genesys-dice",
	Short: "Genesys narrative dice roller",
	Long: `A dice roller and probability calculator for the Genesys RPG system.

The dice short codes are:

  P = Proficiency   A = Ability   B = Boost
  C = Challenge     D = Difficulty   S = Setback
  % = Percentile (T is also accepted)

1 Proficiency and 2 Ability against 2 Difficulty is: PAADD`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		*cfg = *loaded

		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(facesCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(macroCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
