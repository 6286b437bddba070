package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/encore/internal/cli"
	"github.com/example/encore/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "encore",
		Short:   "Encore - a deck-building performance game",
		Version: version.String(),
		Long: `Encore is a terminal card game. Play techniques to win over the audience,
build momentum between rounds, and survive a setback every round to finish
the performance with as many cheers as you can.`,
		PersistentPreRunE: cli.ConfigureOutput,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(cli.PlayCmd())
	rootCmd.AddCommand(cli.SimulateCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
