package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shopsight/internal/cli"
	"github.com/example/shopsight/internal/config"
	"github.com/example/shopsight/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "shopsight",
		Short:   "shopsight - RFM customer segmentation for order ledgers",
		Version: version.String(),
		Long: `shopsight analyzes an e-commerce order ledger: it scores every customer
on recency, frequency and monetary value, classifies them into named
segments and estimates the revenue opportunity of retaining the
high-value ones.`,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.LoadCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.AnalyzeCmd())
	rootCmd.AddCommand(cli.RevenueCmd())
	rootCmd.AddCommand(cli.ResultsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
