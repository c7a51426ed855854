package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shopsight/internal/report"
	"github.com/example/shopsight/internal/wire"
)

// GenerateCmd creates synthetic sample CSVs in the data directory.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample order data as CSV files",
		Long: `Generate a deterministic synthetic ledger (customers, products, orders,
order items) into the configured data directory. The same seed always
produces the same files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			if seed, _ := cmd.Flags().GetInt64("seed"); cmd.Flags().Changed("seed") {
				cfg.Generator.Seed = seed
			}
			if n, _ := cmd.Flags().GetInt("customers"); cmd.Flags().Changed("customers") {
				cfg.Generator.Customers = n
			}
			if n, _ := cmd.Flags().GetInt("orders"); cmd.Flags().Changed("orders") {
				cfg.Generator.Orders = n
			}

			result, err := wire.LedgerService().Generate()
			if err != nil {
				log.Error("generation failed", "error", err)
				return err
			}

			report.Generate(os.Stdout, result)
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "random seed (overrides config)")
	cmd.Flags().Int("customers", 0, "number of customers (overrides config)")
	cmd.Flags().Int("orders", 0, "number of orders (overrides config)")
	return cmd
}
