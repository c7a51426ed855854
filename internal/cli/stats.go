package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/shopsight/internal/report"
	"github.com/example/shopsight/internal/wire"
)

// StatsCmd shows headline metrics for the loaded ledger.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show key metrics for the loaded ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			metrics, err := wire.LedgerService().Stats(ctx)
			if err != nil {
				log.Error("stats failed", "error", err)
				return err
			}

			report.KeyMetrics(os.Stdout, metrics)
			return nil
		},
	}
}
