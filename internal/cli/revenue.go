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

// RevenueCmd exports the daily revenue series for the forecaster.
func RevenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Export the daily completed-revenue series",
		Long: `Aggregate completed orders into a daily revenue series and write it to
the output directory for the external sales forecaster.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := wire.LedgerService().ExportDailyRevenue(ctx)
			if err != nil {
				log.Error("revenue export failed", "error", err)
				return err
			}

			report.Revenue(os.Stdout, result)
			return nil
		},
	}
}
