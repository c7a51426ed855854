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

// AnalyzeCmd runs the full RFM segmentation pipeline.
func AnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Run RFM segmentation over the loaded orders",
		Long: `Derive recency, frequency and monetary metrics from completed orders,
score each dimension 1-5, classify customers into segments and estimate
the retention opportunity. Results are stored in the database and
exported as CSV to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := wire.AnalysisService().Run(ctx)
			if err != nil {
				log.Error("analysis failed", "error", err)
				return err
			}

			report.Analysis(os.Stdout, result)
			return nil
		},
	}
}
