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

// ResultsCmd shows the stored analysis results.
func ResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show stored segmentation results and forecast summary",
		Long: `Read back the segmentation stored by the last analyze run. When the
external forecaster has written a sales forecast into the output
directory, its horizon summary is included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := wire.ResultsService().Summary(ctx)
			if err != nil {
				log.Error("results lookup failed", "error", err)
				return err
			}

			report.Results(os.Stdout, result)
			return nil
		},
	}
}
