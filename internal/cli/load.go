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

// LoadCmd imports the CSV ledger into the SQLite database.
func LoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the CSV ledger into the SQLite database",
		Long: `Read the generated CSV files from the data directory and load them into
the database, replacing any previous contents. Row counts are verified
after the load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := wire.LedgerService().Load(ctx)
			if err != nil {
				log.Error("load failed", "error", err)
				return err
			}

			report.Load(os.Stdout, result)
			return nil
		},
	}
}
