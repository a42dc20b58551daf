package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/dataset"
	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/tui"
)

// exploreCmd represents the explore command.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Start the terminal dashboard",
	Long: `Start the interactive terminal dashboard.

The dataset loads in the background. Use Tab to move between the sex,
class and age filters; the metrics and charts update on every change.

Examples:
  manifest explore                       # Default dataset and filters
  manifest explore --source builtin      # Bundled sample, no network
  manifest explore --sex female --class 1`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// runExplore is the main entry point for the explore command.
func runExplore(cmd *cobra.Command, args []string) error {
	cfg, overrides, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	touchProject(".")

	opts := datasetOptions(cfg)
	return tui.Run(ctx, tui.Options{
		Load: func(ctx context.Context) (*passenger.Dataset, error) {
			return dataset.Load(ctx, opts)
		},
		Source: cfg.Data.Source,
		DefaultsFor: func(ds *passenger.Dataset) explore.Criteria {
			return resolveCriteria(cfg, overrides, ds)
		},
		HistogramBins: cfg.Charts.HistogramBins,
		Logger:        logging.Global(),
	})
}
