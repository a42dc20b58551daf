package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/render"
)

// chartsCmd represents the charts command.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the charts to PNG files",
	Long: `Render survival by class, age distribution and fare vs age for the
selected passengers as PNG files.

Examples:
  manifest charts --out ./charts
  manifest charts --out ./charts --sex female --age-max 18`,
	RunE: runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	addChartsFlags(chartsCmd)
}

func addChartsFlags(c *cobra.Command) {
	c.Flags().StringP("out", "o", "charts", "Output directory")
}

// runCharts handles the charts command.
func runCharts(cmd *cobra.Command, args []string) error {
	cfg, overrides, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	explorer := explore.NewExplorer(ds, explore.Options{HistogramBins: cfg.Charts.HistogramBins})
	view := explorer.Apply(resolveCriteria(cfg, overrides, ds))

	out, _ := cmd.Flags().GetString("out")
	paths, err := render.New(cfg.Charts.Width, cfg.Charts.Height).WriteAll(out, view.Charts)
	if err != nil {
		return err
	}

	logging.Info("charts written", "dir", out, "count", len(paths), "rows", len(view.Rows))
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
