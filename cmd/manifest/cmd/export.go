package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/dataset"
	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the selected passengers as CSV",
	Long: `Write the selected passengers as CSV with the original column layout.
Unknown ages and fares are written as empty cells.

Examples:
  manifest export --class 1 > first_class.csv
  manifest export --sex female --output women.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
}

func addExportFlags(c *cobra.Command) {
	c.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}

// runExport handles the export command.
func runExport(cmd *cobra.Command, args []string) error {
	cfg, overrides, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	rows := explore.Filter(ds, resolveCriteria(cfg, overrides, ds))

	var w io.Writer = cmd.OutOrStdout()
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := dataset.WriteCSV(w, rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	logging.Info("rows exported", "rows", len(rows), "output", output)
	return nil
}
