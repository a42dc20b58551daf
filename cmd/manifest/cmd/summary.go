package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/tui/components"
	"github.com/wexinc/manifest/internal/tui/styles"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the survival metrics for the selected passengers",
	Long: `Print total passengers, survivors and survival rate for the selected
passengers, plus age and fare statistics.

Examples:
  manifest summary --sex female --class 1 --class 2
  manifest summary --age-min 18 --age-max 40 --json
  manifest summary --class 3 --raw`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addSummaryFlags(summaryCmd)
}

func addSummaryFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "Output in JSON format")
	c.Flags().Bool("raw", false, "Include the matching passenger rows")
}

// summaryOutput is the JSON form of the summary command.
type summaryOutput struct {
	Source     string             `json:"source"`
	Criteria   explore.Criteria   `json:"criteria"`
	Summary    explore.Summary    `json:"summary"`
	Stats      explore.Stats      `json:"stats"`
	Passengers []passenger.Record `json:"passengers,omitempty"`
}

// runSummary handles the summary command.
func runSummary(cmd *cobra.Command, args []string) error {
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

	asJSON, _ := cmd.Flags().GetBool("json")
	raw, _ := cmd.Flags().GetBool("raw")

	if asJSON {
		out := summaryOutput{
			Source:   ds.Source(),
			Criteria: view.Criteria,
			Summary:  view.Summary,
			Stats:    view.Stats,
		}
		if raw {
			out.Passengers = passenger.Records(view.Rows)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	writeSummary(cmd.OutOrStdout(), ds, view)
	if raw {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), rowsTable(view.Rows))
	}
	return nil
}

// writeSummary prints the metric table and statistics.
func writeSummary(w io.Writer, ds *passenger.Dataset, v explore.View) {
	fmt.Fprintln(w, styles.TitleStyle.Render("Titanic Passengers"))
	fmt.Fprintf(w, "Source:  %s (%d passengers)\n", ds.Source(), ds.Len())
	fmt.Fprintf(w, "Filters: %s\n\n", v.Criteria.String())

	metrics := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.MetricLabelStyle.Padding(0, 1)
			}
			return styles.MetricValueStyle.Padding(0, 1)
		}).
		Headers("Total Passengers", "Survived", "Survival Rate").
		Row(
			strconv.Itoa(v.Summary.Total),
			strconv.Itoa(v.Summary.Survived),
			fmt.Sprintf("%.2f%%", v.Summary.SurvivalRate),
		)
	fmt.Fprintln(w, metrics.String())

	if v.Summary.Total == 0 {
		fmt.Fprintln(w, styles.MutedTextStyle.Render(components.EmptyChartText))
		return
	}

	stats := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("", "Count", "Mean", "Median", "Std Dev", "Min", "Max").
		Row(distributionRow("Age", v.Stats.Age)...).
		Row(distributionRow("Fare", v.Stats.Fare)...)
	fmt.Fprintln(w, stats.String())
}

func distributionRow(name string, d explore.Distribution) []string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }
	return []string{name, strconv.Itoa(d.Count), f(d.Mean), f(d.Median), f(d.StdDev), f(d.Min), f(d.Max)}
}

// rowsTable renders passengers with the dashboard's column layout.
func rowsTable(rows []passenger.Passenger) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers(passenger.Columns...)
	for _, p := range rows {
		t.Row(components.PassengerRow(p)...)
	}
	return t.String()
}
