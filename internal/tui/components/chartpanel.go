package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/tui/styles"
)

// EmptyChartText is shown in place of a chart with nothing to draw.
const EmptyChartText = "No passengers match the current filters."

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// ChartPanel draws one explore.Chart with terminal glyphs.
type ChartPanel struct {
	chart  explore.Chart
	width  int
	height int
}

// NewChartPanel creates an empty panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{width: 60, height: 12}
}

// SetChart replaces the chart.
func (p *ChartPanel) SetChart(c explore.Chart) {
	p.chart = c
}

// Chart returns the displayed chart.
func (p *ChartPanel) Chart() explore.Chart {
	return p.chart
}

// SetSize sets the drawing area, excluding the title line.
func (p *ChartPanel) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}
	p.width = width
	p.height = height
}

// View renders the title followed by the chart body.
func (p *ChartPanel) View() string {
	title := styles.PanelTitleStyle.Render(p.chart.Title)
	if p.chart.Empty() {
		return title + "\n" + styles.MutedTextStyle.Render(EmptyChartText)
	}

	var body string
	switch p.chart.Kind {
	case explore.ChartSurvivalByClass:
		body = p.bars()
	case explore.ChartAgeDistribution:
		body = p.histogram()
	case explore.ChartFareVsAge:
		body = p.scatter()
	}
	return title + "\n" + body
}

// bars draws one horizontal bar per class, scaled to the largest survivor count.
func (p *ChartPanel) bars() string {
	maxSurvived := 0
	for _, c := range p.chart.Classes {
		if c.Survived > maxSurvived {
			maxSurvived = c.Survived
		}
	}

	barWidth := p.width - 28
	if barWidth < 5 {
		barWidth = 5
	}

	lines := make([]string, 0, len(p.chart.Classes))
	for _, c := range p.chart.Classes {
		n := 0
		if maxSurvived > 0 {
			n = c.Survived * barWidth / maxSurvived
		}
		bar := lipgloss.NewStyle().Foreground(styles.Survived).Render(strings.Repeat("█", n)) +
			styles.SliderTrackStyle.Render(strings.Repeat("░", barWidth-n))
		lines = append(lines, fmt.Sprintf("Class %d %s %s",
			c.Pclass, bar, styles.MutedTextStyle.Render(fmt.Sprintf("%d of %d", c.Survived, c.Total))))
	}
	return strings.Join(lines, "\n")
}

// histogram draws one sparkline per sex over shared bins.
func (p *ChartPanel) histogram() string {
	h := p.chart.Histogram
	cols := len(h.Edges) - 1
	if avail := p.width - 10; cols > avail && avail > 0 {
		cols = avail
	}

	merged := make([][]int, len(h.Series))
	maxCount := 0
	for i, s := range h.Series {
		merged[i] = mergeBins(s.Counts, cols)
		for _, c := range merged[i] {
			if c > maxCount {
				maxCount = c
			}
		}
	}

	var b strings.Builder
	for i, s := range h.Series {
		var line strings.Builder
		for _, c := range merged[i] {
			line.WriteRune(sparkRune(c, maxCount))
		}
		label := fmt.Sprintf("%-8s", truncate(s.Name, 8))
		b.WriteString(label + " " + lipgloss.NewStyle().Foreground(styles.SexColor(s.Name)).Render(line.String()))
		b.WriteString("\n")
	}

	lo, hi := h.Edges[0], h.Edges[len(h.Edges)-1]
	axis := fmt.Sprintf("%-*g%*g", cols/2, lo, cols-cols/2, hi)
	b.WriteString(strings.Repeat(" ", 9) + styles.MutedTextStyle.Render(axis))
	return b.String()
}

// mergeBins sums counts into n roughly equal groups.
func mergeBins(counts []int, n int) []int {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	out := make([]int, n)
	for i, c := range counts {
		out[i*n/len(counts)] += c
	}
	return out
}

func sparkRune(v, peak int) rune {
	if v <= 0 || peak <= 0 {
		return ' '
	}
	i := int(math.Ceil(float64(v)/float64(peak)*float64(len(sparkLevels)))) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(sparkLevels) {
		i = len(sparkLevels) - 1
	}
	return sparkLevels[i]
}

// scatter plots fare (rows) against age (columns). Survivors win shared cells.
func (p *ChartPanel) scatter() string {
	points := p.chart.Points
	maxAge, maxFare := 0.0, 0.0
	for _, pt := range points {
		maxAge = math.Max(maxAge, pt.Age)
		maxFare = math.Max(maxFare, pt.Fare)
	}
	if maxAge == 0 {
		maxAge = 1
	}
	if maxFare == 0 {
		maxFare = 1
	}

	const gutter = 8
	w, h := p.width-gutter, p.height-2
	if w < 10 {
		w = 10
	}

	// 0 empty, 1 perished, 2 survived
	grid := make([][]int, h)
	for i := range grid {
		grid[i] = make([]int, w)
	}
	for _, pt := range points {
		x := clampInt(int(pt.Age/maxAge*float64(w-1)), 0, w-1)
		y := clampInt(h-1-int(pt.Fare/maxFare*float64(h-1)), 0, h-1)
		mark := 1
		if pt.Survived == 1 {
			mark = 2
		}
		if mark > grid[y][x] {
			grid[y][x] = mark
		}
	}

	survived := lipgloss.NewStyle().Foreground(styles.Survived).Render("●")
	perished := lipgloss.NewStyle().Foreground(styles.Perished).Render("●")

	var b strings.Builder
	for row, cells := range grid {
		label := ""
		switch row {
		case 0:
			label = fmt.Sprintf("%.0f", maxFare)
		case h - 1:
			label = "0"
		}
		b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("%*s │", gutter-2, label)))
		for _, c := range cells {
			switch c {
			case 2:
				b.WriteString(survived)
			case 1:
				b.WriteString(perished)
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedTextStyle.Render(strings.Repeat(" ", gutter-1) + "└" + strings.Repeat("─", w)))
	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf("%*s%-*s%*.0f", gutter, "", w/2, "Age 0", w-w/2, maxAge)))
	b.WriteString("\n")
	b.WriteString(survived + " Survived  " + perished + " Not Survived")
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
