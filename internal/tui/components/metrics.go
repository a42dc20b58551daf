package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/tui/styles"
)

// MetricCards shows the headline numbers of a filtered view side by side.
type MetricCards struct {
	summary explore.Summary
	width   int
}

// NewMetricCards creates empty metric cards.
func NewMetricCards() *MetricCards {
	return &MetricCards{}
}

// SetSummary replaces the displayed metrics.
func (m *MetricCards) SetSummary(s explore.Summary) {
	m.summary = s
}

// Summary returns the displayed metrics.
func (m *MetricCards) Summary() explore.Summary {
	return m.summary
}

// SetWidth sets the total width shared by the three cards.
func (m *MetricCards) SetWidth(width int) {
	m.width = width
}

// View renders the three cards.
func (m *MetricCards) View() string {
	cards := []struct {
		label string
		value string
	}{
		{"Total Passengers", fmt.Sprintf("%d", m.summary.Total)},
		{"Survived", fmt.Sprintf("%d", m.summary.Survived)},
		{"Survival Rate", fmt.Sprintf("%.2f%%", m.summary.SurvivalRate)},
	}

	style := styles.MetricCardStyle
	if m.width > 0 {
		// Width excludes the border.
		if w := m.width/len(cards) - 2; w > 0 {
			style = style.Width(w)
		}
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = style.Render(
			styles.MetricLabelStyle.Render(c.label) + "\n" + styles.MetricValueStyle.Render(c.value),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
