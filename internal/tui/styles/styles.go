// Package styles provides Lip Gloss styles for the manifest TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#1F4E79") // Navy
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray

	// Series colors, matching the PNG charts.
	Male     = lipgloss.Color("#636EFA")
	Female   = lipgloss.Color("#EF553B")
	Other    = lipgloss.Color("#7F7F7F")
	Survived = lipgloss.Color("#00CC96")
	Perished = lipgloss.Color("#EF553B")
)

// SexColor returns the chart color for a sex.
func SexColor(sex string) lipgloss.Color {
	switch sex {
	case "male":
		return Male
	case "female":
		return Female
	}
	return Other
}

// Header styles.
var (
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// PanelTitleStyle is the bold title at the top of a panel.
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)
)

// Metric card styles.
var (
	// MetricLabelStyle is the caption above a metric.
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// MetricValueStyle is the metric itself.
	MetricValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// MetricCardStyle frames a single metric.
	MetricCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Filter control styles.
var (
	// FormLabelStyle is for control labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused control labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle = lipgloss.NewStyle().
				Foreground(Success)

	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// SliderTrackStyle is the unselected part of a slider.
	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(BorderColor)

	// SliderRangeStyle is the selected part of a slider.
	SliderRangeStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	// SliderThumbStyle is an inactive slider thumb.
	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(Foreground)

	// SliderThumbActiveStyle is the thumb that arrow keys move.
	SliderThumbActiveStyle = lipgloss.NewStyle().
				Foreground(Warning).
				Bold(true)
)
