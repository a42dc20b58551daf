package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Uptime    time.Duration
	Compute   time.Duration // time spent on the last filter pass
	Criteria  string
	Message   string
	IsError   bool
	Shortcuts []ShortcutDef
}

// StatusBar shows session timing, the active criteria and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			Shortcuts: FilterShortcuts,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetUptime sets the session uptime.
func (s *StatusBar) SetUptime(d time.Duration) {
	s.data.Uptime = d
}

// SetCompute sets the duration of the last filter pass.
func (s *StatusBar) SetCompute(d time.Duration) {
	s.data.Compute = d
}

// SetCriteria sets the criteria summary.
func (s *StatusBar) SetCriteria(criteria string) {
	s.data.Criteria = criteria
}

// SetMessage sets an informational message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
	s.data.IsError = false
}

// SetError sets an error message.
func (s *StatusBar) SetError(message string) {
	s.data.Message = message
	s.data.IsError = true
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	left := label.Render("Time: ") + value.Render(formatDuration(s.data.Uptime)) +
		sep + label.Render("Update: ") + value.Render(s.data.Compute.Round(time.Microsecond).String())

	if s.data.Criteria != "" {
		left += sep + lipgloss.NewStyle().Foreground(styles.Secondary).Render(s.data.Criteria)
	}

	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		if s.data.IsError {
			msgStyle = styles.ErrorTextStyle
		}
		left += sep + msgStyle.Render(s.data.Message)
	}

	right := NewShortcutBar(s.data.Shortcuts...).View()

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	return containerStyle.Render(left + "  " + right)
}

// formatDuration formats a duration as HH:MM:SS or MM:SS.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
