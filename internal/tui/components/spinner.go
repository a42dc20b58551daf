package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// Spinner shows an animated indicator while the dataset loads.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
	width      int
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s}
}

// SetStatusText sets the status text to display next to the spinner.
func (s *Spinner) SetStatusText(text string) {
	s.statusText = text
}

// StatusText returns the status text.
func (s *Spinner) StatusText() string {
	return s.statusText
}

// SetWidth sets the width of the spinner component.
func (s *Spinner) SetWidth(width int) {
	s.width = width
}

// Start marks the start time for elapsed time tracking and starts the animation.
func (s *Spinner) Start() tea.Cmd {
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner with status text and elapsed seconds.
func (s *Spinner) View() string {
	line := fmt.Sprintf("%s %s", s.spinner.View(), lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.statusText))

	if !s.startTime.IsZero() {
		elapsed := fmt.Sprintf("(%ds)", int(time.Since(s.startTime).Seconds()))
		line += " " + lipgloss.NewStyle().Foreground(styles.MutedLight).Render(elapsed)
	}

	if s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Padding(0, 1).
			Render(line)
	}
	return line
}
