package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/passenger"
)

// DatasetLoadedMsg delivers the result of the background dataset load.
type DatasetLoadedMsg struct {
	Dataset *passenger.Dataset
	Err     error
}

// FiltersChangedMsg recomputes the view. A non-nil Criteria first moves the
// controls to it; nil reads the controls as they are.
type FiltersChangedMsg struct {
	Criteria *explore.Criteria
}

func filtersChanged(c *explore.Criteria) tea.Cmd {
	return func() tea.Msg {
		return FiltersChangedMsg{Criteria: c}
	}
}

// TickMsg is sent periodically for time-based updates.
type TickMsg struct {
	Time time.Time
}
