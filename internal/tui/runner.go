package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoDataset = errors.New("no dataset or loader configured")

// Run starts the dashboard in the alternate screen and blocks until the user
// quits or ctx is cancelled. A dataset load failure is returned after exit.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if m, ok := final.(*Model); ok && m.loadErr != nil {
		return m.loadErr
	}
	return nil
}
