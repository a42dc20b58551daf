package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// SelectionChangedMsg is sent when the checked set of a CheckboxGroup changes.
type SelectionChangedMsg struct {
	ID string
}

// CheckboxOption is one entry of a CheckboxGroup.
type CheckboxOption struct {
	Label   string
	Value   string
	Checked bool
}

// CheckboxGroup is a titled multi-select list. Options keep the order they
// were given in.
type CheckboxGroup struct {
	id      string
	title   string
	options []CheckboxOption
	cursor  int
	focused bool
}

// NewCheckboxGroup creates a group with the given options.
func NewCheckboxGroup(id, title string, options []CheckboxOption) *CheckboxGroup {
	return &CheckboxGroup{
		id:      id,
		title:   title,
		options: append([]CheckboxOption(nil), options...),
	}
}

// ID returns the component's unique identifier.
func (g *CheckboxGroup) ID() string {
	return g.id
}

// Focus focuses the group.
func (g *CheckboxGroup) Focus() tea.Cmd {
	g.focused = true
	return nil
}

// Blur removes focus from the group.
func (g *CheckboxGroup) Blur() {
	g.focused = false
}

// Focused returns whether the group is focused.
func (g *CheckboxGroup) Focused() bool {
	return g.focused
}

// Cursor returns the index of the highlighted option.
func (g *CheckboxGroup) Cursor() int {
	return g.cursor
}

// Options returns a copy of the options.
func (g *CheckboxGroup) Options() []CheckboxOption {
	return append([]CheckboxOption(nil), g.options...)
}

// Selected returns the values of checked options in display order.
// The result is non-nil even when nothing is checked.
func (g *CheckboxGroup) Selected() []string {
	out := []string{}
	for _, o := range g.options {
		if o.Checked {
			out = append(out, o.Value)
		}
	}
	return out
}

// SetSelected checks exactly the options whose values are in values.
func (g *CheckboxGroup) SetSelected(values []string) {
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[v] = true
	}
	for i := range g.options {
		g.options[i].Checked = want[g.options[i].Value]
	}
}

// Toggle flips the option at index i.
func (g *CheckboxGroup) Toggle(i int) {
	if i < 0 || i >= len(g.options) {
		return
	}
	g.options[i].Checked = !g.options[i].Checked
}

// SetAll checks or clears every option.
func (g *CheckboxGroup) SetAll(checked bool) {
	for i := range g.options {
		g.options[i].Checked = checked
	}
}

// Update handles key presses while focused.
func (g *CheckboxGroup) Update(msg tea.Msg) (*CheckboxGroup, tea.Cmd) {
	if !g.focused || len(g.options) == 0 {
		return g, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch key.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(g.options)-1 {
			g.cursor++
		}
	case "enter", " ":
		g.Toggle(g.cursor)
		return g, g.changed()
	case "a":
		g.SetAll(true)
		return g, g.changed()
	case "n":
		g.SetAll(false)
		return g, g.changed()
	}
	return g, nil
}

func (g *CheckboxGroup) changed() tea.Cmd {
	id := g.id
	return func() tea.Msg {
		return SelectionChangedMsg{ID: id}
	}
}

// View renders the title and one line per option.
func (g *CheckboxGroup) View() string {
	var b strings.Builder

	titleStyle := styles.FormLabelStyle
	if g.focused {
		titleStyle = styles.FormLabelFocusedStyle
	}
	b.WriteString(titleStyle.Render(g.title))

	for i, o := range g.options {
		b.WriteString("\n")
		pointer := "  "
		if g.focused && i == g.cursor {
			pointer = styles.KeyStyle.Render("›") + " "
		}
		b.WriteString(pointer)
		b.WriteString(renderBox(o.Label, o.Checked, g.focused && i == g.cursor))
	}
	return b.String()
}
