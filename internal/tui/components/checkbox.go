// Package components provides reusable TUI components for manifest.
package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// ToggledMsg is sent when a checkbox changes state.
type ToggledMsg struct {
	ID      string
	Checked bool
}

// Checkbox is a toggle checkbox component.
type Checkbox struct {
	label   string
	checked bool
	focused bool
	id      string
}

// NewCheckbox creates a new Checkbox component.
func NewCheckbox(id, label string) *Checkbox {
	return &Checkbox{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (c *Checkbox) ID() string {
	return c.id
}

// Focus focuses the checkbox.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus from the checkbox.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused returns whether the checkbox is focused.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Toggle toggles the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

// SetChecked sets the checkbox state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns whether the checkbox is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// Update handles messages for the checkbox.
func (c *Checkbox) Update(msg tea.Msg) (*Checkbox, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			c.Toggle()
			id, checked := c.id, c.checked
			return c, func() tea.Msg {
				return ToggledMsg{ID: id, Checked: checked}
			}
		}
	}

	return c, nil
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return renderBox(c.label, c.checked, c.focused)
}

// SetLabel sets the checkbox label.
func (c *Checkbox) SetLabel(label string) {
	c.label = label
}

// renderBox draws "[✓] label", highlighting the label under the cursor.
func renderBox(label string, checked, cursor bool) string {
	box := styles.CheckboxUncheckedStyle.Render("[ ]")
	if checked {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	}

	labelStyle := styles.FormLabelStyle
	if cursor {
		labelStyle = styles.FormLabelFocusedStyle
	}
	return box + " " + labelStyle.Render(label)
}
