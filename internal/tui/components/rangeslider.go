package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// RangeChangedMsg is sent when either end of a RangeSlider moves.
type RangeChangedMsg struct {
	ID   string
	Low  int
	High int
}

// Thumb identifies one end of a RangeSlider.
type Thumb int

const (
	ThumbLow Thumb = iota
	ThumbHigh
)

// RangeSlider selects an inclusive integer interval [Low, High] within
// [Min, Max]. Low never exceeds High.
type RangeSlider struct {
	id       string
	label    string
	min, max int
	low      int
	high     int
	step     int
	bigStep  int
	active   Thumb
	focused  bool
	width    int
}

// NewRangeSlider creates a slider over [min, max] with the whole range selected.
func NewRangeSlider(id, label string, min, max int) *RangeSlider {
	if max < min {
		min, max = max, min
	}
	return &RangeSlider{
		id:      id,
		label:   label,
		min:     min,
		max:     max,
		low:     min,
		high:    max,
		step:    1,
		bigStep: 5,
		width:   30,
	}
}

// ID returns the component's unique identifier.
func (r *RangeSlider) ID() string {
	return r.id
}

// Focus focuses the slider.
func (r *RangeSlider) Focus() tea.Cmd {
	r.focused = true
	return nil
}

// Blur removes focus from the slider.
func (r *RangeSlider) Blur() {
	r.focused = false
}

// Focused returns whether the slider is focused.
func (r *RangeSlider) Focused() bool {
	return r.focused
}

// SetWidth sets the track width in cells.
func (r *RangeSlider) SetWidth(width int) {
	if width < 2 {
		width = 2
	}
	r.width = width
}

// Values returns the selected interval.
func (r *RangeSlider) Values() (low, high int) {
	return r.low, r.high
}

// SetValues sets the interval, clamping to the domain and ordering the ends.
func (r *RangeSlider) SetValues(low, high int) {
	low, high = r.clamp(low), r.clamp(high)
	if low > high {
		low, high = high, low
	}
	r.low, r.high = low, high
}

// Active returns the thumb that arrow keys move.
func (r *RangeSlider) Active() Thumb {
	return r.active
}

// SwitchThumb changes which end arrow keys move.
func (r *RangeSlider) SwitchThumb() {
	if r.active == ThumbLow {
		r.active = ThumbHigh
	} else {
		r.active = ThumbLow
	}
}

// Move shifts the active thumb by delta. A thumb stops at the other one.
func (r *RangeSlider) Move(delta int) bool {
	oldLow, oldHigh := r.low, r.high
	if r.active == ThumbLow {
		r.low = r.clamp(r.low + delta)
		if r.low > r.high {
			r.low = r.high
		}
	} else {
		r.high = r.clamp(r.high + delta)
		if r.high < r.low {
			r.high = r.low
		}
	}
	return r.low != oldLow || r.high != oldHigh
}

func (r *RangeSlider) clamp(v int) int {
	if v < r.min {
		return r.min
	}
	if v > r.max {
		return r.max
	}
	return v
}

// Update handles key presses while focused.
func (r *RangeSlider) Update(msg tea.Msg) (*RangeSlider, tea.Cmd) {
	if !r.focused {
		return r, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	moved := false
	switch key.String() {
	case "left", "h":
		moved = r.Move(-r.step)
	case "right", "l":
		moved = r.Move(r.step)
	case "shift+left", "H":
		moved = r.Move(-r.bigStep)
	case "shift+right", "L":
		moved = r.Move(r.bigStep)
	case "enter", " ":
		r.SwitchThumb()
	case "home":
		moved = r.Move(r.min - r.max)
	case "end":
		moved = r.Move(r.max - r.min)
	}

	if !moved {
		return r, nil
	}
	id, low, high := r.id, r.low, r.high
	return r, func() tea.Msg {
		return RangeChangedMsg{ID: id, Low: low, High: high}
	}
}

// position maps a value to a track cell.
func (r *RangeSlider) position(v int) int {
	if r.max == r.min {
		return 0
	}
	return (v - r.min) * (r.width - 1) / (r.max - r.min)
}

// View renders the label, the track and the current interval.
func (r *RangeSlider) View() string {
	labelStyle := styles.FormLabelStyle
	if r.focused {
		labelStyle = styles.FormLabelFocusedStyle
	}

	lo, hi := r.position(r.low), r.position(r.high)
	var track strings.Builder
	for i := 0; i < r.width; i++ {
		switch {
		case i == lo || i == hi:
			style := styles.SliderThumbStyle
			if r.focused && ((i == lo && r.active == ThumbLow) || (i == hi && r.active == ThumbHigh)) {
				style = styles.SliderThumbActiveStyle
			}
			track.WriteString(style.Render("●"))
		case i > lo && i < hi:
			track.WriteString(styles.SliderRangeStyle.Render("━"))
		default:
			track.WriteString(styles.SliderTrackStyle.Render("─"))
		}
	}

	values := styles.HeaderValueStyle.Render(fmt.Sprintf("%d – %d", r.low, r.high))
	return labelStyle.Render(r.label) + "  " + values + "\n" + track.String()
}
