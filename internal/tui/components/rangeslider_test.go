package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewRangeSlider(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)

	low, high := r.Values()
	if low != 0 || high != 80 {
		t.Errorf("Expected full range 0-80, got %d-%d", low, high)
	}
	if r.Active() != ThumbLow {
		t.Error("Low thumb should be active initially")
	}
}

func TestRangeSliderSetValues(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)

	tests := []struct {
		low, high         int
		wantLow, wantHigh int
	}{
		{18, 40, 18, 40},
		{40, 18, 18, 40},
		{-5, 100, 0, 80},
		{30, 30, 30, 30},
	}
	for _, tt := range tests {
		r.SetValues(tt.low, tt.high)
		low, high := r.Values()
		if low != tt.wantLow || high != tt.wantHigh {
			t.Errorf("SetValues(%d, %d) = %d-%d, want %d-%d", tt.low, tt.high, low, high, tt.wantLow, tt.wantHigh)
		}
	}
}

func TestRangeSliderThumbsDoNotCross(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)
	r.SetValues(30, 35)

	r.Move(10)
	if low, high := r.Values(); low != 35 || high != 35 {
		t.Errorf("Low thumb should stop at high, got %d-%d", low, high)
	}

	r.SwitchThumb()
	r.Move(-10)
	if low, high := r.Values(); low != 35 || high != 35 {
		t.Errorf("High thumb should stop at low, got %d-%d", low, high)
	}

	if r.Move(-1) {
		t.Error("Blocked move should report no change")
	}
}

func TestRangeSliderKeys(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)
	r.Focus()

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("Moving should return a command")
	}
	msg, ok := cmd().(RangeChangedMsg)
	if !ok {
		t.Fatal("Command should produce a RangeChangedMsg")
	}
	if msg.ID != "age" || msg.Low != 1 || msg.High != 80 {
		t.Errorf("Unexpected message %+v", msg)
	}

	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	if low, _ := r.Values(); low != 6 {
		t.Errorf("Expected low 6 after big step, got %d", low)
	}

	// Switch to the high thumb and move it left.
	if _, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}); cmd != nil {
		t.Error("Switching thumbs should not report a change")
	}
	r.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if _, high := r.Values(); high != 79 {
		t.Errorf("Expected high 79, got %d", high)
	}

	// At the domain edge nothing moves.
	r.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if _, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("Moving past the maximum should not report a change")
	}
}

func TestRangeSliderIgnoresKeysWithoutFocus(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)

	if _, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("Unfocused slider should not return a command")
	}
	if low, _ := r.Values(); low != 0 {
		t.Error("Unfocused slider should not move")
	}
}

func TestRangeSliderView(t *testing.T) {
	r := NewRangeSlider("age", "Age Range", 0, 80)
	r.SetValues(18, 40)
	r.SetWidth(20)

	view := r.View()
	if !strings.Contains(view, "Age Range") {
		t.Error("View should contain the label")
	}
	if !strings.Contains(view, "18 – 40") {
		t.Error("View should contain the selected interval")
	}
	if strings.Count(view, "●") != 2 {
		t.Errorf("View should show two thumbs, got %q", view)
	}
}
