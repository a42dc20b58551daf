package components

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/manifest/internal/passenger"
)

func TestPassengerRow(t *testing.T) {
	row := PassengerRow(passenger.Passenger{
		PassengerID: 6, Survived: 0, Pclass: 3, Name: "Moran, Mr. James", Sex: "male",
		Age: math.NaN(), Ticket: "330877", Fare: 8.4583, Embarked: "Q",
	})

	if len(row) != len(dataColumns) {
		t.Fatalf("Row has %d cells, want %d", len(row), len(dataColumns))
	}
	if row[5] != "" {
		t.Errorf("Unknown age should be blank, got %q", row[5])
	}
	if row[9] != "8.46" {
		t.Errorf("Fare should have two decimals, got %q", row[9])
	}
}

func TestDataTable(t *testing.T) {
	d := NewDataTable()
	if !strings.Contains(d.View(), EmptyChartText) {
		t.Error("Empty table should show the placeholder")
	}

	d.SetRows(sampleRows())
	if d.Len() != 4 {
		t.Errorf("Expected 4 rows, got %d", d.Len())
	}
	if !strings.Contains(d.View(), "Name") {
		t.Error("Table should render headers")
	}

	d.Focus()
	if !d.Focused() {
		t.Error("Table should be focused")
	}
	d.Update(tea.KeyMsg{Type: tea.KeyDown})

	d.SetRows(sampleRows()[:1])
	if d.Len() != 1 {
		t.Errorf("Expected 1 row after shrink, got %d", d.Len())
	}

	d.Blur()
	if d.Focused() {
		t.Error("Table should not be focused after Blur")
	}
}
