package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/tui/styles"
)

// dataColumns are the columns shown in the raw data table.
var dataColumns = []table.Column{
	{Title: "Id", Width: 4},
	{Title: "Survived", Width: 8},
	{Title: "Class", Width: 5},
	{Title: "Name", Width: 28},
	{Title: "Sex", Width: 6},
	{Title: "Age", Width: 5},
	{Title: "SibSp", Width: 5},
	{Title: "Parch", Width: 5},
	{Title: "Ticket", Width: 10},
	{Title: "Fare", Width: 8},
	{Title: "Cabin", Width: 6},
	{Title: "Emb", Width: 3},
}

// DataTable is a scrollable table of passenger rows.
type DataTable struct {
	table table.Model
}

// NewDataTable creates an empty table.
func NewDataTable() *DataTable {
	t := table.New(
		table.WithColumns(dataColumns),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.BorderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(s)

	return &DataTable{table: t}
}

// SetRows replaces the displayed passengers.
func (d *DataTable) SetRows(rows []passenger.Passenger) {
	out := make([]table.Row, len(rows))
	for i, p := range rows {
		out[i] = PassengerRow(p)
	}
	d.table.SetRows(out)
	if d.table.Cursor() >= len(out) {
		d.table.SetCursor(0)
	}
}

// Len returns the number of rows.
func (d *DataTable) Len() int {
	return len(d.table.Rows())
}

// SetHeight sets the number of visible rows.
func (d *DataTable) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	d.table.SetHeight(h)
}

// Focus focuses the table.
func (d *DataTable) Focus() tea.Cmd {
	d.table.Focus()
	return nil
}

// Blur removes focus from the table.
func (d *DataTable) Blur() {
	d.table.Blur()
}

// Focused returns whether the table is focused.
func (d *DataTable) Focused() bool {
	return d.table.Focused()
}

// Update scrolls the table while focused.
func (d *DataTable) Update(msg tea.Msg) (*DataTable, tea.Cmd) {
	var cmd tea.Cmd
	d.table, cmd = d.table.Update(msg)
	return d, cmd
}

// View renders the table.
func (d *DataTable) View() string {
	if d.Len() == 0 {
		return styles.MutedTextStyle.Render(EmptyChartText)
	}
	return d.table.View()
}

// PassengerRow formats a passenger for the table. Unknown numbers are blank.
func PassengerRow(p passenger.Passenger) table.Row {
	age, fare := "", ""
	if p.HasAge() {
		age = strconv.FormatFloat(p.Age, 'f', -1, 64)
	}
	if p.HasFare() {
		fare = strconv.FormatFloat(p.Fare, 'f', 2, 64)
	}
	return table.Row{
		strconv.Itoa(p.PassengerID),
		strconv.Itoa(p.Survived),
		strconv.Itoa(p.Pclass),
		p.Name,
		p.Sex,
		age,
		strconv.Itoa(p.SibSp),
		strconv.Itoa(p.Parch),
		p.Ticket,
		fare,
		p.Cabin,
		p.Embarked,
	}
}
