package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/manifest/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Source     string
	Passengers int
	SessionID  string
}

// Header is a component that displays dataset info in a header bar.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Source:    "-",
			SessionID: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetSource sets the dataset source.
func (h *Header) SetSource(source string) {
	h.data.Source = source
}

// SetPassengers sets the dataset size.
func (h *Header) SetPassengers(n int) {
	h.data.Passengers = n
}

// SetSessionID sets the session ID.
func (h *Header) SetSessionID(id string) {
	h.data.SessionID = id
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("TITANIC PASSENGER EXPLORER")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	sourceLabel := styles.HeaderLabelStyle.Render("Source: ")
	sourceValue := styles.HeaderValueStyle.Render(h.data.Source)

	rowsLabel := styles.HeaderLabelStyle.Render("Passengers: ")
	rowsValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Passengers))

	content := fmt.Sprintf("%s%s%s%s%s%s%s",
		title, sep,
		sourceLabel, sourceValue, sep,
		rowsLabel, rowsValue,
	)

	if h.data.SessionID != "" && h.data.SessionID != "-" {
		shortSession := h.data.SessionID
		if len(shortSession) > 8 {
			shortSession = shortSession[:8]
		}
		sessionLabel := styles.HeaderLabelStyle.Render("Session: ")
		sessionValue := styles.HeaderValueStyle.Render(shortSession)
		content = fmt.Sprintf("%s%s%s%s", content, sep, sessionLabel, sessionValue)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
