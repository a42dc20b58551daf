// Package tui provides the terminal dashboard for manifest.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/tui/components"
	"github.com/wexinc/manifest/internal/tui/styles"
)

// Component ids.
const (
	idSex   = "sex"
	idClass = "class"
	idAge   = "age"
	idRaw   = "raw"
)

const sidebarWidth = 32

// Focus identifies the control that receives key presses.
type Focus int

const (
	FocusSex Focus = iota
	FocusClass
	FocusAge
	FocusRaw
	FocusTable
)

// LoadFunc loads the dataset in the background.
type LoadFunc func(ctx context.Context) (*passenger.Dataset, error)

// Options configures the dashboard.
type Options struct {
	// Dataset is explored directly when set. Otherwise Load is called from Init.
	Dataset *passenger.Dataset
	Load    LoadFunc
	// Source is shown in the header while loading.
	Source string

	// Defaults are the initial and reset criteria. Nil selects everything.
	Defaults *explore.Criteria
	// DefaultsFor derives Defaults from the loaded dataset and takes precedence over it.
	DefaultsFor   func(*passenger.Dataset) explore.Criteria
	HistogramBins int

	Context context.Context
	Logger  *logging.Logger
}

// Model is the Bubble Tea model for the manifest dashboard.
type Model struct {
	// Components
	header      *components.Header
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	spinner     *components.Spinner
	metrics     *components.MetricCards
	charts      []*components.ChartPanel
	table       *components.DataTable

	// Filter controls
	sexes   *components.CheckboxGroup
	classes *components.CheckboxGroup
	age     *components.RangeSlider
	raw     *components.Checkbox

	// State
	explorer    *explore.Explorer
	result      explore.View
	defaults    *explore.Criteria
	defaultsFor func(*passenger.Dataset) explore.Criteria
	focus       Focus
	loading     bool
	loadErr     error
	load        LoadFunc
	bins        int
	ctx         context.Context
	logger      *logging.Logger

	// Session info
	sessionID string
	startTime time.Time

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a dashboard model.
func New(opts Options) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}

	sessionID := uuid.New().String()
	ctx := logging.WithSessionID(opts.Context, sessionID)

	m := &Model{
		header:      components.NewHeader(),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		spinner:     components.NewSpinner(),
		metrics:     components.NewMetricCards(),
		charts:      newChartPanels(),
		table:       components.NewDataTable(),
		sexes:       components.NewCheckboxGroup(idSex, "Sex", nil),
		classes:     components.NewCheckboxGroup(idClass, "Passenger Class", nil),
		age:         components.NewRangeSlider(idAge, "Age Range", explore.MinAge, explore.MaxAge),
		raw:         components.NewCheckbox(idRaw, "Show Raw Data"),
		defaults:    opts.Defaults,
		defaultsFor: opts.DefaultsFor,
		load:        opts.Load,
		bins:        opts.HistogramBins,
		ctx:         ctx,
		logger:      opts.Logger.WithContext(ctx).With("component", "tui"),
		sessionID:   sessionID,
		startTime:   time.Now(),
	}
	m.age.SetWidth(sidebarWidth - 4)
	m.header.SetData(components.HeaderData{Source: opts.Source, SessionID: sessionID})

	if opts.Dataset != nil {
		m.setDataset(opts.Dataset)
	} else {
		m.loading = true
		m.spinner.SetStatusText("Loading passenger manifest " + opts.Source)
	}
	return m
}

// newChartPanels returns one panel per chart, in display order.
func newChartPanels() []*components.ChartPanel {
	panels := make([]*components.ChartPanel, len(explore.ChartKinds))
	for i := range panels {
		panels[i] = components.NewChartPanel()
	}
	return panels
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	if !m.loading {
		return tickCmd()
	}
	return tea.Batch(tickCmd(), m.spinner.Start(), m.loadCmd())
}

// tickCmd returns a command that sends a tick message every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

func (m *Model) loadCmd() tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		if load == nil {
			return DatasetLoadedMsg{Err: errNoDataset}
		}
		ds, err := load(ctx)
		return DatasetLoadedMsg{Dataset: ds, Err: err}
	}
}

// setDataset builds the explorer and the option lists, then applies the defaults.
func (m *Model) setDataset(ds *passenger.Dataset) {
	m.explorer = explore.NewExplorer(ds, explore.Options{
		HistogramBins: m.bins,
		Logger:        m.logger,
	})

	sexOpts := make([]components.CheckboxOption, 0, len(ds.Sexes()))
	for _, s := range ds.Sexes() {
		sexOpts = append(sexOpts, components.CheckboxOption{Label: s, Value: s})
	}
	classOpts := make([]components.CheckboxOption, 0, len(ds.Classes()))
	for _, k := range ds.Classes() {
		v := strconv.Itoa(k)
		classOpts = append(classOpts, components.CheckboxOption{Label: v, Value: v})
	}
	m.sexes = components.NewCheckboxGroup(idSex, "Sex", sexOpts)
	m.classes = components.NewCheckboxGroup(idClass, "Passenger Class", classOpts)

	m.header.SetSource(ds.Source())
	m.header.SetPassengers(ds.Len())

	if m.defaultsFor != nil {
		c := m.defaultsFor(ds)
		m.defaults = &c
	}

	m.setCriteria(m.defaultCriteria())
	m.setFocus(FocusSex)
	m.refresh()

	m.logger.Info("dashboard ready", "source", ds.Source(), "passengers", ds.Len())
}

func (m *Model) defaultCriteria() explore.Criteria {
	if m.defaults != nil {
		return *m.defaults
	}
	return m.explorer.Defaults()
}

// setCriteria moves the controls to c without recomputing.
func (m *Model) setCriteria(c explore.Criteria) {
	m.sexes.SetSelected(c.Sexes)
	classes := make([]string, len(c.Classes))
	for i, k := range c.Classes {
		classes[i] = strconv.Itoa(k)
	}
	m.classes.SetSelected(classes)
	m.age.SetValues(c.Age.Min, c.Age.Max)
}

// Criteria reads the current criteria from the controls.
func (m *Model) Criteria() explore.Criteria {
	c := explore.Criteria{
		Sexes:   m.sexes.Selected(),
		Classes: []int{},
	}
	for _, v := range m.classes.Selected() {
		if k, err := strconv.Atoi(v); err == nil {
			c.Classes = append(c.Classes, k)
		}
	}
	c.Age.Min, c.Age.Max = m.age.Values()
	return c
}

// Result returns the view computed for the current criteria.
func (m *Model) Result() explore.View {
	return m.result
}

// refresh recomputes the view from the controls and pushes it to the panels.
func (m *Model) refresh() {
	if m.explorer == nil {
		return
	}
	m.result = m.explorer.Apply(m.Criteria())

	m.metrics.SetSummary(m.result.Summary)
	for i, kind := range explore.ChartKinds {
		if c, ok := m.result.Chart(kind); ok {
			m.charts[i].SetChart(c)
		}
	}
	m.table.SetRows(m.result.Rows)
	m.statusBar.SetCompute(m.result.Elapsed)
	m.statusBar.SetCriteria(m.result.Criteria.String())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.helpOverlay.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		m.statusBar.SetUptime(time.Since(m.startTime))
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DatasetLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.statusBar.SetError(msg.Err.Error())
			m.logger.Error("dataset load failed", "error", msg.Err)
			return m, nil
		}
		m.setDataset(msg.Dataset)
		m.resize()
		return m, nil

	case components.SelectionChangedMsg, components.RangeChangedMsg:
		return m, filtersChanged(nil)

	case components.ToggledMsg:
		m.resize()
		return m, nil

	case FiltersChangedMsg:
		if msg.Criteria != nil {
			m.setCriteria(*msg.Criteria)
		}
		m.refresh()
		return m, nil

	case components.HelpClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles global shortcuts and forwards the rest to the focused control.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.helpOverlay.Toggle()
		return m, nil
	}

	if m.explorer == nil {
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.setFocus(m.nextFocus(1))
		return m, nil

	case "shift+tab":
		m.setFocus(m.nextFocus(-1))
		return m, nil

	case "r":
		c := m.defaultCriteria()
		m.statusBar.SetMessage("filters reset")
		return m, filtersChanged(&c)

	case "d":
		m.raw.Toggle()
		if !m.raw.Checked() && m.focus == FocusTable {
			m.setFocus(FocusRaw)
		}
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusSex:
		m.sexes, cmd = m.sexes.Update(msg)
	case FocusClass:
		m.classes, cmd = m.classes.Update(msg)
	case FocusAge:
		m.age, cmd = m.age.Update(msg)
	case FocusRaw:
		m.raw, cmd = m.raw.Update(msg)
	case FocusTable:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// Focused returns the control receiving key presses.
func (m *Model) Focused() Focus {
	return m.focus
}

func (m *Model) nextFocus(delta int) Focus {
	n := int(FocusRaw) + 1
	if m.raw.Checked() {
		n = int(FocusTable) + 1
	}
	return Focus(((int(m.focus)+delta)%n + n) % n)
}

func (m *Model) setFocus(f Focus) {
	m.sexes.Blur()
	m.classes.Blur()
	m.age.Blur()
	m.raw.Blur()
	m.table.Blur()

	m.focus = f
	switch f {
	case FocusSex:
		m.sexes.Focus()
		m.statusBar.SetShortcuts(components.FilterShortcuts)
	case FocusClass:
		m.classes.Focus()
		m.statusBar.SetShortcuts(components.FilterShortcuts)
	case FocusAge:
		m.age.Focus()
		m.statusBar.SetShortcuts(components.SliderShortcuts)
	case FocusRaw:
		m.raw.Focus()
		m.statusBar.SetShortcuts(components.FilterShortcuts)
	case FocusTable:
		m.table.Focus()
		m.statusBar.SetShortcuts(components.TableShortcuts)
	}
}

// resize distributes the window between the panels.
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.spinner.SetWidth(m.width)
	m.helpOverlay.SetSize(60, 25)

	mainWidth := m.width - sidebarWidth - 4
	m.metrics.SetWidth(mainWidth)

	// header, metrics (4), status bar
	avail := m.height - 7
	if m.raw.Checked() {
		tableHeight := avail / 3
		m.table.SetHeight(tableHeight - 2)
		avail -= tableHeight
	}
	for _, p := range m.charts {
		p.SetSize(mainWidth, avail/len(m.charts)-1)
	}
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(styles.ErrorTextStyle.Render("Error: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(styles.MutedTextStyle.Render("Press q to quit."))
		b.WriteString("\n")
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", m.mainView()))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar.View())
	view := b.String()

	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	return view
}

func (m *Model) sidebarView() string {
	box := func(focused bool, content string) string {
		style := styles.BoxStyle
		if focused {
			style = styles.FocusedBoxStyle
		}
		return style.Width(sidebarWidth - 2).Render(content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelTitleStyle.Render("Filters Options"),
		box(m.focus == FocusSex, m.sexes.View()),
		box(m.focus == FocusClass, m.classes.View()),
		box(m.focus == FocusAge, m.age.View()),
		box(m.focus == FocusRaw, m.raw.View()),
	)
}

func (m *Model) mainView() string {
	parts := []string{m.metrics.View()}
	for _, p := range m.charts {
		parts = append(parts, p.View())
	}
	if m.raw.Checked() {
		parts = append(parts, styles.PanelTitleStyle.Render("Raw Data"), m.table.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderOverlay renders an overlay component centered in the window.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width == 0 || m.height == 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
