package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/creature"
)

// Browser layout constants
const (
	minWidthForDetail = 100 // Minimum width to show the detail panel beside the table
	detailWidth       = 48  // Width of the detail panel
	playgroundWidth   = 40  // Width of the pointer panel
	tickRate          = 20  // Playground turns per second
)

// reloadedMsg reports the end of a reload.
type reloadedMsg struct {
	err error
}

// BrowserModel is the Bubble Tea model for the creature browser.
type BrowserModel struct {
	store      *creature.Store
	set        *creature.Set
	reload     func() error
	status     string
	models     []int // Model ids shown in the table, in row order
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	playground *Playground
	width      int
	height     int
	quitting   bool
	wide       bool // Whether the panels sit beside the table
}

// NewBrowserModel creates a browser over the creature set held by store.
func NewBrowserModel(store *creature.Store, logger *log.Logger, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	set := store.Set()
	m := BrowserModel{
		store:      store,
		set:        set,
		keys:       DefaultBrowserKeyMap(),
		help:       h,
		playground: NewPlayground(set, logger),
		width:      width,
		height:     height,
		wide:       width >= minWidthForDetail,
	}
	m.table = m.createTable()
	m.loadModels()
	m.playground.Tick()

	return m
}

// WithReload sets the function run by the reload key. It is expected to
// refresh the store the browser was created with.
func (m BrowserModel) WithReload(fn func() error) BrowserModel {
	m.reload = fn
	return m
}

// loadModels rebuilds the table from the store's current set.
func (m *BrowserModel) loadModels() {
	m.set = m.store.Set()
	m.models = m.models[:0]
	for model := 1; model <= m.set.Config.KindCount; model++ {
		m.models = append(m.models, model)
	}
	m.playground.SetCreatures(m.set)
	m.updateTableRows()
	if m.table.Cursor() >= len(m.models) {
		m.table.GotoTop()
	}
	m.playground.Select(m.selected())
}

// createTable creates a new table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 14},
		{Title: "Health", Width: 7},
		{Title: "Str", Width: 5},
		{Title: "Speed", Width: 6},
		{Title: "Jobs", Width: 20},
	}

	tableWidth := m.width - 6 // Margins and border
	if m.wide {
		tableWidth -= detailWidth + 4
	}
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if rest := tableWidth - used - 2; rest > columns[5].Width {
		columns[5].Width = min(rest, 40)
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the creature set.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.models))
	for i, model := range m.models {
		st := m.set.Stats[creature.Index(model)]
		name := m.set.Config.KindName(model)
		if !m.set.Loaded[creature.Index(model)] {
			name += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", model),
			name,
			fmt.Sprintf("%d", st.Health),
			fmt.Sprintf("%d", st.Strength),
			fmt.Sprintf("%d", st.BaseSpeed),
			flagList(creature.Jobs.FlagNames(st.JobPrimary)),
		}
	}
	m.table.SetRows(rows)
}

// selected returns the model id under the table cursor, or 0.
func (m BrowserModel) selected() int {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.models) {
		return 0
	}
	return m.models[i]
}

// Init starts the playground tick.
func (m BrowserModel) Init() tea.Cmd {
	return tickCmd(time.Time{}, tickRate)
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case TickMsg:
		m.playground.Advance(msg.Turns)
		return m, tickCmd(msg.At, tickRate)

	case reloadedMsg:
		m.loadModels()
		m.status = fmt.Sprintf("reloaded %d kinds", len(m.models))
		if msg.err != nil {
			m.status = "reloaded with errors: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.playground.CycleView()
			return m, nil

		case key.Matches(msg, m.keys.NextState):
			m.playground.CycleState(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevState):
			m.playground.CycleState(-1)
			return m, nil

		case key.Matches(msg, m.keys.NextCursor):
			m.playground.CycleCursor()
			return m, nil

		case key.Matches(msg, m.keys.Hold):
			m.playground.ToggleHold()
			return m, nil

		case key.Matches(msg, m.keys.Possess):
			m.playground.TogglePossess()
			return m, nil

		case key.Matches(msg, m.keys.BigPointer):
			m.playground.ToggleBigPointer()
			return m, nil

		case key.Matches(msg, m.keys.Pause):
			m.playground.TogglePause()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			if m.reload == nil {
				return m, nil
			}
			m.status = "reloading..."
			reload := m.reload
			return m, func() tea.Msg {
				return reloadedMsg{err: reload()}
			}

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.playground.Select(m.selected())
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wide = m.width >= minWidthForDetail
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("CREATURES - %d kinds", len(m.models))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableRendered := panelStyle.Render(m.renderTableContent())
	panels := m.renderPanels()
	if m.wide {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", panels))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tableRendered, panels))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m BrowserModel) renderPanels() string {
	model := m.selected()
	pointer := renderPlayground(m.playground, playgroundWidth)
	if model == 0 {
		return pointer
	}
	i := creature.Index(model)
	detail := renderDetail(m.set.Config.KindName(model), m.set.Stats[i], m.set.Loaded[i], detailWidth)
	return lipgloss.JoinVertical(lipgloss.Left, detail, pointer)
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.models) == 0 {
		return dimStyle.Padding(2, 4).Render("No creature kinds listed in creature.cfg.")
	}
	return m.table.View()
}

// Playground returns the pointer playground driven by the browser.
func (m BrowserModel) Playground() *Playground {
	return m.playground
}

// RunBrowser runs the creature browser until the user quits.
func RunBrowser(model BrowserModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
