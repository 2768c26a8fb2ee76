package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tasca-io/tasca/internal/config"
	"github.com/tasca-io/tasca/internal/task"
	"github.com/tasca-io/tasca/internal/taskfile"
	"github.com/tasca-io/tasca/internal/tui/msgs"
	"github.com/tasca-io/tasca/internal/tui/styles"
	"github.com/tasca-io/tasca/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewList
	ViewAdd
	ViewSearch
	ViewStats
)

// Minimum usable terminal size. Anything smaller gets a resize hint
// instead of a broken layout.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// Model is the main Bubble Tea model. It owns the shared store, routes
// messages to the active view, and persists after every mutation.
type Model struct {
	currentView View
	width       int
	height      int

	store *task.Store
	path  string
	cfg   *config.Config

	home   views.HomeModel
	list   views.ListModel
	add    views.AddModel
	search views.SearchModel
	stats  views.StatsModel

	// Last save failure. The in-memory change stands; the error shows
	// in the active view until a save succeeds.
	saveErr error
}

// Run starts the TUI application.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.TasksFile
	records, err := taskfile.Load(path)
	if err != nil {
		return err
	}

	store := task.NewStore()
	if err := store.LoadRecords(records); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	p := tea.NewProgram(
		NewModel(store, path, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// NewModel creates the root model over an already-loaded store.
func NewModel(store *task.Store, path string, cfg *config.Config) Model {
	return Model{
		currentView: ViewHome,
		store:       store,
		path:        path,
		cfg:         cfg,
		home:        views.NewHomeModel(store),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		m.list.SetSize(msg.Width, msg.Height)
		m.add.SetSize(msg.Width, msg.Height)
		m.search.SetSize(msg.Width, msg.Height)
		m.stats.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.GoToHomeMsg:
		return m.switchToHome()

	case msgs.GoToListMsg:
		return m.switchToList()

	case msgs.GoToAddMsg:
		return m.switchToAdd()

	case msgs.GoToSearchMsg:
		return m.switchToSearch()

	case msgs.GoToStatsMsg:
		return m.switchToStats()

	case msgs.TaskAddedMsg:
		if _, err := m.store.Add(msg.Title, msg.Description, msg.Priority, msg.DueDate, msg.Category); err != nil {
			// The form validates before emitting; surface it anyway
			m.add.SetError(err.Error())
			return m, nil
		}
		m.persist()
		return m.switchToList()

	case msgs.TasksChangedMsg:
		m.persist()
		if m.saveErr != nil {
			notice := saveNotice(m.saveErr)
			switch m.currentView {
			case ViewList:
				m.list.SetError(notice)
			case ViewHome:
				m.home.SetError(notice)
			}
		}
		return m, nil
	}

	// Everything else goes to the active view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewAdd:
		m.add, cmd = m.add.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewStats:
		m.stats, cmd = m.stats.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 &&
		(m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewList:
		return m.list.View()
	case ViewAdd:
		return m.add.View()
	case ViewSearch:
		return m.search.View()
	case ViewStats:
		return m.stats.View()
	default:
		return m.home.View()
	}
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("%s\n\nMinimum: %dx%d\nCurrent: %dx%d",
		styles.ErrorStyle.Render("Terminal too small"),
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

// Views are rebuilt on every switch so they always reflect the store.

func (m Model) switchToHome() (Model, tea.Cmd) {
	m.home = views.NewHomeModel(m.store)
	m.home.SetSize(m.width, m.height)
	if m.saveErr != nil {
		m.home.SetError(saveNotice(m.saveErr))
	}
	m.currentView = ViewHome
	return m, m.home.Init()
}

func (m Model) switchToList() (Model, tea.Cmd) {
	m.list = views.NewListModel(m.store)
	m.list.SetSize(m.width, m.height)
	if m.saveErr != nil {
		m.list.SetError(saveNotice(m.saveErr))
	}
	m.currentView = ViewList
	return m, m.list.Init()
}

func (m Model) switchToAdd() (Model, tea.Cmd) {
	m.add = views.NewAddModel(m.cfg.Priority(), m.cfg.Category())
	m.add.SetSize(m.width, m.height)
	m.currentView = ViewAdd
	return m, m.add.Init()
}

func (m Model) switchToSearch() (Model, tea.Cmd) {
	m.search = views.NewSearchModel(m.store)
	m.search.SetSize(m.width, m.height)
	m.currentView = ViewSearch
	return m, m.search.Init()
}

func (m Model) switchToStats() (Model, tea.Cmd) {
	m.stats = views.NewStatsModel(m.store)
	m.stats.SetSize(m.width, m.height)
	m.currentView = ViewStats
	return m, m.stats.Init()
}

// persist writes the store to disk and records the outcome.
func (m *Model) persist() {
	m.saveErr = taskfile.Save(m.path, m.store.Records())
}

func saveNotice(err error) string {
	return fmt.Sprintf("save failed: %v", err)
}

// Getters

// CurrentView returns the active view.
func (m Model) CurrentView() View {
	return m.currentView
}

// Store returns the shared task store.
func (m Model) Store() *task.Store {
	return m.store
}

// SaveErr returns the last save failure, nil after a successful save.
func (m Model) SaveErr() error {
	return m.saveErr
}
