package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"internconnect/internal/models"
	"internconnect/internal/session"
)

// chromeHeight is the number of lines around the viewport: title, tab bar,
// status, search box, error and help
const chromeHeight = 6

// Model represents the UI model
type Model struct {
	Viewport      viewport.Model
	Search        textinput.Model
	Catalog       *models.Catalog
	Session       session.State
	Student       models.Student
	StatusMessage string
	ErrorMessage  string
	Width         int
	Height        int
	Ready         bool

	log *slog.Logger
}

// NewModel creates a new UI model. student is the profile shown as the
// logged-in student; state is usually session.New, or a state already
// logged in when a default role is configured.
func NewModel(cat *models.Catalog, state session.State, student models.Student, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	search := textinput.New()
	search.Placeholder = "Search by keyword or tag..."
	search.Prompt = "/ "
	search.CharLimit = 120
	search.SetValue(state.Query)

	return Model{
		Search:        search,
		Catalog:       cat,
		Session:       state,
		Student:       student,
		StatusMessage: "Ready",
		log:           log,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Search.Focused() {
			return m.updateSearch(msg)
		}
		if m.Session.Tab == session.TabLogin {
			return m.updateLogin(msg)
		}
		if cmd, handled := m.handleTabKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.Viewport.YPosition = 3
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - chromeHeight
		}
		m.Search.Width = msg.Width - 4
		m.refresh()

		return m, nil
	}

	if m.Ready {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "s":
		m.apply(session.Login{Role: session.RoleStudent})
	case "r":
		m.apply(session.Login{Role: session.RoleRecruiter})
	default:
		// Under the open policy tabs are reachable before login
		m.handleTabKey(msg)
	}
	return m, nil
}

// handleTabKey processes navigation keys shared by every tab. It reports
// whether the key was consumed.
func (m *Model) handleTabKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "q":
		return tea.Quit, true
	case "tab":
		m.apply(session.SelectTab{Tab: session.Cycle(m.Session, 1)})
	case "shift+tab":
		m.apply(session.SelectTab{Tab: session.Cycle(m.Session, -1)})
	case "o":
		m.apply(session.Logout{})
		m.Search.SetValue("")
	case "/":
		if m.Session.Tab != session.TabProjects {
			return nil, false
		}
		m.StatusMessage = "Searching projects"
		return m.Search.Focus(), true
	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(key)
		m.apply(session.SelectTab{Tab: session.AllTabs()[n-1]})
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Search.Blur()
		m.StatusMessage = "Ready"
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() != m.Session.Query {
		m.apply(session.SetQuery{Query: m.Search.Value()})
	}
	return m, cmd
}

// apply runs a session transition and re-renders. Rejected transitions
// leave the state alone and surface the reason in the error line.
func (m *Model) apply(a session.Action) {
	prev := m.Session
	next, err := session.Transition(prev, a)
	if err != nil {
		m.ErrorMessage = err.Error()
		m.log.Debug("transition rejected",
			slog.String("tab", string(prev.Tab)),
			slog.String("action", fmt.Sprintf("%T", a)),
			slog.String("error", err.Error()))
		return
	}

	m.ErrorMessage = ""
	m.Session = next
	if prev.Tab != next.Tab || prev.Role != next.Role {
		m.log.Info("view changed",
			slog.String("from", string(prev.Tab)),
			slog.String("to", string(next.Tab)),
			slog.String("role", string(next.Role)))
		m.Viewport.GotoTop()
	}
	m.refresh()
}

// refresh re-renders the active tab into the viewport
func (m *Model) refresh() {
	content, status := renderTab(m)
	m.StatusMessage = status
	m.Viewport.SetContent(content)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	titleBar := titleStyle.Render("InternConnect Prototype")

	statusBar := statusStyle.Render(m.StatusMessage)

	searchView := ""
	if m.Session.Tab == session.TabProjects {
		searchView = m.Search.View()
	}

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = errorStyle.Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		renderTabBar(m.Session),
		statusBar,
		searchView,
		m.Viewport.View(),
		errorView,
		helpStyle.Render(helpText(m)),
	)
}
