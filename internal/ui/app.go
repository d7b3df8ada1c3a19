package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/logtail"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/prefs"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewSearch View = iota
	ViewSaved
	ViewDetail
	ViewAccount
	ViewLog
)

func (v View) String() string {
	switch v {
	case ViewSaved:
		return "saved"
	case ViewDetail:
		return "detail"
	case ViewAccount:
		return "account"
	case ViewLog:
		return "activity"
	default:
		return "search"
	}
}

// ParseView maps a stored view name back to a View. Only the list views are
// valid start views; anything else yields ViewSearch.
func ParseView(name string) View {
	if strings.EqualFold(strings.TrimSpace(name), "saved") {
		return ViewSaved
	}
	return ViewSearch
}

// cycleOrder is the tab order between top-level views.
var cycleOrder = []View{ViewSearch, ViewSaved, ViewAccount}

// Options configures the UI.
type Options struct {
	Context     context.Context
	API         recipes.API
	Store       *state.Store
	Session     session.Session
	SessionPath string // empty keeps the session in memory only
	Debounce    time.Duration
	PollTick    time.Duration
	ThemeName   string
	PrefsPath   string
	StartView   View
	LogPath     string // log file shown in the activity view
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	api         recipes.API
	store       *state.Store
	sessionPath string
	prefsPath   string
	logPath     string
	debounce    time.Duration
	pollTick    time.Duration
	keys        keyMap

	// UI state
	theme       Theme
	currentView View
	returnView  View // where esc from detail/account goes
	width       int
	height      int
	ready       bool
	showHelp    bool
	spinner     spinner.Model
	notice      string

	// Data state
	snapshot state.Snapshot
	sess     session.Session
	user     recipes.User

	// Search state
	searchInput   textinput.Model
	searchSeq     int
	lastQuery     string
	results       []recipes.Recipe
	resultsCursor int
	searchStatus  state.Status

	// Saved state
	saved       []recipes.Recipe
	savedIDs    map[string]bool
	savedCursor int
	savedSeq    int
	savedStatus state.Status

	// Save/unsave state
	busy         map[string]bool
	toggleStatus state.Status
	toggleErr    error // latest failure among overlapping mutations

	// Detail state
	detail         recipes.Recipe
	detailSeq      int
	detailStatus   state.Status
	detailViewport viewport.Model

	// Activity log state
	logEntries  []logtail.Entry
	logStatus   state.Status
	logViewport viewport.Model

	// Account state
	authInputs [3]textinput.Model // username, password, email
	authFocus  int
	authStatus state.Status
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search recipes, e.g. tacos"
	search.CharLimit = 120

	m := Model{
		ctx:         ctx,
		api:         opts.API,
		store:       opts.Store,
		sessionPath: opts.SessionPath,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		debounce:    debounce,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: opts.StartView,
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		sess:        opts.Session,
		user:        recipes.User{Username: opts.Session.Username},
		searchInput: search,
		savedIDs:    make(map[string]bool),
		busy:        make(map[string]bool),
	}
	if m.currentView != ViewSaved {
		m.currentView = ViewSearch
		m.searchInput.Focus()
	}
	m.returnView = m.currentView
	m.initAuthInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		textinput.Blink,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.api != nil {
		// Bootstrap: health, then the session check, then the saved list.
		cmds = append(cmds, healthCmd(m.ctx, m.api))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.resizeDetailViewport()
		m.resizeLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case debounceMsg:
		return m.handleDebounce(msg)

	case searchResultMsg:
		m.handleSearchResult(msg)
		return m, nil

	case savedMsg:
		m.handleSaved(msg)
		return m, nil

	case detailMsg:
		m.handleDetail(msg)
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case bootHealthMsg:
		return m.handleBootHealth(msg)

	case bootMeMsg:
		return m.handleBootMe(msg)

	case authMsg:
		return m.handleAuth(msg)

	case logTailMsg:
		m.handleLogTail(msg)
		return m, nil

	case logoutMsg:
		if msg.err != nil {
			log.Printf("logout request failed: %v", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input bookkeeping
	return m.updateInputs(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.savePrefs()
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewAccount && !m.sess.SignedIn() {
		return m.handleAccountKey(msg)
	}
	if m.currentView == ViewSearch && m.searchInput.Focused() {
		return m.handleSearchInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleView(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleView(-1)

	case key.Matches(msg, m.keys.FocusSearch):
		m.switchView(ViewSearch)
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ViewSaved):
		m.switchView(ViewSaved)
		return m, nil

	case key.Matches(msg, m.keys.ViewAccount):
		return m, m.switchView(ViewAccount)

	case key.Matches(msg, m.keys.ViewLog):
		return m, m.switchView(ViewLog)

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()

	case key.Matches(msg, m.keys.ReloadSaved):
		return m, m.loadSaved()

	case key.Matches(msg, m.keys.Escape):
		switch m.currentView {
		case ViewDetail:
			m.closeDetail()
		case ViewSaved:
			m.switchView(ViewSearch)
		case ViewAccount, ViewLog:
			m.switchView(m.returnView)
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewSearch, ViewSaved:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLog:
		return m.handleLogKey(msg)
	}

	return m, nil
}

// switchView moves to a top-level view. It returns the input focus command
// when the view starts with a focused field.
func (m *Model) switchView(v View) tea.Cmd {
	if m.currentView == ViewDetail && v != ViewDetail {
		m.closeDetail()
	}
	m.searchInput.Blur()
	m.blurAuthInputs()
	if v != ViewAccount && v != ViewLog {
		m.returnView = v
	}
	m.currentView = v
	switch {
	case v == ViewAccount && !m.sess.SignedIn():
		return m.focusAuthField(0)
	case v == ViewLog:
		return m.refreshLog()
	}
	return nil
}

// cycleView moves through cycleOrder by step, wrapping at either end.
func (m *Model) cycleView(step int) tea.Cmd {
	from := m.currentView
	if from == ViewDetail || from == ViewLog {
		from = m.returnView
	}
	idx := 0
	for i, v := range cycleOrder {
		if v == from {
			idx = i
			break
		}
	}
	n := len(cycleOrder)
	return m.switchView(cycleOrder[((idx+step)%n+n)%n])
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLog {
		cmds = append(cmds, m.refreshLog())
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// updateInputs forwards non-key messages to the focused inputs.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.authInputs {
		m.authInputs[i], cmd = m.authInputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// spinning reports whether any region shows the busy spinner.
func (m Model) spinning() bool {
	return len(m.busy) > 0 ||
		m.searchStatus.Loading ||
		m.savedStatus.Loading ||
		m.detailStatus.Loading ||
		m.authStatus.Loading
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastView: m.returnView.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + health + session
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewSaved:
		return m.renderSaved()
	case ViewDetail:
		return m.renderDetail()
	case ViewAccount:
		return m.renderAccount()
	case ViewLog:
		return m.renderLog()
	default:
		return m.renderSearch()
	}
}

// contentHeight is the number of rows below the two header lines.
func (m Model) contentHeight() int {
	if h := m.height - 2; h > 0 {
		return h
	}
	return 0
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
