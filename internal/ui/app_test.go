package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/state"
)

type fakeAPI struct {
	mu sync.Mutex

	catalog []recipes.Recipe
	saved   []recipes.Recipe

	searches  []string
	favLoads  int
	saveCalls int
	logins    int
	logouts   int

	health    recipes.Health
	healthErr error
	me        recipes.User
	meErr     error
	saveErr   error
	favErr    error
	loginErr  error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		catalog: []recipes.Recipe{
			{
				ID:           "1",
				Title:        "Fish Tacos",
				Summary:      "Crispy fish with slaw",
				Ingredients:  []string{"fish", "tortillas"},
				Instructions: []string{"Fry the fish", "Assemble"},
			},
			{ID: "2", Title: "Tomato Basil Soup", Summary: "Simple soup"},
		},
		health: recipes.Health{Status: "ok", Message: "Healthy"},
	}
}

func (f *fakeAPI) Health(context.Context) (recipes.Health, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.health, f.healthErr
}

func (f *fakeAPI) Search(_ context.Context, _ session.Session, query string) ([]recipes.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	var out []recipes.Recipe
	for _, r := range f.catalog {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(query)) {
			out = append(out, recipes.Recipe{ID: r.ID, Title: r.Title, Summary: r.Summary})
		}
	}
	return out, nil
}

func (f *fakeAPI) Recipe(_ context.Context, _ session.Session, id string) (recipes.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return recipes.Recipe{}, &recipes.APIError{Status: 404, Message: "Recipe not found"}
}

func (f *fakeAPI) Favorites(context.Context, session.Session) ([]recipes.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favLoads++
	if f.favErr != nil {
		return nil, f.favErr
	}
	return append([]recipes.Recipe(nil), f.saved...), nil
}

func (f *fakeAPI) SaveFavorite(_ context.Context, _ session.Session, r recipes.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, s := range f.saved {
		if s.ID == r.ID {
			return nil
		}
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeAPI) RemoveFavorite(_ context.Context, _ session.Session, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	kept := f.saved[:0]
	for _, s := range f.saved {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.saved = kept
	return nil
}

func (f *fakeAPI) Register(ctx context.Context, creds recipes.Credentials) (session.Session, error) {
	return f.Login(ctx, creds)
}

func (f *fakeAPI) Login(_ context.Context, creds recipes.Credentials) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	if f.loginErr != nil {
		return session.Session{}, f.loginErr
	}
	return session.Session{Token: "tok-" + creds.Username, Username: creds.Username}, nil
}

func (f *fakeAPI) Me(_ context.Context, sess session.Session) (recipes.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meErr != nil {
		return recipes.User{}, f.meErr
	}
	if f.me.Username != "" {
		return f.me, nil
	}
	return recipes.User{Username: sess.Username}, nil
}

func (f *fakeAPI) Logout(context.Context, session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return nil
}

// cmdTimeout bounds how long a command may take before its message is
// treated as a timer and dropped (cursor blink, spinner, UI tick).
const cmdTimeout = 50 * time.Millisecond

func execCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// drive runs cmds and every command their messages produce until the model
// settles.
func drive(t *testing.T, m Model, cmds ...tea.Cmd) Model {
	t.Helper()
	queue := append([]tea.Cmd(nil), cmds...)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 500 {
			t.Fatalf("command loop did not settle")
		}
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch msg := execCmd(cmd).(type) {
		case nil, tickMsg, spinner.TickMsg, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, c := m.Update(msg)
			m = next.(Model)
			queue = append(queue, c)
		}
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, []tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}
	return m, cmds
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

var sessionNone = session.Session{}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type testEnv struct {
	api         *fakeAPI
	store       *state.Store
	sessionPath string
}

func newTestModel(t *testing.T, api *fakeAPI, sess session.Session) (Model, testEnv) {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		api:         api,
		store:       &state.Store{},
		sessionPath: filepath.Join(dir, "session.toml"),
	}
	m := New(Options{
		API:         api,
		Store:       env.store,
		Session:     sess,
		SessionPath: env.sessionPath,
		PrefsPath:   filepath.Join(dir, "prefs.toml"),
		Debounce:    time.Millisecond,
		PollTick:    time.Hour,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), env
}

// searchFor types query into the focused search field and waits for results.
func searchFor(t *testing.T, m Model, query string) Model {
	t.Helper()
	m, cmds := press(t, m, runes(query)...)
	return drive(t, m, cmds...)
}

func TestSearch_TypingDebouncesToOneRequest(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})

	m = searchFor(t, m, "tacos")

	if len(api.searches) != 1 || api.searches[0] != "tacos" {
		t.Fatalf("searches = %v, want [tacos]", api.searches)
	}
	if len(m.results) != 1 || !strings.Contains(m.results[0].Title, "Taco") {
		t.Fatalf("results = %+v, want one taco recipe", m.results)
	}
	if m.lastQuery != "tacos" || m.searchStatus.Loading {
		t.Fatalf("lastQuery=%q loading=%v", m.lastQuery, m.searchStatus.Loading)
	}
	if view := m.View(); !strings.Contains(view, "Fish Tacos") {
		t.Fatalf("view missing result card:\n%s", view)
	}
}

func TestSearch_BlankQueryClearsWithoutRequest(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "soup")
	if len(m.results) != 1 {
		t.Fatalf("results = %d, want 1", len(m.results))
	}

	backspaces := make([]tea.KeyMsg, len("soup"))
	for i := range backspaces {
		backspaces[i] = tea.KeyMsg{Type: tea.KeyBackspace}
	}
	m, cmds := press(t, m, backspaces...)
	m = drive(t, m, cmds...)

	if len(api.searches) != 1 {
		t.Fatalf("searches = %v, want only the first", api.searches)
	}
	if m.results != nil || m.lastQuery != "" {
		t.Fatalf("results not cleared: %+v %q", m.results, m.lastQuery)
	}
}

func TestSearch_StaleAndFailedResponses(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")

	stale := searchResultMsg{
		seq:     m.searchSeq - 1,
		query:   "taco",
		recipes: []recipes.Recipe{{ID: "9", Title: "Old"}, {ID: "8", Title: "Older"}},
	}
	next, _ := m.Update(stale)
	m = next.(Model)
	if len(m.results) != 1 || m.results[0].ID != "1" {
		t.Fatalf("stale response applied: %+v", m.results)
	}

	next, _ = m.Update(searchResultMsg{seq: m.searchSeq, query: "tacos", err: errors.New("backend down")})
	m = next.(Model)
	if len(m.results) != 1 {
		t.Fatalf("error cleared previous results")
	}
	if m.searchStatus.Err == nil || m.searchStatus.Loading {
		t.Fatalf("search status = %+v, want error", m.searchStatus)
	}
}

func TestToggleSave_SaveThenUnsaveReloads(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")
	m, _ = press(t, m, keyEsc)

	m, cmds := press(t, m, keyRune('s'))
	m = drive(t, m, cmds...)
	if !m.savedIDs["1"] || len(m.saved) != 1 {
		t.Fatalf("after save: savedIDs=%v saved=%+v", m.savedIDs, m.saved)
	}
	if !strings.Contains(m.notice, "Fish Tacos") {
		t.Fatalf("notice = %q", m.notice)
	}
	loads := api.favLoads

	m, cmds = press(t, m, keyRune('s'))
	m = drive(t, m, cmds...)
	if m.savedIDs["1"] || len(m.saved) != 0 {
		t.Fatalf("after unsave: savedIDs=%v saved=%+v", m.savedIDs, m.saved)
	}
	if api.favLoads != loads+1 {
		t.Fatalf("favorites loads = %d, want %d", api.favLoads, loads+1)
	}
	if len(m.busy) != 0 {
		t.Fatalf("busy not cleared: %v", m.busy)
	}
}

func TestToggleSave_IgnoresBusyRecipe(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")
	m, _ = press(t, m, keyEsc)

	m, first := press(t, m, keyRune('s'))
	if !m.busy["1"] {
		t.Fatalf("recipe not marked busy")
	}
	m, second := press(t, m, keyRune('s'))
	if second[0] != nil {
		t.Fatalf("second toggle on busy recipe returned a command")
	}

	m = drive(t, m, first...)
	if api.saveCalls != 1 {
		t.Fatalf("save calls = %d, want 1", api.saveCalls)
	}
	if m.busy["1"] {
		t.Fatalf("busy flag left set")
	}
}

func TestToggleSave_ErrorsStayInTheirRegions(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")
	m, _ = press(t, m, keyEsc)

	api.saveErr = errors.New("save exploded")
	api.favErr = errors.New("list exploded")
	loads := api.favLoads

	m, cmds := press(t, m, keyRune('s'))
	m = drive(t, m, cmds...)

	if m.toggleStatus.Err == nil || m.toggleStatus.Err.Error() != "save exploded" {
		t.Fatalf("toggle error = %v", m.toggleStatus.Err)
	}
	if m.savedStatus.Err == nil || m.savedStatus.Err.Error() != "list exploded" {
		t.Fatalf("saved error = %v", m.savedStatus.Err)
	}
	if api.favLoads != loads+1 {
		t.Fatalf("saved list not reloaded after failed mutation")
	}
	if m.searchStatus.Err != nil || len(m.results) != 1 {
		t.Fatalf("search region affected: %v %d", m.searchStatus.Err, len(m.results))
	}
}

func TestToggleSave_OverlappingMutationsKeepFailure(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "o")
	if len(m.results) != 2 {
		t.Fatalf("results = %+v, want two recipes", m.results)
	}

	m.toggleSave(m.results[0])
	m.toggleSave(m.results[1])
	if len(m.busy) != 2 {
		t.Fatalf("busy = %v, want both recipes", m.busy)
	}

	update := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	update(mutationDoneMsg{id: "1", saved: true, err: errors.New("save exploded")})
	if !m.toggleStatus.Loading {
		t.Fatalf("toggle region finished while recipe 2 is still busy")
	}
	update(mutationDoneMsg{id: "2", saved: true})

	if m.toggleStatus.Loading || len(m.busy) != 0 {
		t.Fatalf("loading=%v busy=%v after both finished", m.toggleStatus.Loading, m.busy)
	}
	if m.toggleStatus.Err == nil || m.toggleStatus.Err.Error() != "save exploded" {
		t.Fatalf("toggle error = %v, want save exploded", m.toggleStatus.Err)
	}

	// A later mutation on its own starts clean.
	m.toggleSave(m.results[1])
	update(mutationDoneMsg{id: "2", saved: false})
	if m.toggleStatus.Err != nil {
		t.Fatalf("toggle error = %v after a clean mutation", m.toggleStatus.Err)
	}
}

func TestBootstrap_ExpiredSessionIsCleared(t *testing.T) {
	api := newFakeAPI()
	api.meErr = &recipes.APIError{Status: 401, Message: "token expired"}
	sess := session.Session{Token: "old", Username: "ann"}
	m, env := newTestModel(t, api, sess)
	if err := session.Save(env.sessionPath, sess); err != nil {
		t.Fatalf("save session: %v", err)
	}

	m = drive(t, m, m.Init())

	if m.sess.SignedIn() || m.sess.Username != "" {
		t.Fatalf("session not cleared: %+v", m.sess)
	}
	if got := session.Load(env.sessionPath); got != (session.Session{}) {
		t.Fatalf("stored session = %+v, want empty", got)
	}
	if m.authStatus.Err == nil || !recipes.IsUnauthorized(m.authStatus.Err) {
		t.Fatalf("auth status = %v, want wrapped 401", m.authStatus.Err)
	}
	if api.favLoads != 1 {
		t.Fatalf("favorites loads = %d, want 1", api.favLoads)
	}
	if snap := env.store.Snapshot(); !snap.Online() || snap.Health.Message != "Healthy" {
		t.Fatalf("store snapshot = %+v", snap)
	}
}

func TestBootstrap_ValidSessionLoadsProfile(t *testing.T) {
	api := newFakeAPI()
	api.me = recipes.User{Username: "ann", Email: "ann@example.com"}
	api.saved = []recipes.Recipe{{ID: "2", Title: "Tomato Basil Soup"}}
	m, _ := newTestModel(t, api, session.Session{Token: "tok"})

	m = drive(t, m, m.Init())

	if !m.sess.SignedIn() || m.sess.Username != "ann" {
		t.Fatalf("session = %+v", m.sess)
	}
	if m.user.Email != "ann@example.com" {
		t.Fatalf("user = %+v", m.user)
	}
	if !m.savedIDs["2"] {
		t.Fatalf("saved list not loaded: %v", m.savedIDs)
	}
}

func TestBootstrap_HealthFailureStillLoadsSaved(t *testing.T) {
	api := newFakeAPI()
	api.healthErr = errors.New("connection refused")
	m, env := newTestModel(t, api, session.Session{})

	m = drive(t, m, m.Init())

	if api.favLoads != 1 {
		t.Fatalf("favorites loads = %d, want 1", api.favLoads)
	}
	if snap := env.store.Snapshot(); snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("store snapshot = %+v", snap)
	}
	if !strings.Contains(m.View(), "DEGRADED") {
		t.Fatalf("header does not show degraded backend")
	}
}

func TestDetail_LoadsFullRecipe(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")
	m, _ = press(t, m, keyEsc)

	m, cmds := press(t, m, keyEnter)
	if m.currentView != ViewDetail || m.detail.Title != "Fish Tacos" {
		t.Fatalf("detail not opened from list data: %v %+v", m.currentView, m.detail)
	}
	m = drive(t, m, cmds...)

	if len(m.detail.Ingredients) != 2 {
		t.Fatalf("detail ingredients = %v", m.detail.Ingredients)
	}
	if view := m.View(); !strings.Contains(view, "Ingredients (2)") {
		t.Fatalf("detail view missing ingredients:\n%s", view)
	}

	m, _ = press(t, m, keyEsc)
	if m.currentView != ViewSearch {
		t.Fatalf("esc from detail went to %v", m.currentView)
	}
}

func TestDetail_ResponseAfterLeavingIsDropped(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m = searchFor(t, m, "tacos")
	m, _ = press(t, m, keyEsc, keyEnter)
	seq := m.detailSeq

	m, _ = press(t, m, keyEsc)
	next, _ := m.Update(detailMsg{seq: seq, recipe: recipes.Recipe{ID: "1", Title: "Late"}})
	m = next.(Model)

	if m.detail.Title == "Late" {
		t.Fatalf("late detail response applied")
	}
	if m.detailStatus.Loading {
		t.Fatalf("detail still loading after leaving")
	}
}

func TestAccount_LoginPersistsSession(t *testing.T) {
	api := newFakeAPI()
	m, env := newTestModel(t, api, session.Session{})
	m, _ = press(t, m, keyEsc, keyRune('v'), keyRune('a'))
	if m.currentView != ViewAccount {
		t.Fatalf("view = %v, want account", m.currentView)
	}

	m, _ = press(t, m, runes("ann")...)
	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, runes("secret")...)
	m, cmds := press(t, m, keyEnter)
	m = drive(t, m, cmds...)

	if !m.sess.SignedIn() || m.sess.Username != "ann" {
		t.Fatalf("session = %+v", m.sess)
	}
	if got := session.Load(env.sessionPath); got.Token != "tok-ann" {
		t.Fatalf("stored session = %+v", got)
	}
	if m.currentView != ViewSaved {
		t.Fatalf("view after login = %v, want saved", m.currentView)
	}
	if api.favLoads != 1 {
		t.Fatalf("favorites loads = %d, want 1", api.favLoads)
	}

	m, cmds = press(t, m, keyRune('L'))
	m = drive(t, m, cmds...)
	if m.sess.SignedIn() || api.logouts != 1 {
		t.Fatalf("logout: session=%+v logouts=%d", m.sess, api.logouts)
	}
	if got := session.Load(env.sessionPath); got != (session.Session{}) {
		t.Fatalf("stored session after logout = %+v", got)
	}
}

func TestAccount_BlankCredentialsSendNothing(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m, _ = press(t, m, keyEsc, keyRune('a'))

	m, cmds := press(t, m, keyEnter)
	if cmds[0] != nil {
		t.Fatalf("blank login returned a command")
	}
	if !errors.Is(m.authStatus.Err, recipes.ErrMissingCredentials) {
		t.Fatalf("auth error = %v", m.authStatus.Err)
	}
	if api.logins != 0 {
		t.Fatalf("logins = %d, want 0", api.logins)
	}
}

func TestAccount_GuestNameAndLogout(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m, _ = press(t, m, keyEsc, keyRune('a'))

	m, _ = press(t, m, runes("bob")...)
	m, cmds := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	m = drive(t, m, cmds...)

	if m.sess.SignedIn() || m.sess.Username != "bob" {
		t.Fatalf("guest session = %+v", m.sess)
	}
	if m.currentView != ViewSearch {
		t.Fatalf("view after guest = %v", m.currentView)
	}

	m, cmds = press(t, m, keyRune('L'))
	m = drive(t, m, cmds...)
	if m.sess.Username != "" {
		t.Fatalf("guest name kept after logout")
	}
	if api.logouts != 0 {
		t.Fatalf("guest logout hit the server")
	}
}

func TestView_TabCyclesAndEscReturns(t *testing.T) {
	api := newFakeAPI()
	m, _ := newTestModel(t, api, session.Session{})
	m, _ = press(t, m, keyEsc)

	m, _ = press(t, m, keyTab)
	if m.currentView != ViewSaved {
		t.Fatalf("tab from search = %v, want saved", m.currentView)
	}
	m, _ = press(t, m, keyTab)
	if m.currentView != ViewAccount {
		t.Fatalf("tab from saved = %v, want account", m.currentView)
	}
	m, _ = press(t, m, keyEsc)
	if m.currentView != ViewSaved {
		t.Fatalf("esc from account = %v, want saved", m.currentView)
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, newFakeAPI(), session.Session{})
	m, _ = press(t, m, keyEsc, keyRune('?'))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	if view := m.View(); !strings.Contains(view, "q quit") {
		t.Fatalf("help overlay missing exit hints:\n%s", view)
	}
	m, _ = press(t, m, keyRune('x'))
	if m.showHelp {
		t.Fatalf("help not closed by key press")
	}
}

func TestParseView(t *testing.T) {
	if ParseView(" Saved ") != ViewSaved {
		t.Fatalf("ParseView(saved) != ViewSaved")
	}
	if ParseView("account") != ViewSearch {
		t.Fatalf("ParseView(account) should fall back to search")
	}
}

func TestActivity_ShowsLogTail(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "recipes.log")
	content := "recipes 2026/03/04 05:06:07 recipe finder starting\n" +
		"recipes 2026/03/04 05:06:08 search \"tacos\" failed: HTTP 500\n"
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	m := New(Options{
		API:       newFakeAPI(),
		PrefsPath: filepath.Join(dir, "prefs.toml"),
		Debounce:  time.Millisecond,
		PollTick:  time.Hour,
		LogPath:   logPath,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	m, cmds := press(t, m, keyEsc, keyRune('l'))
	if m.currentView != ViewLog {
		t.Fatalf("view = %v, want activity", m.currentView)
	}
	m = drive(t, m, cmds...)

	if len(m.logEntries) != 2 || !m.logEntries[1].Problem {
		t.Fatalf("log entries = %+v", m.logEntries)
	}
	if view := m.View(); !strings.Contains(view, "recipe finder starting") {
		t.Fatalf("activity view missing log line:\n%s", view)
	}

	m, _ = press(t, m, keyEsc)
	if m.currentView != ViewSearch {
		t.Fatalf("esc from activity = %v, want search", m.currentView)
	}
}
