package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/state"
)

// Messages. Results of async requests carry the sequence number they were
// issued under; Update drops any that no longer match the latest one.

type tickMsg time.Time

type snapshotMsg state.Snapshot

type debounceMsg struct {
	seq   int
	query string
}

type searchResultMsg struct {
	seq     int
	query   string
	recipes []recipes.Recipe
	err     error
}

type savedMsg struct {
	seq     int
	recipes []recipes.Recipe
	err     error
}

type detailMsg struct {
	seq    int
	recipe recipes.Recipe
	err    error
}

type mutationDoneMsg struct {
	id    string
	saved bool // true when the recipe was saved, false when removed
	err   error
}

type bootHealthMsg struct {
	health recipes.Health
	err    error
}

type bootMeMsg struct {
	user recipes.User
	err  error
}

type authAction int

const (
	authLogin authAction = iota
	authRegister
)

type authMsg struct {
	action authAction
	sess   session.Session
	err    error
}

type logoutMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func debounceCmd(d time.Duration, seq int, query string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, query: query}
	})
}

func searchCmd(ctx context.Context, api recipes.API, sess session.Session, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		found, err := api.Search(ctx, sess, query)
		return searchResultMsg{seq: seq, query: query, recipes: found, err: err}
	}
}

func savedCmd(ctx context.Context, api recipes.API, sess session.Session, seq int) tea.Cmd {
	return func() tea.Msg {
		list, err := api.Favorites(ctx, sess)
		return savedMsg{seq: seq, recipes: list, err: err}
	}
}

func detailCmd(ctx context.Context, api recipes.API, sess session.Session, seq int, id string) tea.Cmd {
	return func() tea.Msg {
		r, err := api.Recipe(ctx, sess, id)
		return detailMsg{seq: seq, recipe: r, err: err}
	}
}

func mutateCmd(ctx context.Context, api recipes.API, sess session.Session, r recipes.Recipe, save bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if save {
			err = api.SaveFavorite(ctx, sess, r)
		} else {
			err = api.RemoveFavorite(ctx, sess, r.ID)
		}
		return mutationDoneMsg{id: r.ID, saved: save, err: err}
	}
}

func healthCmd(ctx context.Context, api recipes.API) tea.Cmd {
	return func() tea.Msg {
		h, err := api.Health(ctx)
		return bootHealthMsg{health: h, err: err}
	}
}

func meCmd(ctx context.Context, api recipes.API, sess session.Session) tea.Cmd {
	return func() tea.Msg {
		u, err := api.Me(ctx, sess)
		return bootMeMsg{user: u, err: err}
	}
}

func authCmd(ctx context.Context, api recipes.API, action authAction, creds recipes.Credentials) tea.Cmd {
	return func() tea.Msg {
		var (
			sess session.Session
			err  error
		)
		switch action {
		case authRegister:
			sess, err = api.Register(ctx, creds)
		default:
			sess, err = api.Login(ctx, creds)
		}
		return authMsg{action: action, sess: sess, err: err}
	}
}

func logoutCmd(ctx context.Context, api recipes.API, sess session.Session) tea.Cmd {
	return func() tea.Msg {
		return logoutMsg{err: api.Logout(ctx, sess)}
	}
}
