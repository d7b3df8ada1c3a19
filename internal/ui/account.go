package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldEmail
)

var errGuestName = errors.New("enter a name to continue as guest")

func (m *Model) initAuthInputs() {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 30
	username.SetValue(m.sess.Username)

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 30
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	email := textinput.New()
	email.Placeholder = "optional, used when registering"
	email.CharLimit = 128
	email.Width = 30

	m.authInputs[fieldUsername] = username
	m.authInputs[fieldPassword] = password
	m.authInputs[fieldEmail] = email
}

func (m *Model) focusAuthField(idx int) tea.Cmd {
	m.blurAuthInputs()
	m.authFocus = idx
	return m.authInputs[idx].Focus()
}

func (m *Model) blurAuthInputs() {
	for i := range m.authInputs {
		m.authInputs[i].Blur()
	}
}

// handleAccountKey handles keys while the sign-in form is shown.
func (m Model) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.authInputs)
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.switchView(m.returnView)
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusAuthField((m.authFocus + 1) % n)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusAuthField((m.authFocus - 1 + n) % n)
	case key.Matches(msg, m.keys.Confirm):
		return m, m.submitAuth(authLogin)
	case key.Matches(msg, m.keys.Register):
		return m, m.submitAuth(authRegister)
	case key.Matches(msg, m.keys.Guest):
		return m, m.continueAsGuest()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *Model) credentials() recipes.Credentials {
	return recipes.Credentials{
		Username: strings.TrimSpace(m.authInputs[fieldUsername].Value()),
		Password: m.authInputs[fieldPassword].Value(),
		Email:    strings.TrimSpace(m.authInputs[fieldEmail].Value()),
	}
}

func (m *Model) submitAuth(action authAction) tea.Cmd {
	if m.authStatus.Loading || m.api == nil {
		return nil
	}
	creds := m.credentials()
	if creds.Username == "" || creds.Password == "" {
		m.authStatus.Finish(recipes.ErrMissingCredentials, time.Now())
		return nil
	}
	m.authStatus.Begin()
	return tea.Batch(authCmd(m.ctx, m.api, action, creds), m.spinner.Tick)
}

func (m Model) handleAuth(msg authMsg) (tea.Model, tea.Cmd) {
	m.authStatus.Finish(msg.err, time.Now())
	if msg.err != nil {
		log.Printf("sign-in failed: %v", msg.err)
		return m, nil
	}

	m.setSession(msg.sess)
	m.user = recipes.User{Username: msg.sess.Username}
	m.authInputs[fieldPassword].SetValue("")
	if msg.action == authRegister {
		m.notice = "Account created. Signed in as " + msg.sess.Username
	} else {
		m.notice = "Signed in as " + msg.sess.Username
	}
	m.switchView(m.returnView)
	return m, m.loadSaved()
}

// continueAsGuest keeps no token but remembers a name, so favorites are
// saved under it.
func (m *Model) continueAsGuest() tea.Cmd {
	name := strings.TrimSpace(m.authInputs[fieldUsername].Value())
	if name == "" {
		m.authStatus.Finish(errGuestName, time.Now())
		return nil
	}
	m.authStatus.Reset()
	m.setSession(session.Session{}.WithUsername(name))
	m.user = recipes.User{Username: name}
	m.notice = "Saving favorites as guest " + name
	m.switchView(m.returnView)
	return m.loadSaved()
}

// logout drops the local session first; the server call is best effort.
func (m *Model) logout() tea.Cmd {
	old := m.sess
	if !old.SignedIn() && old.Username == "" {
		return nil
	}
	m.setSession(session.Session{})
	m.user = recipes.User{}
	m.authStatus.Reset()
	m.authInputs[fieldUsername].SetValue("")
	m.notice = "Signed out"

	cmds := []tea.Cmd{m.loadSaved()}
	if old.SignedIn() && m.api != nil {
		cmds = append(cmds, logoutCmd(m.ctx, m.api, old))
	}
	return tea.Batch(cmds...)
}

// setSession replaces the session and persists it.
func (m *Model) setSession(s session.Session) {
	m.sess = s
	if m.sessionPath == "" {
		return
	}
	var err error
	if s.SignedIn() || s.Username != "" {
		err = session.Save(m.sessionPath, s)
	} else {
		err = session.Clear(m.sessionPath)
	}
	if err != nil {
		log.Printf("persist session: %v", err)
	}
}

// Bootstrap

func (m Model) handleBootHealth(msg bootHealthMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		if msg.err != nil {
			m.store.Update(nil, msg.err)
		} else {
			h := msg.health
			m.store.Update(&h, nil)
		}
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if msg.err != nil {
		log.Printf("health check failed: %v", msg.err)
	}

	if m.sess.SignedIn() {
		m.authStatus.Begin()
		cmds = append(cmds, meCmd(m.ctx, m.api, m.sess))
	} else {
		cmds = append(cmds, m.loadSaved())
	}
	return m, tea.Batch(cmds...)
}

// handleBootMe validates the stored token. A 401 means it expired or was
// revoked, so the session is dropped before the saved list loads.
func (m Model) handleBootMe(msg bootMeMsg) (tea.Model, tea.Cmd) {
	switch {
	case recipes.IsUnauthorized(msg.err):
		log.Printf("stored session rejected: %v", msg.err)
		m.setSession(session.Session{})
		m.user = recipes.User{}
		m.authStatus.Finish(fmt.Errorf("session expired, sign in again: %w", msg.err), time.Now())
	case msg.err != nil:
		log.Printf("session check failed: %v", msg.err)
		m.authStatus.Finish(msg.err, time.Now())
	default:
		m.authStatus.Finish(nil, time.Now())
		m.user = msg.user
		if m.sess.Username == "" && msg.user.Username != "" {
			m.setSession(m.sess.WithUsername(msg.user.Username))
		}
	}
	return m, m.loadSaved()
}

// ownerLabel names whose favorites are shown.
func (m Model) ownerLabel() string {
	return m.sess.Username
}

func (m Model) renderAccount() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Account"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	if m.sess.SignedIn() {
		b.WriteString(styles.MutedText.Render("Signed in as "))
		b.WriteString(styles.BadgeStyle("user").Render(m.sess.Username))
		b.WriteString("\n")
		if m.user.Email != "" {
			b.WriteString(styles.MutedText.Render("Email        " + m.user.Email))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.authStatus.Err != nil {
			b.WriteString(m.renderRegionError("Account", m.authStatus.Err))
			b.WriteString("\n\n")
		}
		b.WriteString(styles.FaintText.Render("L: Log out  •  Esc: Back"))
		return b.String()
	}

	if m.sess.Username != "" {
		b.WriteString(styles.MutedText.Render("Saving as guest "))
		b.WriteString(styles.BadgeStyle("guest").Render(m.sess.Username))
		b.WriteString("\n\n")
	}

	labels := [...]string{"Username: ", "Password: ", "Email:    "}
	for i, label := range labels {
		if i == m.authFocus {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(m.authInputs[i].View())
		b.WriteString("\n\n")
	}

	switch {
	case m.authStatus.Loading:
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " Signing in..."))
		b.WriteString("\n\n")
	case m.authStatus.Err != nil:
		b.WriteString(m.renderRegionError("Sign-in failed", m.authStatus.Err))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Log in  •  Ctrl+R: Register  •  Ctrl+G: Guest  •  Esc: Back"))
	return b.String()
}
