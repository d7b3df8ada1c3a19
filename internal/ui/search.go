package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchInputKey handles keys while the search field has focus.
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleView(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleView(-1)
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.queueSearch())
}

// queueSearch starts the debounce window for the current query. Every call
// supersedes the previous one, so only the last keystroke's search runs.
// A blank query clears the results without a request.
func (m *Model) queueSearch() tea.Cmd {
	m.searchSeq++
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.results = nil
		m.resultsCursor = 0
		m.lastQuery = ""
		m.searchStatus.Reset()
		return nil
	}
	return debounceCmd(m.debounce, m.searchSeq, query)
}

func (m Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq || m.api == nil {
		return m, nil
	}
	m.searchStatus.Begin()
	return m, tea.Batch(searchCmd(m.ctx, m.api, m.sess, msg.seq, msg.query), m.spinner.Tick)
}

// handleSearchResult applies a search response unless a newer search has
// been issued since. On error the previous results stay visible.
func (m *Model) handleSearchResult(msg searchResultMsg) {
	if msg.seq != m.searchSeq {
		return
	}
	m.searchStatus.Finish(msg.err, time.Now())
	if msg.err != nil {
		log.Printf("search %q failed: %v", msg.query, msg.err)
		return
	}
	m.results = msg.recipes
	m.resultsCursor = 0
	m.lastQuery = msg.query
}

func (m Model) renderSearch() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	switch {
	case m.searchStatus.Loading:
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " Searching..."))
	case m.searchStatus.Err != nil:
		b.WriteString(m.renderRegionError("Search failed", m.searchStatus.Err))
	case m.lastQuery != "":
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d result%s for %q", len(m.results), plural(len(m.results)), m.lastQuery)))
	default:
		b.WriteString(styles.FaintText.Render("Type to search. Press / to edit the query, esc to browse results."))
	}
	b.WriteString("\n")
	if line := m.renderToggleLine(); line != "" {
		b.WriteString(line)
	}
	b.WriteString("\n")

	empty := ""
	if m.lastQuery != "" && !m.searchStatus.Loading {
		empty = "No recipes found."
	}
	selected := m.resultsCursor
	if m.searchInput.Focused() {
		selected = -1
	}
	b.WriteString(m.renderCards(m.results, selected, m.contentHeight()-3, empty))
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
