package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

// loadSaved (re)fetches the saved list. Earlier in-flight loads are
// superseded.
func (m *Model) loadSaved() tea.Cmd {
	if m.api == nil {
		return nil
	}
	m.savedSeq++
	m.savedStatus.Begin()
	return tea.Batch(savedCmd(m.ctx, m.api, m.sess, m.savedSeq), m.spinner.Tick)
}

func (m *Model) handleSaved(msg savedMsg) {
	if msg.seq != m.savedSeq {
		return
	}
	m.savedStatus.Finish(msg.err, time.Now())
	if msg.err != nil {
		log.Printf("load saved recipes failed: %v", msg.err)
		return
	}
	m.saved = msg.recipes
	m.savedIDs = make(map[string]bool, len(msg.recipes))
	for _, r := range msg.recipes {
		m.savedIDs[r.ID] = true
	}
	m.savedCursor = clamp(m.savedCursor, len(m.saved))
}

// toggleSave saves r, or removes it when it is already saved. Requests for
// an id that is already mid save/unsave are ignored.
func (m *Model) toggleSave(r recipes.Recipe) tea.Cmd {
	if m.api == nil || strings.TrimSpace(r.ID) == "" || m.busy[r.ID] {
		return nil
	}
	if len(m.busy) == 0 {
		m.toggleErr = nil
	}
	m.busy[r.ID] = true
	m.toggleStatus.Begin()
	m.notice = ""
	save := !m.savedIDs[r.ID]
	return tea.Batch(mutateCmd(m.ctx, m.api, m.sess, r, save), m.spinner.Tick)
}

// handleMutationDone always reloads the saved list, whether or not the
// mutation succeeded. A reload failure lands in the saved region, the
// mutation failure in the toggle region. While mutations overlap, a later
// success does not clear an earlier failure.
func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	delete(m.busy, msg.id)
	if msg.err != nil {
		m.toggleErr = msg.err
	}
	if len(m.busy) == 0 {
		m.toggleStatus.Finish(m.toggleErr, time.Now())
	}

	verb := "save"
	if !msg.saved {
		verb = "remove"
	}
	if msg.err != nil {
		log.Printf("%s recipe %s failed: %v", verb, msg.id, msg.err)
	} else if msg.saved {
		m.notice = fmt.Sprintf("Saved %s", m.titleFor(msg.id))
	} else {
		m.notice = fmt.Sprintf("Removed %s", m.titleFor(msg.id))
	}
	return m, m.loadSaved()
}

// titleFor finds a display title for id among the loaded recipes.
func (m Model) titleFor(id string) string {
	for _, list := range [][]recipes.Recipe{m.results, m.saved, {m.detail}} {
		for _, r := range list {
			if r.ID == id && r.Title != "" {
				return fmt.Sprintf("%q", r.Title)
			}
		}
	}
	return "recipe " + id
}

// list returns the cards shown by a list view and its cursor.
func (m *Model) list(v View) ([]recipes.Recipe, *int) {
	if v == ViewSaved {
		return m.saved, &m.savedCursor
	}
	return m.results, &m.resultsCursor
}

// selectedRecipe returns the recipe under the cursor of the current view.
func (m Model) selectedRecipe() (recipes.Recipe, bool) {
	if m.currentView == ViewDetail {
		return m.detail, m.detail.ID != ""
	}
	items, cursor := m.list(m.currentView)
	if len(items) == 0 {
		return recipes.Recipe{}, false
	}
	return items[clamp(*cursor, len(items))], true
}

// handleListKey processes keys for the search results and saved views.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items, cursor := m.list(m.currentView)
	count := len(items)
	half := maxInt(1, m.visibleCards()/2)

	switch {
	case key.Matches(msg, m.keys.Down):
		if *cursor < count-1 {
			*cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, m.keys.Top):
		*cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		*cursor = clamp(count-1, count)
	case key.Matches(msg, m.keys.HalfPageDown):
		*cursor = clamp(*cursor+half, count)
	case key.Matches(msg, m.keys.HalfPageUp):
		*cursor = clamp(*cursor-half, count)
	case key.Matches(msg, m.keys.Confirm):
		if r, ok := m.selectedRecipe(); ok {
			return m, m.openDetail(r)
		}
	case key.Matches(msg, m.keys.ToggleSave):
		if r, ok := m.selectedRecipe(); ok {
			return m, m.toggleSave(r)
		}
	}
	return m, nil
}

func (m Model) renderSaved() string {
	styles := m.theme.Styles()

	var b strings.Builder
	title := "Saved recipes"
	if who := m.ownerLabel(); who != "" {
		title += " for " + who
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")

	switch {
	case m.savedStatus.Loading:
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " Loading saved recipes..."))
	case m.savedStatus.Err != nil:
		b.WriteString(m.renderRegionError("Could not load saved recipes", m.savedStatus.Err))
	case !m.savedStatus.LastUpdated.IsZero():
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d saved · updated %s", len(m.saved), m.savedStatus.LastUpdated.Format("15:04:05"))))
	}
	b.WriteString("\n")
	if line := m.renderToggleLine(); line != "" {
		b.WriteString(line)
	}
	b.WriteString("\n")

	empty := ""
	if !m.savedStatus.Loading && m.savedStatus.Err == nil {
		empty = "Nothing saved yet. Press s on a search result to save it."
	}
	b.WriteString(m.renderCards(m.saved, m.savedCursor, m.contentHeight()-3, empty))
	return b.String()
}

// renderToggleLine shows the latest save/unsave outcome.
func (m Model) renderToggleLine() string {
	styles := m.theme.Styles()
	switch {
	case len(m.busy) > 0:
		return styles.WarningText.Render(fmt.Sprintf("%s Updating %d recipe%s...", m.spinner.View(), len(m.busy), plural(len(m.busy))))
	case m.toggleStatus.Err != nil:
		return m.renderRegionError("Save failed", m.toggleStatus.Err)
	case m.notice != "":
		return styles.SuccessText.Render(m.notice)
	}
	return ""
}

// renderRegionError renders one region's error slot.
func (m Model) renderRegionError(label string, err error) string {
	styles := m.theme.Styles()
	width := m.width - len(label) - 4
	return styles.DangerText.Render(label+": ") + styles.DangerText.UnsetBold().Render(truncate(recipes.Message(err), width))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
