package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

// detailChrome is the rows the detail view uses above the viewport.
const detailChrome = 3

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(maxInt(1, m.width-2), maxInt(1, m.contentHeight()-detailChrome))
}

func (m *Model) resizeDetailViewport() {
	m.detailViewport.Width = maxInt(1, m.width-2)
	m.detailViewport.Height = maxInt(1, m.contentHeight()-detailChrome)
	m.updateDetailViewport()
}

// openDetail shows r immediately with what the list knows and fetches the
// full record.
func (m *Model) openDetail(r recipes.Recipe) tea.Cmd {
	m.detailSeq++
	m.detail = r
	m.detailStatus.Reset()
	m.searchInput.Blur()
	if m.currentView != ViewDetail {
		m.returnView = m.currentView
	}
	m.currentView = ViewDetail
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
	if m.api == nil {
		return nil
	}
	m.detailStatus.Begin()
	return tea.Batch(detailCmd(m.ctx, m.api, m.sess, m.detailSeq, r.ID), m.spinner.Tick)
}

// closeDetail leaves the detail view. A fetch still in flight is discarded.
func (m *Model) closeDetail() {
	m.detailSeq++
	m.detailStatus.Reset()
	m.currentView = m.returnView
}

func (m *Model) handleDetail(msg detailMsg) {
	if msg.seq != m.detailSeq {
		return
	}
	m.detailStatus.Finish(msg.err, time.Now())
	if msg.err != nil {
		log.Printf("load recipe %s failed: %v", m.detail.ID, msg.err)
		return
	}
	m.detail = msg.recipe
	m.updateDetailViewport()
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleSave):
		return m, m.toggleSave(m.detail)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.SetContent(m.detailBody(m.detailViewport.Width))
}

// detailBody renders the scrollable part of the detail view.
func (m Model) detailBody(width int) string {
	styles := m.theme.Styles()
	r := m.detail
	wrap := lipgloss.NewStyle().Width(maxInt(10, width-2))

	var b strings.Builder
	if s := strings.TrimSpace(r.Summary); s != "" {
		b.WriteString(wrap.Render(styles.Text.Render(s)))
		b.WriteString("\n\n")
	}

	section := func(title string) {
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")
	}

	section(fmt.Sprintf("Ingredients (%d)", len(r.Ingredients)))
	if len(r.Ingredients) == 0 {
		b.WriteString(styles.FaintText.Render("  none listed"))
		b.WriteString("\n")
	}
	for _, item := range r.Ingredients {
		b.WriteString(wrap.Render(styles.MutedText.Render("  • ") + styles.Text.Render(item)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	section(fmt.Sprintf("Instructions (%d)", len(r.Instructions)))
	if len(r.Instructions) == 0 {
		b.WriteString(styles.FaintText.Render("  none listed"))
		b.WriteString("\n")
	}
	for i, step := range r.Instructions {
		num := styles.MutedText.Render(fmt.Sprintf("  %d. ", i+1))
		b.WriteString(wrap.Render(num + styles.Text.Render(step)))
		b.WriteString("\n")
	}

	if r.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Image  ") + styles.MutedText.Render(truncateMiddle(r.ImageURL, width-9)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	r := m.detail

	var b strings.Builder
	title := styles.Text.Bold(true).Render(r.Title)
	switch {
	case m.busy[r.ID]:
		title += " " + styles.BadgeStyle("busy").Render(m.spinner.View()+" saving")
	case m.savedIDs[r.ID]:
		title += " " + styles.BadgeStyle("saved").Render("★ saved")
	}
	b.WriteString(title)
	b.WriteString("\n")

	switch {
	case m.detailStatus.Loading:
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " Loading recipe..."))
	case m.detailStatus.Err != nil:
		b.WriteString(m.renderRegionError("Could not load recipe", m.detailStatus.Err))
	case r.SourceURL != "":
		b.WriteString(styles.FaintText.Render("Source ") + styles.InfoText.Render(truncateMiddle(r.SourceURL, m.width-8)))
	}
	b.WriteString("\n")
	b.WriteString(m.renderToggleLine())
	b.WriteString("\n")

	b.WriteString(m.detailViewport.View())
	return b.String()
}
