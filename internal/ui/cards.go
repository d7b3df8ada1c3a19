package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

// cardHeight is the rows one card takes: title, summary, spacer.
const cardHeight = 3

// visibleCards is how many cards fit below the list headers.
func (m Model) visibleCards() int {
	return maxInt(1, (m.contentHeight()-3)/cardHeight)
}

// cardWindow returns the [start, end) slice of count cards to draw so the
// selected card stays visible within capacity.
func cardWindow(selected, count, capacity int) (int, int) {
	if capacity <= 0 || count <= capacity {
		return 0, count
	}
	start := 0
	if selected >= capacity {
		start = selected - capacity + 1
	}
	end := start + capacity
	if end > count {
		end = count
		start = end - capacity
	}
	return start, end
}

// renderCards draws list as cards. selected < 0 draws no selection.
func (m Model) renderCards(list []recipes.Recipe, selected, height int, empty string) string {
	styles := m.theme.Styles()
	if len(list) == 0 {
		if empty == "" {
			return ""
		}
		return styles.FaintText.Render(empty)
	}

	capacity := maxInt(1, height/cardHeight)
	start, end := cardWindow(selected, len(list), capacity)
	width := maxInt(20, m.width-4)

	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(list[i], i == selected, width))
	}
	if more := len(list) - end; more > 0 {
		cards = append(cards, styles.FaintText.Render(fmt.Sprintf("  +%d more", more)))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderCard(r recipes.Recipe, selected bool, width int) string {
	styles := m.theme.Styles()

	badge := ""
	switch {
	case m.busy[r.ID]:
		badge = styles.BadgeStyle("busy").Render(m.spinner.View() + " saving")
	case m.savedIDs[r.ID]:
		badge = styles.BadgeStyle("saved").Render("★ saved")
	}

	titleStyle := styles.Text.Bold(true)
	frame := styles.Card
	if selected {
		titleStyle = styles.Selected.Bold(true)
		frame = styles.SelectedCard
	}

	titleWidth := width - lipgloss.Width(badge) - 2
	title := titleStyle.Render(truncate(r.Title, titleWidth))
	if badge != "" {
		gap := maxInt(1, width-2-lipgloss.Width(title)-lipgloss.Width(badge))
		title += strings.Repeat(" ", gap) + badge
	}

	summary := singleLine(r.Summary)
	if summary == "" {
		summary = cardFacts(r)
	}
	line2 := styles.MutedText.Render(truncate(summary, width-2))

	return frame.Render(title+"\n"+line2) + "\n"
}

// cardFacts describes a recipe without a summary.
func cardFacts(r recipes.Recipe) string {
	var parts []string
	if n := len(r.Ingredients); n > 0 {
		parts = append(parts, fmt.Sprintf("%d ingredient%s", n, plural(n)))
	}
	if n := len(r.Instructions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d step%s", n, plural(n)))
	}
	if r.SourceURL != "" {
		parts = append(parts, truncateMiddle(r.SourceURL, 48))
	}
	if len(parts) == 0 {
		return "id " + r.ID
	}
	return strings.Join(parts, " · ")
}
