package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

const appName = "recipes"

// renderHeader renders the status bar: backend health, session and counts.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render(appName, styles.Logo),
		m.renderHealth(styles, bg, compact),
		m.renderSessionBadge(styles, bg),
	}

	parts = append(parts,
		bg.Render("Saved:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.saved)), styles.Text),
	)

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderHealth shows the backend state from the poller's snapshot.
func (m Model) renderHealth(styles Styles, bg BgStyle, compact bool) string {
	snap := m.snapshot
	switch {
	case snap.IsOffline():
		label := "● OFFLINE"
		if !compact && snap.LastError != nil {
			label += " " + truncate(recipes.Message(snap.LastError), 40)
		}
		return bg.Render(label, styles.DangerText)
	case snap.LastError != nil:
		return bg.Render("● DEGRADED", styles.WarningText) + bg.Space() +
			bg.Render("retrying", styles.FaintText)
	case snap.Online():
		label := "● ONLINE"
		if !compact && snap.Health.Message != "" {
			label += " " + truncate(snap.Health.Message, 30)
		}
		return bg.Render(label, styles.SuccessText)
	default:
		return bg.Render("Connecting...", styles.WarningText.Bold(true))
	}
}

func (m Model) renderSessionBadge(styles Styles, bg BgStyle) string {
	switch {
	case m.sess.SignedIn():
		return styles.BadgeStyle("user").Render(m.sess.Username)
	case m.sess.Username != "":
		return styles.BadgeStyle("guest").Render("guest " + m.sess.Username)
	default:
		return bg.Render("not signed in", styles.FaintText)
	}
}

// formatTimestamp formats the last health check time with relative indicator.
func (m Model) formatTimestamp() string {
	updated := m.snapshot.LastUpdated
	if updated.IsZero() {
		return ""
	}
	return updated.Format("15:04:05") + " (" + humanizeDuration(time.Since(updated)) + ")"
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	typing := m.currentView == ViewSearch && m.searchInput.Focused()
	bindings := m.keys.viewHelp(m.currentView, typing)

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
