package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/logtail"
)

// logTailLimit is how many log lines the activity view keeps.
const logTailLimit = 400

type logTailMsg struct {
	entries []logtail.Entry
	err     error
}

func tailLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, logTailLimit)
		return logTailMsg{entries: entries, err: err}
	}
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(maxInt(1, m.width-2), maxInt(1, m.contentHeight()-2))
}

func (m *Model) resizeLogViewport() {
	m.logViewport.Width = maxInt(1, m.width-2)
	m.logViewport.Height = maxInt(1, m.contentHeight()-2)
	m.updateLogViewport()
}

// refreshLog rereads the log file. It is a no-op without a log path.
func (m *Model) refreshLog() tea.Cmd {
	if m.logPath == "" || m.logStatus.Loading {
		return nil
	}
	m.logStatus.Begin()
	return tailLogCmd(m.logPath)
}

func (m *Model) handleLogTail(msg logTailMsg) {
	m.logStatus.Finish(msg.err, time.Now())
	if msg.err != nil {
		return
	}
	follow := m.logViewport.AtBottom() || len(m.logEntries) == 0
	m.logEntries = msg.entries
	m.updateLogViewport()
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	m.logViewport.SetContent(m.logBody())
}

func (m Model) logBody() string {
	styles := m.theme.Styles()
	if len(m.logEntries) == 0 {
		return styles.FaintText.Render("No activity yet.")
	}

	lines := make([]string, 0, len(m.logEntries))
	for _, e := range m.logEntries {
		ts := "        "
		if !e.Time.IsZero() {
			ts = e.Time.Format("15:04:05")
		}
		msgStyle := styles.Text
		if e.Problem {
			msgStyle = styles.DangerText
		}
		lines = append(lines, styles.FaintText.Render(ts)+"  "+msgStyle.Render(e.Message))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLog() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Activity"))
	if m.logPath != "" {
		b.WriteString(styles.FaintText.Render("  " + truncateMiddle(m.logPath, m.width-12)))
	}
	b.WriteString("\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging is off. Start with -log <file> or set log_file in the config."))
		return b.String()
	case m.logStatus.Err != nil:
		b.WriteString(m.renderRegionError("Could not read log", m.logStatus.Err))
	default:
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d line%s", len(m.logEntries), plural(len(m.logEntries)))))
	}
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	return b.String()
}
