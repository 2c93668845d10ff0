package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"termfolio/internal/services"
)

// minWrapWidth keeps output readable before the first window size arrives.
const minWrapWidth = 20

var plainTheme = &services.Theme{Name: "plain"}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	theme := m.theme()

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(theme.Prompt.Render(m.shell.Prompt()))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) footer() string {
	theme := m.theme()
	if m.strip.Visible() {
		parts := make([]string, len(m.strip.Candidates))
		for i, candidate := range m.strip.Candidates {
			if i == m.strip.Selected {
				parts[i] = theme.Highlight.Render(candidate)
			} else {
				parts[i] = theme.Muted.Render(candidate)
			}
		}
		return "  " + strings.Join(parts, "  ")
	}
	if m.pending > 0 {
		return m.spinner.View() + " " + theme.Muted.Render("Loading...")
	}
	return ""
}

// refresh re-renders the transcript into the viewport, following the
// bottom when it was already there.
func (m *Model) refresh() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.render())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// render draws the banner and every transcript entry. Entries are shown
// under the current prompt; the entry being typed shows its revealed part.
func (m *Model) render() string {
	theme := m.theme()
	width := max(m.viewport.Width, minWrapWidth)
	prompt := m.shell.Prompt()

	var b strings.Builder
	b.WriteString(theme.Text.Render(ansi.Hardwrap(m.shell.Welcome(), width, true)))
	b.WriteString("\n\n")

	for i, entry := range m.shell.Env.Session.Transcript().Entries() {
		if entry.Command != "" {
			b.WriteString(theme.Prompt.Render(ansi.Hardwrap(prompt+entry.Command, width, true)))
			b.WriteString("\n")
		}
		text := entry.Output
		if i == m.typing && m.typer.Typing() {
			text = m.typer.Visible()
		}
		if text != "" {
			b.WriteString(theme.Output(entry.Kind).Render(ansi.Hardwrap(text, width, true)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) theme() *services.Theme {
	if theme := m.shell.Themes.Current(); theme != nil {
		return theme
	}
	return plainTheme
}
