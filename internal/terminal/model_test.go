package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
	"termfolio/internal/services"
	"termfolio/internal/shell"
	"termfolio/internal/testutils"
	"termfolio/internal/typewriter"
)

func newTestModel(t *testing.T) (*Model, *testutils.FakeContentAPI) {
	t.Helper()
	services.ConfigureColor(false)

	v := viper.New()
	config.SetDefaults(v)
	v.Set("terminal.speed", "instant")
	cfg, err := config.Decode(v)
	require.NoError(t, err)

	api := testutils.NewFakeContentAPI()
	sh, err := shell.Bootstrap(cfg, shell.Options{TestMode: true, API: api, Clipboard: &testutils.FakeClipboard{}})
	require.NoError(t, err)

	m := New(context.Background(), sh)
	t.Cleanup(m.cancel)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, api
}

// drain runs cmd and feeds the terminal's own messages back into m until no
// work is left. Timer driven messages are dropped.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(2 * time.Second):
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, m, c)
		}
	case identityMsg, directoryMsg, resultMsg:
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func screen(m *Model) string {
	return ansi.Strip(m.View())
}

// hasLine reports whether the screen shows want as a whole line.
func hasLine(m *Model, want string) bool {
	for _, line := range strings.Split(screen(m), "\n") {
		if strings.TrimRight(line, " ") == want {
			return true
		}
	}
	return false
}

func TestInitResolvesIdentityThenDirectories(t *testing.T) {
	m, api := newTestModel(t)
	api.Client.Username = "alice"

	drain(t, m, m.Init())

	assert.Equal(t, "alice@portfolio.test:~$ ", m.shell.Prompt())
	entries, ok := m.shell.Env.FS.ListPath("/home/alice/blog")
	require.True(t, ok)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, api.Calls("ClientInfo"))
	assert.Equal(t, 2, api.Calls("DirectoryContents"))
	assert.Contains(t, screen(m), "Current location: /home/alice")
}

func TestInitLoadsDirectoriesWhenIdentityFails(t *testing.T) {
	m, api := newTestModel(t)
	api.Fail = true

	drain(t, m, m.Init())

	assert.Equal(t, "visitor@portfolio:~$ ", m.shell.Prompt())
	assert.Equal(t, 2, api.Calls("DirectoryContents"))
}

func TestSubmitSyncCommand(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "echo hello terminal")
	assert.Equal(t, "echo hello terminal", m.Input())
	drain(t, m, press(m, tea.KeyEnter))

	assert.Empty(t, m.Input())
	assert.Equal(t, 0, m.Pending())
	assert.True(t, hasLine(m, "visitor@portfolio:~$ echo hello terminal"))
	assert.True(t, hasLine(m, "hello terminal"))
}

func TestSubmitBlankInputIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "   ")
	assert.Nil(t, press(m, tea.KeyEnter))
	assert.Equal(t, "   ", m.Input())
	assert.Empty(t, m.shell.Env.Session.Transcript().Entries())
}

func TestAsyncCommandKeepsInputUntilResolved(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "blog")
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, "blog", m.Input())
	assert.Equal(t, 1, m.Pending())
	assert.Empty(t, m.shell.Env.Session.Transcript().Entries())
	assert.Contains(t, screen(m), "Loading...")

	drain(t, m, cmd)

	assert.Empty(t, m.Input())
	assert.Equal(t, 0, m.Pending())
	assert.Contains(t, screen(m), "BLOG POSTS (2)")
	assert.NotContains(t, screen(m), "Loading...")
}

func TestExecutableClearsInputImmediately(t *testing.T) {
	m, _ := newTestModel(t)
	drain(t, m, m.Init())

	typeText(m, "cd blog")
	drain(t, m, press(m, tea.KeyEnter))
	assert.Equal(t, "visitor@portfolio.test:~/blog$ ", m.shell.Prompt())

	typeText(m, "./hello-world")
	cmd := press(m, tea.KeyEnter)
	assert.Empty(t, m.Input())
	assert.Equal(t, 1, m.Pending())

	drain(t, m, cmd)
	assert.Contains(t, screen(m), "First post.")
}

func TestOverlappingResultsAppendInArrivalOrder(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "blog")
	first := press(m, tea.KeyEnter)
	m.input.Reset()
	typeText(m, "portfolio")
	second := press(m, tea.KeyEnter)
	assert.Equal(t, 2, m.Pending())

	drain(t, m, second)
	drain(t, m, first)

	entries := m.shell.Env.Session.Transcript().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "portfolio", entries[0].Command)
	assert.Equal(t, "blog", entries[1].Command)
}

func TestClearEmptiesTranscript(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "echo remember me")
	drain(t, m, press(m, tea.KeyEnter))
	typeText(m, "clear")
	drain(t, m, press(m, tea.KeyEnter))

	assert.NotContains(t, screen(m), "remember me")
	assert.Contains(t, screen(m), "Terminal Portfolio")
	assert.Equal(t, []string{"echo remember me"}, m.history())
}

func TestTabCompletion(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "ec")
	press(m, tea.KeyTab)
	assert.Equal(t, "echo ", m.Input())
	assert.False(t, m.Strip().Visible())

	m.input.Reset()
	typeText(m, "c")
	press(m, tea.KeyTab)
	strip := m.Strip()
	require.True(t, strip.Visible())
	assert.Equal(t, 0, strip.Selected)
	assert.Contains(t, strip.Candidates, "cat")
	assert.Equal(t, "c", m.Input())
	assert.Contains(t, screen(m), "cat")

	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.Strip().Selected)
	press(m, tea.KeyUp)
	press(m, tea.KeyUp)
	assert.Equal(t, 0, m.Strip().Selected)
	assert.Equal(t, "c", m.Input())

	typeText(m, "a")
	assert.False(t, m.Strip().Visible())
	assert.Equal(t, "ca", m.Input())
}

func TestHistoryRecall(t *testing.T) {
	m, _ := newTestModel(t)

	for _, line := range []string{"pwd", "whoami"} {
		typeText(m, line)
		drain(t, m, press(m, tea.KeyEnter))
	}

	press(m, tea.KeyUp)
	assert.Equal(t, "whoami", m.Input())
	press(m, tea.KeyUp)
	press(m, tea.KeyUp)
	assert.Equal(t, "pwd", m.Input())
	press(m, tea.KeyDown)
	assert.Equal(t, "whoami", m.Input())
	press(m, tea.KeyDown)
	assert.Empty(t, m.Input())
}

func TestInterrupt(t *testing.T) {
	m, _ := newTestModel(t)

	typeText(m, "mail")
	drain(t, m, press(m, tea.KeyEnter))
	require.True(t, m.executor.FormActive())

	typeText(m, "Ada")
	cmd := press(m, tea.KeyCtrlC)
	assert.Nil(t, cmd)
	assert.False(t, m.executor.FormActive())
	assert.Empty(t, m.Input())
	assert.Contains(t, screen(m), "Contact form cancelled.")

	cmd = press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.ctx.Err())
}

func TestContactFormSubmission(t *testing.T) {
	m, api := newTestModel(t)

	var last tea.Cmd
	for _, line := range []string{"mail", "Ada", "ada@example.com", "Hello there"} {
		typeText(m, line)
		last = press(m, tea.KeyEnter)
		assert.Empty(t, m.Input())
	}
	assert.Equal(t, 1, m.Pending())
	drain(t, m, last)

	require.Len(t, api.Contacts(), 1)
	assert.Contains(t, screen(m), "MESSAGE SENT SUCCESSFULLY")
	assert.Equal(t, []string{"mail"}, m.history())
}

func TestTypewriterRevealsNewestEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m.shell.Speed = typewriter.SpeedSlow

	typeText(m, "echo typed")
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.typer.Typing())
	assert.Empty(t, m.typer.Visible())

	m.Update(typewriter.TickMsg{Gen: m.typer.Generation()})
	assert.Equal(t, "t", m.typer.Visible())

	press(m, tea.KeyEsc)
	assert.False(t, m.typer.Typing())
	assert.True(t, hasLine(m, "typed"))
}

func TestTurboSkipsAnimation(t *testing.T) {
	m, _ := newTestModel(t)
	m.shell.Speed = typewriter.SpeedSlow
	m.shell.Env.Session.Settings().SetTurbo(true)

	typeText(m, "echo fast")
	press(m, tea.KeyEnter)
	assert.False(t, m.typer.Typing())
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.ready = false
	assert.Equal(t, "Initializing...", m.View())
}
