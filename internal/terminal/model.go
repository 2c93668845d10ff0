// Package terminal is the full-screen terminal: a bubbletea model that routes
// keystrokes to the executor, completion and history recall, runs
// asynchronous commands as tea commands and reveals new output with the
// typewriter.
package terminal

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/completion"
	"termfolio/internal/history"
	"termfolio/internal/logger"
	"termfolio/internal/shell"
	"termfolio/internal/typewriter"
	"termfolio/pkg/termtypes"
)

// footerHeight is the number of lines below the viewport: the input line
// and the suggestion or loading line.
const footerHeight = 2

type identityMsg struct {
	info *termtypes.ClientInfo
	err  error
}

type directoryMsg struct {
	name  string
	files []string
	err   error
}

type resultMsg struct {
	result shell.Result
	// resetInput clears the input line on arrival. Registry commands keep
	// their input until they resolve.
	resetInput bool
}

// Model is the terminal's bubbletea model. It owns the session; every
// mutation happens in Update.
type Model struct {
	shell    *shell.Shell
	executor *shell.Executor
	ctx      context.Context
	cancel   context.CancelFunc

	input     textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	typer     *typewriter.Typewriter
	navigator *history.Navigator
	strip     completion.Strip

	// typing is the transcript index the typewriter is revealing, or -1.
	typing  int
	pending int
	ready   bool
	width   int
	height  int
}

// New creates a terminal over sh. Cancelling ctx abandons in-flight commands.
func New(ctx context.Context, sh *shell.Shell) *Model {
	ctx, cancel := context.WithCancel(ctx)

	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	return &Model{
		shell:     sh,
		executor:  sh.Executor,
		ctx:       ctx,
		cancel:    cancel,
		input:     input,
		viewport:  vp,
		spinner:   sp,
		typer:     typewriter.New(),
		navigator: history.New(),
		strip:     completion.EmptyStrip(),
		typing:    -1,
	}
}

// Init implements tea.Model. The client identity is resolved first; the
// content directories load once it arrives, whatever the outcome.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadIdentity())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case identityMsg:
		m.shell.ApplyIdentity(msg.info, msg.err)
		m.refresh()
		cmds := make([]tea.Cmd, 0, len(shell.ContentDirectories))
		for _, name := range shell.ContentDirectories {
			cmds = append(cmds, m.loadDirectory(name))
		}
		return m, tea.Batch(cmds...)

	case directoryMsg:
		m.shell.ApplyDirectory(msg.name, msg.files, msg.err)
		return m, nil

	case resultMsg:
		m.pending--
		before := m.transcriptLen()
		m.executor.Finish(msg.result)
		if msg.resetInput {
			m.input.Reset()
		}
		return m, m.reveal(before)

	case typewriter.TickMsg:
		cmd := m.typer.Update(msg)
		m.refresh()
		return m, cmd

	case typewriter.DoneMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.pending <= 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Interrupt):
		return m.interrupt()

	case key.Matches(msg, keys.Submit):
		return m.submit()

	case key.Matches(msg, keys.Complete):
		value, strip := m.executor.Complete(m.input.Value())
		m.setInput(value)
		m.strip = strip
		return nil

	case key.Matches(msg, keys.Up):
		value, strip := m.navigator.Up(m.strip, m.history(), m.input.Value())
		m.setInput(value)
		m.strip = strip
		return nil

	case key.Matches(msg, keys.Down):
		value, strip := m.navigator.Down(m.strip, m.history(), m.input.Value())
		m.setInput(value)
		m.strip = strip
		return nil

	case key.Matches(msg, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	m.strip = completion.EmptyStrip()
	m.navigator.Reset()
	if key.Matches(msg, keys.Skip) {
		if m.typer.Skip() {
			m.refresh()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// interrupt cancels an active contact form, or quits.
func (m *Model) interrupt() tea.Cmd {
	before := m.transcriptLen()
	if m.executor.CancelForm() {
		m.input.Reset()
		return m.reveal(before)
	}
	logger.Debug("Terminal quitting", "pending", m.pending)
	m.cancel()
	return tea.Quit
}

func (m *Model) submit() tea.Cmd {
	m.strip = completion.EmptyStrip()
	m.navigator.Reset()

	before := m.transcriptLen()
	job := m.executor.Begin(m.input.Value())
	if job.Ignored {
		return nil
	}

	var cmds []tea.Cmd
	if job.Async() {
		if job.ClearInput || job.Immediate != nil {
			m.input.Reset()
		}
		cmds = append(cmds, m.await(job))
	} else {
		m.input.Reset()
	}
	cmds = append(cmds, m.reveal(before))
	return tea.Batch(cmds...)
}

// await runs the asynchronous part of job off the event loop.
func (m *Model) await(job shell.Job) tea.Cmd {
	ctx := m.ctx
	resetInput := job.Immediate == nil && !job.ClearInput
	run := func() tea.Msg {
		return resultMsg{result: job.Await(ctx), resetInput: resetInput}
	}

	m.pending++
	if m.pending == 1 {
		return tea.Batch(run, m.spinner.Tick)
	}
	return run
}

// reveal starts typing the newest entry when the transcript grew past before.
func (m *Model) reveal(before int) tea.Cmd {
	entries := m.shell.Env.Session.Transcript().Entries()
	if len(entries) <= before {
		if m.typing >= len(entries) {
			m.typing = -1
			m.typer.Skip()
		}
		m.refresh()
		return nil
	}

	m.typing = len(entries) - 1
	_, done := m.typer.Start(entries[m.typing].Output, m.shell.EffectiveSpeed(), true)
	m.refresh()
	if done {
		return nil
	}
	return m.typer.Cmd()
}

func (m *Model) loadIdentity() tea.Cmd {
	sh, ctx := m.shell, m.ctx
	return func() tea.Msg {
		info, err := sh.LoadIdentity(ctx)
		return identityMsg{info: info, err: err}
	}
}

func (m *Model) loadDirectory(name string) tea.Cmd {
	sh, ctx := m.shell, m.ctx
	return func() tea.Msg {
		files, err := sh.LoadDirectory(ctx, name)
		return directoryMsg{name: name, files: files, err: err}
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-footerHeight)
	m.input.Width = max(1, width-lipgloss.Width(m.shell.Prompt())-1)
	m.ready = true
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m *Model) history() []string {
	return m.shell.Env.Session.History().Lines()
}

func (m *Model) transcriptLen() int {
	return m.shell.Env.Session.Transcript().Len()
}

// Input returns the current input line.
func (m *Model) Input() string {
	return m.input.Value()
}

// Strip returns the visible suggestion strip.
func (m *Model) Strip() completion.Strip {
	return m.strip
}

// Pending returns the number of commands still awaiting a result.
func (m *Model) Pending() int {
	return m.pending
}
