package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/builtin"
	"github.com/ksuda/taminal/internal/shell/prompt"
	"github.com/ksuda/taminal/internal/ui/models"
	"github.com/ksuda/taminal/internal/ui/views"
)

// lineProcessor is the shared dispatch entry point the UI drives.
type lineProcessor interface {
	ProcessLine(ctx context.Context, input string, sess *shell.Session) builtin.Result
}

// Model implements tea.Model for the windowed front end. Command execution
// happens synchronously inside Update: a long-running external command
// blocks the redraw loop until it exits, exactly like a frame callback.
type Model struct {
	state models.State

	sess      *shell.Session
	processor lineProcessor
	branch    prompt.BranchFinder
}

// NewModel creates the UI model and seeds the session's output buffer with
// the startup banner.
func NewModel(sess *shell.Session, processor lineProcessor, branch prompt.BranchFinder) Model {
	if sess == nil {
		panic("sess is required")
	}
	if processor == nil {
		panic("processor is required")
	}
	if branch == nil {
		branch = prompt.NoBranchFinder{}
	}

	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Focus()

	vp := viewport.New(80, 24)

	sess.AppendOutput(
		"=== Taminal ===",
		"Type 'help' for available commands",
		"",
	)

	m := Model{
		state: models.State{
			Input:    ti,
			Viewport: vp,
		},
		sess:      sess,
		processor: processor,
		branch:    branch,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status
		m.refresh()
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+l":
		m.sess.ClearOutput()
		m.sess.AppendOutput(builtin.ClearedBanner)
		m.refresh()
		return m, nil

	case "enter":
		m.submit()
		return m, nil

	case "up":
		if entry, ok := m.sess.HistoryPrev(); ok {
			m.state.Input.SetValue(entry)
			m.state.Input.CursorEnd()
		}
		return m, nil

	case "down":
		if entry, ok := m.sess.HistoryNext(); ok {
			m.state.Input.SetValue(entry)
			m.state.Input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// submit executes the typed command synchronously and appends its output.
func (m *Model) submit() {
	input := m.state.Input.Value()
	if strings.TrimSpace(input) == "" {
		return
	}

	// Echo the prompt and command the way a terminal transcript would.
	m.sess.AppendOutput(m.promptText() + input)

	res := m.processor.ProcessLine(context.Background(), input, m.sess)
	if res.Clear {
		m.sess.ClearOutput()
	}
	for _, l := range res.Lines {
		m.sess.AppendOutput(l.Text)
	}

	m.state.Input.SetValue("")
	m.refresh()
}

// refresh syncs the view state with the session.
func (m *Model) refresh() {
	m.state.CurrentDir = m.sess.CurrentDir()
	m.state.Prompt = m.promptText()
	m.state.LineCount = len(m.sess.Output())
	m.state.Viewport.SetContent(strings.Join(m.sess.Output(), "\n"))
	m.state.Viewport.GotoBottom()
}

func (m *Model) promptText() string {
	return prompt.Render(m.sess.CurrentDir(), m.branch)
}

// View renders the UI.
func (m Model) View() string {
	return views.RenderRoot(m.state)
}
