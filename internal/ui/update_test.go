package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/builtin"
	"github.com/ksuda/taminal/internal/testing/mocks"
)

type fakeProcessor struct {
	inputs []string
	res    builtin.Result
}

func (f *fakeProcessor) ProcessLine(_ context.Context, input string, sess *shell.Session) builtin.Result {
	f.inputs = append(f.inputs, input)
	sess.AppendHistory(input)
	return f.res
}

func newTestModel(res builtin.Result) (Model, *shell.Session, *fakeProcessor) {
	fs := mocks.NewMockFileSystem()
	fs.CreateDir("/work")
	sess := shell.NewSession(fs, shell.OwnedCanonicalized, "/work", 100)
	proc := &fakeProcessor{res: res}
	return NewModel(sess, proc, nil), sess, proc
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestNewModel_SeedsBanner(t *testing.T) {
	_, sess, _ := newTestModel(builtin.Result{})

	out := sess.Output()
	require.Len(t, out, 3)
	assert.Equal(t, "=== Taminal ===", out[0])
	assert.Equal(t, "Type 'help' for available commands", out[1])
}

func TestNewModel_RequiresDependencies(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	sess := shell.NewSession(fs, shell.OwnedCanonicalized, "/", 100)

	assert.Panics(t, func() { NewModel(nil, &fakeProcessor{}, nil) })
	assert.Panics(t, func() { NewModel(sess, nil, nil) })
}

func TestUpdate_EnterSubmitsInput(t *testing.T) {
	m, sess, proc := newTestModel(builtin.Result{Lines: []builtin.Line{{Text: "/work"}}})
	m.state.Input.SetValue("pwd")

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, []string{"pwd"}, proc.inputs)
	assert.Equal(t, "", m.state.Input.Value())

	out := sess.Output()
	require.Len(t, out, 5)
	// The submitted line is echoed with its prompt, then the output follows.
	assert.Equal(t, "work> pwd", out[3])
	assert.Equal(t, "/work", out[4])
}

func TestUpdate_EnterIgnoresBlankInput(t *testing.T) {
	m, _, proc := newTestModel(builtin.Result{})
	m.state.Input.SetValue("   ")

	_, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, proc.inputs)
}

func TestUpdate_ClearResultResetsBuffer(t *testing.T) {
	m, sess, _ := newTestModel(builtin.Result{
		Clear: true,
		Lines: []builtin.Line{{Text: builtin.ClearedBanner}},
	})
	m.state.Input.SetValue("clear")

	_, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{builtin.ClearedBanner}, sess.Output())
}

func TestUpdate_HistoryNavigation(t *testing.T) {
	m, sess, _ := newTestModel(builtin.Result{})
	sess.AppendHistory("ls")
	sess.AppendHistory("pwd")

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.state.Input.Value())

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ls", m.state.Input.Value())

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "pwd", m.state.Input.Value())

	// Past the newest entry the input comes back blank.
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.state.Input.Value())
}

func TestUpdate_CtrlLClearsOutput(t *testing.T) {
	m, sess, _ := newTestModel(builtin.Result{})

	_, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, []string{builtin.ClearedBanner}, sess.Output())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(builtin.Result{})

	_, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSizeResizesViewport(t *testing.T) {
	m, _, _ := newTestModel(builtin.Result{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, 120, next.state.Width)
	assert.Equal(t, 40, next.state.Height)
	assert.Equal(t, 120, next.state.Viewport.Width)
	assert.Equal(t, 34, next.state.Viewport.Height)
}

func TestUpdate_TypingReachesTheInput(t *testing.T) {
	m, _, _ := newTestModel(builtin.Result{})

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, "ls", m.state.Input.Value())
}
