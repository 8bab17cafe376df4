package complete

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ksuda/taminal/internal/testing/mocks"
)

func newTestFS() *mocks.MockFileSystem {
	fs := mocks.NewMockFileSystem()
	fs.CreateDir("/work")
	fs.CreateDir("/work/src")
	fs.CreateDir("/work/docs")
	fs.CreateFile("/work/srv.txt", []byte("x"))
	fs.CreateFile("/work/readme.md", []byte("x"))
	fs.CreateFile("/work/docs/guide.md", []byte("x"))
	return fs
}

func TestComplete_BareNamePrefix(t *testing.T) {
	engine := NewEngine(newTestFS())

	candidates := engine.Complete("sr", "/work")
	assert.Equal(t, []string{"src/", "srv.txt"}, candidates)
}

func TestComplete_EmptyPartialListsEverything(t *testing.T) {
	engine := NewEngine(newTestFS())

	candidates := engine.Complete("", "/work")
	assert.Equal(t, []string{"docs/", "readme.md", "src/", "srv.txt"}, candidates)
}

func TestComplete_TrailingSeparatorKeepsTypedPrefix(t *testing.T) {
	engine := NewEngine(newTestFS())

	candidates := engine.Complete("docs/", "/work")
	assert.Equal(t, []string{"docs/guide.md"}, candidates)
}

func TestComplete_SubdirectoryPrefix(t *testing.T) {
	engine := NewEngine(newTestFS())

	candidates := engine.Complete("docs/gu", "/work")
	assert.Equal(t, []string{"docs/guide.md"}, candidates)
}

func TestComplete_AbsolutePartialIgnoresBase(t *testing.T) {
	engine := NewEngine(newTestFS())

	candidates := engine.Complete("/work/sr", "/elsewhere")
	assert.Equal(t, []string{"/work/src/", "/work/srv.txt"}, candidates)
}

func TestComplete_NoMatches(t *testing.T) {
	engine := NewEngine(newTestFS())

	assert.Empty(t, engine.Complete("zzz", "/work"))
}

func TestComplete_UnreadableDirectoryYieldsNothing(t *testing.T) {
	fs := newTestFS()
	fs.SetError("/work/docs", errors.New("permission denied"))
	engine := NewEngine(fs)

	assert.Empty(t, engine.Complete("docs/", "/work"))
}

func TestNewEngine_RequiresFileSystem(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil) })
}
