package executor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_UnderLimit(t *testing.T) {
	c := newCollector(100)

	_, err := c.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, "hello", c.String())
	assert.False(t, c.Truncated())
}

func TestCollector_TruncatesAtLimit(t *testing.T) {
	c := newCollector(4)

	n, err := c.Write([]byte("abcdef"))
	require.NoError(t, err)
	// Write reports full consumption so io.Copy keeps draining the pipe.
	assert.Equal(t, 6, n)

	assert.Equal(t, "abcd", c.String())
	assert.True(t, c.Truncated())
}

func TestCollector_IgnoresWritesPastLimit(t *testing.T) {
	c := newCollector(3)

	_, _ = c.Write([]byte("abc"))
	n, err := c.Write([]byte("def"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "abc", c.String())
	assert.True(t, c.Truncated())
}

func TestCollector_ReplacesInvalidUTF8(t *testing.T) {
	c := newCollector(100)

	_, err := c.Write([]byte{'o', 'k', 0xff, 0xfe})
	require.NoError(t, err)

	assert.Equal(t, "ok�", c.String())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"one"}, SplitLines("one\n"))
	assert.Equal(t, []string{"one"}, SplitLines("one"))
	assert.Equal(t, []string{"one", "two"}, SplitLines("one\ntwo\n"))
	assert.Equal(t, []string{"one", "", "two"}, SplitLines("one\n\ntwo\n"))
}

func TestRun_CapturedStreams(t *testing.T) {
	r := NewRunner(1024 * 1024)

	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, t.TempDir(), Captured)
	require.NoError(t, err)

	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, 0, res.ExitCode)
	assert.False(t, res.Truncated)
}

func TestRun_CapturedNonZeroExitIsNotAnError(t *testing.T) {
	r := NewRunner(1024)

	res, err := r.Run(context.Background(), "sh", []string{"-c", "exit 3"}, t.TempDir(), Captured)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
}

func TestRun_CapturedRunsInCwd(t *testing.T) {
	dir := t.TempDir()
	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	r := NewRunner(1024)
	res, err := r.Run(context.Background(), "pwd", nil, dir, Captured)
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestRun_CapturedTruncatesLongOutput(t *testing.T) {
	r := NewRunner(4)

	res, err := r.Run(context.Background(), "sh", []string{"-c", "printf aaaaaaaaaa"}, t.TempDir(), Captured)
	require.NoError(t, err)

	assert.Equal(t, "aaaa", res.Stdout)
	assert.True(t, res.Truncated)
}

func TestRun_LaunchFailure(t *testing.T) {
	r := NewRunner(1024)

	_, err := r.Run(context.Background(), "definitely-not-a-command-xyz", nil, t.TempDir(), Captured)
	require.Error(t, err)

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "definitely-not-a-command-xyz", launchErr.Cmd)
	assert.Contains(t, err.Error(), "command not found")
}

func TestRun_InteractiveExitCode(t *testing.T) {
	r := NewRunner(1024)

	res, err := r.Run(context.Background(), "sh", []string{"-c", "exit 2"}, t.TempDir(), Interactive)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ExitCode)
	assert.Empty(t, res.Stdout)
}
