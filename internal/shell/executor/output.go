package executor

import (
	"bytes"
	"strings"
)

// collector captures command output with a size limit.
type collector struct {
	buffer    bytes.Buffer
	maxBytes  int
	truncated bool
}

func newCollector(maxBytes int) *collector {
	return &collector{maxBytes: maxBytes}
}

func (c *collector) Write(p []byte) (n int, err error) {
	remainingSpace := c.maxBytes - c.buffer.Len()
	if remainingSpace <= 0 {
		c.truncated = true
		return len(p), nil
	}

	toWrite := p
	if len(toWrite) > remainingSpace {
		toWrite = toWrite[:remainingSpace]
		c.truncated = true
	}

	written, err := c.buffer.Write(toWrite)
	if err != nil {
		return written, err
	}

	return len(p), nil
}

// String returns the collected bytes decoded permissively: invalid UTF-8
// sequences are replaced, never fatal.
func (c *collector) String() string {
	return strings.ToValidUTF8(c.buffer.String(), "�")
}

func (c *collector) Truncated() bool {
	return c.truncated
}

// SplitLines splits captured output into display lines, dropping a single
// trailing newline so commands ending in "\n" don't produce a blank line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
