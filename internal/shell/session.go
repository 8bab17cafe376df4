// Package shell holds the state shared by every command invocation within
// one run: the current directory, the command history, and the output buffer.
package shell

// TrackingMode selects how a session keeps track of its current directory.
type TrackingMode int

const (
	// OsManaged delegates directory tracking to the operating system:
	// changing directory calls the OS chdir, and the current directory is
	// always the process's actual working directory.
	OsManaged TrackingMode = iota
	// OwnedCanonicalized keeps the current directory as an owned field,
	// canonicalized (symlinks and dot segments resolved) on every change.
	// The process working directory is never touched.
	OwnedCanonicalized
)

// directoryFS is the filesystem subset a session needs for OS-managed
// directory tracking.
type directoryFS interface {
	Getwd() (string, error)
	Chdir(path string) error
}

// Session is the only mutable state shared across command invocations.
// It is not safe for concurrent use; each front end drives exactly one
// session from a single logical thread of control.
type Session struct {
	fs   directoryFS
	mode TrackingMode

	// currentDir is authoritative only in OwnedCanonicalized mode.
	currentDir string

	history       []string
	historyCursor int

	output    []string
	maxOutput int
}

// NewSession creates a session rooted at startDir.
// maxOutput bounds the output buffer; older lines are dropped past it.
func NewSession(fs directoryFS, mode TrackingMode, startDir string, maxOutput int) *Session {
	if fs == nil {
		panic("fs is required")
	}
	return &Session{
		fs:         fs,
		mode:       mode,
		currentDir: startDir,
		maxOutput:  maxOutput,
	}
}

// Mode returns the directory tracking mode.
func (s *Session) Mode() TrackingMode {
	return s.mode
}

// WorkingDir returns the session's current directory. In OsManaged mode this
// is the process working directory as reported by the OS, with its lookup
// error when it cannot be determined.
func (s *Session) WorkingDir() (string, error) {
	if s.mode == OsManaged {
		return s.fs.Getwd()
	}
	return s.currentDir, nil
}

// CurrentDir is the error-swallowing variant of WorkingDir, for callers
// where a "?" placeholder is acceptable (prompt rendering, path joining).
func (s *Session) CurrentDir() string {
	wd, err := s.WorkingDir()
	if err != nil {
		return "?"
	}
	return wd
}

// SetDir changes the current directory. In OsManaged mode it calls the OS
// chdir and reports its error verbatim; in OwnedCanonicalized mode it only
// updates the owned field (the caller canonicalizes first).
func (s *Session) SetDir(dir string) error {
	if s.mode == OsManaged {
		return s.fs.Chdir(dir)
	}
	s.currentDir = dir
	return nil
}

// AppendHistory records an entered line and resets history navigation to the
// most recent position.
func (s *Session) AppendHistory(line string) {
	s.history = append(s.history, line)
	s.historyCursor = len(s.history)
}

// History returns the recorded lines, oldest first.
func (s *Session) History() []string {
	return s.history
}

// HistoryPrev moves the cursor one entry back and returns that entry.
// At the oldest entry it stays put and keeps returning it. Returns false
// when the history is empty.
func (s *Session) HistoryPrev() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	if s.historyCursor > 0 {
		s.historyCursor--
	}
	return s.history[s.historyCursor], true
}

// HistoryNext moves the cursor one entry forward. Past the newest entry it
// returns an empty line, meaning "back to a fresh input".
func (s *Session) HistoryNext() (string, bool) {
	if s.historyCursor >= len(s.history) {
		return "", false
	}
	s.historyCursor++
	if s.historyCursor == len(s.history) {
		return "", true
	}
	return s.history[s.historyCursor], true
}

// AppendOutput appends display lines, dropping the oldest past the cap.
func (s *Session) AppendOutput(lines ...string) {
	s.output = append(s.output, lines...)
	if s.maxOutput > 0 && len(s.output) > s.maxOutput {
		s.output = s.output[len(s.output)-s.maxOutput:]
	}
}

// Output returns the buffered display lines, oldest first.
func (s *Session) Output() []string {
	return s.output
}

// ClearOutput discards all buffered output.
func (s *Session) ClearOutput() {
	s.output = nil
}
