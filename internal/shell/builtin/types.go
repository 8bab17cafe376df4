package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/executor"
)

// Line is a single display line with its destination stream. Front ends
// route Err lines to standard error (CLI) or mark them in the output pane.
type Line struct {
	Text string
	Err  bool
}

// Result is the outcome of processing one input line.
type Result struct {
	Lines []Line
	// Quit asks the front end to terminate its read loop.
	Quit bool
	// Clear asks the front end to clear its display. The CLI writes the
	// screen-clear escape sequence; the widget resets its buffer first and
	// then appends Lines (the cleared banner).
	Clear bool
}

// Options selects the per-front-end behaviors of the dispatcher. The two
// front ends share one dispatch path; their historical divergences are
// explicit configuration here.
type Options struct {
	// Tracking selects the current-directory discipline (see shell package).
	Tracking shell.TrackingMode
	// ExecMode selects how external commands are wired (see executor package).
	ExecMode executor.Mode
	// StrictFlags rejects unrecognized rm flag characters, aborting the
	// whole invocation before any filesystem mutation. When unset, unknown
	// flags are silently ignored.
	StrictFlags bool
	// Confirm emits success confirmation lines for cd, mkdir and rmdir.
	Confirm bool
	// UsageHints appends "Try '<cmd> --help'" lines after missing-operand
	// errors.
	UsageHints bool
	// Help is the front end's help text, one display line per entry.
	Help []Line
}

// CLIOptions configures the dispatcher the way the terminal front end
// behaves: OS-managed directory, inherited stdio, strict rm flags.
func CLIOptions() Options {
	return Options{
		Tracking:    shell.OsManaged,
		ExecMode:    executor.Interactive,
		StrictFlags: true,
		UsageHints:  true,
		Help:        helpCLI(),
	}
}

// WidgetOptions configures the dispatcher the way the windowed front end
// behaves: owned canonicalized directory, captured output, confirmations.
func WidgetOptions() Options {
	return Options{
		Tracking: shell.OwnedCanonicalized,
		ExecMode: executor.Captured,
		Confirm:  true,
		Help:     helpWidget(),
	}
}

// RemoveOptions is the parsed flag set of an rm invocation.
type RemoveOptions struct {
	Force     bool
	Recursive bool
	Targets   []string
}

// fileSystem is the filesystem subset the built-ins need.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	Mkdir(path string) error
	Remove(path string) error
	RemoveAll(path string) error
}

// pathResolver resolves raw path arguments against the current directory.
type pathResolver interface {
	HomeDir() string
	Join(raw, base string) string
	Resolve(raw, base string) (string, error)
	Canonicalize(resolved string) (string, error)
}

// completionEngine lists candidates for a partial path.
type completionEngine interface {
	Complete(partial, base string) []string
}

// externalRunner spawns child processes for unrecognized commands.
type externalRunner interface {
	Run(ctx context.Context, command string, args []string, cwd string, mode executor.Mode) (*executor.Result, error)
}

func line(format string, a ...any) Line {
	return Line{Text: fmt.Sprintf(format, a...)}
}

func errLine(format string, a ...any) Line {
	return Line{Text: fmt.Sprintf(format, a...), Err: true}
}

// osReason extracts the bare reason text from an OS error, dropping the
// "stat <path>:" style prefix of wrapped path errors.
func osReason(err error) string {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err.Error()
	}
	if le, ok := err.(*os.LinkError); ok {
		return le.Err.Error()
	}
	return err.Error()
}
