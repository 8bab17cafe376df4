package builtin

import (
	"context"

	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/executor"
)

// ClearedBanner re-seeds the widget's output buffer after a clear.
const ClearedBanner = "=== Terminal Cleared ==="

// Farewell is printed when the interactive loop terminates.
const Farewell = "さようなら!"

func (d *Dispatcher) clear(_ context.Context, _ *shell.Session, _ []string) Result {
	if d.opts.ExecMode == executor.Captured {
		return Result{Clear: true, Lines: []Line{line("%s", ClearedBanner)}}
	}
	return Result{Clear: true}
}

func (d *Dispatcher) help(_ context.Context, _ *shell.Session, _ []string) Result {
	return Result{Lines: d.opts.Help}
}

// exitShell terminates the interactive read loop. The widget has no loop a
// text command could terminate, so it points at the window instead.
func (d *Dispatcher) exitShell(_ context.Context, _ *shell.Session, _ []string) Result {
	if d.opts.ExecMode == executor.Interactive {
		return Result{Quit: true, Lines: []Line{line("%s", Farewell)}}
	}
	return Result{Lines: []Line{line("Use the window close button to exit")}}
}
