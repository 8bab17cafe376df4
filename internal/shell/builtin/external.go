package builtin

import (
	"context"

	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/executor"
)

// external runs an unrecognized command as a child process in the session's
// current directory.
func (d *Dispatcher) external(ctx context.Context, sess *shell.Session, command string, args []string) Result {
	res, err := d.runner.Run(ctx, command, args, sess.CurrentDir(), d.opts.ExecMode)
	if err != nil {
		return Result{Lines: []Line{errLine("%s", err.Error())}}
	}

	if d.opts.ExecMode == executor.Interactive {
		// A signal-terminated child has no exit code (reported as -1);
		// only a real non-zero code gets the status line.
		if res.ExitCode > 0 {
			return Result{Lines: []Line{errLine("Command exited with status: %d", res.ExitCode)}}
		}
		return Result{}
	}

	var lines []Line
	for _, l := range executor.SplitLines(res.Stdout) {
		lines = append(lines, line("%s", l))
	}
	for _, l := range executor.SplitLines(res.Stderr) {
		lines = append(lines, errLine("[ERROR] %s", l))
	}
	if res.Truncated {
		lines = append(lines, line("...[output truncated]"))
	}
	return Result{Lines: lines}
}
