package builtin

import (
	"context"
	"os"

	"github.com/ksuda/taminal/internal/shell"
)

// mkdir creates each named directory in argument order. One failing entry
// does not stop the rest.
func (d *Dispatcher) mkdir(_ context.Context, sess *shell.Session, args []string) Result {
	if len(args) == 0 {
		return d.missingOperand("mkdir")
	}

	var lines []Line
	for _, dir := range args {
		target := d.target(dir, sess)

		if _, err := d.fs.Stat(target); err == nil {
			lines = append(lines, errLine("mkdir: cannot create directory '%s': File exists", dir))
			continue
		}

		if err := d.fs.Mkdir(target); err != nil {
			lines = append(lines, errLine("mkdir: cannot create directory '%s': %s", dir, osReason(err)))
			continue
		}

		if d.opts.Confirm {
			lines = append(lines, line("Created directory: %s", dir))
		}
	}

	return Result{Lines: lines}
}

// rmdir removes each named directory only if it is empty. Missing,
// non-directory and non-empty targets each get a distinct message;
// processing continues across entries.
func (d *Dispatcher) rmdir(_ context.Context, sess *shell.Session, args []string) Result {
	if len(args) == 0 {
		return d.missingOperand("rmdir")
	}

	var lines []Line
	for _, dir := range args {
		target := d.target(dir, sess)

		info, err := d.fs.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				lines = append(lines, errLine("rmdir: failed to remove '%s': No such file or directory", dir))
			} else {
				lines = append(lines, errLine("rmdir: failed to remove '%s': %s", dir, osReason(err)))
			}
			continue
		}
		if !info.IsDir() {
			lines = append(lines, errLine("rmdir: failed to remove '%s': Not a directory", dir))
			continue
		}

		if err := d.fs.Remove(target); err != nil {
			lines = append(lines, errLine("rmdir: failed to remove '%s': %s", dir, d.rmdirReason(target, err)))
			continue
		}

		if d.opts.Confirm {
			lines = append(lines, line("Removed directory: %s", dir))
		}
	}

	return Result{Lines: lines}
}

// rmdirReason enhances the removal error for the common non-empty case.
// The OS error category does not reliably distinguish "not empty" on every
// platform, so this re-lists the directory: best effort, raw error text as
// the fallback.
func (d *Dispatcher) rmdirReason(target string, err error) string {
	entries, listErr := d.fs.ListDir(target)
	if listErr == nil && len(entries) > 0 {
		return "Directory not empty"
	}
	return osReason(err)
}

func (d *Dispatcher) missingOperand(cmd string) Result {
	lines := []Line{errLine("%s: missing operand", cmd)}
	if d.opts.UsageHints {
		lines = append(lines, errLine("Try '%s --help' for more information.", cmd))
	}
	return Result{Lines: lines}
}
