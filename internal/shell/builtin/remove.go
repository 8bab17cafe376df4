package builtin

import (
	"context"
	"os"
	"strings"

	"github.com/ksuda/taminal/internal/shell"
)

// rm removes files, and directories when -r is given. Flags are parsed
// before anything is deleted; -f suppresses errors. Success is quiet.
func (d *Dispatcher) rm(_ context.Context, sess *shell.Session, args []string) Result {
	if len(args) == 0 {
		return d.missingOperand("rm")
	}

	opts, bad, ok := d.parseRemoveArgs(args)
	if !ok {
		// Strict mode: an unknown flag aborts the whole invocation before
		// any filesystem mutation.
		return Result{Lines: []Line{errLine("rm: invalid option -- '%c'", bad)}}
	}

	if len(opts.Targets) == 0 {
		return d.missingOperand("rm")
	}

	var lines []Line
	for _, t := range opts.Targets {
		target := d.target(t, sess)

		info, err := d.fs.Stat(target)
		if err != nil {
			if !opts.Force {
				if os.IsNotExist(err) {
					lines = append(lines, errLine("rm: cannot remove '%s': No such file or directory", t))
				} else {
					lines = append(lines, errLine("rm: cannot remove '%s': %s", t, osReason(err)))
				}
			}
			continue
		}

		if info.IsDir() {
			if !opts.Recursive {
				lines = append(lines, errLine("rm: cannot remove '%s': Is a directory", t))
				continue
			}
			if err := d.fs.RemoveAll(target); err != nil && !opts.Force {
				lines = append(lines, errLine("rm: cannot remove '%s': %s", t, osReason(err)))
			}
			continue
		}

		if err := d.fs.Remove(target); err != nil && !opts.Force {
			lines = append(lines, errLine("rm: cannot remove '%s': %s", t, osReason(err)))
		}
	}

	return Result{Lines: lines}
}

// parseRemoveArgs scans tokens beginning with '-' treating each following
// character as an independent flag. Returns ok=false (with the offending
// character) only in strict mode; otherwise unknown characters are ignored.
func (d *Dispatcher) parseRemoveArgs(args []string) (RemoveOptions, rune, bool) {
	var opts RemoveOptions
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			for _, ch := range arg[1:] {
				switch ch {
				case 'f':
					opts.Force = true
				case 'r', 'R':
					opts.Recursive = true
				default:
					if d.opts.StrictFlags {
						return RemoveOptions{}, ch, false
					}
				}
			}
			continue
		}
		opts.Targets = append(opts.Targets, arg)
	}
	return opts, 0, true
}
