package builtin

import (
	"context"
	"strings"

	"github.com/ksuda/taminal/internal/shell"
)

// cd changes the current directory, with a simulated tab-completion path:
// an argument ending in a literal tab character triggers completion instead
// of (or before) the directory change.
func (d *Dispatcher) cd(_ context.Context, sess *shell.Session, args []string) Result {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	if strings.HasSuffix(arg, "\t") {
		partial := strings.TrimRight(arg, "\t")
		candidates := d.completer.Complete(partial, sess.CurrentDir())
		switch len(candidates) {
		case 0:
			return Result{}
		case 1:
			// Exactly one match: complete and change directory.
			arg = candidates[0]
		default:
			lines := []Line{line("Possible completions:")}
			for _, c := range candidates {
				lines = append(lines, line("  %s", c))
			}
			return Result{Lines: lines}
		}
	}

	if d.opts.Tracking == shell.OsManaged {
		return d.cdOsManaged(sess, arg)
	}
	return d.cdOwned(sess, arg)
}

// cdOsManaged hands the path straight to the OS chdir call and reports only
// its error; no resolution or canonicalization of our own.
func (d *Dispatcher) cdOsManaged(sess *shell.Session, arg string) Result {
	dir := arg
	if dir == "" {
		dir = d.resolver.HomeDir()
	}
	if err := sess.SetDir(dir); err != nil {
		return Result{Lines: []Line{errLine("cd: %s: %s", dir, osReason(err))}}
	}
	return Result{}
}

// cdOwned resolves and canonicalizes before updating the owned field.
func (d *Dispatcher) cdOwned(sess *shell.Session, arg string) Result {
	resolved, err := d.resolver.Resolve(arg, sess.CurrentDir())
	if err != nil {
		return Result{Lines: []Line{errLine("cd: %v", err)}}
	}

	canonical, err := d.resolver.Canonicalize(resolved)
	if err != nil {
		return Result{Lines: []Line{errLine("cd: %v", err)}}
	}

	if err := sess.SetDir(canonical); err != nil {
		return Result{Lines: []Line{errLine("cd: %s: %s", arg, osReason(err))}}
	}

	if d.opts.Confirm {
		return Result{Lines: []Line{line("Changed to: %s", canonical)}}
	}
	return Result{}
}
