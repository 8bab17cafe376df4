// Package builtin maps tokenized command lines onto the shell's built-in
// file and directory operations, delegating everything else to the external
// command runner.
package builtin

import (
	"context"

	"github.com/ksuda/taminal/internal/config"
	"github.com/ksuda/taminal/internal/shell"
)

// handler executes one built-in for an already-tokenized invocation.
type handler func(ctx context.Context, sess *shell.Session, args []string) Result

// Dispatcher routes input lines to built-ins or the external runner.
type Dispatcher struct {
	fs        fileSystem
	resolver  pathResolver
	completer completionEngine
	runner    externalRunner
	opts      Options
	lsOpts    config.LsOptions

	table map[string]handler
}

// NewDispatcher creates a dispatcher with injected dependencies.
func NewDispatcher(
	fs fileSystem,
	resolver pathResolver,
	completer completionEngine,
	runner externalRunner,
	cfg *config.Config,
	opts Options,
) *Dispatcher {
	if fs == nil {
		panic("fs is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	if completer == nil {
		panic("completer is required")
	}
	if runner == nil {
		panic("runner is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}

	lsOpts, err := cfg.LsOptions()
	if err != nil {
		// Load-time validation rejects bad option maps; fall back anyway.
		lsOpts = config.DefaultLsOptions()
	}

	d := &Dispatcher{
		fs:        fs,
		resolver:  resolver,
		completer: completer,
		runner:    runner,
		opts:      opts,
		lsOpts:    lsOpts,
	}

	d.table = map[string]handler{
		"cd":    d.cd,
		"pwd":   d.pwd,
		"ls":    d.ls,
		"mkdir": d.mkdir,
		"rmdir": d.rmdir,
		"rm":    d.rm,
		"clear": d.clear,
		"help":  d.help,
		"exit":  d.exitShell,
		"quit":  d.exitShell,
	}

	return d
}

// ProcessLine tokenizes one input line, records it in the session history,
// and dispatches it. Command names match built-ins exactly and
// case-sensitively; anything else is run as an external command.
func (d *Dispatcher) ProcessLine(ctx context.Context, input string, sess *shell.Session) Result {
	cmd, ok := shell.Tokenize(input)
	if !ok {
		return Result{}
	}

	sess.AppendHistory(input)

	if h, found := d.table[cmd.Name]; found {
		return h(ctx, sess, cmd.Args)
	}
	return d.external(ctx, sess, cmd.Name, cmd.Args)
}

// target maps a raw path argument onto the session's current directory.
// In OS-managed mode raw paths pass through untouched; the process working
// directory gives them meaning.
func (d *Dispatcher) target(raw string, sess *shell.Session) string {
	if d.opts.Tracking == shell.OsManaged {
		return raw
	}
	return d.resolver.Join(raw, sess.CurrentDir())
}
