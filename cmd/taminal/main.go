// Package main provides the terminal front end: a blocking read-evaluate
// loop over standard input, with built-in file operations and external
// command execution.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ksuda/taminal/internal/config"
	"github.com/ksuda/taminal/internal/fsutil"
	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/builtin"
	"github.com/ksuda/taminal/internal/shell/complete"
	"github.com/ksuda/taminal/internal/shell/executor"
	shellpath "github.com/ksuda/taminal/internal/shell/path"
	"github.com/ksuda/taminal/internal/shell/prompt"
)

// clearSequence clears the terminal and homes the cursor.
const clearSequence = "\x1B[2J\x1B[1;1H"

// Dependencies holds the components required to run the read loop.
type Dependencies struct {
	Config     *config.Config
	Session    *shell.Session
	Dispatcher *builtin.Dispatcher
	Branch     prompt.BranchFinder
}

func buildDependencies(cfg *config.Config) *Dependencies {
	fs := fsutil.NewOSFileSystem()
	resolver := shellpath.NewResolver(fs)
	completer := complete.NewEngine(fs)
	runner := executor.NewRunner(cfg.Shell.MaxCommandOutputSize)

	// OS-managed tracking: the session's directory is always the process
	// working directory, so no start directory or output cap is kept here.
	sess := shell.NewSession(fs, shell.OsManaged, "", 0)
	dispatcher := builtin.NewDispatcher(fs, resolver, completer, runner, cfg, builtin.CLIOptions())

	var branch prompt.BranchFinder = prompt.NoBranchFinder{}
	if cfg.Shell.PromptGitBranch {
		branch = prompt.GitBranchFinder{}
	}

	return &Dependencies{
		Config:     cfg,
		Session:    sess,
		Dispatcher: dispatcher,
		Branch:     branch,
	}
}

// run drives the read-evaluate loop until exit/quit or end of input.
// Errors from individual commands are reported and never abort the loop.
func run(ctx context.Context, deps *Dependencies, in io.Reader, out, errw io.Writer) error {
	fmt.Fprintln(out, "Simple Terminal - Type 'exit' or 'quit' to exit")
	fmt.Fprintln(out, "Tip: Type 'help' to see available commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt.Render(deps.Session.CurrentDir(), deps.Branch))

		if !scanner.Scan() {
			// End of input is an exit signal of its own.
			fmt.Fprintln(out)
			fmt.Fprintln(out, builtin.Farewell)
			return scanner.Err()
		}

		// The raw line goes to the dispatcher untrimmed; a trailing tab is
		// the completion trigger and must survive.
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res := deps.Dispatcher.ProcessLine(ctx, line, deps.Session)
		if res.Clear {
			fmt.Fprint(out, clearSequence)
		}
		for _, l := range res.Lines {
			if l.Err {
				fmt.Fprintln(errw, l.Text)
			} else {
				fmt.Fprintln(out, l.Text)
			}
		}
		if res.Quit {
			return nil
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := buildDependencies(cfg)
	if err := run(context.Background(), deps, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}
}
