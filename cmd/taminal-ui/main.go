// Package main provides the windowed front end: the same command dispatch
// behind a text-output pane with a single-line input field.
package main

import (
	"fmt"
	"os"

	"github.com/ksuda/taminal/internal/config"
	"github.com/ksuda/taminal/internal/fsutil"
	"github.com/ksuda/taminal/internal/shell"
	"github.com/ksuda/taminal/internal/shell/builtin"
	"github.com/ksuda/taminal/internal/shell/complete"
	"github.com/ksuda/taminal/internal/shell/executor"
	shellpath "github.com/ksuda/taminal/internal/shell/path"
	"github.com/ksuda/taminal/internal/shell/prompt"
	"github.com/ksuda/taminal/internal/ui"
	"github.com/ksuda/taminal/internal/ui/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	fs := fsutil.NewOSFileSystem()
	resolver := shellpath.NewResolver(fs)
	completer := complete.NewEngine(fs)
	runner := executor.NewRunner(cfg.Shell.MaxCommandOutputSize)

	startDir, err := fs.Getwd()
	if err != nil {
		startDir = "/"
	}
	sess := shell.NewSession(fs, shell.OwnedCanonicalized, startDir, cfg.UI.MaxOutputLines)

	opts := builtin.WidgetOptions()
	if renderer, err := service.NewGlamourRenderer(76); err == nil {
		opts.Help = ui.RenderHelp(renderer)
	}
	dispatcher := builtin.NewDispatcher(fs, resolver, completer, runner, cfg, opts)

	var branch prompt.BranchFinder = prompt.NoBranchFinder{}
	if cfg.Shell.PromptGitBranch {
		branch = prompt.GitBranchFinder{}
	}

	model := ui.NewModel(sess, dispatcher, branch)
	if err := ui.NewUI(model).Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}
}
