// Package executor spawns child processes for commands the shell does not
// implement itself.
package executor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
)

// Mode selects how a child process's standard streams are wired.
type Mode int

const (
	// Interactive inherits the shell's real standard streams; output goes
	// straight to the controlling terminal.
	Interactive Mode = iota
	// Captured buffers the child's standard output and error until it
	// exits; nothing is streamed live.
	Captured
)

// Result represents the outcome of a command execution.
// Stdout and Stderr are populated only in Captured mode.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Runner executes external commands using os/exec.
type Runner struct {
	maxOutputBytes int64
}

// NewRunner creates a Runner. maxOutputBytes bounds captured output per
// stream.
func NewRunner(maxOutputBytes int64) *Runner {
	return &Runner{maxOutputBytes: maxOutputBytes}
}

// Run executes command with args in cwd and blocks until it exits.
// A *LaunchError is returned when the command cannot be located or started;
// a non-zero exit is not an error, it is reported via Result.ExitCode.
func (r *Runner) Run(ctx context.Context, command string, args []string, cwd string, mode Mode) (*Result, error) {
	if mode == Captured {
		return r.runCaptured(ctx, command, args, cwd)
	}
	return r.runInteractive(ctx, command, args, cwd)
}

func (r *Runner) runInteractive(ctx context.Context, command string, args []string, cwd string) (*Result, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = cwd
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Cmd: command, Cause: err}
	}

	err := cmd.Wait()
	return &Result{ExitCode: r.exitCode(err)}, nil
}

func (r *Runner) runCaptured(ctx context.Context, command string, args []string, cwd string) (*Result, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = cwd
	cmd.Stdin = nil

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Cmd: command, Cause: err}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Cmd: command, Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Cmd: command, Cause: err}
	}

	stdout, stderr, truncated := r.collectOutput(stdoutPipe, stderrPipe)

	err = cmd.Wait()
	return &Result{
		Stdout:    stdout,
		Stderr:    stderr,
		ExitCode:  r.exitCode(err),
		Truncated: truncated,
	}, nil
}

func (r *Runner) collectOutput(stdout, stderr io.Reader) (string, string, bool) {
	stdoutCollector := newCollector(int(r.maxOutputBytes))
	stderrCollector := newCollector(int(r.maxOutputBytes))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdoutCollector, stdout)
	}()

	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderrCollector, stderr)
	}()

	wg.Wait()

	truncated := stdoutCollector.Truncated() || stderrCollector.Truncated()
	return stdoutCollector.String(), stderrCollector.String(), truncated
}

func (r *Runner) exitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
