package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one external command in dir and waits for it.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes with an explicit argument
// list. The child inherits the current environment.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves name on PATH and runs it with args in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	return cmd.Run()
}

// SubprocessError reports a bootstrap step that could not be started or
// exited unsuccessfully.
type SubprocessError struct {
	Step string
	Args []string
	Err  error
}

func (e *SubprocessError) Error() string {
	if code := e.ExitCode(); code > 0 {
		return fmt.Sprintf("%s failed: %s exited with status %d", e.Step, strings.Join(e.Args, " "), code)
	}
	return fmt.Sprintf("%s failed: %s: %v", e.Step, strings.Join(e.Args, " "), e.Err)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// ExitCode returns the child's exit status, or -1 when it never ran to
// completion.
func (e *SubprocessError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
