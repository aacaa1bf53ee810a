package bootstrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/skel-labs/skel/internal/platform"
)

// Step names, also used as SubprocessError.Step.
const (
	StepVenv = "create virtual environment"
	StepNPM  = "npm install"
	StepPip  = "pip install"
	StepGit  = "git init"
)

// Options configures a bootstrap run.
type Options struct {
	Dir          string // project root; every command runs here
	VenvDir      string // relative to Dir unless absolute
	Python       string
	NPM          string
	Git          string
	SkipFrontend bool
	SkipGit      bool
}

// Step is one command of a bootstrap run. Command[0] is the executable.
type Step struct {
	Name    string
	Command []string
}

func (s Step) String() string {
	return strings.Join(s.Command, " ")
}

// Plan returns the commands a run with opts executes, in order.
func Plan(opts Options) []Step {
	venv := opts.VenvDir
	if venv == "" {
		venv = ".venv"
	}
	venvAbs := venv
	if !filepath.IsAbs(venvAbs) {
		venvAbs = filepath.Join(opts.Dir, venv)
	}

	steps := []Step{
		{Name: StepVenv, Command: []string{orDefault(opts.Python, "python3"), "-m", "venv", venv}},
	}
	if !opts.SkipFrontend {
		steps = append(steps, Step{Name: StepNPM, Command: []string{orDefault(opts.NPM, "npm"), "install"}})
	}
	steps = append(steps, Step{Name: StepPip, Command: []string{platform.VenvPython(venvAbs), "-m", "pip", "install", "-e", ".[dev]"}})
	if !opts.SkipGit {
		steps = append(steps, Step{Name: StepGit, Command: []string{orDefault(opts.Git, "git"), "init"}})
	}
	return steps
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Bootstrapper runs a Plan through a Runner.
type Bootstrapper struct {
	Runner Runner
	Out    io.Writer // progress lines; nil discards
}

// Run executes every planned step and stops at the first failure, which is
// returned as a *SubprocessError.
func (b *Bootstrapper) Run(ctx context.Context, opts Options) error {
	out := b.Out
	if out == nil {
		out = io.Discard
	}
	runner := b.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}

	for _, step := range Plan(opts) {
		fmt.Fprintf(out, "Running %s...\n", step)
		if err := runner.Run(ctx, opts.Dir, step.Command[0], step.Command[1:]...); err != nil {
			return &SubprocessError{Step: step.Name, Args: step.Command, Err: err}
		}
	}
	return nil
}
