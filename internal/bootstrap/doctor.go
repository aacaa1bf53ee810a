package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Tool is an external program the bootstrap depends on.
type Tool struct {
	Name       string   // display name
	Binary     string   // executable looked up on PATH
	VersionArg []string // arguments that print the version
	Constraint string   // semver constraint the reported version must satisfy
	Optional   bool     // only needed for some runs
}

// Tools returns the programs a bootstrap with opts would invoke.
func Tools(opts Options) []Tool {
	return []Tool{
		{Name: "python", Binary: orDefault(opts.Python, "python3"), VersionArg: []string{"--version"}, Constraint: ">= 3.9"},
		{Name: "npm", Binary: orDefault(opts.NPM, "npm"), VersionArg: []string{"--version"}, Constraint: ">= 8", Optional: true},
		{Name: "git", Binary: orDefault(opts.Git, "git"), VersionArg: []string{"--version"}, Constraint: ">= 2.28", Optional: true},
	}
}

// Doctor checks that tools are installed and recent enough.
type Doctor struct {
	// LookPath and Output can be replaced for testing.
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, bin string, args ...string) (string, error)
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Check prints one line per tool and reports whether every required tool
// passed. A missing optional tool is a warning.
func (d *Doctor) Check(ctx context.Context, w io.Writer, tools []Tool) bool {
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	output := d.Output
	if output == nil {
		output = commandOutput
	}

	fmt.Fprintln(w, "Tool check:")
	ok := true
	for _, t := range tools {
		bin, err := lookPath(t.Binary)
		if err != nil {
			if t.Optional {
				fmt.Fprintf(w, "  [WARN] %s (%s) not found on PATH\n", t.Name, t.Binary)
			} else {
				fmt.Fprintf(w, "  [MISS] %s (%s) not found on PATH\n", t.Name, t.Binary)
				ok = false
			}
			continue
		}

		out, err := output(ctx, bin, t.VersionArg...)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s at %s: could not read version: %v\n", t.Name, bin, err)
			continue
		}
		v, err := ParseToolVersion(out)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] %s at %s: %v\n", t.Name, bin, err)
			continue
		}

		c, err := semver.NewConstraint(t.Constraint)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: bad constraint %q: %v\n", t.Name, t.Constraint, err)
			ok = false
			continue
		}
		if !c.Check(v) {
			fmt.Fprintf(w, "  [WARN] %s %s at %s (want %s)\n", t.Name, v, bin, t.Constraint)
			if !t.Optional {
				ok = false
			}
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s %s at %s\n", t.Name, v, bin)
	}
	return ok
}

// ParseToolVersion extracts the first dotted version number from a
// `--version` banner such as "Python 3.12.1" or "git version 2.43.0".
func ParseToolVersion(banner string) (*semver.Version, error) {
	m := versionPattern.FindString(banner)
	if m == "" {
		return nil, fmt.Errorf("no version number in %q", banner)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", m, err)
	}
	return v, nil
}

func commandOutput(ctx context.Context, bin string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	return string(out), err
}
