package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skel-labs/skel/internal/bootstrap"
	"github.com/spf13/viper"
)

// execute runs the command tree with args and returns stdout and stderr.
// Each test gets its own config home; flags start from their defaults.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	if os.Getenv("SKEL_HOME") == "" {
		t.Setenv("SKEL_HOME", t.TempDir())
	}
	viper.Reset()
	newOpts = newOptions{}
	noColor, verbose = false, false
	versionShort, versionJSON = false, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(normalizeArgs(args))
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// recordingRunner captures commands; the one whose base name equals failOn
// returns an error.
type recordingRunner struct {
	calls  [][]string
	failOn string
}

func (r *recordingRunner) Run(_ context.Context, _ string, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.failOn != "" && filepath.Base(name) == r.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func (r *recordingRunner) commands() []string {
	var out []string
	for _, c := range r.calls {
		out = append(out, filepath.Base(c[0])+" "+strings.Join(c[1:], " "))
	}
	return out
}

func useRunner(t *testing.T, r bootstrap.Runner) {
	t.Helper()
	orig := newRunner
	newRunner = func(io.Writer, io.Writer) bootstrap.Runner { return r }
	t.Cleanup(func() { newRunner = orig })
}

func useConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	asked := new(int)
	orig := confirmReuse
	confirmReuse = func(string) (bool, error) {
		*asked++
		return answer, nil
	}
	t.Cleanup(func() { confirmReuse = orig })
	return asked
}
