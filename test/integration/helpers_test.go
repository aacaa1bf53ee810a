//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // SKEL_HOME
	BinDir  string // fake python3, npm and git, first on PATH
	LogFile string // one line per fake tool invocation
	WorkDir string // parent of generated projects
}

// fakePython creates a virtualenv layout whose interpreter is itself a
// logging fake, so the pip step can run.
const fakePython = `#!/bin/sh
echo "python3 $*" >> "$SKEL_TEST_LOG"
[ "$FAKE_FAIL" = "python3" ] && exit 1
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
	mkdir -p "$3/bin"
	cat > "$3/bin/python" <<'PY'
#!/bin/sh
echo "venv-python $*" >> "$SKEL_TEST_LOG"
[ "$FAKE_FAIL" = "pip" ] && exit 3
exit 0
PY
	chmod +x "$3/bin/python"
fi
exit 0
`

const fakeTool = `#!/bin/sh
echo "%NAME% $*" >> "$SKEL_TEST_LOG"
[ "$FAKE_FAIL" = "%NAME%" ] && exit 1
exit 0
`

// setupTestEnv creates isolated temp directories, installs the fake tools
// and points PATH and SKEL_HOME at them. The env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.HomeDir, "calls.log")

	writeExecutable(t, filepath.Join(env.BinDir, "python3"), fakePython)
	for _, name := range []string{"npm", "git"} {
		writeExecutable(t, filepath.Join(env.BinDir, name), strings.ReplaceAll(fakeTool, "%NAME%", name))
	}

	t.Setenv("SKEL_HOME", env.HomeDir)
	t.Setenv("SKEL_TEST_LOG", env.LogFile)
	t.Setenv("FAKE_FAIL", "")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// calls returns the logged tool invocations in order.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
