package scaffold

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/skel-labs/skel/internal/template"
)

func TestGenerateFullProject(t *testing.T) {
	b := embeddedBundle(t)
	outDir := t.TempDir()

	var progress bytes.Buffer
	result, err := Generate(&progress, b, Options{ProjectName: "myapp", Description: "A test app"}, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	for _, f := range []string{
		".env", "pyproject.toml", ".flake8", ".gitignore", "LICENSE",
		"src/manage.py", "src/app/settings.py",
		"package.json", ".eslintrc.cjs", "tsconfig.json",
		"webpack.base.config.ts", "webpack.dev.config.ts", "webpack.prod.config.ts",
		"assets/ts/index.ts", "deployment/nginx.conf",
	} {
		assertExists(t, outDir, f)
		assertListed(t, result, f)
	}

	// Only the two identity lines of pyproject.toml change.
	tmpl := readTemplate(t, b, "pyproject.toml")
	want := strings.Replace(tmpl, "name = \"app\"\n", "name = \"myapp\"\n", 1)
	want = strings.Replace(want, "description = \"\"\n", "description = \"A test app\"\n", 1)
	if got := readGenerated(t, outDir, "pyproject.toml"); got != want {
		t.Errorf("pyproject.toml mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	pkg := readGenerated(t, outDir, "package.json")
	assertContains(t, pkg, `"name": "myapp",`)
	assertNotContains(t, pkg, `"name": "app",`)

	// Verbatim copies stay byte-identical.
	for _, f := range []string{"LICENSE", "webpack.base.config.ts", "src/app/settings.py"} {
		if readGenerated(t, outDir, f) != readTemplate(t, b, f) {
			t.Errorf("%s differs from the template", f)
		}
	}

	for _, line := range []string{"Wrote .env.", "Wrote pyproject.toml.", "Copied base files.", "Wrote package.json.", "Copied frontend files."} {
		assertContains(t, progress.String(), line)
	}
}

func TestGenerateEnvFile(t *testing.T) {
	b := embeddedBundle(t)

	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		if _, err := Generate(nil, b, Options{ProjectName: "myapp", SkipFrontend: true}, dir); err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
	}

	a := readGenerated(t, first, ".env")
	assertContains(t, a, "DJANGO_SECRET_KEY=\"")
	assertContains(t, a, "\nDEBUG=true\n")
	if a == readGenerated(t, second, ".env") {
		t.Error("two runs produced the same secret")
	}
}

func TestGenerateSkipFrontend(t *testing.T) {
	b := embeddedBundle(t)
	outDir := t.TempDir()

	var progress bytes.Buffer
	result, err := Generate(&progress, b, Options{ProjectName: "myapp", SkipFrontend: true}, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, f := range []string{"package.json", ".eslintrc.cjs", "tsconfig.json",
		"webpack.base.config.ts", "webpack.dev.config.ts", "webpack.prod.config.ts", "assets", "deployment"} {
		if _, err := os.Stat(filepath.Join(outDir, f)); err == nil {
			t.Errorf("%s should not exist with SkipFrontend", f)
		}
	}
	for _, f := range result.Files {
		if strings.HasPrefix(f, "assets/") || strings.HasPrefix(f, "deployment/") {
			t.Errorf("frontend file %s listed in result", f)
		}
	}
	assertExists(t, outDir, "pyproject.toml")
	assertExists(t, outDir, "src/app/urls.py")
	assertNotContains(t, progress.String(), "frontend")
}

func TestGenerateExcludesCacheArtifacts(t *testing.T) {
	b := mapBundle(t, fstest.MapFS{
		"src/app/__init__.py":               {Data: []byte("")},
		"src/app/__pycache__/x.cpython.pyc": {Data: []byte("bytecode")},
		"src/app.egg-info/PKG-INFO":         {Data: []byte("Name: app")},
		"src/__pycache__":                   {Mode: fs.ModeDir},
	})
	outDir := t.TempDir()

	if _, err := Generate(nil, b, Options{ProjectName: "myapp"}, outDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertExists(t, outDir, "src/app/__init__.py")
	for _, f := range []string{"src/app/__pycache__", "src/app.egg-info", "src/__pycache__"} {
		if _, err := os.Stat(filepath.Join(outDir, f)); err == nil {
			t.Errorf("%s should have been excluded", f)
		}
	}
}

func TestGenerateWarnsWithoutProjectSection(t *testing.T) {
	b := mapBundle(t, fstest.MapFS{
		"pyproject.toml": {Data: []byte("[tool.black]\nline-length = 100\n")},
	})

	result, err := Generate(nil, b, Options{ProjectName: "myapp"}, t.TempDir())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning when [project] is missing")
	}
	assertContains(t, strings.Join(result.Warnings, "\n"), `name is "", expected "myapp"`)
}

func TestGenerateEscapesDescription(t *testing.T) {
	b := embeddedBundle(t)
	outDir := t.TempDir()

	desc := `Say "hi" \ bye`
	result, err := Generate(nil, b, Options{ProjectName: "myapp", Description: desc, SkipFrontend: true}, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("description should round-trip through TOML, got warnings: %v", result.Warnings)
	}
}

func TestGenerateOverlaysExistingDirectory(t *testing.T) {
	b := embeddedBundle(t)
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "pyproject.toml"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "notes.txt"), []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(nil, b, Options{ProjectName: "myapp"}, outDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	// A second pass over the same directory must succeed too.
	if _, err := Generate(nil, b, Options{ProjectName: "myapp"}, outDir); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}

	assertContains(t, readGenerated(t, outDir, "pyproject.toml"), "name = \"myapp\"")
	if readGenerated(t, outDir, "notes.txt") != "mine" {
		t.Error("unrelated file should be left alone")
	}
}

func TestGenerateMissingOutputDir(t *testing.T) {
	b := embeddedBundle(t)
	_, err := Generate(nil, b, Options{ProjectName: "myapp"}, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

const testManifest = `name: test
version: "1.0.0"
descriptors:
  project: pyproject.toml
base:
  directories:
    - path: src
      exclude: ["__pycache__", "*.egg-info"]
`

func embeddedBundle(t *testing.T) *template.Bundle {
	t.Helper()
	b, err := template.Embedded()
	if err != nil {
		t.Fatalf("loading embedded bundle: %v", err)
	}
	return b
}

// mapBundle builds a minimal backend-only bundle; files overrides defaults.
func mapBundle(t *testing.T, files fstest.MapFS) *template.Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		template.ManifestFile: {Data: []byte(testManifest)},
		"pyproject.toml":      {Data: []byte("[project]\nname = \"x\"\ndescription = \"\"\n")},
		"src/app/__init__.py": {Data: []byte("")},
	}
	for k, v := range files {
		fsys[k] = v
	}
	b, err := template.Load(fsys, "test")
	if err != nil {
		t.Fatalf("loading test bundle: %v", err)
	}
	return b
}

func readTemplate(t *testing.T, b *template.Bundle, name string) string {
	t.Helper()
	data, err := fs.ReadFile(b.FS, name)
	if err != nil {
		t.Fatalf("reading template %s: %v", name, err)
	}
	return string(data)
}

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(filename)))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertExists(t *testing.T, dir, name string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
		t.Errorf("%s should exist: %v", name, err)
	}
}

func assertListed(t *testing.T, result *Result, name string) {
	t.Helper()
	for _, f := range result.Files {
		if f == name {
			return
		}
	}
	t.Errorf("%s missing from result files %v", name, result.Files)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
