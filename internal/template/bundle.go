package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed all:bundle
var embedded embed.FS

// EmbeddedSource is the Bundle.Source of the built-in template.
const EmbeddedSource = "embedded"

// Bundle is a loaded, validated template.
type Bundle struct {
	FS       fs.FS
	Manifest *Manifest
	Source   string // EmbeddedSource or the directory the bundle was read from
}

// ManifestError reports a manifest that violates the template schema.
type ManifestError struct {
	Source string
	Issues []ValidationIssue
}

func (e *ManifestError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s in %s: %s", ManifestFile, e.Source, strings.Join(msgs, "; "))
}

// Open returns the bundle at dir, or the embedded bundle when dir is empty.
func Open(dir string) (*Bundle, error) {
	if dir == "" {
		return Embedded()
	}
	return FromDir(dir)
}

// Embedded returns the template bundle compiled into the binary.
func Embedded() (*Bundle, error) {
	sub, err := fs.Sub(embedded, "bundle")
	if err != nil {
		return nil, fmt.Errorf("opening embedded bundle: %w", err)
	}
	return Load(sub, EmbeddedSource)
}

// FromDir loads a bundle from a directory on disk.
func FromDir(dir string) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), dir)
}

// Load reads and validates the manifest of fsys and checks that every path it
// names exists with the right kind.
func Load(fsys fs.FS, source string) (*Bundle, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", ManifestFile, source, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s from %s: %w", ManifestFile, source, err)
	}
	if !result.Valid {
		return nil, &ManifestError{Source: source, Issues: result.Issues}
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	b := &Bundle{FS: fsys, Manifest: m, Source: source}
	if err := b.checkPaths(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) checkPaths() error {
	m := b.Manifest
	files := []string{m.Descriptors.Project}
	if m.Descriptors.Package != "" {
		files = append(files, m.Descriptors.Package)
	}
	var dirs []string
	for _, g := range []Group{m.Base, m.Frontend} {
		files = append(files, g.Files...)
		for _, d := range g.Directories {
			dirs = append(dirs, d.Path)
		}
	}

	for _, f := range files {
		info, err := fs.Stat(b.FS, f)
		if err != nil {
			return fmt.Errorf("template %s: %w", b.Source, err)
		}
		if info.IsDir() {
			return fmt.Errorf("template %s: %s is a directory, want a file", b.Source, f)
		}
	}
	for _, d := range dirs {
		info, err := fs.Stat(b.FS, d)
		if err != nil {
			return fmt.Errorf("template %s: %w", b.Source, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("template %s: %s is a file, want a directory", b.Source, d)
		}
	}
	return nil
}

// Excluded reports whether name matches any of the glob patterns.
func Excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := pathMatch(p, name); ok {
			return true
		}
	}
	return false
}

func pathMatch(pattern, name string) (bool, error) {
	return path.Match(pattern, name)
}
