package template

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the name of the manifest at the root of every bundle.
const ManifestFile = "template.yaml"

// Manifest describes a template bundle.
type Manifest struct {
	Name        string      `yaml:"name" json:"name"`
	Version     string      `yaml:"version" json:"version"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Descriptors Descriptors `yaml:"descriptors" json:"descriptors"`
	Base        Group       `yaml:"base" json:"base"`
	Frontend    Group       `yaml:"frontend,omitempty" json:"frontend,omitempty"`
}

// Descriptors names the two files whose identity lines are rewritten.
type Descriptors struct {
	Project string `yaml:"project" json:"project"`           // e.g., pyproject.toml
	Package string `yaml:"package,omitempty" json:"package"` // e.g., package.json (frontend only)
}

// Group is a set of directories and files copied together.
type Group struct {
	Directories []Directory `yaml:"directories,omitempty" json:"directories,omitempty"`
	Files       []string    `yaml:"files,omitempty" json:"files,omitempty"`
}

// Directory is a subtree copied recursively, minus entries whose base name
// matches one of the Exclude glob patterns.
type Directory struct {
	Path    string   `yaml:"path" json:"path"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// ParseManifest unmarshals manifest YAML and checks the fields the schema
// cannot express: a semver version and paths that stay inside the bundle.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	if _, err := semver.NewVersion(strings.TrimPrefix(m.Version, "v")); err != nil {
		return nil, fmt.Errorf("template version %q: %w", m.Version, err)
	}

	for _, p := range m.paths() {
		if !fs.ValidPath(p) || p == "." {
			return nil, fmt.Errorf("template path %q must be relative and stay inside the bundle", p)
		}
	}
	for _, d := range append(m.Base.Directories, m.Frontend.Directories...) {
		for _, pattern := range d.Exclude {
			if _, err := pathMatch(pattern, ""); err != nil {
				return nil, fmt.Errorf("exclude pattern %q for %s: %w", pattern, d.Path, err)
			}
		}
	}

	return &m, nil
}

// paths returns every path the manifest references.
func (m *Manifest) paths() []string {
	paths := []string{m.Descriptors.Project}
	if m.Descriptors.Package != "" {
		paths = append(paths, m.Descriptors.Package)
	}
	for _, g := range []Group{m.Base, m.Frontend} {
		for _, d := range g.Directories {
			paths = append(paths, d.Path)
		}
		paths = append(paths, g.Files...)
	}
	return paths
}
