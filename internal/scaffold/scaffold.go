package scaffold

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/skel-labs/skel/internal/rewrite"
	"github.com/skel-labs/skel/internal/secret"
	"github.com/skel-labs/skel/internal/template"
)

// Options holds the identity of the generated project.
type Options struct {
	ProjectName  string
	Description  string
	SkipFrontend bool
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // Written paths relative to OutputDir, slash-separated.
	Warnings  []string
}

// Generate writes a new project into outputDir, which must already exist.
// Progress lines go to w. Existing files in outputDir are overwritten; there
// is no rollback when a step fails.
func Generate(w io.Writer, b *template.Bundle, opts Options, outputDir string) (*Result, error) {
	if w == nil {
		w = io.Discard
	}
	m := b.Manifest
	result := &Result{OutputDir: outputDir}

	key, err := secret.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating secret key: %w", err)
	}
	if _, err := secret.WriteEnvFile(outputDir, key); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, secret.EnvFileName)
	fmt.Fprintf(w, "Wrote %s.\n", secret.EnvFileName)

	project := m.Descriptors.Project
	if err := rewriteDescriptor(b, project, outputDir, rewrite.PyProject(opts.ProjectName, opts.Description)); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, project)
	result.Warnings = append(result.Warnings,
		verifyProjectDescriptor(filepath.Join(outputDir, project), opts.ProjectName, opts.Description)...)
	fmt.Fprintf(w, "Wrote %s.\n", project)

	if err := copyGroup(w, b, m.Base, outputDir, result); err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "Copied base files.")

	if opts.SkipFrontend {
		return result, nil
	}

	if err := copyGroup(w, b, template.Group{Directories: m.Frontend.Directories}, outputDir, result); err != nil {
		return nil, err
	}
	if pkg := m.Descriptors.Package; pkg != "" {
		if err := rewriteDescriptor(b, pkg, outputDir, rewrite.PackageJSON(opts.ProjectName)); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, pkg)
		result.Warnings = append(result.Warnings,
			verifyPackageDescriptor(filepath.Join(outputDir, pkg), opts.ProjectName)...)
		fmt.Fprintf(w, "Wrote %s.\n", pkg)
	}
	if err := copyGroup(w, b, template.Group{Files: m.Frontend.Files}, outputDir, result); err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "Copied frontend files.")

	return result, nil
}

// copyGroup copies a group's directories, then its files.
func copyGroup(w io.Writer, b *template.Bundle, g template.Group, outputDir string, result *Result) error {
	for _, d := range g.Directories {
		copied, err := copyTree(b.FS, d.Path, outputDir, d.Exclude)
		if err != nil {
			return err
		}
		result.Files = append(result.Files, copied...)
		fmt.Fprintf(w, "Copied %s/ (%d files).\n", d.Path, len(copied))
	}
	copied, err := copyFiles(b.FS, g.Files, outputDir)
	if err != nil {
		return err
	}
	result.Files = append(result.Files, copied...)
	return nil
}

// rewriteDescriptor streams name from the bundle through rw into outputDir.
func rewriteDescriptor(b *template.Bundle, name, outputDir string, rw *rewrite.Rewriter) error {
	in, err := b.FS.Open(name)
	if err != nil {
		return fmt.Errorf("opening template file %s: %w", name, err)
	}
	defer in.Close()

	dst := filepath.Join(outputDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", dst, err)
	}

	if _, err := rw.Rewrite(in, out); err != nil {
		out.Close()
		return fmt.Errorf("rewriting %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// verifyProjectDescriptor parses the written pyproject.toml and reports
// where its [project] identity differs from what was requested.
func verifyProjectDescriptor(path, name, description string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("could not re-read %s: %v", filepath.Base(path), err)}
	}

	var doc struct {
		Project struct {
			Name        string `toml:"name"`
			Description string `toml:"description"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("%s is not valid TOML: %v", filepath.Base(path), err)}
	}

	var warnings []string
	if doc.Project.Name != name {
		warnings = append(warnings, fmt.Sprintf("%s: [%s] name is %q, expected %q",
			filepath.Base(path), rewrite.ProjectSection, doc.Project.Name, name))
	}
	if doc.Project.Description != description {
		warnings = append(warnings, fmt.Sprintf("%s: [%s] description is %q, expected %q",
			filepath.Base(path), rewrite.ProjectSection, doc.Project.Description, description))
	}
	return warnings
}

// verifyPackageDescriptor parses the written package.json and reports a
// name that differs from the requested one.
func verifyPackageDescriptor(path, name string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("could not re-read %s: %v", filepath.Base(path), err)}
	}

	var doc struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("%s is not valid JSON: %v", filepath.Base(path), err)}
	}
	if doc.Name != name {
		return []string{fmt.Sprintf("%s: name is %q, expected %q", filepath.Base(path), doc.Name, name)}
	}
	return nil
}
