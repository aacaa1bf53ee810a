package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Destination is a prepared output directory.
type Destination struct {
	Path    string // Absolute path.
	Existed bool   // True when an existing directory is being reused.
}

// PrepareOptions controls how an existing destination is treated.
type PrepareOptions struct {
	// Force permits reuse of an existing directory.
	Force bool
	// Confirm, when set and Force is false, is asked whether an existing
	// directory may be reused.
	Confirm func(path string) (bool, error)
}

// ResolveDestination returns the absolute destination for a project. An
// explicit dir wins; otherwise the project is created in ./<name>.
func ResolveDestination(name, dir string) (string, error) {
	if dir == "" {
		dir = filepath.Join(".", name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving destination %s: %w", dir, err)
	}
	return abs, nil
}

// Prepare makes sure path can receive a new project and creates it, parents
// included, when it does not exist yet. A regular file at path is always a
// conflict; an existing directory is a conflict unless reuse is authorized.
// A refused directory is left untouched.
func Prepare(path string, opts PrepareOptions) (*Destination, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return nil, &ConflictError{Path: path, Reason: "a file with that name already exists"}
	case err == nil:
		if opts.Force {
			return &Destination{Path: path, Existed: true}, nil
		}
		if opts.Confirm != nil {
			ok, cErr := opts.Confirm(path)
			if cErr != nil {
				return nil, fmt.Errorf("confirming reuse of %s: %w", path, cErr)
			}
			if ok {
				return &Destination{Path: path, Existed: true}, nil
			}
			return nil, &ConflictError{Path: path, Reason: "directory already exists and reuse was declined"}
		}
		return nil, &ConflictError{Path: path, Reason: "directory already exists (use --force to reuse it)"}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("checking destination %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", path, err)
	}
	return &Destination{Path: path}, nil
}
