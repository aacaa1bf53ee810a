package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/skel-labs/skel/internal/platform"
	"github.com/skel-labs/skel/internal/template"
)

// copyTree recursively copies root from fsys into dst/root, skipping entries
// whose base name matches one of the exclude patterns. It returns the copied
// file paths relative to dst, slash-separated.
func copyTree(fsys fs.FS, root, dst string, exclude []string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p != root && template.Excluded(d.Name(), exclude) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(p))
		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, platform.DirPermNormal); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case d.Type().IsRegular():
			if err := copyFile(fsys, p, target); err != nil {
				return err
			}
			copied = append(copied, p)
		}
		// Symlinks and other special files are skipped.
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying %s: %w", root, err)
	}
	return copied, nil
}

// copyFile copies a single file from fsys to dst, creating parent
// directories. Owner read/write is always granted so a later --force run
// can overwrite it; executable bits are kept.
func copyFile(fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("opening template file %s: %w", name, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat template file %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), platform.DirPermNormal); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	mode := platform.FilePermNormal | info.Mode().Perm()&0111
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// copyFiles copies individual files verbatim.
func copyFiles(fsys fs.FS, names []string, dst string) ([]string, error) {
	copied := make([]string, 0, len(names))
	for _, name := range names {
		if err := copyFile(fsys, name, filepath.Join(dst, filepath.FromSlash(name))); err != nil {
			return copied, err
		}
		copied = append(copied, path.Clean(name))
	}
	return copied, nil
}
