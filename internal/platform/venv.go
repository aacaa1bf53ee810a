package platform

import (
	"path/filepath"
	"runtime"
)

// VenvPython returns the interpreter path inside the virtual environment
// rooted at venvDir.
func VenvPython(venvDir string) string {
	return venvPython(runtime.GOOS, venvDir)
}

func venvPython(goos, venvDir string) string {
	if goos == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}
