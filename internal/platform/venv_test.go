package platform

import (
	"path/filepath"
	"testing"
)

func TestVenvPython(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", filepath.Join("/p/.venv", "bin", "python")},
		{"darwin", filepath.Join("/p/.venv", "bin", "python")},
		{"windows", filepath.Join("/p/.venv", "Scripts", "python.exe")},
	}
	for _, tt := range tests {
		if got := venvPython(tt.goos, "/p/.venv"); got != tt.want {
			t.Errorf("venvPython(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}
