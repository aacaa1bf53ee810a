package secret

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skel-labs/skel/internal/platform"
)

// Generated .env contents.
const (
	EnvFileName  = ".env"
	SecretKeyVar = "DJANGO_SECRET_KEY"
	DebugLine    = "DEBUG=true"
)

// EnvFileContent renders the .env body for key.
func EnvFileContent(key string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s=\"%s\"\n", SecretKeyVar, key)
	sb.WriteString(DebugLine + "\n")
	return sb.String()
}

// WriteEnvFile writes the .env file into dir and restricts it to the owner.
// An existing .env is overwritten. It returns the file path.
func WriteEnvFile(dir, key string) (string, error) {
	path := filepath.Join(dir, EnvFileName)
	if err := os.WriteFile(path, []byte(EnvFileContent(key)), platform.FilePermSecure); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	// WriteFile keeps the mode of a file that already existed.
	if err := platform.Chmod(path, platform.FilePermSecure); err != nil {
		return "", fmt.Errorf("restricting permissions on %s: %w", path, err)
	}
	return path, nil
}
