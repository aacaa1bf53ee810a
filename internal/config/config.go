package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skel-labs/skel/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTemplateDir = "template_dir"
	KeyVenvDir     = "venv_dir"
	KeyPython      = "python"
	KeyNPM         = "npm"
	KeyGit         = "git"
)

// Keys lists every recognized setting in display order.
var Keys = []string{KeyTemplateDir, KeyVenvDir, KeyPython, KeyNPM, KeyGit}

// Settings is the resolved configuration used by the scaffolding pipeline.
type Settings struct {
	TemplateDir string // Empty means the template bundle embedded in the binary.
	VenvDir     string
	Python      string
	NPM         string
	Git         string
}

// Dir returns the path to the config directory (~/.skel/).
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skel/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplateDir, "")
	viper.SetDefault(KeyVenvDir, ".venv")
	viper.SetDefault(KeyPython, "python3")
	viper.SetDefault(KeyNPM, "npm")
	viper.SetDefault(KeyGit, "git")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the resolved settings. Call Load first.
func Current() Settings {
	return Settings{
		TemplateDir: viper.GetString(KeyTemplateDir),
		VenvDir:     viper.GetString(KeyVenvDir),
		Python:      viper.GetString(KeyPython),
		NPM:         viper.GetString(KeyNPM),
		Git:         viper.GetString(KeyGit),
	}
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
