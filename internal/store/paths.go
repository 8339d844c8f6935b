package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docxconv-labs/docxconv/internal/branding"
)

// File and directory name constants for the settings layout.
const (
	ConfigFile = "config.json"
	BackupsDir = "backups"
	LogsDir    = "logs"
	LogFile    = "config.log"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Recognized top-level keys in config.json. Everything else is opaque
// pass-through data owned by other parts of the converter.
const (
	KeyFavoriteColumns = "favorite_columns"
	KeySettings        = "settings"
	KeyVersion         = "version"
)

// DefaultDir returns the base settings directory. It checks the
// DOCXCONV_CONFIG_DIR environment variable first, then falls back to
// ~/.docx_converter.
func DefaultDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// ConfigPath returns the path to config.json inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// LogPath returns the path to the operational log file inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, LogsDir, LogFile)
}
