package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docxconv-labs/docxconv/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "tool"
	fileType = "yaml"
)

// Preference keys and their defaults. These tune CLI behavior only; the
// converter's own settings live in config.json, managed by the store.
const (
	KeyOutputFormat      = "output_format"
	KeyBackupsKeep       = "backups.keep"
	KeyQuarantineCorrupt = "quarantine_corrupt"
	KeyLogFile           = "log_file"
)

// Dir returns the path to the settings directory (~/.docx_converter/),
// honoring the DOCXCONV_CONFIG_DIR override.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the tool preferences file
// (~/.docx_converter/tool.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating settings directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the preferences file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyOutputFormat, "json")
	viper.SetDefault(KeyBackupsKeep, 5)
	viper.SetDefault(KeyQuarantineCorrupt, true)
	viper.SetDefault(KeyLogFile, true)

	// Ignore error if the preferences file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a preference value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// OutputFormat returns the default output format for list/show commands.
func OutputFormat() string {
	return viper.GetString(KeyOutputFormat)
}

// BackupsKeep returns how many pre-save backups to retain; 0 disables
// backups.
func BackupsKeep() int {
	return viper.GetInt(KeyBackupsKeep)
}

// QuarantineCorrupt reports whether an unparseable config.json should be
// moved aside instead of left in place.
func QuarantineCorrupt() bool {
	return viper.GetBool(KeyQuarantineCorrupt)
}

// LogFileEnabled reports whether store operations append to
// logs/config.log.
func LogFileEnabled() bool {
	return viper.GetBool(KeyLogFile)
}

// Set writes a preference key-value pair and saves the preferences file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating preferences file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing preferences file: %w", err)
	}

	return nil
}
