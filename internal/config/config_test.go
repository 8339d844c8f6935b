package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("DOCXCONV_CONFIG_DIR", "/tmp/test-prefs")
	if dir := Dir(); dir != "/tmp/test-prefs" {
		t.Errorf("expected /tmp/test-prefs, got %s", dir)
	}
}

func TestFilePath(t *testing.T) {
	t.Setenv("DOCXCONV_CONFIG_DIR", "/tmp/test-prefs")
	if p := FilePath(); p != filepath.Join("/tmp/test-prefs", "tool.yaml") {
		t.Errorf("unexpected path %s", p)
	}
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DOCXCONV_CONFIG_DIR", t.TempDir())
	Load()

	if got := OutputFormat(); got != "json" {
		t.Errorf("OutputFormat() = %q, want json", got)
	}
	if got := BackupsKeep(); got != 5 {
		t.Errorf("BackupsKeep() = %d, want 5", got)
	}
	if !QuarantineCorrupt() {
		t.Error("QuarantineCorrupt() = false, want true")
	}
	if !LogFileEnabled() {
		t.Error("LogFileEnabled() = false, want true")
	}
}

func TestSetAndGet(t *testing.T) {
	viper.Reset()
	tmp := t.TempDir()
	t.Setenv("DOCXCONV_CONFIG_DIR", tmp)
	Load()

	if err := Set(KeyOutputFormat, "yaml"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeyOutputFormat); got != "yaml" {
		t.Errorf("Get() = %q, want yaml", got)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("preferences file not written: %v", err)
	}

	// A fresh viper sees the persisted value.
	viper.Reset()
	Load()
	if got := OutputFormat(); got != "yaml" {
		t.Errorf("after reload, OutputFormat() = %q, want yaml", got)
	}
}
