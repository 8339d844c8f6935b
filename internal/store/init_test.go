package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_CreatesStructure(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "settings")

	var buf bytes.Buffer
	if err := Init(&buf, dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	assertDirExists(t, dir)
	assertDirExists(t, filepath.Join(dir, BackupsDir))
	assertDirExists(t, filepath.Join(dir, LogsDir))
	assertFileExists(t, ConfigPath(dir))

	if !strings.Contains(buf.String(), "[ OK ]") {
		t.Error("expected [ OK ] in output")
	}

	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"favorite_columns": []`) {
		t.Errorf("seed content = %s", data)
	}
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()

	var buf1 bytes.Buffer
	if err := Init(&buf1, dir); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}

	// Put user content in place, then run again.
	custom := []byte(`{"favorite_columns": ["番号"]}`)
	if err := os.WriteFile(ConfigPath(dir), custom, FilePerm); err != nil {
		t.Fatal(err)
	}

	var buf2 bytes.Buffer
	if err := Init(&buf2, dir); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if !strings.Contains(buf2.String(), "[SKIP]") {
		t.Error("expected [SKIP] messages in second run")
	}

	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Errorf("second Init overwrote user content: %s", data)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("%s is a directory, want file", path)
	}
}
