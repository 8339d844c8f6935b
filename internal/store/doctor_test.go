package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck_Healthy(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, dir, false); err != nil {
		t.Fatalf("Check: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "[WARN]") || strings.Contains(out, "[MISS]") {
		t.Errorf("healthy tree produced warnings:\n%s", out)
	}
	if !strings.Contains(out, "conforms to the settings schema") {
		t.Errorf("missing schema OK line:\n%s", out)
	}
}

func TestCheck_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	var buf bytes.Buffer
	if err := Check(&buf, dir, false); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected [MISS] for absent directory:\n%s", buf.String())
	}
}

func TestCheck_MissingDirWithFix(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	var buf bytes.Buffer
	if err := Check(&buf, dir, true); err != nil {
		t.Fatalf("Check: %v", err)
	}
	assertDirExists(t, dir)
	assertFileExists(t, ConfigPath(dir))
}

func TestCheck_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := os.WriteFile(ConfigPath(dir), []byte("not json"), FilePerm); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, dir, false); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !strings.Contains(buf.String(), "not valid JSON") {
		t.Errorf("expected invalid JSON warning:\n%s", buf.String())
	}

	// With fix, the file is reseeded.
	var fixed bytes.Buffer
	if err := Check(&fixed, dir, true); err != nil {
		t.Fatalf("Check --fix: %v", err)
	}
	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"favorite_columns": []`) {
		t.Errorf("fix did not reseed defaults: %s", data)
	}
}

func TestCheck_SchemaIssues(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	bad := []byte(`{"favorite_columns": ["ok", 42]}`)
	if err := os.WriteFile(ConfigPath(dir), bad, FilePerm); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, dir, false); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !strings.Contains(buf.String(), "schema issue") {
		t.Errorf("expected schema issues:\n%s", buf.String())
	}
}

func TestCheck_VersionNewerThanSupported(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cfg := []byte(`{"favorite_columns": [], "version": "99.0.0"}`)
	if err := os.WriteFile(ConfigPath(dir), cfg, FilePerm); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, dir, false); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !strings.Contains(buf.String(), "newer than supported") {
		t.Errorf("expected version warning:\n%s", buf.String())
	}
}
