package schema

import (
	"path/filepath"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_ValidSettings(t *testing.T) {
	validFiles := []string{
		"valid-minimal.json",
		"valid-full.json",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidSettings(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-favorites-type.json", "favorite_columns is not an array"},
		{"invalid-favorites-item.json", "favorite_columns has a non-string element"},
		{"invalid-version.json", "version violates the semver pattern"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for non-JSON input, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_UnknownKeysAllowed(t *testing.T) {
	result, err := Validate([]byte(`{"favorite_columns": [], "extra": {"deep": true}}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Error("unknown keys must pass validation")
	}
}
