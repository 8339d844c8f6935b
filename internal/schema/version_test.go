package schema

import "testing"

func TestCompareVersions(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b string
		want int
	}{
		{"Equal", "1.0.0", "1.0.0", 0},
		{"Older", "0.9.0", "1.0.0", -1},
		{"Newer", "1.1.0", "1.0.0", 1},
		{"VPrefix", "v1.0.0", "1.0.0", 0},
		{"Patch", "1.0.1", "1.0.0", 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CompareVersions(tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("CompareVersions(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCompareVersions_Invalid(t *testing.T) {
	if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestIsNewerThanSupported(t *testing.T) {
	newer, err := IsNewerThanSupported("99.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newer {
		t.Error("99.0.0 should be newer than supported")
	}

	newer, err = IsNewerThanSupported(SupportedVersion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newer {
		t.Error("the supported version itself is not newer")
	}
}
