package schema

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersion is the newest settings format version this build
// understands. The version key in config.json is optional; files written
// by the converter UI carry it, files seeded by this tool do not.
const SupportedVersion = "1.0.0"

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsNewerThanSupported reports whether v is a settings format version
// newer than SupportedVersion.
func IsNewerThanSupported(v string) (bool, error) {
	cmp, err := CompareVersions(v, SupportedVersion)
	if err != nil {
		return false, err
	}
	return cmp == 1, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
