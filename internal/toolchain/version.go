package toolchain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a CUDA release number. CUDA releases are plain
// "major.minor" pairs ("12.0", "12.4"), not semantic versions, so a
// dedicated two-component type is used instead of a semver library.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a "major[.minor[.patch]]" string into a Version.
// Components past the minor are accepted and ignored.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || parts[0] == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q: %w", s, err)
	}

	v := Version{Major: major}
	if len(parts) > 1 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil {
			return Version{}, fmt.Errorf("invalid minor version in %q: %w", s, err)
		}
		v.Minor = minor
	}
	return v, nil
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// String returns the canonical "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// parseBanner extracts the release version from `nvcc --version` output.
//
// This is a deliberately fragile, documented contract with the nvcc
// banner format: the version is the second-to-last whitespace-separated
// field of the output with one trailing comma stripped, as in
// "Cuda compilation tools, release 12.0, V12.0.140". Any layout that does
// not yield a parseable version here must fail loudly rather than
// misparse.
func parseBanner(output string) (Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return Version{}, fmt.Errorf("unexpected nvcc version banner: %q", output)
	}

	token := strings.TrimSuffix(fields[len(fields)-2], ",")
	v, err := ParseVersion(token)
	if err != nil {
		return Version{}, fmt.Errorf("unexpected nvcc version banner: %w", err)
	}
	return v, nil
}
