package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a styling-system compatibility version (major.minor).
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a version string such as "3.2", "v3.2" or "4".
// A bare major version parses with minor 0.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(strings.ToLower(s)), "v")
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty version", ErrInvalidVersion)
	}

	majorStr, minorStr, hasMinor := strings.Cut(trimmed, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	minor := 0
	if hasMinor {
		minor, err = strconv.Atoi(minorStr)
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}

	return Version{Major: major, Minor: minor}, nil
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or higher
// than other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the canonical "major.minor" form.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// MarshalText implements encoding.TextMarshaler so versions serialize as
// "major.minor" strings in JSON catalog data.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
