package deploy

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Version is an OS version triple (deployment target or SDK version).
// The component widths are limited by the fields of Mach-O's
// LC_BUILD_VERSION load command.
type Version struct {
	Major uint16
	Minor uint8
	Patch uint8
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions lexicographically by (major, minor, patch).
// It returns -1, 0 or 1.
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
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// Max returns the greater of v and other.
func (v Version) Max(other Version) Version {
	if v.Compare(other) >= 0 {
		return v
	}
	return other
}

// ParseVersion parses a lenient OS version string: "MAJOR",
// "MAJOR.MINOR" or "MAJOR.MINOR.PATCH", each component a non-negative
// base-10 integer. Missing minor and patch components default to 0.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q: too many components", s)
	}
	major, err := parseComponent[uint16](parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q: %w", s, err)
	}
	v := Version{Major: major}
	if len(parts) > 1 {
		v.Minor, err = parseComponent[uint8](parts[1])
		if err != nil {
			return Version{}, fmt.Errorf("invalid minor version in %q: %w", s, err)
		}
	}
	if len(parts) > 2 {
		v.Patch, err = parseComponent[uint8](parts[2])
		if err != nil {
			return Version{}, fmt.Errorf("invalid patch version in %q: %w", s, err)
		}
	}
	return v, nil
}

func parseComponent[T uint8 | uint16](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	out, err := safecast.Conv[T](n)
	if err != nil {
		return 0, fmt.Errorf("version component out of range: %w", err)
	}
	return out, nil
}
