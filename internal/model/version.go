package model

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// Version is a major.minor.patch interpreter version.
type Version struct {
	Major int
	Minor int
	Patch int
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts the first dotted version from s. It accepts the
// interpreter banner ("Python 3.12.1"), bare versions ("3.12", "3.12.1") and
// version_info strings ("3.12.1.final.0").
func ParseVersion(s string) (Version, error) {
	match := versionPattern.FindStringSubmatch(s)
	if match == nil {
		return Version{}, fmt.Errorf("no version found in %q", s)
	}

	var v Version

	var err error

	if v.Major, err = strconv.Atoi(match[1]); err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q: %w", s, err)
	}

	if v.Minor, err = strconv.Atoi(match[2]); err != nil {
		return Version{}, fmt.Errorf("invalid minor version in %q: %w", s, err)
	}

	if match[3] != "" {
		if v.Patch, err = strconv.Atoi(match[3]); err != nil {
			return Version{}, fmt.Errorf("invalid patch version in %q: %w", s, err)
		}
	}

	return v, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is meant for constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// IsZero reports whether v is the zero Version, i.e. unknown.
func (v Version) IsZero() bool { return v == Version{} }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns v in the canonical "vMAJOR.MINOR.PATCH" form.
func (v Version) Semver() string { return "v" + v.String() }

// Compare returns -1, 0 or +1 depending on whether v is lower, equal or
// higher than other.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Semver(), other.Semver())
}

// AtLeast reports whether v satisfies the minimum version.
func (v Version) AtLeast(minimum Version) bool {
	return !v.IsZero() && v.Compare(minimum) >= 0
}
