// Package versions provides ordering and constraint helpers for collection
// version strings.
package versions

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"
)

// Wildcard is the constraint that matches any version.
const Wildcard = "*"

// Compare compares two version strings and returns their ordering.
//
// It performs the following operations:
//   - Prefers canonical semver comparison when both versions canonicalize
//   - Falls back to string comparison of the raw values otherwise
//
// Parameters:
//   - a: The first version to compare
//   - b: The second version to compare
//
// Returns:
//   - int: Negative if a < b, zero if a == b, positive if a > b
func Compare(a, b string) int {
	ca := canonical(a)
	cb := canonical(b)

	if ca != "" && cb != "" {
		return modsemver.Compare(ca, cb)
	}

	return strings.Compare(a, b)
}

// SortDesc sorts version strings in place, newest first.
//
// The sort is stable so equal versions keep their input order.
//
// Parameters:
//   - vs: Slice of version strings to sort (modified in place)
func SortDesc(vs []string) {
	sort.SliceStable(vs, func(i, j int) bool {
		return Compare(vs[i], vs[j]) > 0
	})
}

// Highest returns the highest version from a list.
//
// Parameters:
//   - vs: Slice of version strings, may be empty
//
// Returns:
//   - string: The highest version, or empty string for an empty list
func Highest(vs []string) string {
	highest := ""
	for _, v := range vs {
		if highest == "" || Compare(v, highest) > 0 {
			highest = v
		}
	}
	return highest
}

// CheckConstraint reports whether a version constraint is parseable.
//
// The wildcard "*" and galaxy-style comma-separated range sets such as
// ">=1.0.0,<2.0.0" are accepted.
//
// Parameters:
//   - constraint: The constraint expression to validate
//
// Returns:
//   - error: The parse error for unparsable constraints, nil otherwise
func CheckConstraint(constraint string) error {
	if strings.TrimSpace(constraint) == Wildcard {
		return nil
	}

	_, err := semver.NewConstraint(constraint)
	return err
}

// Matches reports whether a version satisfies a constraint.
//
// Parameters:
//   - version: The version string to test
//   - constraint: The constraint expression ("*" matches everything)
//
// Returns:
//   - bool: true if the version satisfies the constraint
//   - error: The parse error when the version or constraint is invalid
func Matches(version, constraint string) (bool, error) {
	if strings.TrimSpace(constraint) == Wildcard {
		return true, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}

	return c.Check(v), nil
}

// canonical converts a version string to canonical "v"-prefixed semver form,
// returning empty string when the value is not a semantic version.
//
// Parameters:
//   - version: The version string to canonicalize (with or without "v")
//
// Returns:
//   - string: Canonical semver string (e.g. "v1.2.0"), or "" if invalid
func canonical(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	if modsemver.IsValid(cleaned) {
		return modsemver.Canonical(cleaned)
	}

	return ""
}
