// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	// Constraint represents a single version constraint.
	Constraint struct {
		// Op is the comparison operator (=, ^, ~, >, >=, <, <=).
		Op string
		// Version is the version to compare against.
		Version *Version
		// Original is the original constraint string.
		Original string
	}

	// Range is a conjunction of constraints; a version satisfies the range
	// only when it satisfies every constraint.
	Range struct {
		Constraints []*Constraint
		Original    string
	}
)

// constraintRegex matches version constraint strings.
var constraintRegex = regexp.MustCompile(`^([~^]|>=|<=|>|<|=)?v?(\d+(?:\.\d+)?(?:\.\d+)?(?:-[0-9A-Za-z\-\.]+)?)$`)

// ParseConstraint parses a single version constraint string.
func ParseConstraint(s string) (*Constraint, error) {
	s = strings.TrimSpace(s)

	matches := constraintRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("invalid constraint format: %s", s)
	}

	op := matches[1]
	if op == "" {
		op = "="
	}

	version, err := Parse(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid version in constraint: %w", err)
	}

	return &Constraint{
		Op:       op,
		Version:  version,
		Original: s,
	}, nil
}

// ParseRange parses a range expression: one or more space-separated
// constraints that must all match (e.g. ">=1.0.0 <2.0.0").
func ParseRange(s string) (*Range, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty version range")
	}

	r := &Range{Original: s}
	for _, part := range strings.Fields(trimmed) {
		c, err := ParseConstraint(part)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", s, err)
		}
		r.Constraints = append(r.Constraints, c)
	}

	return r, nil
}

// MustParseRange parses a range expression and panics on failure.
// Intended for tests.
func MustParseRange(s string) *Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsValidRange checks if a string is a valid range expression.
func IsValidRange(s string) bool {
	_, err := ParseRange(s)
	return err == nil
}

// String returns the original range expression.
func (r *Range) String() string {
	return r.Original
}

// Matches checks if a version satisfies every constraint in the range.
func (r *Range) Matches(v *Version) bool {
	for _, c := range r.Constraints {
		if !c.Matches(v) {
			return false
		}
	}
	return true
}

// Matches checks if a version satisfies the constraint.
func (c *Constraint) Matches(v *Version) bool {
	switch c.Op {
	case "=":
		return v.Compare(c.Version) == 0

	case "^":
		// Caret: allows changes that do not modify the left-most non-zero digit
		// ^1.2.3 := >=1.2.3 <2.0.0
		// ^0.2.3 := >=0.2.3 <0.3.0
		// ^0.0.3 := >=0.0.3 <0.0.4
		if v.Compare(c.Version) < 0 {
			return false
		}
		if c.Version.Major != 0 {
			return v.Major == c.Version.Major
		}
		if c.Version.Minor != 0 {
			return v.Major == 0 && v.Minor == c.Version.Minor
		}
		return v.Major == 0 && v.Minor == 0 && v.Patch == c.Version.Patch

	case "~":
		// Tilde: allows patch-level changes
		// ~1.2.3 := >=1.2.3 <1.3.0
		if v.Compare(c.Version) < 0 {
			return false
		}
		return v.Major == c.Version.Major && v.Minor == c.Version.Minor

	case ">":
		return v.Compare(c.Version) > 0

	case ">=":
		return v.Compare(c.Version) >= 0

	case "<":
		return v.Compare(c.Version) < 0

	case "<=":
		return v.Compare(c.Version) <= 0

	default:
		return false
	}
}
