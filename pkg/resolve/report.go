// SPDX-License-Identifier: MPL-2.0

package resolve

import "fmt"

// ReasonKind classifies why a descriptor was ignored or disabled.
type ReasonKind string

const (
	// DuplicateIdentity marks the lower-precedence copy of a shared id.
	DuplicateIdentity ReasonKind = "duplicate-identity"
	// DeclaredConflict marks the losing side of a manifest-declared conflict.
	DeclaredConflict ReasonKind = "declared-conflict"
	// UnsatisfiedDependency marks a descriptor whose first unsatisfied
	// dependency was missing (ignored) or disabled (cascade-disabled).
	UnsatisfiedDependency ReasonKind = "unsatisfied-dependency"
	// CircularConstraint marks every member of a detected ordering cycle.
	CircularConstraint ReasonKind = "circular-constraint"
	// BarePlaceholder marks a descriptor with no backing binary, kept in
	// the catalog for update tracking but ineligible for activation.
	BarePlaceholder ReasonKind = "bare-placeholder"
	// ManifestInvalid marks a manifest the catalog supplier could not parse.
	ManifestInvalid ReasonKind = "manifest-invalid"

	// FeatureParseError marks a feature request a capability failed to parse.
	FeatureParseError ReasonKind = "feature-parse-error"
	// FeatureDenied marks a feature request vetoed as invalid by its capability.
	FeatureDenied ReasonKind = "feature-denied"
	// FeatureNotFound marks a feature request no capability claimed.
	FeatureNotFound ReasonKind = "feature-not-found"
)

// Report records one per-descriptor outcome for diagnostic reporting.
// None of these are fatal to the session.
type Report struct {
	Kind     ReasonKind
	Identity string
	Detail   string
}

// String renders the report as "kind: identity: detail".
func (r Report) String() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s: %s", r.Kind, r.Identity)
	}
	return fmt.Sprintf("%s: %s: %s", r.Kind, r.Identity, r.Detail)
}
