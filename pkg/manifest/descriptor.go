// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"

	"github.com/plugorder/plugorder/pkg/semver"
)

var (
	// ErrInvalidVersion is the sentinel error wrapped when a manifest's
	// version field is not a valid semantic version.
	ErrInvalidVersion = errors.New("invalid plugin version")
	// ErrInvalidRange is the sentinel error wrapped when a dependency or
	// conflict declares an unparseable version range.
	ErrInvalidRange = errors.New("invalid version range")
)

// Descriptor is the resolver's unit: a manifest plus its parsed version
// and ranges, the loader-owned flags, and the resolved-dependency list
// computed during sequencing.
type Descriptor struct {
	Manifest Manifest

	// Version is the parsed form of Manifest.Version.
	Version *semver.Version

	// Dependencies and Conflicts are the parsed forms of the manifest's
	// range maps, keyed by plugin id.
	Dependencies map[string]*semver.Range
	Conflicts    map[string]*semver.Range

	// IsSelf marks the loader's own synthetic descriptor, always first-class.
	IsSelf bool

	// IsBare marks a placeholder with no backing binary, kept for
	// update tracking only and ineligible for activation.
	IsBare bool

	// SourcePath is where the manifest was found, for diagnostics.
	SourcePath string

	// ResolvedDeps is the set of accepted descriptors this one must load
	// after. Computed by the sequencer; owned by the resolution session.
	ResolvedDeps []*Descriptor
}

// NewDescriptor builds a Descriptor from a manifest, parsing the version
// and every declared range eagerly so malformed declarations surface at
// catalog construction rather than mid-resolution.
func NewDescriptor(m Manifest) (*Descriptor, error) {
	v, err := semver.Parse(m.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: plugin %q: %v", ErrInvalidVersion, m.Name, err)
	}

	d := &Descriptor{Manifest: m, Version: v}

	if len(m.Dependencies) > 0 {
		d.Dependencies = make(map[string]*semver.Range, len(m.Dependencies))
		for id, expr := range m.Dependencies {
			r, err := semver.ParseRange(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: plugin %q dependency %q: %v", ErrInvalidRange, m.Name, id, err)
			}
			d.Dependencies[id] = r
		}
	}

	if len(m.Conflicts) > 0 {
		d.Conflicts = make(map[string]*semver.Range, len(m.Conflicts))
		for id, expr := range m.Conflicts {
			r, err := semver.ParseRange(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: plugin %q conflict %q: %v", ErrInvalidRange, m.Name, id, err)
			}
			d.Conflicts[id] = r
		}
	}

	return d, nil
}

// Identity returns the descriptor's resolution identity: the id, or the
// name when the id is absent.
func (d *Descriptor) Identity() string {
	if d.Manifest.ID != "" {
		return d.Manifest.ID
	}
	return d.Manifest.Name
}

// String returns a human-readable "name vX.Y.Z" form.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s v%s", d.Manifest.Name, d.Version)
}
