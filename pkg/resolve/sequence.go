// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/plugorder/plugorder/internal/dag"
	"github.com/plugorder/plugorder/pkg/manifest"
)

// sequence builds the must-precede graph over the enabled descriptors,
// topologically orders it, and validates each candidate's dependencies
// left to right, cascading disablement where a dependency is disabled
// rather than absent.
func (s *Session) sequence(enabled []*manifest.Descriptor, store DisabledStore) {
	byIdentity := make(map[string]*manifest.Descriptor, len(enabled))
	g := dag.New()

	// Nodes enter the graph in precedence order so unconstrained ties in
	// the topological sort break by the same rule as every other phase.
	for _, d := range enabled {
		g.AddNode(d.Identity())
		byIdentity[d.Identity()] = d
	}

	// Declared dependencies, loadAfter hints, and being named by another
	// descriptor's loadBefore all become must-precede edges. Hints naming
	// ids outside the enabled set are inert.
	for _, d := range enabled {
		id := d.Identity()
		for _, depID := range sortedKeys(d.Dependencies) {
			if g.Contains(depID) {
				g.AddEdge(depID, id)
			}
		}
		for _, after := range d.Manifest.LoadAfter {
			if g.Contains(after) {
				g.AddEdge(after, id)
			}
		}
		for _, before := range d.Manifest.LoadBefore {
			if g.Contains(before) {
				g.AddEdge(id, before)
			}
		}
	}

	order, cycle := g.Sort()
	if cycle != nil {
		for _, member := range cycle.Members {
			s.ignore(byIdentity[member], CircularConstraint, cycle.Error())
		}
	}

	// Validation pass: walk the topological order with a running map of
	// accepted identities, admitting or rejecting one candidate at a time.
	running := make(map[string]*manifest.Descriptor, len(order))
	disabledBy := make(map[string]*manifest.Descriptor, len(s.disabled))
	for _, d := range s.disabled {
		disabledBy[d.Identity()] = d
	}

	for _, id := range order {
		d := byIdentity[id]
		if d.IsBare {
			s.ignore(d, BarePlaceholder, "placeholder without a backing binary")
			continue
		}
		s.admit(d, running, disabledBy, store)
	}
}

// admit checks every declared dependency of the candidate against the
// running accepted map. The walk short-circuits on the first unsatisfied
// dependency: the candidate is cascade-disabled when that dependency is
// present-but-disabled with a satisfying version, and ignored otherwise.
func (s *Session) admit(
	d *manifest.Descriptor,
	running map[string]*manifest.Descriptor,
	disabledBy map[string]*manifest.Descriptor,
	store DisabledStore,
) {
	var resolved []*manifest.Descriptor

	for _, depID := range sortedKeys(d.Dependencies) {
		rng := d.Dependencies[depID]

		if dep, ok := running[depID]; ok && rng.Matches(dep.Version) {
			resolved = append(resolved, dep)
			continue
		}

		if dep, ok := disabledBy[depID]; ok && rng.Matches(dep.Version) {
			// Cascade: the dependency exists but is disabled, so disable
			// this descriptor too and persist its identity in the
			// externally owned store.
			s.disabled = append(s.disabled, d)
			disabledBy[d.Identity()] = d
			if err := store.Append(d.Identity()); err != nil {
				s.log.Warn("failed to persist disabled identity",
					"plugin", d.Identity(), "error", err)
			}
			s.Record(Report{
				Kind:     UnsatisfiedDependency,
				Identity: d.Identity(),
				Detail:   fmt.Sprintf("dependency %s is disabled; cascade-disabled", depID),
			})
			s.log.Debug("plugin cascade-disabled", "plugin", d.Identity(), "dependency", depID)
			return
		}

		s.ignore(d, UnsatisfiedDependency, fmt.Sprintf("requires %s %s", depID, rng))
		return
	}

	d.ResolvedDeps = resolved
	s.accepted = append(s.accepted, d)
	running[d.Identity()] = d
}

// sortedKeys returns map keys in lexical order so dependency walks are
// deterministic regardless of map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}
