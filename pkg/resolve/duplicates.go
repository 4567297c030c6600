// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"fmt"

	"github.com/plugorder/plugorder/pkg/manifest"
)

// collapseDuplicates walks descriptors in precedence order and ignores
// every later descriptor whose identity was already seen. The
// higher-precedence copy wins. Identity is the id with the name as
// fallback, the same key the graph and the disabled store use, so two
// id-less descriptors sharing a name collapse instead of colliding
// downstream.
func (s *Session) collapseDuplicates(ordered []*manifest.Descriptor) []*manifest.Descriptor {
	seen := make(map[string]*manifest.Descriptor, len(ordered))
	out := make([]*manifest.Descriptor, 0, len(ordered))

	for _, d := range ordered {
		if winner, ok := seen[d.Identity()]; ok {
			s.ignore(d, DuplicateIdentity, fmt.Sprintf("superseded by %s", winner))
			continue
		}
		seen[d.Identity()] = d
		out = append(out, d)
	}

	return out
}

// dropConflicts removes the losing side of every declared conflict.
// Conflicts are directional in declaration (B declares a range for A's
// id) but the consequence is mutual exclusion; the survivor is whichever
// side comes first in precedence order.
func (s *Session) dropConflicts(ordered []*manifest.Descriptor) []*manifest.Descriptor {
	dropped := make(map[*manifest.Descriptor]bool)
	out := make([]*manifest.Descriptor, 0, len(ordered))

	for i, a := range ordered {
		if dropped[a] {
			continue
		}
		for _, b := range ordered[i+1:] {
			if dropped[b] {
				continue
			}
			if !conflictBetween(a, b) {
				continue
			}
			// The loader's own descriptor is first-class and never loses,
			// regardless of precedence.
			if b.IsSelf {
				s.ignore(a, DeclaredConflict, fmt.Sprintf("conflicts with %s", b))
				dropped[a] = true
				break
			}
			s.ignore(b, DeclaredConflict, fmt.Sprintf("conflicts with %s", a))
			dropped[b] = true
		}
		if !dropped[a] {
			out = append(out, a)
		}
	}

	return out
}

// conflictBetween reports whether either side declares a conflict range
// the other side's version satisfies.
func conflictBetween(a, b *manifest.Descriptor) bool {
	return declaresConflict(a, b) || declaresConflict(b, a)
}

func declaresConflict(d, other *manifest.Descriptor) bool {
	r, ok := d.Conflicts[other.Identity()]
	return ok && r.Matches(other.Version)
}
