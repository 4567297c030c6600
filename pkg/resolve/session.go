// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/plugorder/plugorder/pkg/manifest"
)

// Session owns the partitions and reason log for one resolution run.
// It is not safe for concurrent use; a session is owned by a single
// resolution call for its duration.
type Session struct {
	log *slog.Logger

	accepted []*manifest.Descriptor
	disabled []*manifest.Descriptor
	ignored  []*manifest.Descriptor
	reports  []Report
}

// NewSession creates an empty session. A nil logger falls back to
// slog.Default.
func NewSession(log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{log: log}
}

// Resolve runs the full pipeline over the catalog: duplicate and conflict
// collapse, disabled filtering, then graph sequencing with dependency
// validation. The store supplies externally disabled identities and
// receives identities disabled by cascade; a nil store behaves as empty.
//
// Resolve never fails as a whole: the result is always the partitions
// plus the reason log, available through the accessors.
func (s *Session) Resolve(catalog []*manifest.Descriptor, store DisabledStore) {
	if store == nil {
		store = noStore{}
	}

	ordered := sortByPrecedence(slices.Clone(catalog))
	survivors := s.collapseDuplicates(ordered)
	survivors = s.dropConflicts(survivors)
	enabled := s.filterDisabled(survivors, store)
	s.sequence(enabled, store)

	s.log.Debug("resolution complete",
		"accepted", len(s.accepted),
		"disabled", len(s.disabled),
		"ignored", len(s.ignored))
}

// Reset clears all partitions and the reason log so the session can run a
// fresh resolution. Callers must not reset concurrently with a run.
func (s *Session) Reset() {
	s.accepted = nil
	s.disabled = nil
	s.ignored = nil
	s.reports = nil
}

// Accepted returns the final load order.
func (s *Session) Accepted() []*manifest.Descriptor {
	return s.accepted
}

// Disabled returns descriptors disabled externally or by cascade.
func (s *Session) Disabled() []*manifest.Descriptor {
	return s.disabled
}

// Ignored returns duplicate, conflict, and error losers.
func (s *Session) Ignored() []*manifest.Descriptor {
	return s.ignored
}

// Reports returns the structured reason log accumulated so far.
func (s *Session) Reports() []Report {
	return s.reports
}

// Record appends an externally produced report (catalog parse failures,
// feature negotiation outcomes) to the session's reason log.
func (s *Session) Record(r Report) {
	s.reports = append(s.reports, r)
}

// ignore moves a descriptor into the ignored partition with a reason.
func (s *Session) ignore(d *manifest.Descriptor, kind ReasonKind, detail string) {
	s.ignored = append(s.ignored, d)
	s.reports = append(s.reports, Report{Kind: kind, Identity: d.Identity(), Detail: detail})
	s.log.Debug("plugin ignored", "plugin", d.Identity(), "reason", string(kind), "detail", detail)
}

// sortByPrecedence sorts descriptors in place by the session-wide
// precedence order: version descending, then identity lexical ascending.
// The sort is stable so equal descriptors keep their relative order.
func sortByPrecedence(ds []*manifest.Descriptor) []*manifest.Descriptor {
	sort.SliceStable(ds, func(i, j int) bool {
		if c := ds[i].Version.Compare(ds[j].Version); c != 0 {
			return c > 0
		}
		return ds[i].Identity() < ds[j].Identity()
	})
	return ds
}

// noStore is the nil-store fallback: nothing is disabled, appends vanish.
type noStore struct{}

func (noStore) Contains(string) bool { return false }
func (noStore) Append(string) error  { return nil }
