// SPDX-License-Identifier: MPL-2.0

package resolve

import "github.com/plugorder/plugorder/pkg/manifest"

// DisabledStore is the externally owned set of disabled plugin identities
// (id, or name when id is absent). The filter reads it; the sequencer
// appends to it when a cascade disables a descriptor. Implementations
// need not be safe for concurrent use; resolution is single-threaded.
type DisabledStore interface {
	// Contains reports whether the identity is disabled.
	Contains(identity string) bool

	// Append marks the identity disabled. Called during cascade-disable;
	// the new entry must be visible to later Contains calls.
	Append(identity string) error
}

// MemoryStore is an in-memory DisabledStore for tests and embedding.
type MemoryStore struct {
	ids map[string]bool
	// Appended records identities added during resolution, in order.
	Appended []string
}

// NewMemoryStore creates a store pre-populated with the given identities.
func NewMemoryStore(identities ...string) *MemoryStore {
	m := &MemoryStore{ids: make(map[string]bool, len(identities))}
	for _, id := range identities {
		m.ids[id] = true
	}
	return m
}

// Contains implements DisabledStore.
func (m *MemoryStore) Contains(identity string) bool {
	return m.ids[identity]
}

// Append implements DisabledStore.
func (m *MemoryStore) Append(identity string) error {
	if !m.ids[identity] {
		m.ids[identity] = true
		m.Appended = append(m.Appended, identity)
	}
	return nil
}

// filterDisabled partitions descriptors by membership in the disabled
// store. A pure membership test: the store itself is not mutated here.
// The loader's own descriptor is always first-class and never filtered.
func (s *Session) filterDisabled(ds []*manifest.Descriptor, store DisabledStore) []*manifest.Descriptor {
	enabled := make([]*manifest.Descriptor, 0, len(ds))

	for _, d := range ds {
		if !d.IsSelf && store.Contains(d.Identity()) {
			s.disabled = append(s.disabled, d)
			s.log.Debug("plugin disabled", "plugin", d.Identity())
			continue
		}
		enabled = append(enabled, d)
	}

	return enabled
}
