// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// disabledFile is the on-disk shape of the disabled-plugin list.
type disabledFile struct {
	Disabled []string `toml:"disabled"`
}

// FileStore is a TOML-backed resolve.DisabledStore. Appends write
// through immediately so an interrupted run never loses a cascade
// decision. Not safe for concurrent use.
type FileStore struct {
	path string
	ids  map[string]bool
	// order preserves file order plus append order for stable rewrites.
	order []string
}

// OpenFileStore loads the disabled list at path. A missing file is an
// empty store; the file is created on first Append.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, ids: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read disabled list at %s: %w", path, err)
	}

	var f disabledFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse disabled list at %s: %w", path, err)
	}
	for _, id := range f.Disabled {
		if !s.ids[id] {
			s.ids[id] = true
			s.order = append(s.order, id)
		}
	}
	return s, nil
}

// Contains implements resolve.DisabledStore.
func (s *FileStore) Contains(identity string) bool {
	return s.ids[identity]
}

// Append implements resolve.DisabledStore, persisting the updated list
// before returning. Appending an identity already present is a no-op.
func (s *FileStore) Append(identity string) error {
	if s.ids[identity] {
		return nil
	}
	s.ids[identity] = true
	s.order = append(s.order, identity)
	return s.flush()
}

// Remove deletes an identity from the list, persisting the result.
// Removing an absent identity is a no-op.
func (s *FileStore) Remove(identity string) error {
	if !s.ids[identity] {
		return nil
	}
	delete(s.ids, identity)
	for i, id := range s.order {
		if id == identity {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.flush()
}

// Identities returns the disabled identities in stable order.
func (s *FileStore) Identities() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *FileStore) flush() error {
	data, err := toml.Marshal(disabledFile{Disabled: s.order})
	if err != nil {
		return fmt.Errorf("failed to encode disabled list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write disabled list at %s: %w", s.path, err)
	}
	return nil
}
