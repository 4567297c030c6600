// SPDX-License-Identifier: MPL-2.0

package feature

import "fmt"

// Registry holds the capabilities available to negotiation, in
// registration order. It grows monotonically within a run; Generation
// exposes a counter the Evaluator uses as its fixed-point termination
// signal. Not safe for concurrent use.
type Registry struct {
	caps       []Capability
	byName     map[string]Capability
	generation uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Capability)}
}

// Register adds a capability and bumps the generation counter. Names
// must be unique; re-registering a name is an error and leaves the
// registry unchanged.
func (r *Registry) Register(c Capability) error {
	name := c.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("capability %q already registered", name)
	}
	r.byName[name] = c
	r.caps = append(r.caps, c)
	r.generation++
	return nil
}

// Lookup returns the capability registered under name.
func (r *Registry) Lookup(name string) (Capability, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Capabilities returns a snapshot of registered capabilities in
// registration order.
func (r *Registry) Capabilities() []Capability {
	out := make([]Capability, len(r.caps))
	copy(out, r.caps)
	return out
}

// Generation returns a counter incremented on every registration.
// Two equal readings bracket a window with no registry growth.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// Reset drops all capabilities ahead of a fresh resolution session.
func (r *Registry) Reset() {
	r.caps = nil
	r.byName = make(map[string]Capability)
	r.generation++
}
