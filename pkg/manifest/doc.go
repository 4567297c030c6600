// SPDX-License-Identifier: MPL-2.0

// Package manifest defines the plugin descriptor model consumed by the
// resolver and parses plugin.cue manifest files.
//
// A Manifest is the declared identity and constraints of one plugin:
// dependencies and conflicts as id → version-range maps, loadBefore/loadAfter
// ordering hints, and free-form feature request strings. A Descriptor wraps
// a Manifest with its parsed version/ranges plus the loader-owned flags
// (self, bare) and the resolved-dependency list computed during sequencing.
//
// Descriptors are immutable after construction except for ResolvedDeps,
// which is owned exclusively by the resolution session.
package manifest
