// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error rendering: a catalog of known
// failure modes with markdown help texts, and an actionable-error builder
// for attaching operation context and fix suggestions to errors.
package issue
