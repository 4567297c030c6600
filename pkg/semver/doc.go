// SPDX-License-Identifier: MPL-2.0

// Package semver provides semantic version parsing, comparison, and
// range matching for plugin manifests.
//
// A range expression is one or more space-separated constraints that must
// all hold, e.g. ">=1.2.0 <2.0.0". Supported operators: =, ^, ~, >, >=,
// <, <= (a bare version means exact match).
package semver
