// SPDX-License-Identifier: MPL-2.0

// Package resolve turns an unordered catalog of plugin descriptors into a
// single conflict-free, dependency-respecting load order.
//
// A Session owns four disjoint partitions over the catalog: accepted (the
// final load order), disabled (externally or cascade-disabled), ignored
// (duplicate/conflict/error losers), and pending (not yet classified; only
// during a run). Resolution is strictly sequential:
//
//	catalog → duplicate/conflict collapse → disabled filter → sequencing
//
// Every per-descriptor failure is contained: a descriptor that cannot load
// is moved to ignored or disabled with a reason, and resolution continues
// with the remainder. There is no whole-session failure outcome.
//
// Precedence everywhere is the same deterministic total order: version
// descending, then identity lexical ascending. The same input catalog in
// any discovery order yields the same partitions and reasons.
//
// A Session is single-threaded and owned by one resolution call at a time;
// callers serialize Reset against new runs.
package resolve
