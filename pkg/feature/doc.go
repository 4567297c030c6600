// SPDX-License-Identifier: MPL-2.0

// Package feature negotiates plugin feature requests against a registry
// of capabilities that can grow while negotiation runs.
//
// A plugin manifest carries free-form request strings. Each registered
// Capability is offered every request via TryParse and answers with an
// Outcome: claim it (producing an Instance), deny it, ask to retry with
// carried state, report a parse error, or pass. Evaluating a resolved
// Instance may register further capabilities, so a request can name a
// capability provided by another plugin evaluated in the same run. The
// Evaluator iterates to a fixed point: it keeps making passes until a
// full pass leaves the registry's generation counter unchanged, then
// reports whatever is still unclaimed as not found.
//
// Negotiation never fails a plugin. Denials, parse errors, and missing
// capabilities each drop the single request and leave the owning
// descriptor loadable.
//
// Nothing here is safe for concurrent use. Negotiation runs once,
// single-threaded, between load-order resolution and activation.
package feature
