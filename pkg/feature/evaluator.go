// SPDX-License-Identifier: MPL-2.0

package feature

import (
	"fmt"
	"log/slog"

	"github.com/plugorder/plugorder/pkg/manifest"
	"github.com/plugorder/plugorder/pkg/resolve"
)

// maxPasses bounds the fixed-point loop against a capability that
// registers a new capability on every evaluation and never converges.
const maxPasses = 256

// pending is one still-unresolved request with its carried retry state.
type pending struct {
	request string
	state   any
}

// Result is the outcome of one negotiation run.
type Result struct {
	// Features maps each descriptor to its persistent resolved instances,
	// in request order. Activation consumes these and their veto hooks.
	Features map[*manifest.Descriptor][]Instance

	// Reports lists per-request denials, parse errors, and unclaimed
	// requests. None of them prevent the owning plugin from loading.
	Reports []resolve.Report
}

// Evaluator runs feature negotiation over the accepted load order.
type Evaluator struct {
	log *slog.Logger
	reg *Registry
}

// NewEvaluator creates an evaluator over the given registry. A nil
// logger falls back to slog.Default.
func NewEvaluator(reg *Registry, log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.Default()
	}
	return &Evaluator{log: log, reg: reg}
}

// Evaluate negotiates every descriptor's feature requests to a fixed
// point. Passes repeat while evaluation keeps growing the registry; a
// pass that leaves the generation counter unchanged terminates the loop
// and everything still pending is reported as not found.
func (e *Evaluator) Evaluate(accepted []*manifest.Descriptor) *Result {
	result := &Result{Features: make(map[*manifest.Descriptor][]Instance)}

	queue := make(map[*manifest.Descriptor][]pending, len(accepted))
	for _, d := range accepted {
		for _, req := range d.Manifest.Features {
			queue[d] = append(queue[d], pending{request: req})
		}
	}

	for pass := 0; ; pass++ {
		if pass == maxPasses {
			e.log.Warn("feature negotiation did not converge", "passes", pass)
			break
		}

		before := e.reg.Generation()
		var once []Instance

		for _, d := range accepted {
			remaining := queue[d][:0]
			for _, p := range queue[d] {
				out := e.tryParse(p, d)
				switch out.Kind {
				case KindResolved:
					if out.Persistent {
						result.Features[d] = append(result.Features[d], out.Instance)
					} else {
						once = append(once, out.Instance)
					}
					e.log.Debug("feature resolved",
						"plugin", d.Identity(), "request", p.request, "persistent", out.Persistent)
				case KindDenied:
					result.Reports = append(result.Reports, resolve.Report{
						Kind:     resolve.FeatureDenied,
						Identity: d.Identity(),
						Detail:   fmt.Sprintf("%s: %s", p.request, out.Reason),
					})
				case KindParseError:
					result.Reports = append(result.Reports, resolve.Report{
						Kind:     resolve.FeatureParseError,
						Identity: d.Identity(),
						Detail:   fmt.Sprintf("%s: %s", p.request, out.Reason),
					})
				case KindRetry:
					remaining = append(remaining, pending{request: p.request, state: out.State})
				case KindPass:
					remaining = append(remaining, p)
				}
			}
			queue[d] = remaining
		}

		// Evaluation sweep. Attached instances run every pass and must be
		// idempotent for a stable registry; non-persistent instances run
		// exactly once, in the pass that resolved them.
		for _, d := range accepted {
			for _, inst := range result.Features[d] {
				if err := inst.Evaluate(e.reg); err != nil {
					e.log.Warn("feature evaluation failed", "plugin", d.Identity(), "error", err)
				}
			}
		}
		for _, inst := range once {
			if err := inst.Evaluate(e.reg); err != nil {
				e.log.Warn("feature evaluation failed", "error", err)
			}
		}

		if e.reg.Generation() == before {
			break
		}
	}

	for _, d := range accepted {
		for _, p := range queue[d] {
			result.Reports = append(result.Reports, resolve.Report{
				Kind:     resolve.FeatureNotFound,
				Identity: d.Identity(),
				Detail:   p.request,
			})
		}
	}

	return result
}

// tryParse offers the request to every capability in registration order
// and returns the first outcome that claims it. Retry claims the request
// like any other non-Pass outcome: once a capability retries a request,
// capabilities registered after it never see that request on later
// passes. A capability that wants to leave a request for others must
// return Pass, not Retry.
func (e *Evaluator) tryParse(p pending, owner *manifest.Descriptor) Outcome {
	for _, c := range e.reg.Capabilities() {
		out := c.TryParse(p.request, owner, p.state)
		if out.Kind != KindPass {
			return out
		}
	}
	return Pass()
}
