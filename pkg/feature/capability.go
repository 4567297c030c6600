// SPDX-License-Identifier: MPL-2.0

package feature

import "github.com/plugorder/plugorder/pkg/manifest"

// Capability is one pluggable feature type. Implementations inspect raw
// request strings and produce Instances for the requests they claim.
type Capability interface {
	// Name identifies the capability for registration and diagnostics.
	Name() string

	// TryParse inspects a raw request string on behalf of its owning
	// descriptor. prior carries the state returned by an earlier Retry
	// outcome for the same request, or nil on the first attempt.
	//
	// Returning Pass leaves the request open for other capabilities and
	// later passes.
	TryParse(request string, owner *manifest.Descriptor, prior any) Outcome
}

// Instance is a successfully parsed feature request, bound to its owner.
// The Evaluator calls Evaluate after every negotiation pass; activation
// consults the veto hooks later.
type Instance interface {
	// Evaluate applies the feature's registration-time effect. It may
	// register new capabilities on the registry. Called once per pass on
	// every attached instance, so it must be idempotent for a stable
	// registry state.
	Evaluate(reg *Registry) error

	// BeforeLoad, BeforeInit, and AfterInit are activation vetoes. Each
	// returns false with a human-readable reason to abort the owning
	// plugin's activation at that stage.
	BeforeLoad() (bool, string)
	BeforeInit() (bool, string)
	AfterInit() (bool, string)
}

// NopHooks is an embeddable Instance fragment whose vetoes always allow.
type NopHooks struct{}

func (NopHooks) BeforeLoad() (bool, string) { return true, "" }
func (NopHooks) BeforeInit() (bool, string) { return true, "" }
func (NopHooks) AfterInit() (bool, string)  { return true, "" }

// OutcomeKind discriminates TryParse results.
type OutcomeKind int

const (
	// KindPass means the capability does not recognize the request.
	KindPass OutcomeKind = iota
	// KindResolved means the request parsed into a valid Instance.
	KindResolved
	// KindDenied means the request matched but is invalid for its owner.
	KindDenied
	// KindRetry means the request is recognized but not yet resolvable;
	// it stays pending with carried state for the next pass.
	KindRetry
	// KindParseError means the request matched but could not be parsed.
	KindParseError
)

// Outcome is a TryParse result. The zero value is Pass.
type Outcome struct {
	Kind OutcomeKind

	// Instance is set for Resolved outcomes.
	Instance Instance
	// Persistent marks a Resolved instance that stays attached to its
	// descriptor for activation, rather than acting only at negotiation
	// time.
	Persistent bool
	// Reason explains Denied and ParseError outcomes.
	Reason string
	// State is carried back into TryParse as prior on Retry outcomes.
	State any
}

// Pass reports that the capability does not recognize the request.
func Pass() Outcome { return Outcome{} }

// Resolve claims the request with a parsed instance. persistent keeps
// the instance attached to the descriptor for activation.
func Resolve(inst Instance, persistent bool) Outcome {
	return Outcome{Kind: KindResolved, Instance: inst, Persistent: persistent}
}

// Deny claims the request but rejects it as invalid for its owner.
func Deny(reason string) Outcome {
	return Outcome{Kind: KindDenied, Reason: reason}
}

// RetryWith keeps the request pending and carries state into the next
// pass's TryParse call.
func RetryWith(state any) Outcome {
	return Outcome{Kind: KindRetry, State: state}
}

// ParseFailure claims the request but reports it as malformed.
func ParseFailure(reason string) Outcome {
	return Outcome{Kind: KindParseError, Reason: reason}
}
