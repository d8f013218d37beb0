// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

// Operator is a capability value asserting poll-management rights. The
// zero value is an unauthenticated guest. Privileged store operations
// reject anything else with ErrUnauthorized, so authorization decisions
// stay at the boundary that minted the capability rather than in ambient
// global state.
type Operator struct {
	ok bool
}

// Guest is the unauthenticated viewer.
var Guest = Operator{}

// AsOperator mints an authorized capability. Callers must have validated
// the admin token first.
func AsOperator() Operator { return Operator{ok: true} }

func (o Operator) authorized() bool { return o.ok }
