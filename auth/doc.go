// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides public identifier generation and admin token checks.

# Public IDs

Polls are addressed by short, unguessable base62 identifiers:

	id, err := auth.GeneratePublicID()  // e.g. "k3Xp09Qa"

IDs are 8 characters from crypto/rand. They are independent of the internal
numeric keys, so public URLs leak nothing about row ordering. Uniqueness is
enforced by the store, which retries generation on collision.

# Admin Tokens

The admin surface is gated by a single configured secret, compared in
constant time:

	err := auth.ValidateAdminToken(header, cfg.AdminToken)

The token is a capability: whoever presents it is the operator. Credential
management (rotation, per-user accounts) is out of scope.
*/
package auth
