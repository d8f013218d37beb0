// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"fmt"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// PublicIDLength is the length of poll public identifiers.
const PublicIDLength = 8

// base62: URL-friendly, no special chars. 62^8 ≈ 2.2e14 identifiers.
const publicIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GeneratePublicID creates a random base62 identifier for a poll.
// The result is not derivable from any internal key; uniqueness is
// checked by the store against existing polls.
func GeneratePublicID() (string, error) {
	b := make([]byte, PublicIDLength)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate public ID: %w", err)
	}
	out := make([]byte, PublicIDLength)
	for i, c := range b {
		out[i] = publicIDAlphabet[int(c)%len(publicIDAlphabet)]
	}
	return string(out), nil
}

// ValidateAdminToken checks the provided token against the configured
// secret in constant time.
func ValidateAdminToken(provided, configured string) error {
	if configured == "" {
		// An empty configured secret matches nothing
		return ErrInvalidAdminToken
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminToken
	}
	return nil
}
