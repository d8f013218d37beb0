// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrPollClosed          = errors.New("poll is closed")
	ErrCapacityExceeded    = errors.New("slot is full")
	ErrDuplicateResponse   = errors.New("response already recorded and changes are not allowed")
	ErrGenerationExhausted = errors.New("public id generation exhausted")
	ErrUnauthorized        = errors.New("operator authorization required")
)
