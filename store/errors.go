// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("session not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidIndex     = errors.New("invalid statement index")
	ErrStoreUnavailable = errors.New("store unavailable")
)
