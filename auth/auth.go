// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// SessionIDBytes gives session IDs 128 bits of entropy.
	SessionIDBytes = 16
	// VoterIDBytes matches the width of browser-issued voter IDs.
	VoterIDBytes = 8
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionID creates the ID that doubles as a session's share token
func GenerateSessionID() (string, error) {
	return GenerateID(SessionIDBytes)
}

// GenerateVoterID creates an opaque voter identifier.
// The server never verifies it; clients store and resend it.
func GenerateVoterID() (string, error) {
	id, err := GenerateID(VoterIDBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter ID: %w", err)
	}
	return id, nil
}
