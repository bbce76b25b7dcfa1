// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and token generation.

There is no authentication in this service. Session IDs act as share
links and voter IDs are opaque tokens the client keeps and resends.

# Session IDs

	id, err := auth.GenerateSessionID()  // 32 hex characters (128 bits)

# Voter IDs

	voterID, err := auth.GenerateVoterID()  // 16 hex characters

# ID Generation

Random hex IDs of any width:

	id, err := auth.GenerateID(16)
*/
package auth
