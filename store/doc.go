// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists sessions and votes and aggregates vote statistics.

# Sessions

	id, err := st.CreateSession(ctx, policyText, statements)
	session, found, err := st.GetSession(ctx, id)

Sessions are written once and never modified. A statement's index in
Statements is its identity for voting.

# Votes

	err := st.SubmitVote(ctx, sessionID, voterID, statementIndex, rating)

Each (session, voter, statement) has at most one row. Resubmitting
replaces the rating and timestamp through an atomic upsert; when two
submissions race, the last one committed by the database wins.

# Statistics

	stats, err := st.GetVoteStats(ctx, sessionID)

Statistics are recomputed from raw votes on every call: per-statement
count and average (rounded to 2 places), distinct voter count, and total
vote rows.

# Errors

Failures wrap one of ErrValidation, ErrNotFound, ErrInvalidRating,
ErrInvalidIndex or ErrStoreUnavailable; test with errors.Is.
*/
package store
