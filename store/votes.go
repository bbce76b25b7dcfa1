// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/deliberation/models"
)

// SubmitVote records voterID's rating of one statement, replacing any
// earlier rating for the same (session, voter, statement).
//
// The write is a single INSERT ... ON CONFLICT, so racing submissions for
// one key never produce two rows. The final rating is whichever write the
// database commits last; client clocks play no part.
func (s *Store) SubmitVote(ctx context.Context, sessionID, voterID string, statementIndex, rating int) error {
	if sessionID == "" || voterID == "" {
		return fmt.Errorf("%w: session ID and voter ID are required", ErrValidation)
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	session, found, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	if statementIndex < 0 || statementIndex >= len(session.Statements) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, statementIndex, len(session.Statements))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO votes (session_id, statement_index, rating, voter_id, voted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, voter_id, statement_index) DO UPDATE SET
			rating = excluded.rating,
			voted_at = excluded.voted_at
	`, sessionID, statementIndex, rating, voterID, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: upsert vote: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// GetVotesForSession returns every current vote in a session.
func (s *Store) GetVotesForSession(ctx context.Context, sessionID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, voter_id, statement_index, rating, voted_at
		FROM votes
		WHERE session_id = $1
		ORDER BY statement_index, voter_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: query votes: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var votedAt int64
		if err := rows.Scan(&v.SessionID, &v.VoterID, &v.StatementIndex, &v.Rating, &votedAt); err != nil {
			return nil, fmt.Errorf("%w: scan vote: %w", ErrStoreUnavailable, err)
		}
		v.VotedAt = time.UnixMilli(votedAt).UTC()
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate votes: %w", ErrStoreUnavailable, err)
	}

	return votes, nil
}

// GetVoterVotes returns one voter's ratings keyed by statement index, so a
// returning client can restore its own choices.
func (s *Store) GetVoterVotes(ctx context.Context, sessionID, voterID string) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT statement_index, rating
		FROM votes
		WHERE session_id = $1 AND voter_id = $2
	`, sessionID, voterID)
	if err != nil {
		return nil, fmt.Errorf("%w: query voter votes: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	ratings := make(map[int]int)
	for rows.Next() {
		var index, rating int
		if err := rows.Scan(&index, &rating); err != nil {
			return nil, fmt.Errorf("%w: scan voter vote: %w", ErrStoreUnavailable, err)
		}
		ratings[index] = rating
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate voter votes: %w", ErrStoreUnavailable, err)
	}

	return ratings, nil
}
