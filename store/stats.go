// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"math"

	"github.com/danielhkuo/deliberation/models"
)

// GetVoteStats recomputes aggregate statistics from the session's current
// votes. Nothing is cached; every call reads the votes table.
func (s *Store) GetVoteStats(ctx context.Context, sessionID string) (models.VoteStats, error) {
	votes, err := s.GetVotesForSession(ctx, sessionID)
	if err != nil {
		return models.VoteStats{}, err
	}
	return Aggregate(votes), nil
}

// Aggregate derives per-statement and per-session statistics from a set
// of votes. Statements without votes are left out of StatementStats.
func Aggregate(votes []models.Vote) models.VoteStats {
	stats := models.VoteStats{
		StatementStats: make(map[int]models.StatementStats),
		TotalVotes:     len(votes),
	}

	voters := make(map[string]struct{})
	for _, v := range votes {
		voters[v.VoterID] = struct{}{}

		st := stats.StatementStats[v.StatementIndex]
		st.Count++
		st.Sum += v.Rating
		stats.StatementStats[v.StatementIndex] = st
	}

	for index, st := range stats.StatementStats {
		st.Average = roundTo2(float64(st.Sum) / float64(st.Count))
		stats.StatementStats[index] = st
	}
	stats.VoterCount = len(voters)

	return stats
}

func roundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}
