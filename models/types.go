package models

import "time"

// Rating bounds (inclusive)
const (
	MinRating = 1
	MaxRating = 5
)

// Request types

type CreateSessionRequest struct {
	PolicyText string   `json:"policyText"`
	Statements []string `json:"statements"`
}

// StatementIndex and Rating are pointers so a missing field can be told
// apart from an explicit zero.
type SubmitVoteRequest struct {
	SessionID      string `json:"sessionId"`
	VoterID        string `json:"voterId"`
	StatementIndex *int   `json:"statementIndex"`
	Rating         *int   `json:"rating"`
}

type GeneratePolicyRequest struct {
	Topic string `json:"topic"`
}

type GenerateStatementsRequest struct {
	PolicyText string `json:"policyText"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// statement_index -> rating
type SessionResponse struct {
	Session    Session     `json:"session"`
	Stats      VoteStats   `json:"stats"`
	VoterVotes map[int]int `json:"voterVotes"`
}

type SubmitVoteResponse struct {
	Success bool `json:"success"`
}

type IssueVoterResponse struct {
	VoterID string `json:"voterId"`
}

type GeneratePolicyResponse struct {
	PolicyText string `json:"policyText"`
}

type GenerateStatementsResponse struct {
	Statements []string `json:"statements"`
}

// Domain types

type Session struct {
	ID         string    `json:"id"`
	PolicyText string    `json:"policyText"`
	Statements []string  `json:"statements"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Vote struct {
	SessionID      string    `json:"sessionId"`
	VoterID        string    `json:"-"` // Never expose in JSON
	StatementIndex int       `json:"statementIndex"`
	Rating         int       `json:"rating"`
	VotedAt        time.Time `json:"votedAt"`
}

// Aggregate types

type StatementStats struct {
	Count   int     `json:"count"`
	Sum     int     `json:"-"`
	Average float64 `json:"average"` // rounded to 2 decimal places
}

// Statements with no votes are absent from StatementStats.
type VoteStats struct {
	StatementStats map[int]StatementStats `json:"statementStats"`
	VoterCount     int                    `json:"voterCount"`
	TotalVotes     int                    `json:"totalVotes"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
