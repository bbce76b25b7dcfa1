// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateSessionRequest: policyText, statements
  - SubmitVoteRequest: sessionId, voterId, statementIndex, rating
  - GeneratePolicyRequest: topic
  - GenerateStatementsRequest: policyText

# Response Types

  - CreateSessionResponse: sessionId
  - SessionResponse: session, stats, voterVotes
  - SubmitVoteResponse: success
  - IssueVoterResponse: voterId
  - GeneratePolicyResponse / GenerateStatementsResponse
  - ErrorResponse: error

# Domain Types

  - Session: immutable policy text and ordered statements
  - Vote: one voter's current rating of one statement
  - VoteStats / StatementStats: aggregates derived on every read

Map keys in voterVotes and statementStats are statement indexes and
serialize as JSON object keys ("0", "1", ...).

# Constants

	MinRating = 1
	MaxRating = 5
*/
package models
