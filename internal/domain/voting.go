package domain

import "time"

// VotingSession is a closed-ballot vote on a single budget line item.
// Title, description, and amount are snapshots of the budget item as it was
// when the session opened; they are never re-synced.
type VotingSession struct {
	ID           int64
	Token        string
	BudgetItemID int64
	Title        string
	Description  *string
	Amount       float64
	Voters       VoterList
	Closed       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status derives the display status from the closed flag.
func (s *VotingSession) Status() SessionStatus {
	if s.Closed {
		return SessionStatusClosed
	}
	return SessionStatusPending
}

// Vote is a single voter's ballot in a session. At most one vote exists per
// (session, voter name) pair, case-insensitive; resubmission replaces it.
type Vote struct {
	ID              int64
	VotingSessionID int64
	VoterName       string
	VoterEmail      *string
	Choice          VoteChoice
	SuggestedAmount *float64
	Comment         *string
	VotedAt         time.Time
}
