package domain

// VotingResults is the aggregate outcome of a session, derived from the vote
// ledger at call time. It is a pure projection: computing it never mutates
// state and it is valid for both open and closed sessions.
type VotingResults struct {
	Session *VotingSession
	Votes   []*Vote

	TotalVotes    int
	ApprovedCount int
	RejectedCount int
	PartialCount  int

	// AverageSuggestedAmount is the arithmetic mean of suggested amounts over
	// partial votes with a positive amount. Zero when no such votes exist.
	AverageSuggestedAmount float64
}

// ComputeResults tallies the ledger for a session.
func ComputeResults(session *VotingSession, votes []*Vote) *VotingResults {
	r := &VotingResults{
		Session:    session,
		Votes:      votes,
		TotalVotes: len(votes),
	}

	var sum float64
	var n int

	for _, v := range votes {
		switch v.Choice {
		case VoteChoiceApproved:
			r.ApprovedCount++
		case VoteChoiceRejected:
			r.RejectedCount++
		case VoteChoicePartial:
			r.PartialCount++
		}

		if v.Choice == VoteChoicePartial && v.SuggestedAmount != nil && *v.SuggestedAmount > 0 {
			sum += *v.SuggestedAmount
			n++
		}
	}

	if n > 0 {
		r.AverageSuggestedAmount = sum / float64(n)
	}

	return r
}
