package domain

import "testing"

func fptr(f float64) *float64 { return &f }

func TestComputeResults_Counts(t *testing.T) {
	t.Parallel()

	session := &VotingSession{ID: 1, Token: "ab12cd34"}
	votes := []*Vote{
		{VoterName: "A", Choice: VoteChoiceApproved},
		{VoterName: "B", Choice: VoteChoiceApproved},
		{VoterName: "C", Choice: VoteChoiceRejected},
		{VoterName: "D", Choice: VoteChoicePartial, SuggestedAmount: fptr(1000)},
		{VoterName: "E", Choice: VoteChoicePartial, SuggestedAmount: fptr(3000)},
	}

	r := ComputeResults(session, votes)

	if r.TotalVotes != 5 {
		t.Errorf("TotalVotes: got %d, want 5", r.TotalVotes)
	}
	if r.ApprovedCount != 2 {
		t.Errorf("ApprovedCount: got %d, want 2", r.ApprovedCount)
	}
	if r.RejectedCount != 1 {
		t.Errorf("RejectedCount: got %d, want 1", r.RejectedCount)
	}
	if r.PartialCount != 2 {
		t.Errorf("PartialCount: got %d, want 2", r.PartialCount)
	}
	if r.AverageSuggestedAmount != 2000 {
		t.Errorf("AverageSuggestedAmount: got %v, want 2000", r.AverageSuggestedAmount)
	}
}

func TestComputeResults_NoPartialVotes(t *testing.T) {
	t.Parallel()

	session := &VotingSession{ID: 1}
	votes := []*Vote{
		{VoterName: "A", Choice: VoteChoiceApproved},
		{VoterName: "B", Choice: VoteChoiceRejected},
	}

	r := ComputeResults(session, votes)

	if r.AverageSuggestedAmount != 0 {
		t.Errorf("AverageSuggestedAmount: got %v, want 0", r.AverageSuggestedAmount)
	}
	if r.TotalVotes != 2 {
		t.Errorf("TotalVotes: got %d, want 2", r.TotalVotes)
	}
}

func TestComputeResults_AverageIgnoresNonPartialAmounts(t *testing.T) {
	t.Parallel()

	// The engine drops amounts on approve/reject before storage, but the
	// tally must hold for arbitrary ledgers too: only partial votes count
	// toward the average.
	session := &VotingSession{ID: 1}
	votes := []*Vote{
		{VoterName: "A", Choice: VoteChoiceApproved, SuggestedAmount: fptr(99999)},
		{VoterName: "B", Choice: VoteChoiceRejected, SuggestedAmount: fptr(1)},
		{VoterName: "C", Choice: VoteChoicePartial, SuggestedAmount: fptr(4000)},
		{VoterName: "D", Choice: VoteChoicePartial, SuggestedAmount: fptr(2000)},
	}

	r := ComputeResults(session, votes)

	if r.AverageSuggestedAmount != 3000 {
		t.Errorf("AverageSuggestedAmount: got %v, want 3000 (partial votes only)", r.AverageSuggestedAmount)
	}
}

func TestComputeResults_EmptyLedger(t *testing.T) {
	t.Parallel()

	r := ComputeResults(&VotingSession{ID: 1}, nil)

	if r.TotalVotes != 0 || r.ApprovedCount != 0 || r.RejectedCount != 0 || r.PartialCount != 0 {
		t.Errorf("expected all counts zero, got %+v", r)
	}
	if r.AverageSuggestedAmount != 0 {
		t.Errorf("AverageSuggestedAmount: got %v, want 0", r.AverageSuggestedAmount)
	}
}

func TestSessionStatus_DerivedFromClosed(t *testing.T) {
	t.Parallel()

	s := &VotingSession{}
	if got := s.Status(); got != SessionStatusPending {
		t.Errorf("Status: got %s, want %s", got, SessionStatusPending)
	}

	s.Closed = true
	if got := s.Status(); got != SessionStatusClosed {
		t.Errorf("Status: got %s, want %s", got, SessionStatusClosed)
	}
}

func TestVoteChoice_IsValid(t *testing.T) {
	t.Parallel()

	valid := []VoteChoice{VoteChoiceApproved, VoteChoiceRejected, VoteChoicePartial}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", c)
		}
	}

	invalid := []VoteChoice{"", "abstain", "APPROVED"}
	for _, c := range invalid {
		if c.IsValid() {
			t.Errorf("IsValid(%s) = true, want false", c)
		}
	}
}

func TestBudgetStatistics_ApprovalPercentage(t *testing.T) {
	t.Parallel()

	s := BudgetStatistics{TotalProposed: 3000, TotalApproved: 1000}
	if got := s.ApprovalPercentage(); got != 33.33 {
		t.Errorf("ApprovalPercentage: got %v, want 33.33", got)
	}

	zero := BudgetStatistics{}
	if got := zero.ApprovalPercentage(); got != 0 {
		t.Errorf("ApprovalPercentage on empty: got %v, want 0", got)
	}
}
