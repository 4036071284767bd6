package domain

// VoteChoice represents a voter's decision on a budget line item.
type VoteChoice string

const (
	VoteChoiceApproved VoteChoice = "approved"
	VoteChoiceRejected VoteChoice = "rejected"
	VoteChoicePartial  VoteChoice = "partial"
)

func (c VoteChoice) String() string { return string(c) }

func (c VoteChoice) IsValid() bool {
	switch c {
	case VoteChoiceApproved, VoteChoiceRejected, VoteChoicePartial:
		return true
	}
	return false
}

// SessionStatus is the lifecycle state of a voting session.
// It is derived from the closed flag; the flag is the single source of truth.
type SessionStatus string

const (
	SessionStatusPending SessionStatus = "pending"
	SessionStatusClosed  SessionStatus = "closed"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusPending, SessionStatusClosed:
		return true
	}
	return false
}

// BudgetStatus is the approval state of a budget line item.
type BudgetStatus string

const (
	BudgetStatusProposed BudgetStatus = "proposed"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

func (s BudgetStatus) String() string { return string(s) }

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusProposed, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}
