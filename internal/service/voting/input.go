package voting

import (
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// CreateSessionInput holds the parameters for opening a voting session.
// Title, description, and amount are the budget item snapshot as proposed at
// vote-open time.
type CreateSessionInput struct {
	BudgetItemID int64
	Title        string
	Description  *string
	Amount       float64
	Voters       []string
}

// Validate checks all fields and collects all errors. Voter list emptiness is
// re-checked after de-duplication in CreateSession.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.BudgetItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "budget_item_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(i.Voters) == 0 {
		errs = append(errs, domain.FieldError{Field: "voters", Message: "at least one voter required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitVoteInput holds the parameters for casting (or recasting) a vote.
type SubmitVoteInput struct {
	Token           string
	VoterName       string
	VoterEmail      *string
	Choice          domain.VoteChoice
	SuggestedAmount *float64
	Comment         *string
}

// Validate checks the structural fields. The partial-amount rule is enforced
// inside SubmitVote after the session gates, in gate order.
func (i SubmitVoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Token) == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}

	name := strings.TrimSpace(i.VoterName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "voter_name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "voter_name", Message: "max 100 characters"})
	}

	if !i.Choice.IsValid() {
		errs = append(errs, domain.FieldError{Field: "choice", Message: "must be approved, rejected, or partial"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
