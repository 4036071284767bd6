package budget

import (
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// ItemInput holds the parameters for creating or updating a budget item.
type ItemInput struct {
	Category       string
	Item           string
	Description    *string
	Department     *string
	Division       *string
	Amount         float64
	ApprovedAmount float64
	Notes          *string
	Benefits       *string
	Worthiness     *string
	Status         domain.BudgetStatus
}

// Validate checks all fields and collects all errors.
func (i ItemInput) Validate() error {
	var errs []domain.FieldError

	category := strings.TrimSpace(i.Category)
	if category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(category) > 100 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}

	item := strings.TrimSpace(i.Item)
	if item == "" {
		errs = append(errs, domain.FieldError{Field: "item", Message: "required"})
	}
	if len(item) > 200 {
		errs = append(errs, domain.FieldError{Field: "item", Message: "max 200 characters"})
	}

	if i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.ApprovedAmount < 0 {
		errs = append(errs, domain.FieldError{Field: "approved_amount", Message: "must not be negative"})
	}

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be proposed, approved, or rejected"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toDomain converts the input to a domain item, applying trims and defaults.
func (i ItemInput) toDomain() *domain.BudgetItem {
	status := i.Status
	if status == "" {
		status = domain.BudgetStatusProposed
	}

	return &domain.BudgetItem{
		Category:       strings.TrimSpace(i.Category),
		Item:           strings.TrimSpace(i.Item),
		Description:    trimOrNil(i.Description),
		Department:     trimOrNil(i.Department),
		Division:       trimOrNil(i.Division),
		Amount:         i.Amount,
		ApprovedAmount: i.ApprovedAmount,
		Notes:          trimOrNil(i.Notes),
		Benefits:       trimOrNil(i.Benefits),
		Worthiness:     trimOrNil(i.Worthiness),
		Status:         status,
	}
}

// trimOrNil trims whitespace. Returns nil if the value is absent or empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
