package budgetitem

import "github.com/budgetms/budgetvote/internal/domain"

// Filter defines parameters for searching and paginating budget items.
type Filter struct {
	// Search performs ILIKE '%...%' on item and category.
	// nil or empty string means no text filter.
	Search *string

	// Category filters items with the exact category.
	Category *string

	// Department filters items belonging to the given department.
	Department *string

	// Status filters items with the given approval status.
	Status *domain.BudgetStatus

	// SortBy determines the sort column: "item", "amount", "created_at",
	// "updated_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of items to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of items to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByItem      = "item"
	sortByAmount    = "amount"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByItem, sortByAmount, sortByCreatedAt, sortByUpdatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
