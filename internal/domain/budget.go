package domain

import (
	"math"
	"time"
)

// BudgetItem is a proposed budget line item. Voting sessions snapshot its
// title and amount at creation time.
type BudgetItem struct {
	ID             int64
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
	Status         BudgetStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BudgetStatistics is an aggregate over all budget items.
type BudgetStatistics struct {
	TotalProposed float64
	TotalApproved float64
	TotalItems    int
	ApprovedItems int
	ProposedItems int
	RejectedItems int
}

// ApprovalPercentage is TotalApproved as a percentage of TotalProposed,
// rounded to two decimals. Zero when nothing has been proposed.
func (s BudgetStatistics) ApprovalPercentage() float64 {
	if s.TotalProposed <= 0 {
		return 0
	}
	return math.Round(s.TotalApproved/s.TotalProposed*100*100) / 100
}

// DepartmentSummary is a per-department budget rollup.
type DepartmentSummary struct {
	Department    string
	TotalAmount   float64
	TotalApproved float64
	ItemCount     int
}

// CategorySummary is a per-category budget rollup.
type CategorySummary struct {
	Category      string
	TotalAmount   float64
	TotalApproved float64
	ItemCount     int
}

// Dashboard bundles the aggregates shown on the overview page.
type Dashboard struct {
	Statistics  BudgetStatistics
	Departments []DepartmentSummary
	Categories  []CategorySummary
	Items       []*BudgetItem
}
