// Package budget implements budget line item management: CRUD, filtered
// listing, and the aggregate statistics shown on the dashboard.
package budget

import (
	"context"
	"log/slog"

	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error)
	GetByID(ctx context.Context, id int64) (*domain.BudgetItem, error)
	Update(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter budgetitem.Filter) ([]*domain.BudgetItem, int, error)
	Statistics(ctx context.Context) (domain.BudgetStatistics, error)
	ByDepartment(ctx context.Context) ([]domain.DepartmentSummary, error)
	ByCategory(ctx context.Context) ([]domain.CategorySummary, error)
}

// Service provides budget item operations.
type Service struct {
	items itemRepo
	log   *slog.Logger
}

// NewService creates a new budget Service.
func NewService(log *slog.Logger, items itemRepo) *Service {
	return &Service{
		items: items,
		log:   log.With("service", "budget"),
	}
}
