package budget

import (
	"context"
	"fmt"

	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/domain"
)

// Statistics returns aggregate totals across all budget items.
func (s *Service) Statistics(ctx context.Context) (domain.BudgetStatistics, error) {
	stats, err := s.items.Statistics(ctx)
	if err != nil {
		return domain.BudgetStatistics{}, fmt.Errorf("budget statistics: %w", err)
	}

	return stats, nil
}

// Dashboard assembles the overview projection: totals, per-department and
// per-category rollups, and the most recent items.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	stats, err := s.items.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard statistics: %w", err)
	}

	departments, err := s.items.ByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard departments: %w", err)
	}

	categories, err := s.items.ByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard categories: %w", err)
	}

	items, _, err := s.items.List(ctx, budgetitem.Filter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard items: %w", err)
	}

	return &domain.Dashboard{
		Statistics:  stats,
		Departments: departments,
		Categories:  categories,
		Items:       items,
	}, nil
}
