package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/domain"
)

// CreateItem creates a new budget line item.
func (s *Service) CreateItem(ctx context.Context, input ItemInput) (*domain.BudgetItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}

	s.log.InfoContext(ctx, "budget item created",
		slog.Int64("id", item.ID),
		slog.String("item", item.Item),
		slog.Float64("amount", item.Amount),
	)

	return item, nil
}

// GetItem returns a budget item by id.
func (s *Service) GetItem(ctx context.Context, id int64) (*domain.BudgetItem, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get budget item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces all mutable fields of a budget item.
func (s *Service) UpdateItem(ctx context.Context, id int64, input ItemInput) (*domain.BudgetItem, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := input.toDomain()
	item.ID = id

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}

	s.log.InfoContext(ctx, "budget item updated", slog.Int64("id", id))

	return updated, nil
}

// DeleteItem removes a budget item.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}

	s.log.InfoContext(ctx, "budget item deleted", slog.Int64("id", id))

	return nil
}

// ListItems returns budget items matching the filter plus the total count.
func (s *Service) ListItems(ctx context.Context, filter budgetitem.Filter) ([]*domain.BudgetItem, int, error) {
	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list budget items: %w", err)
	}

	return items, total, nil
}
