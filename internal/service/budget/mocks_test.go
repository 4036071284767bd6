package budget

import (
	"context"
	"sync"

	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc       func(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.BudgetItem, error)
	UpdateFunc       func(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error)
	DeleteFunc       func(ctx context.Context, id int64) error
	ListFunc         func(ctx context.Context, filter budgetitem.Filter) ([]*domain.BudgetItem, int, error)
	StatisticsFunc   func(ctx context.Context) (domain.BudgetStatistics, error)
	ByDepartmentFunc func(ctx context.Context) ([]domain.DepartmentSummary, error)
	ByCategoryFunc   func(ctx context.Context) ([]domain.CategorySummary, error)

	calls struct {
		Create []struct {
			Item *domain.BudgetItem
		}
		GetByID []struct {
			ID int64
		}
		Update []struct {
			Item *domain.BudgetItem
		}
		Delete []struct {
			ID int64
		}
		List []struct {
			Filter budgetitem.Filter
		}
	}
	mu sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Item *domain.BudgetItem
	}{Item: item})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Item *domain.BudgetItem
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id int64) (*domain.BudgetItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID int64
	}{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

func (mock *itemRepoMock) Update(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Item *domain.BudgetItem
	}{Item: item})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Item *domain.BudgetItem
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *itemRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID int64
	}{ID: id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}

func (mock *itemRepoMock) List(ctx context.Context, filter budgetitem.Filter) ([]*domain.BudgetItem, int, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Filter budgetitem.Filter
	}{Filter: filter})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Filter budgetitem.Filter
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *itemRepoMock) Statistics(ctx context.Context) (domain.BudgetStatistics, error) {
	if mock.StatisticsFunc == nil {
		panic("itemRepoMock.StatisticsFunc: method is nil but itemRepo.Statistics was just called")
	}
	return mock.StatisticsFunc(ctx)
}

func (mock *itemRepoMock) ByDepartment(ctx context.Context) ([]domain.DepartmentSummary, error) {
	if mock.ByDepartmentFunc == nil {
		panic("itemRepoMock.ByDepartmentFunc: method is nil but itemRepo.ByDepartment was just called")
	}
	return mock.ByDepartmentFunc(ctx)
}

func (mock *itemRepoMock) ByCategory(ctx context.Context) ([]domain.CategorySummary, error) {
	if mock.ByCategoryFunc == nil {
		panic("itemRepoMock.ByCategoryFunc: method is nil but itemRepo.ByCategory was just called")
	}
	return mock.ByCategoryFunc(ctx)
}
