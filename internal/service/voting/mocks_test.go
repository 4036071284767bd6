package voting

import (
	"context"
	"sync"

	"github.com/budgetms/budgetvote/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc              func(ctx context.Context, session *domain.VotingSession) (*domain.VotingSession, error)
	GetByTokenFunc          func(ctx context.Context, token string) (*domain.VotingSession, error)
	GetByTokenForUpdateFunc func(ctx context.Context, token string) (*domain.VotingSession, error)
	CloseFunc               func(ctx context.Context, id int64) (bool, error)

	calls struct {
		Create []struct {
			Session *domain.VotingSession
		}
		GetByToken []struct {
			Token string
		}
		GetByTokenForUpdate []struct {
			Token string
		}
		Close []struct {
			ID int64
		}
	}
	mu sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.VotingSession) (*domain.VotingSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Session *domain.VotingSession
	}{Session: session})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Session *domain.VotingSession
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) GetByToken(ctx context.Context, token string) (*domain.VotingSession, error) {
	if mock.GetByTokenFunc == nil {
		panic("sessionRepoMock.GetByTokenFunc: method is nil but sessionRepo.GetByToken was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, struct {
		Token string
	}{Token: token})
	mock.mu.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *sessionRepoMock) GetByTokenCalls() []struct {
	Token string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByToken
}

func (mock *sessionRepoMock) GetByTokenForUpdate(ctx context.Context, token string) (*domain.VotingSession, error) {
	if mock.GetByTokenForUpdateFunc == nil {
		panic("sessionRepoMock.GetByTokenForUpdateFunc: method is nil but sessionRepo.GetByTokenForUpdate was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByTokenForUpdate = append(mock.calls.GetByTokenForUpdate, struct {
		Token string
	}{Token: token})
	mock.mu.Unlock()
	return mock.GetByTokenForUpdateFunc(ctx, token)
}

func (mock *sessionRepoMock) GetByTokenForUpdateCalls() []struct {
	Token string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByTokenForUpdate
}

func (mock *sessionRepoMock) Close(ctx context.Context, id int64) (bool, error) {
	if mock.CloseFunc == nil {
		panic("sessionRepoMock.CloseFunc: method is nil but sessionRepo.Close was just called")
	}
	mock.mu.Lock()
	mock.calls.Close = append(mock.calls.Close, struct {
		ID int64
	}{ID: id})
	mock.mu.Unlock()
	return mock.CloseFunc(ctx, id)
}

func (mock *sessionRepoMock) CloseCalls() []struct {
	ID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Close
}

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	UpsertFunc        func(ctx context.Context, vote *domain.Vote) (*domain.Vote, bool, error)
	ListBySessionFunc func(ctx context.Context, sessionID int64) ([]*domain.Vote, error)

	calls struct {
		Upsert []struct {
			Vote *domain.Vote
		}
		ListBySession []struct {
			SessionID int64
		}
	}
	mu sync.RWMutex
}

func (mock *voteRepoMock) Upsert(ctx context.Context, vote *domain.Vote) (*domain.Vote, bool, error) {
	if mock.UpsertFunc == nil {
		panic("voteRepoMock.UpsertFunc: method is nil but voteRepo.Upsert was just called")
	}
	mock.mu.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		Vote *domain.Vote
	}{Vote: vote})
	mock.mu.Unlock()
	return mock.UpsertFunc(ctx, vote)
}

func (mock *voteRepoMock) UpsertCalls() []struct {
	Vote *domain.Vote
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Upsert
}

func (mock *voteRepoMock) ListBySession(ctx context.Context, sessionID int64) ([]*domain.Vote, error) {
	if mock.ListBySessionFunc == nil {
		panic("voteRepoMock.ListBySessionFunc: method is nil but voteRepo.ListBySession was just called")
	}
	mock.mu.Lock()
	mock.calls.ListBySession = append(mock.calls.ListBySession, struct {
		SessionID int64
	}{SessionID: sessionID})
	mock.mu.Unlock()
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *voteRepoMock) ListBySessionCalls() []struct {
	SessionID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListBySession
}

var _ budgetItemGetter = &budgetItemGetterMock{}

type budgetItemGetterMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.BudgetItem, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
	}
	mu sync.RWMutex
}

func (mock *budgetItemGetterMock) GetByID(ctx context.Context, id int64) (*domain.BudgetItem, error) {
	if mock.GetByIDFunc == nil {
		panic("budgetItemGetterMock.GetByIDFunc: method is nil but budgetItemGetter.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID int64
	}{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *budgetItemGetterMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
