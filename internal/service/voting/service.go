// Package voting implements the voting engine: session lifecycle, voter
// eligibility enforcement, idempotent vote submission, irreversible close,
// and result aggregation.
package voting

import (
	"context"
	"log/slog"

	"github.com/budgetms/budgetvote/internal/config"
	"github.com/budgetms/budgetvote/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, session *domain.VotingSession) (*domain.VotingSession, error)
	GetByToken(ctx context.Context, token string) (*domain.VotingSession, error)
	GetByTokenForUpdate(ctx context.Context, token string) (*domain.VotingSession, error)
	Close(ctx context.Context, id int64) (bool, error)
}

type voteRepo interface {
	Upsert(ctx context.Context, vote *domain.Vote) (*domain.Vote, bool, error)
	ListBySession(ctx context.Context, sessionID int64) ([]*domain.Vote, error)
}

type budgetItemGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.BudgetItem, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides voting session operations.
type Service struct {
	sessions sessionRepo
	votes    voteRepo
	items    budgetItemGetter
	tx       txManager
	cfg      config.VotingConfig
	log      *slog.Logger
}

// NewService creates a new voting Service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	votes voteRepo,
	items budgetItemGetter,
	tx txManager,
	cfg config.VotingConfig,
) *Service {
	return &Service{
		sessions: sessions,
		votes:    votes,
		items:    items,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "voting"),
	}
}
