package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetms/budgetvote/internal/domain"
)

// maxTokenAttempts bounds token regeneration on collision. With 8 hex chars
// and a unique index, a second collision in a row is already astronomically
// unlikely.
const maxTokenAttempts = 5

// CreateSession opens a new voting session for a budget item and returns its
// public token. The voter list is de-duplicated case-insensitively before
// storage; the session starts pending.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.VotingSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	voters := domain.NewVoterList(input.Voters)
	if len(voters) == 0 {
		return nil, domain.NewValidationError("voters", "at least one non-blank voter required")
	}
	if len(voters) > s.cfg.MaxVoters {
		return nil, domain.NewValidationError("voters", fmt.Sprintf("max %d voters per session", s.cfg.MaxVoters))
	}

	// The budget item must exist at creation time; its fields are snapshotted
	// from the input and never re-synced afterwards.
	if _, err := s.items.GetByID(ctx, input.BudgetItemID); err != nil {
		return nil, fmt.Errorf("get budget item: %w", err)
	}

	session := &domain.VotingSession{
		BudgetItemID: input.BudgetItemID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Amount:       input.Amount,
		Voters:       voters,
	}

	var created *domain.VotingSession
	var err error

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		// Fresh copy per attempt: the repo must never see a struct that a
		// later retry mutates.
		candidate := *session
		candidate.Token = s.newToken()

		created, err = s.sessions.Create(ctx, &candidate)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create session: token collisions exhausted: %w", err)
	}

	s.log.InfoContext(ctx, "voting session created",
		slog.String("token", created.Token),
		slog.Int64("budget_item_id", created.BudgetItemID),
		slog.Int("voters", len(created.Voters)),
	)

	return created, nil
}

// newToken generates a short hexadecimal session token from a v4 UUID.
// Uniqueness is ultimately guaranteed by the token index, not the generator.
func (s *Service) newToken() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	n := s.cfg.TokenLength
	if n <= 0 || n > len(hex) {
		n = 8
	}
	return hex[:n]
}
