package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// GetResults tallies the vote ledger for a session. It is a read-side
// projection computed from the ledger at call time — never cached — and is
// valid whether the session is open or closed.
func (s *Service) GetResults(ctx context.Context, token string) (*domain.VotingResults, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	votes, err := s.votes.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	return domain.ComputeResults(session, votes), nil
}
