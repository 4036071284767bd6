package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// GetSession returns a session by its public token.
func (s *Service) GetSession(ctx context.Context, token string) (*domain.VotingSession, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}
