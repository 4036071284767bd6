package voting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// CloseSession transitions a session from pending to closed. The transition
// is terminal: nothing in this service ever reopens a session. Closing an
// already-closed session is a successful no-op, so a double-submitted close
// button never surfaces an error.
func (s *Service) CloseSession(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.NewValidationError("token", "required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	transitioned, err := s.sessions.Close(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	s.log.InfoContext(ctx, "voting session closed",
		slog.String("token", token),
		slog.Bool("already_closed", !transitioned),
	)

	return nil
}
