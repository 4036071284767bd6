package voting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/budgetms/budgetvote/internal/domain"
)

// SubmitResult reports the outcome of a vote submission. Inserted is false
// when an existing vote by the same voter was replaced.
type SubmitResult struct {
	Vote     *domain.Vote
	Inserted bool
}

// SubmitVote validates and records a vote. Gates, in order: session must
// exist, must be open, the voter must be on the eligibility list, and a
// partial choice must carry a positive suggested amount. The open-check and
// the ledger upsert run in one transaction with the session row locked, so a
// vote can never be recorded after a close has committed.
func (s *Service) SubmitVote(ctx context.Context, input SubmitVoteInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	voterName := strings.TrimSpace(input.VoterName)

	var result SubmitResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByTokenForUpdate(txCtx, input.Token)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		if session.Closed {
			return fmt.Errorf("session %s: %w", session.Token, domain.ErrSessionClosed)
		}

		if !session.Voters.Contains(voterName) {
			return fmt.Errorf("session %s, voter %q: %w", session.Token, voterName, domain.ErrNotEligible)
		}

		suggested := input.SuggestedAmount
		if input.Choice == domain.VoteChoicePartial {
			if suggested == nil || *suggested <= 0 {
				return domain.NewValidationError("suggested_amount", "required and must be greater than zero for partial votes")
			}
		} else {
			// Superfluous amounts on approve/reject are dropped, not rejected.
			suggested = nil
		}

		vote := &domain.Vote{
			VotingSessionID: session.ID,
			VoterName:       voterName,
			VoterEmail:      trimOrNil(input.VoterEmail),
			Choice:          input.Choice,
			SuggestedAmount: suggested,
			Comment:         trimOrNil(input.Comment),
		}

		saved, inserted, err := s.votes.Upsert(txCtx, vote)
		if err != nil {
			return fmt.Errorf("upsert vote: %w", err)
		}

		result = SubmitResult{Vote: saved, Inserted: inserted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vote recorded",
		slog.String("token", input.Token),
		slog.String("choice", input.Choice.String()),
		slog.Bool("inserted", result.Inserted),
	)

	return &result, nil
}

// trimOrNil trims whitespace. Returns nil if the value is absent or empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
