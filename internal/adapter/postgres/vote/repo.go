// Package vote implements the vote ledger repository using PostgreSQL.
// Uniqueness per (session, voter name) is enforced by a unique index on
// (voting_session_id, lower(voter_name)) and a single atomic
// INSERT ... ON CONFLICT DO UPDATE statement.
package vote

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/domain"
)

// Repo provides vote ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const voteColumns = `id, voting_session_id, voter_name, voter_email, choice, suggested_amount, comment, voted_at`

// upsertSQL is a single atomic insert-or-replace keyed on the lowercased
// voter name. (xmax = 0) distinguishes a fresh insert from a conflict update.
const upsertSQL = `
INSERT INTO votes (voting_session_id, voter_name, voter_email, choice, suggested_amount, comment, voted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (voting_session_id, lower(voter_name)) DO UPDATE
SET voter_name       = EXCLUDED.voter_name,
    voter_email      = EXCLUDED.voter_email,
    choice           = EXCLUDED.choice,
    suggested_amount = EXCLUDED.suggested_amount,
    comment          = EXCLUDED.comment,
    voted_at         = EXCLUDED.voted_at
RETURNING ` + voteColumns + `, (xmax = 0) AS inserted`

const listBySessionSQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE voting_session_id = $1
ORDER BY voted_at, id`

const countBySessionSQL = `
SELECT count(*) FROM votes WHERE voting_session_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the vote, or replaces the existing vote by the same voter
// name (case-insensitive) in the same session. Returns the persisted vote and
// whether a new row was inserted (false = an existing vote was replaced).
func (r *Repo) Upsert(ctx context.Context, v *domain.Vote) (*domain.Vote, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, upsertSQL,
		v.VotingSessionID,
		v.VoterName,
		v.VoterEmail,
		string(v.Choice),
		v.SuggestedAmount,
		v.Comment,
		now,
	)

	saved, inserted, err := scanVoteWithInserted(row)
	if err != nil {
		return nil, false, postgres.MapError(err, "vote", v.VoterName)
	}

	return saved, inserted, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListBySession returns all votes for a session ordered by submission time.
func (r *Repo) ListBySession(ctx context.Context, sessionID int64) ([]*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, postgres.MapError(err, "votes", strconv.FormatInt(sessionID, 10))
	}
	defer rows.Close()

	votes, err := scanVotes(rows)
	if err != nil {
		return nil, postgres.MapError(err, "votes", strconv.FormatInt(sessionID, 10))
	}

	return votes, nil
}

// CountBySession returns the number of votes recorded for a session.
func (r *Repo) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countBySessionSQL, sessionID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "votes", strconv.FormatInt(sessionID, 10))
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanVoteWithInserted(row pgx.Row) (*domain.Vote, bool, error) {
	var (
		v        domain.Vote
		choice   string
		inserted bool
	)

	if err := row.Scan(
		&v.ID,
		&v.VotingSessionID,
		&v.VoterName,
		&v.VoterEmail,
		&choice,
		&v.SuggestedAmount,
		&v.Comment,
		&v.VotedAt,
		&inserted,
	); err != nil {
		return nil, false, err
	}

	v.Choice = domain.VoteChoice(choice)

	return &v, inserted, nil
}

func scanVotes(rows pgx.Rows) ([]*domain.Vote, error) {
	votes := []*domain.Vote{}

	for rows.Next() {
		var (
			v      domain.Vote
			choice string
		)

		if err := rows.Scan(
			&v.ID,
			&v.VotingSessionID,
			&v.VoterName,
			&v.VoterEmail,
			&choice,
			&v.SuggestedAmount,
			&v.Comment,
			&v.VotedAt,
		); err != nil {
			return nil, err
		}

		v.Choice = domain.VoteChoice(choice)
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return votes, nil
}
