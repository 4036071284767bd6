// Package votingsession implements the VotingSession repository using
// PostgreSQL. The eligible voter list is stored as a JSONB column rather than
// a normalized table: it is small, immutable after creation, and only ever
// read back as a whole.
package votingsession

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/domain"
)

// Repo provides voting session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new voting session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, token, budget_item_id, title, description, amount, voters, is_closed, created_at, updated_at`

const createSQL = `
INSERT INTO voting_sessions (token, budget_item_id, title, description, amount, voters, is_closed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7)
RETURNING ` + sessionColumns

const getByTokenSQL = `
SELECT ` + sessionColumns + `
FROM voting_sessions
WHERE token = $1`

// getByTokenForUpdateSQL locks the session row for the duration of the
// surrounding transaction. It is the serialization point between concurrent
// SubmitVote and CloseSession calls for the same session.
const getByTokenForUpdateSQL = getByTokenSQL + `
FOR UPDATE`

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM voting_sessions
WHERE id = $1`

const closeSQL = `
UPDATE voting_sessions
SET is_closed = TRUE, updated_at = now()
WHERE id = $1 AND is_closed = FALSE`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByToken returns a session by its public token.
// Returns domain.ErrNotFound if no session matches.
func (r *Repo) GetByToken(ctx context.Context, token string) (*domain.VotingSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByTokenSQL, token)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "voting_session", token)
	}

	return session, nil
}

// GetByTokenForUpdate returns a session by token with its row locked
// (SELECT ... FOR UPDATE). Callers must run inside a transaction opened via
// TxManager.RunInTx; outside one the lock is released immediately.
func (r *Repo) GetByTokenForUpdate(ctx context.Context, token string) (*domain.VotingSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByTokenForUpdateSQL, token)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "voting_session", token)
	}

	return session, nil
}

// GetByID returns a session by its internal id.
// Returns domain.ErrNotFound if no session matches.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.VotingSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "voting_session", strconv.FormatInt(id, 10))
	}

	return session, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new voting session and returns the persisted row.
// A unique index on token reports collisions as domain.ErrAlreadyExists so
// the engine can regenerate.
func (r *Repo) Create(ctx context.Context, session *domain.VotingSession) (*domain.VotingSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	votersJSON, err := json.Marshal(session.Voters)
	if err != nil {
		return nil, fmt.Errorf("voting_session %s: marshal voters: %w", session.Token, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.Token,
		session.BudgetItemID,
		session.Title,
		session.Description,
		session.Amount,
		votersJSON,
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "voting_session", session.Token)
	}

	return created, nil
}

// Close marks a session closed. Returns true when this call performed the
// pending → closed transition, false when the session was already closed.
// An already-closed session is not an error: close is idempotent.
func (r *Repo) Close(ctx context.Context, id int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, closeSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "voting_session", strconv.FormatInt(id, 10))
	}

	return ct.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSession scans a single session row from pgx.Row.
func scanSession(row pgx.Row) (*domain.VotingSession, error) {
	var (
		id           int64
		token        string
		budgetItemID int64
		title        string
		description  *string
		amount       float64
		votersJSON   []byte
		isClosed     bool
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(&id, &token, &budgetItemID, &title, &description, &amount, &votersJSON, &isClosed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	voters, err := unmarshalVoters(votersJSON)
	if err != nil {
		return nil, fmt.Errorf("voting_session %s: %w", token, err)
	}

	return &domain.VotingSession{
		ID:           id,
		Token:        token,
		BudgetItemID: budgetItemID,
		Title:        title,
		Description:  description,
		Amount:       amount,
		Voters:       voters,
		Closed:       isClosed,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// unmarshalVoters converts the JSONB voters column to a domain.VoterList.
func unmarshalVoters(data []byte) (domain.VoterList, error) {
	if len(data) == 0 {
		return domain.VoterList{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("unmarshal voters: %w", err)
	}

	return domain.VoterList(names), nil
}
