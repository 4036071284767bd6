package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/budgetms/budgetvote/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBudgetItem creates a proposed budget item and returns the filled domain value.
func SeedBudgetItem(t *testing.T, pool *pgxpool.Pool) domain.BudgetItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.BudgetItem{
		Category:  "Test Category " + suffix,
		Item:      "Test Item " + suffix,
		Amount:    10000,
		Status:    domain.BudgetStatusProposed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO budget_items (category, item, amount, approved_amount, status, created_at, updated_at)
		 VALUES ($1, $2, $3, 0, $4, $5, $5)
		 RETURNING id`,
		item.Category, item.Item, item.Amount, string(item.Status), now,
	).Scan(&item.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBudgetItem: %v", err)
	}

	return item
}

// SeedVotingSession creates an open voting session for a fresh budget item
// with the given eligible voters. Returns the filled domain value.
func SeedVotingSession(t *testing.T, pool *pgxpool.Pool, voters ...string) domain.VotingSession {
	t.Helper()
	ctx := context.Background()

	item := SeedBudgetItem(t, pool)

	if len(voters) == 0 {
		voters = []string{"Alice", "Bob"}
	}
	votersJSON, err := json.Marshal(voters)
	if err != nil {
		t.Fatalf("testhelper: SeedVotingSession marshal voters: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.VotingSession{
		Token:        uniqueSuffix(),
		BudgetItemID: item.ID,
		Title:        item.Item,
		Amount:       item.Amount,
		Voters:       domain.VoterList(voters),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO voting_sessions (token, budget_item_id, title, amount, voters, is_closed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, $6, $6)
		 RETURNING id`,
		session.Token, session.BudgetItemID, session.Title, session.Amount, votersJSON, now,
	).Scan(&session.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVotingSession: %v", err)
	}

	return session
}
