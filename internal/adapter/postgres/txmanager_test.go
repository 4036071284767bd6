package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/testhelper"
	"github.com/budgetms/budgetvote/internal/domain"
)

// itemExists checks whether a budget item row with the given category exists.
func itemExists(t *testing.T, pool *pgxpool.Pool, category string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM budget_items WHERE category = $1)`,
		category,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("itemExists query: %v", err)
	}
	return exists
}

func insertItem(ctx context.Context, pool *pgxpool.Pool, category string) error {
	q := postgres.QuerierFromCtx(ctx, pool)
	_, err := q.Exec(ctx,
		`INSERT INTO budget_items (category, item, amount, approved_amount, status, created_at, updated_at)
		 VALUES ($1, 'tx test item', 1, 0, 'proposed', now(), now())`,
		category,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertItem(ctx, pool, "tx-commit-test")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !itemExists(t, pool, "tx-commit-test") {
		t.Fatal("expected item to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if execErr := insertItem(ctx, pool, "tx-rollback-test"); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if itemExists(t, pool, "tx-rollback-test") {
		t.Fatal("expected item NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_BeginFailureIsStorageError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	// A closed pool makes Begin fail with an infrastructure error; it must
	// carry the same storage typing as every other adapter failure.
	pool.Close()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		t.Fatal("callback must not run when Begin fails")
		return nil
	})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage from failed Begin, got: %v", err)
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		if itemExists(t, pool, "tx-panic-test") {
			t.Fatal("expected item NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertItem(ctx, pool, "tx-panic-test"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}
