// Package budgetitem implements the budget item repository using PostgreSQL.
// List queries are built dynamically with squirrel; everything else is raw SQL.
package budgetitem

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/domain"
)

// Repo provides budget item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new budget item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, category, item, description, department, division, amount, approved_amount, notes, benefits, worthiness, status, created_at, updated_at`

const createSQL = `
INSERT INTO budget_items (category, item, description, department, division, amount, approved_amount, notes, benefits, worthiness, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM budget_items
WHERE id = $1`

const updateSQL = `
UPDATE budget_items
SET category = $2, item = $3, description = $4, department = $5, division = $6,
    amount = $7, approved_amount = $8, notes = $9, benefits = $10,
    worthiness = $11, status = $12, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const deleteSQL = `
DELETE FROM budget_items WHERE id = $1`

const statisticsSQL = `
SELECT
	COALESCE(SUM(amount), 0)                                    AS total_proposed,
	COALESCE(SUM(approved_amount), 0)                           AS total_approved,
	COUNT(*)                                                    AS total_items,
	COUNT(*) FILTER (WHERE status = 'approved')                 AS approved_items,
	COUNT(*) FILTER (WHERE status = 'proposed')                 AS proposed_items,
	COUNT(*) FILTER (WHERE status = 'rejected')                 AS rejected_items
FROM budget_items`

const byDepartmentSQL = `
SELECT COALESCE(department, 'Unassigned') AS department,
       COALESCE(SUM(amount), 0),
       COALESCE(SUM(approved_amount), 0),
       COUNT(*)
FROM budget_items
GROUP BY COALESCE(department, 'Unassigned')
ORDER BY 2 DESC`

const byCategorySQL = `
SELECT category,
       COALESCE(SUM(amount), 0),
       COALESCE(SUM(approved_amount), 0),
       COUNT(*)
FROM budget_items
GROUP BY category
ORDER BY 2 DESC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new budget item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		item.Category,
		item.Item,
		item.Description,
		item.Department,
		item.Division,
		item.Amount,
		item.ApprovedAmount,
		item.Notes,
		item.Benefits,
		item.Worthiness,
		string(item.Status),
		now,
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", item.Item)
	}

	return created, nil
}

// Update replaces all mutable fields of a budget item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Update(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		item.ID,
		item.Category,
		item.Item,
		item.Description,
		item.Department,
		item.Division,
		item.Amount,
		item.ApprovedAmount,
		item.Notes,
		item.Benefits,
		item.Worthiness,
		string(item.Status),
	)

	updated, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", strconv.FormatInt(item.ID, 10))
	}

	return updated, nil
}

// Delete removes a budget item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "budget_item", strconv.FormatInt(id, 10))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("budget_item %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a budget item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BudgetItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", strconv.FormatInt(id, 10))
	}

	return item, nil
}

// List returns budget items matching the filter plus the total match count.
func (r *Repo) List(ctx context.Context, filter Filter) ([]*domain.BudgetItem, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	filter.normalize()

	base := psql.Select().From("budget_items")
	base = applyFilter(base, filter)

	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "budget_items", "list")
	}

	listSQL, listArgs, err := base.
		Column(itemColumns).
		OrderBy(filter.SortBy + " " + filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "budget_items", "list")
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, "budget_items", "list")
	}

	return items, total, nil
}

// applyFilter adds WHERE clauses for the set filter fields.
func applyFilter(b sq.SelectBuilder, f Filter) sq.SelectBuilder {
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"item": pattern},
			sq.ILike{"category": pattern},
		})
	}
	if f.Category != nil && *f.Category != "" {
		b = b.Where(sq.Eq{"category": *f.Category})
	}
	if f.Department != nil && *f.Department != "" {
		b = b.Where(sq.Eq{"department": *f.Department})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": string(*f.Status)})
	}
	return b
}

// Statistics returns totals across all budget items.
func (r *Repo) Statistics(ctx context.Context) (domain.BudgetStatistics, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.BudgetStatistics
	err := querier.QueryRow(ctx, statisticsSQL).Scan(
		&s.TotalProposed,
		&s.TotalApproved,
		&s.TotalItems,
		&s.ApprovedItems,
		&s.ProposedItems,
		&s.RejectedItems,
	)
	if err != nil {
		return domain.BudgetStatistics{}, postgres.MapError(err, "budget_items", "statistics")
	}

	return s, nil
}

// ByDepartment returns per-department rollups ordered by proposed amount.
func (r *Repo) ByDepartment(ctx context.Context) ([]domain.DepartmentSummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, byDepartmentSQL)
	if err != nil {
		return nil, postgres.MapError(err, "budget_items", "by_department")
	}
	defer rows.Close()

	summaries := []domain.DepartmentSummary{}
	for rows.Next() {
		var s domain.DepartmentSummary
		if err := rows.Scan(&s.Department, &s.TotalAmount, &s.TotalApproved, &s.ItemCount); err != nil {
			return nil, postgres.MapError(err, "budget_items", "by_department")
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "budget_items", "by_department")
	}

	return summaries, nil
}

// ByCategory returns per-category rollups ordered by proposed amount.
func (r *Repo) ByCategory(ctx context.Context) ([]domain.CategorySummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, byCategorySQL)
	if err != nil {
		return nil, postgres.MapError(err, "budget_items", "by_category")
	}
	defer rows.Close()

	summaries := []domain.CategorySummary{}
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.Category, &s.TotalAmount, &s.TotalApproved, &s.ItemCount); err != nil {
			return nil, postgres.MapError(err, "budget_items", "by_category")
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "budget_items", "by_category")
	}

	return summaries, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.BudgetItem, error) {
	var (
		item   domain.BudgetItem
		status string
	)

	if err := row.Scan(
		&item.ID,
		&item.Category,
		&item.Item,
		&item.Description,
		&item.Department,
		&item.Division,
		&item.Amount,
		&item.ApprovedAmount,
		&item.Notes,
		&item.Benefits,
		&item.Worthiness,
		&status,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.Status = domain.BudgetStatus(status)

	return &item, nil
}

func scanItems(rows pgx.Rows) ([]*domain.BudgetItem, error) {
	items := []*domain.BudgetItem{}

	for rows.Next() {
		var (
			item   domain.BudgetItem
			status string
		)

		if err := rows.Scan(
			&item.ID,
			&item.Category,
			&item.Item,
			&item.Description,
			&item.Department,
			&item.Division,
			&item.Amount,
			&item.ApprovedAmount,
			&item.Notes,
			&item.Benefits,
			&item.Worthiness,
			&status,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}

		item.Status = domain.BudgetStatus(status)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
