package expense

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/ownership"
)

// Store is what the handlers need from the persistence layer.
type Store interface {
	Insert(ctx context.Context, exp *Expense) (*Expense, error)
	ListByUser(ctx context.Context, userID string) ([]Expense, error)
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Expense, error)
	FindByID(ctx context.Context, id string) (*Expense, error)
	DeleteByID(ctx context.Context, id string) error
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO expenses (user_id, category, amount, date, icon, description)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		exp.UserID,
		exp.Category,
		exp.Amount,
		exp.Date,
		exp.Icon,
		exp.Description,
	).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Expense, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, user_id, category, amount, date, icon, description, created_at
         FROM expenses
         WHERE user_id = $1
         ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *Repository) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Expense, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, user_id, category, amount, date, icon, description, created_at
         FROM expenses
         WHERE user_id = $1 AND date >= $2 AND date <= $3
         ORDER BY date ASC, created_at ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var exp Expense
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, user_id, category, amount, date, icon, description, created_at
         FROM expenses
         WHERE id = $1`,
		id,
	).Scan(&exp.ID, &exp.UserID, &exp.Category, &exp.Amount, &exp.Date, &exp.Icon, &exp.Description, &exp.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ownership.ErrNotFound
	}
	return nil
}

func scanExpenses(rows pgx.Rows) ([]Expense, error) {
	out := make([]Expense, 0)
	for rows.Next() {
		var exp Expense
		if err := rows.Scan(
			&exp.ID,
			&exp.UserID,
			&exp.Category,
			&exp.Amount,
			&exp.Date,
			&exp.Icon,
			&exp.Description,
			&exp.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}
