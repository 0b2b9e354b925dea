package income

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin-027/Personal-Expense-Tracker/internal/ownership"
)

// Store is what the handlers need from the persistence layer.
type Store interface {
	Insert(ctx context.Context, inc *Income) (*Income, error)
	ListByUser(ctx context.Context, userID string) ([]Income, error)
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Income, error)
	FindByID(ctx context.Context, id string) (*Income, error)
	DeleteByID(ctx context.Context, id string) error
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, inc *Income) (*Income, error) {
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO incomes (user_id, source, amount, date, icon)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		inc.UserID,
		inc.Source,
		inc.Amount,
		inc.Date,
		inc.Icon,
	).Scan(&inc.ID, &inc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return inc, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Income, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, user_id, source, amount, date, icon, created_at
         FROM incomes
         WHERE user_id = $1
         ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncomes(rows)
}

func (r *Repository) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Income, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT id, user_id, source, amount, date, icon, created_at
         FROM incomes
         WHERE user_id = $1 AND date >= $2 AND date <= $3
         ORDER BY date ASC, created_at ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncomes(rows)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Income, error) {
	var inc Income
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, user_id, source, amount, date, icon, created_at
         FROM incomes
         WHERE id = $1`,
		id,
	).Scan(&inc.ID, &inc.UserID, &inc.Source, &inc.Amount, &inc.Date, &inc.Icon, &inc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inc, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ownership.ErrNotFound
	}
	return nil
}

func scanIncomes(rows pgx.Rows) ([]Income, error) {
	out := make([]Income, 0)
	for rows.Next() {
		var inc Income
		if err := rows.Scan(
			&inc.ID,
			&inc.UserID,
			&inc.Source,
			&inc.Amount,
			&inc.Date,
			&inc.Icon,
			&inc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}
