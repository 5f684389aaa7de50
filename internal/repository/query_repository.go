package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// QueryRepository defines persistence access for contact queries.
type QueryRepository interface {
	Create(ctx context.Context, query *domain.Query) error
	GetByID(ctx context.Context, id string) (*domain.Query, error)
	List(ctx context.Context) ([]domain.Query, error)
	UpdateStatus(ctx context.Context, id string, status domain.QueryStatus, assignedTo *string) (*domain.Query, error)
	Delete(ctx context.Context, id string) error
}

type queryRepository struct {
	pool *pgxpool.Pool
}

// NewQueryRepository returns a Postgres-backed implementation.
func NewQueryRepository(pool *pgxpool.Pool) QueryRepository {
	return &queryRepository{pool: pool}
}

const queryColumns = `
    id, name, email, phone, event_type, event_date, budget, guests,
    message, status, assigned_to, created_at, updated_at`

func (r *queryRepository) Create(ctx context.Context, query *domain.Query) error {
	const stmt = `
        INSERT INTO queries
            (name, email, phone, event_type, event_date, budget, guests, message, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, stmt,
		query.Name,
		query.Email,
		query.Phone,
		query.EventType,
		query.EventDate,
		query.Budget,
		query.Guests,
		query.Message,
		query.Status,
	).Scan(&query.ID, &query.CreatedAt, &query.UpdatedAt)
}

func (r *queryRepository) GetByID(ctx context.Context, id string) (*domain.Query, error) {
	stmt := `SELECT ` + queryColumns + ` FROM queries WHERE id=$1`

	q, err := scanQuery(r.pool.QueryRow(ctx, stmt, id))
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *queryRepository) List(ctx context.Context) ([]domain.Query, error) {
	stmt := `SELECT ` + queryColumns + ` FROM queries ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Query
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *q)
	}
	return items, rows.Err()
}

func (r *queryRepository) UpdateStatus(ctx context.Context, id string, status domain.QueryStatus, assignedTo *string) (*domain.Query, error) {
	stmt := `
        UPDATE queries SET status=$1, assigned_to=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING ` + queryColumns

	q, err := scanQuery(r.pool.QueryRow(ctx, stmt, status, assignedTo, id))
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *queryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM queries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanQuery(row pgx.Row) (*domain.Query, error) {
	var q domain.Query
	if err := row.Scan(
		&q.ID,
		&q.Name,
		&q.Email,
		&q.Phone,
		&q.EventType,
		&q.EventDate,
		&q.Budget,
		&q.Guests,
		&q.Message,
		&q.Status,
		&q.AssignedTo,
		&q.CreatedAt,
		&q.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &q, nil
}
