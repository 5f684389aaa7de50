package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// PackageRepository defines persistence access for curated packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) error
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
}

type packageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository returns a Postgres-backed implementation.
func NewPackageRepository(pool *pgxpool.Pool) PackageRepository {
	return &packageRepository{pool: pool}
}

const packageColumns = `
    id, name, description, price, duration, inclusions, category,
    influencer_id, available, created_at, updated_at`

func (r *packageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	const query = `
        INSERT INTO packages
            (name, description, price, duration, inclusions, category,
             influencer_id, available)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.Duration,
		pkg.Inclusions,
		pkg.Category,
		pkg.InfluencerID,
		pkg.Available,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *packageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	const query = `
        UPDATE packages SET
            name=$1, description=$2, price=$3, duration=$4, inclusions=$5,
            category=$6, influencer_id=$7, available=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.Duration,
		pkg.Inclusions,
		pkg.Category,
		pkg.InfluencerID,
		pkg.Available,
		pkg.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id=$1`

	pkg, err := scanPackage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *packageRepository) List(ctx context.Context) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *pkg)
	}
	return items, rows.Err()
}

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var pkg domain.Package
	if err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Price,
		&pkg.Duration,
		&pkg.Inclusions,
		&pkg.Category,
		&pkg.InfluencerID,
		&pkg.Available,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pkg, nil
}
