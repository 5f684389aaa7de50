package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// InfluencerRepository defines persistence access for influencer profiles.
type InfluencerRepository interface {
	Create(ctx context.Context, inf *domain.Influencer) error
	Update(ctx context.Context, inf *domain.Influencer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Influencer, error)
	List(ctx context.Context) ([]domain.Influencer, error)
}

type influencerRepository struct {
	pool *pgxpool.Pool
}

// NewInfluencerRepository returns a Postgres-backed implementation.
func NewInfluencerRepository(pool *pgxpool.Pool) InfluencerRepository {
	return &influencerRepository{pool: pool}
}

const influencerColumns = `
    id, name, bio, expertise, category, image, rating, price,
    instagram, youtube, tiktok, twitter, availability, featured,
    created_at, updated_at`

func (r *influencerRepository) Create(ctx context.Context, inf *domain.Influencer) error {
	const query = `
        INSERT INTO influencers
            (name, bio, expertise, category, image, rating, price,
             instagram, youtube, tiktok, twitter, availability, featured)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		inf.Name,
		inf.Bio,
		inf.Expertise,
		inf.Category,
		inf.Image,
		inf.Rating,
		inf.Price,
		inf.Social.Instagram,
		inf.Social.YouTube,
		inf.Social.TikTok,
		inf.Social.Twitter,
		inf.Availability,
		inf.Featured,
	).Scan(&inf.ID, &inf.CreatedAt, &inf.UpdatedAt)
}

func (r *influencerRepository) Update(ctx context.Context, inf *domain.Influencer) error {
	const query = `
        UPDATE influencers SET
            name=$1, bio=$2, expertise=$3, category=$4, image=$5, rating=$6,
            price=$7, instagram=$8, youtube=$9, tiktok=$10, twitter=$11,
            availability=$12, featured=$13, updated_at=NOW()
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		inf.Name,
		inf.Bio,
		inf.Expertise,
		inf.Category,
		inf.Image,
		inf.Rating,
		inf.Price,
		inf.Social.Instagram,
		inf.Social.YouTube,
		inf.Social.TikTok,
		inf.Social.Twitter,
		inf.Availability,
		inf.Featured,
		inf.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *influencerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM influencers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *influencerRepository) GetByID(ctx context.Context, id string) (*domain.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers WHERE id=$1`

	row := r.pool.QueryRow(ctx, query, id)
	inf, err := scanInfluencer(row)
	if err != nil {
		return nil, err
	}
	return inf, nil
}

func (r *influencerRepository) List(ctx context.Context) ([]domain.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Influencer
	for rows.Next() {
		inf, err := scanInfluencer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *inf)
	}
	return items, rows.Err()
}

func scanInfluencer(row pgx.Row) (*domain.Influencer, error) {
	var inf domain.Influencer
	if err := row.Scan(
		&inf.ID,
		&inf.Name,
		&inf.Bio,
		&inf.Expertise,
		&inf.Category,
		&inf.Image,
		&inf.Rating,
		&inf.Price,
		&inf.Social.Instagram,
		&inf.Social.YouTube,
		&inf.Social.TikTok,
		&inf.Social.Twitter,
		&inf.Availability,
		&inf.Featured,
		&inf.CreatedAt,
		&inf.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inf, nil
}
