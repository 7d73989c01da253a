package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)

	// ListForSitter returns a sitter's reviews in the given status,
	// newest first, joined with the reviewing client's display name.
	ListForSitter(ctx context.Context, sitterID string, status Status) ([]*Review, error)

	// ListByStatus returns reviews across all sitters in the given
	// status, newest first. Used by the moderation queue.
	ListByStatus(ctx context.Context, status Status, page, pageSize int) ([]*Review, int, error)

	// SetStatus conditionally moves a review out of pending. Returns
	// ErrNotPending when the review was already moderated.
	SetStatus(ctx context.Context, id string, to Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reviewSelect = `
	SELECT r.id, r.sitter_id, r.client_id, coalesce(u.display_name, 'Anonymous'),
	       r.rating, r.comment, r.photo_ids, r.status, r.created_at
	FROM public.reviews r
	JOIN public.users u ON u.id = r.client_id
`

func scanReview(row pgx.Row) (*Review, error) {
	var rv Review
	err := row.Scan(
		&rv.ID, &rv.SitterID, &rv.ClientID, &rv.ClientName,
		&rv.Rating, &rv.Comment, &rv.PhotoIDs, &rv.Status, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (sitter_id, client_id, rating, comment, photo_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx, query,
		rv.SitterID, rv.ClientID, rv.Rating, rv.Comment, rv.PhotoIDs, rv.Status,
	).Scan(&rv.ID, &rv.CreatedAt); err != nil {
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	return scanReview(r.pool.QueryRow(ctx, reviewSelect+" WHERE r.id = $1", id))
}

func (r *pgxRepository) ListForSitter(ctx context.Context, sitterID string, status Status) ([]*Review, error) {
	query := reviewSelect + " WHERE r.sitter_id = $1 AND r.status = $2 ORDER BY r.created_at DESC"

	rows, err := r.pool.Query(ctx, query, sitterID, status)
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *pgxRepository) ListByStatus(ctx context.Context, status Status, page, pageSize int) ([]*Review, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.sitter_id", "r.client_id", "coalesce(u.display_name, 'Anonymous')",
		"r.rating", "r.comment", "r.photo_ids", "r.status", "r.created_at",
		"count(*) OVER() AS total",
	).
		From("public.reviews r").
		Join("public.users u ON u.id = r.client_id").
		Where(squirrel.Eq{"r.status": status}).
		OrderBy("r.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.SitterID, &rv.ClientID, &rv.ClientName,
			&rv.Rating, &rv.Comment, &rv.PhotoIDs, &rv.Status, &rv.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	return reviews, total, nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, to Status) error {
	const query = `UPDATE public.reviews SET status = $1 WHERE id = $2 AND status = $3`

	ct, err := r.pool.Exec(ctx, query, to, id, StatusPending)
	if err != nil {
		return fmt.Errorf("set review status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

func collectReviews(rows pgx.Rows) ([]*Review, error) {
	var reviews []*Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.SitterID, &rv.ClientID, &rv.ClientName,
			&rv.Rating, &rv.Comment, &rv.PhotoIDs, &rv.Status, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	return reviews, nil
}
