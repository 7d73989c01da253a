package sitter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Upsert creates or fully replaces the sitter's profile.
	Upsert(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// Search returns approved sitters matching the filter whose
	// availability includes the requested date.
	Search(ctx context.Context, filter SearchFilter) ([]*Profile, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Upsert(ctx context.Context, p *Profile) error {
	const query = `
		INSERT INTO public.sitter_profiles
			(user_id, bio, services, nightly_rate, cares_dogs, cares_cats, has_yard, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			services = EXCLUDED.services,
			nightly_rate = EXCLUDED.nightly_rate,
			cares_dogs = EXCLUDED.cares_dogs,
			cares_cats = EXCLUDED.cares_cats,
			has_yard = EXCLUDED.has_yard,
			city = EXCLUDED.city,
			updated_at = now()
		RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(
		ctx, query,
		p.UserID, p.Bio, p.Services, p.NightlyRate, p.CaresDogs, p.CaresCats, p.HasYard, p.City,
	).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("upsert sitter profile failed: %w", err)
	}
	return nil
}

func profileSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"p.user_id", "u.display_name", "p.bio", "p.services", "p.nightly_rate",
		"p.cares_dogs", "p.cares_cats", "p.has_yard", "p.city",
		"p.created_at", "p.updated_at",
	).
		From("public.sitter_profiles p").
		Join("public.users u ON p.user_id = u.id")
}

func (r *pgxRepository) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	query, args, err := profileSelect().
		Where(squirrel.Eq{"p.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sitter profile query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var p Profile
	if err := row.Scan(
		&p.UserID, &p.DisplayName, &p.Bio, &p.Services, &p.NightlyRate,
		&p.CaresDogs, &p.CaresCats, &p.HasYard, &p.City,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sitter profile failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) Search(ctx context.Context, filter SearchFilter) ([]*Profile, int, error) {
	query := profileSelect().
		Column("count(*) OVER() as total_count").
		Join("public.sitter_availability av ON av.sitter_id = p.user_id").
		Where(squirrel.Eq{"u.sitter_approved": true}).
		Where(squirrel.Eq{"u.is_active": true}).
		Where(squirrel.Eq{"av.available_date": filter.Date})

	if filter.Service != "" {
		query = query.Where(squirrel.Expr("? = ANY(p.services)", filter.Service))
	}
	if filter.City != "" {
		query = query.Where(squirrel.Eq{"p.city": filter.City})
	}

	query = query.OrderBy("p.nightly_rate ASC NULLS LAST", "p.user_id ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search sitters query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search sitters failed: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	var total int

	for rows.Next() {
		var p Profile
		if err := rows.Scan(
			&p.UserID, &p.DisplayName, &p.Bio, &p.Services, &p.NightlyRate,
			&p.CaresDogs, &p.CaresCats, &p.HasYard, &p.City,
			&p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sitter profile failed: %w", err)
		}
		profiles = append(profiles, &p)
	}

	return profiles, total, nil
}
