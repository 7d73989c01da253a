package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Address) error
	GetByID(ctx context.Context, id string) (*Address, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Address, error)
	Update(ctx context.Context, a *Address) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const addressColumns = "id, owner_id, street, number, unit, city, region, notes, latitude, longitude, created_at"

func scanAddress(row pgx.Row) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Street, &a.Number, &a.Unit,
		&a.City, &a.Region, &a.Notes, &a.Latitude, &a.Longitude, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan address failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Address) error {
	const query = `
		INSERT INTO public.addresses (owner_id, street, number, unit, city, region, notes, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx, query,
		a.OwnerID, a.Street, a.Number, a.Unit, a.City, a.Region, a.Notes, a.Latitude, a.Longitude,
	).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("create address failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Address, error) {
	query := "SELECT " + addressColumns + " FROM public.addresses WHERE id = $1"
	return scanAddress(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Address, error) {
	query := "SELECT " + addressColumns + " FROM public.addresses WHERE owner_id = $1 ORDER BY created_at ASC"

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses failed: %w", err)
	}
	defer rows.Close()

	var out []*Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.OwnerID, &a.Street, &a.Number, &a.Unit,
			&a.City, &a.Region, &a.Notes, &a.Latitude, &a.Longitude, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan address failed: %w", err)
		}
		out = append(out, &a)
	}
	return out, nil
}

func (r *pgxRepository) Update(ctx context.Context, a *Address) error {
	const query = `
		UPDATE public.addresses
		SET street = $1, number = $2, unit = $3, city = $4, region = $5, notes = $6, latitude = $7, longitude = $8
		WHERE id = $9
	`

	ct, err := r.pool.Exec(ctx, query, a.Street, a.Number, a.Unit, a.City, a.Region, a.Notes, a.Latitude, a.Longitude, a.ID)
	if err != nil {
		return fmt.Errorf("update address failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.addresses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete address failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
