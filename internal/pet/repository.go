package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id string) (*Pet, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Pet, error)
	Update(ctx context.Context, p *Pet) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const petColumns = "id, owner_id, name, species, breed, health_notes, photo_id, created_at, updated_at"

func scanPet(row pgx.Row) (*Pet, error) {
	var p Pet
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed,
		&p.HealthNotes, &p.PhotoID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan pet failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Pet) error {
	const query = `
		INSERT INTO public.pets (owner_id, name, species, breed, health_notes, photo_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(
		ctx, query,
		p.OwnerID, p.Name, p.Species, p.Breed, p.HealthNotes, p.PhotoID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create pet failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Pet, error) {
	query := "SELECT " + petColumns + " FROM public.pets WHERE id = $1"
	return scanPet(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) GetByIDs(ctx context.Context, ids []string) ([]*Pet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(petColumns).
		From("public.pets").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pets query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get pets failed: %w", err)
	}
	defer rows.Close()

	var pets []*Pet
	for rows.Next() {
		var p Pet
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed,
			&p.HealthNotes, &p.PhotoID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pet failed: %w", err)
		}
		pets = append(pets, &p)
	}
	return pets, nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Pet, error) {
	query := "SELECT " + petColumns + " FROM public.pets WHERE owner_id = $1 ORDER BY created_at ASC"

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets failed: %w", err)
	}
	defer rows.Close()

	var pets []*Pet
	for rows.Next() {
		var p Pet
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed,
			&p.HealthNotes, &p.PhotoID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pet failed: %w", err)
		}
		pets = append(pets, &p)
	}
	return pets, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Pet) error {
	const query = `
		UPDATE public.pets
		SET name = $1, species = $2, breed = $3, health_notes = $4, photo_id = $5, updated_at = now()
		WHERE id = $6
	`

	ct, err := r.pool.Exec(ctx, query, p.Name, p.Species, p.Breed, p.HealthNotes, p.PhotoID, p.ID)
	if err != nil {
		return fmt.Errorf("update pet failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.pets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete pet failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
