package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists the per-sitter set of available dates. One row per
// (sitter_id, available_date) pair; the pair carries no other state.
type Repository interface {
	// ListDates returns all available dates for the sitter inside [from, to] inclusive.
	ListDates(ctx context.Context, sitterID string, from, to time.Time) ([]time.Time, error)

	// ReplaceDates atomically replaces every row for the sitter inside
	// [from, to] with the given dates. Delete plus bulk insert in one
	// transaction: a failed save leaves the prior state untouched.
	ReplaceDates(ctx context.Context, sitterID string, from, to time.Time, dates []time.Time) error

	// CountFrom returns how many available dates the sitter has from the
	// given day onward (dashboard badge).
	CountFrom(ctx context.Context, sitterID string, from time.Time) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListDates(ctx context.Context, sitterID string, from, to time.Time) ([]time.Time, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("available_date").
		From("public.sitter_availability").
		Where(squirrel.Eq{"sitter_id": sitterID}).
		Where(squirrel.GtOrEq{"available_date": from}).
		Where(squirrel.LtOrEq{"available_date": to}).
		OrderBy("available_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list availability query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list availability failed: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan availability date failed: %w", err)
		}
		dates = append(dates, DateOf(d))
	}

	return dates, nil
}

func (r *pgxRepository) ReplaceDates(ctx context.Context, sitterID string, from, to time.Time, dates []time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin availability tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	delQuery, delArgs, err := psql.Delete("public.sitter_availability").
		Where(squirrel.Eq{"sitter_id": sitterID}).
		Where(squirrel.GtOrEq{"available_date": from}).
		Where(squirrel.LtOrEq{"available_date": to}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete availability query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("delete availability failed: %w", err)
	}

	if len(dates) > 0 {
		ins := psql.Insert("public.sitter_availability").
			Columns("sitter_id", "available_date")
		for _, d := range dates {
			ins = ins.Values(sitterID, d)
		}

		insQuery, insArgs, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build insert availability query failed: %w", err)
		}

		if _, err := tx.Exec(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("insert availability failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit availability tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) CountFrom(ctx context.Context, sitterID string, from time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM public.sitter_availability
		WHERE sitter_id = $1 AND available_date >= $2
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, sitterID, from).Scan(&count); err != nil {
		return 0, fmt.Errorf("count availability failed: %w", err)
	}
	return count, nil
}
