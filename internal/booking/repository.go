package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Claim conditionally assigns a sitter to an open booking and moves it
	// to reserved. The condition (still published, still unassigned) is
	// evaluated in the same statement, so two competing claims cannot both
	// succeed. Returns ErrAlreadyAssigned when the row was already taken.
	Claim(ctx context.Context, id string, sitterID string) error

	// SetStatus moves a booking from one status to another in a single
	// conditional update. Returns ErrInvalidTransition when the booking is
	// no longer in the expected from status.
	SetStatus(ctx context.Context, id string, from, to Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("client_id", "sitter_id", "service", "start_date", "end_date", "status", "pet_ids", "address_id").
		Values(b.ClientID, b.SitterID, b.Service, b.StartDate, b.EndDate, b.Status, b.PetIDs, b.AddressID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func bookingSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.client_id", "c.display_name", "b.sitter_id", "s.display_name",
		"b.service", "b.start_date", "b.end_date", "b.status", "b.pet_ids", "b.address_id",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users c ON b.client_id = c.id").
		LeftJoin("public.users s ON b.sitter_id = s.id")
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := bookingSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.ClientID, &b.ClientName, &b.SitterID, &b.SitterName,
		&b.Service, &b.StartDate, &b.EndDate, &b.Status, &b.PetIDs, &b.AddressID,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := bookingSelect().Column("count(*) OVER() as total_count")

	if filter.ClientID != "" {
		query = query.Where(squirrel.Eq{"b.client_id": filter.ClientID})
	}
	if filter.SitterID != "" {
		query = query.Where(squirrel.Eq{"b.sitter_id": filter.SitterID})
	}
	if filter.Unassigned {
		query = query.Where(squirrel.Eq{"b.sitter_id": nil})
	}
	if filter.ExcludeClientID != "" {
		query = query.Where(squirrel.NotEq{"b.client_id": filter.ExcludeClientID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Past open requests are filtered at query time; there is no
	// housekeeping job that expires them.
	if !filter.StartFrom.IsZero() {
		query = query.Where(squirrel.GtOrEq{"b.start_date": filter.StartFrom})
	}

	orderBy := "b.start_date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ClientID, &b.ClientName, &b.SitterID, &b.SitterName,
			&b.Service, &b.StartDate, &b.EndDate, &b.Status, &b.PetIDs, &b.AddressID,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Claim(ctx context.Context, id string, sitterID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("sitter_id", sitterID).
		Set("status", StatusReserved).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": StatusPublished}).
		Where(squirrel.Eq{"sitter_id": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build claim booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("claim booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// Either gone or already taken; let the service disambiguate.
		return ErrAlreadyAssigned
	}
	return nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, from, to Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrInvalidTransition
	}
	return nil
}
