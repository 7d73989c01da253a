package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	ListForBooking(ctx context.Context, bookingID string) ([]*Application, error)

	// ListForSitter returns the sitter's applications joined with their
	// booking summaries. An empty status means all statuses.
	ListForSitter(ctx context.Context, sitterID string, status Status) ([]*WithBooking, error)

	// Accept decides an application in one transaction: the booking gets
	// the sitter and moves to reserved, the application becomes accepted,
	// every sibling pending application becomes rejected. Returns
	// ErrBookingClosed when the booking is no longer open and ErrNotPending
	// when the application was already decided.
	Accept(ctx context.Context, applicationID, bookingID, sitterID string) error

	// SetStatus conditionally moves an application from one status to
	// another. Returns ErrNotPending when the row is not in from.
	SetStatus(ctx context.Context, id string, from, to Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, a *Application) error {
	const query = `
		INSERT INTO public.applications (booking_id, sitter_id, message, offered_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		a.BookingID, a.SitterID, a.Message, a.OfferedPrice, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyApplied
		}
		return fmt.Errorf("create application failed: %w", err)
	}
	return nil
}

const applicationSelect = `
	SELECT a.id, a.booking_id, a.sitter_id, u.display_name, a.message, a.offered_price, a.status, a.created_at
	FROM public.applications a
	JOIN public.users u ON a.sitter_id = u.id
`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.BookingID, &a.SitterID, &a.SitterName,
		&a.Message, &a.OfferedPrice, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan application failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, applicationSelect+" WHERE a.id = $1", id))
}

func (r *pgxRepository) ListForBooking(ctx context.Context, bookingID string) ([]*Application, error) {
	query := applicationSelect + " WHERE a.booking_id = $1 ORDER BY a.created_at ASC"

	rows, err := r.pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list applications failed: %w", err)
	}
	defer rows.Close()

	var out []*Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(
			&a.ID, &a.BookingID, &a.SitterID, &a.SitterName,
			&a.Message, &a.OfferedPrice, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application failed: %w", err)
		}
		out = append(out, &a)
	}
	return out, nil
}

func (r *pgxRepository) ListForSitter(ctx context.Context, sitterID string, status Status) ([]*WithBooking, error) {
	query := `
		SELECT a.id, a.booking_id, a.sitter_id, a.message, a.offered_price, a.status, a.created_at,
		       b.id, b.client_id, c.display_name, b.service, b.start_date, b.end_date, b.status
		FROM public.applications a
		JOIN public.bookings b ON a.booking_id = b.id
		JOIN public.users c ON b.client_id = c.id
		WHERE a.sitter_id = $1
	`
	args := []any{sitterID}
	if status != "" {
		query += " AND a.status = $2"
		args = append(args, status)
	}
	query += " ORDER BY b.start_date ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sitter applications failed: %w", err)
	}
	defer rows.Close()

	var out []*WithBooking
	for rows.Next() {
		var w WithBooking
		if err := rows.Scan(
			&w.ID, &w.BookingID, &w.SitterID, &w.Message, &w.OfferedPrice, &w.Status, &w.CreatedAt,
			&w.Booking.ID, &w.Booking.ClientID, &w.Booking.ClientName,
			&w.Booking.Service, &w.Booking.StartDate, &w.Booking.EndDate, &w.Booking.Status,
		); err != nil {
			return nil, fmt.Errorf("scan sitter application failed: %w", err)
		}
		out = append(out, &w)
	}
	return out, nil
}

func (r *pgxRepository) Accept(ctx context.Context, applicationID, bookingID, sitterID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin accept tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const claimBooking = `
		UPDATE public.bookings
		SET sitter_id = $1, status = 'reserved', updated_at = now()
		WHERE id = $2 AND status = 'published' AND sitter_id IS NULL
	`
	ct, err := tx.Exec(ctx, claimBooking, sitterID, bookingID)
	if err != nil {
		return fmt.Errorf("accept: claim booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrBookingClosed
	}

	const acceptApp = `
		UPDATE public.applications
		SET status = 'accepted'
		WHERE id = $1 AND status = 'pending'
	`
	ct, err = tx.Exec(ctx, acceptApp, applicationID)
	if err != nil {
		return fmt.Errorf("accept: update application failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotPending
	}

	const rejectSiblings = `
		UPDATE public.applications
		SET status = 'rejected'
		WHERE booking_id = $1 AND id <> $2 AND status = 'pending'
	`
	if _, err := tx.Exec(ctx, rejectSiblings, bookingID, applicationID); err != nil {
		return fmt.Errorf("accept: reject siblings failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit accept tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) SetStatus(ctx context.Context, id string, from, to Status) error {
	const query = `
		UPDATE public.applications
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	ct, err := r.pool.Exec(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("set application status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}
