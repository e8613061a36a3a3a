package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MaryChris21/Estify/internal/contextkeys"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, property_id, user_id, price, start_date, end_date, status, created_at, updated_at`

type PostgresBookingStore struct {
	pool *pgxpool.Pool
}

var _ port.BookingStorePort = (*PostgresBookingStore)(nil)

func NewPostgresBookingStore(pool *pgxpool.Pool) (*PostgresBookingStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresBookingStore{pool: pool}, nil
}

func (r *PostgresBookingStore) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresBookingStore",
		"method":    method,
	}).WithFields(fields)
}

func (r *PostgresBookingStore) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.NewString()
	repoLogger := r.logger(ctx, "Create", port.Fields{"booking_id": booking.ID})

	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.PropertyID,
		booking.UserID,
		booking.Price,
		booking.StartDate,
		booking.EndDate,
		string(booking.Status),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert booking", err, nil)
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	repoLogger := r.logger(ctx, "FindByID", port.Fields{"booking_id": id})

	booking, err := scanBooking(r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
		}
		repoLogger.Error("Failed to load booking", err, nil)
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func (r *PostgresBookingStore) FindMany(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	repoLogger := r.logger(ctx, "FindMany", nil)

	query, args := buildFindBookingsQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query bookings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			repoLogger.Error("Failed to scan booking row", err, nil)
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

func (r *PostgresBookingStore) UpdateByID(ctx context.Context, id string, booking *domain.Booking) error {
	repoLogger := r.logger(ctx, "UpdateByID", port.Fields{"booking_id": id})

	query := `
		UPDATE bookings SET
			property_id = $2,
			user_id = $3,
			price = $4,
			start_date = $5,
			end_date = $6,
			status = $7,
			updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		id,
		booking.PropertyID,
		booking.UserID,
		booking.Price,
		booking.StartDate,
		booking.EndDate,
		string(booking.Status),
		booking.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update booking", err, nil)
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PostgresBookingStore) DeleteByID(ctx context.Context, id string) error {
	repoLogger := r.logger(ctx, "DeleteByID", port.Fields{"booking_id": id})

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete booking", err, nil)
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return nil
}

func buildFindBookingsQuery(filter domain.BookingFilter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.PropertyID != "" {
		add("property_id = $%d", filter.PropertyID)
	}
	if filter.UserID != "" {
		add("user_id = $%d", filter.UserID)
	}
	switch {
	case filter.Status != "":
		add("status = $%d", string(filter.Status))
	case filter.ExcludeRejected:
		add("status <> $%d", string(domain.BookingRejected))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query + " ORDER BY start_date ASC, created_at ASC", args
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b      domain.Booking
		status string
	)
	err := row.Scan(&b.ID, &b.PropertyID, &b.UserID, &b.Price, &b.StartDate, &b.EndDate, &status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatus(status)
	return &b, nil
}
