// Package booking manages customer bookings: listing with destination
// lookup, status updates and travel date changes.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Booking statuses. New bookings default to pending.
const (
	StatusPending   = "Pending"
	StatusFullyPaid = "FullyPaid"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ErrBookingNotFound is returned when no booking matches the id
var ErrBookingNotFound = errors.New("booking not found")

// Booking represents a customer booking. Exactly one of PackageID and
// LocalPackageID is set, referencing the catalog the booking was made from.
type Booking struct {
	ID             uuid.UUID  `json:"id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Passengers     int32      `json:"passengers"`
	Status         string     `json:"status"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	PackageID      *uuid.UUID `json:"package_id,omitempty"`
	LocalPackageID *uuid.UUID `json:"local_package_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BookingRepository persists bookings
type BookingRepository interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateTravelDate(ctx context.Context, id uuid.UUID, travelDate time.Time) error
}

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgreSQL-based booking repository
func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

const bookingColumns = `id, full_name, email, phone, passengers, status, travel_date, package_id, local_package_id, created_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.Passengers,
		&b.Status,
		&b.TravelDate,
		&b.PackageID,
		&b.LocalPackageID,
		&b.CreatedAt,
	)
	return b, err
}

// ListBookings retrieves all bookings
func (r *PostgresBookingRepository) ListBookings(ctx context.Context) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking_info ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// GetBooking retrieves a booking by id
func (r *PostgresBookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM booking_info WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Booking{}, ErrBookingNotFound
		}
		return Booking{}, err
	}

	return b, nil
}

// UpdateStatus sets the booking status
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE booking_info SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateTravelDate sets the booking travel date
func (r *PostgresBookingRepository) UpdateTravelDate(ctx context.Context, id uuid.UUID, travelDate time.Time) error {
	query := `UPDATE booking_info SET travel_date = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, travelDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}
