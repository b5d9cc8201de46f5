// Package schedule manages travel schedules derived from bookings.
package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrScheduleNotFound is returned when no schedule matches the id
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrMissingReference is returned when neither reference is set
	ErrMissingReference = errors.New("schedule requires a package reference")
)

// Schedule represents a schedule row. Exactly one of ReferenceID and
// LocalReferenceID is set, matching the booking's package scope.
type Schedule struct {
	ID               uuid.UUID  `json:"id"`
	BookingID        uuid.UUID  `json:"booking_id"`
	ReferenceID      *uuid.UUID `json:"reference_id,omitempty"`
	LocalReferenceID *uuid.UUID `json:"local_reference_id,omitempty"`
	TravelDate       time.Time  `json:"travel_date"`
}

// CreateScheduleParams holds the fields for a new schedule
type CreateScheduleParams struct {
	BookingID        uuid.UUID
	ReferenceID      *uuid.UUID
	LocalReferenceID *uuid.UUID
	TravelDate       time.Time
}

// ScheduleRepository persists schedules
type ScheduleRepository interface {
	ListSchedules(ctx context.Context) ([]Schedule, error)
	CreateSchedule(ctx context.Context, params CreateScheduleParams) (Schedule, error)
}

// PostgresScheduleRepository implements ScheduleRepository using PostgreSQL
type PostgresScheduleRepository struct {
	db *pgxpool.Pool
}

// NewPostgresScheduleRepository creates a new PostgreSQL-based schedule repository
func NewPostgresScheduleRepository(db *pgxpool.Pool) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{db: db}
}

// ListSchedules retrieves all schedules
func (r *PostgresScheduleRepository) ListSchedules(ctx context.Context) ([]Schedule, error) {
	query := `SELECT id, booking_id, reference_id, local_reference_id, travel_date
		FROM schedule_info ORDER BY travel_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(&s.ID, &s.BookingID, &s.ReferenceID, &s.LocalReferenceID, &s.TravelDate); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// CreateSchedule inserts a new schedule and returns the stored row
func (r *PostgresScheduleRepository) CreateSchedule(ctx context.Context, params CreateScheduleParams) (Schedule, error) {
	query := `INSERT INTO schedule_info (booking_id, reference_id, local_reference_id, travel_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_id, reference_id, local_reference_id, travel_date`

	var s Schedule
	err := r.db.QueryRow(ctx, query,
		params.BookingID,
		params.ReferenceID,
		params.LocalReferenceID,
		params.TravelDate,
	).Scan(&s.ID, &s.BookingID, &s.ReferenceID, &s.LocalReferenceID, &s.TravelDate)
	if err != nil {
		return Schedule{}, err
	}

	return s, nil
}
