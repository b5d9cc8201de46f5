package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryBookingRepository implements BookingRepository using in-memory storage
type InMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]Booking
}

// NewInMemoryBookingRepository creates a new in-memory booking repository
func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{
		bookings: make(map[uuid.UUID]Booking),
	}
}

// AddBooking seeds a booking. Test helper; assigns an id when absent.
func (r *InMemoryBookingRepository) AddBooking(b Booking) Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	r.bookings[b.ID] = b
	return b
}

// ListBookings retrieves all bookings, newest first
func (r *InMemoryBookingRepository) ListBookings(ctx context.Context) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []Booking
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// GetBooking retrieves a booking by id
func (r *InMemoryBookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// UpdateStatus sets the booking status
func (r *InMemoryBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	r.bookings[id] = b
	return nil
}

// UpdateTravelDate sets the booking travel date
func (r *InMemoryBookingRepository) UpdateTravelDate(ctx context.Context, id uuid.UUID, travelDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.TravelDate = &travelDate
	r.bookings[id] = b
	return nil
}
