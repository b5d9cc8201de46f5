package schedule

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryScheduleRepository implements ScheduleRepository using in-memory storage
type InMemoryScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[uuid.UUID]Schedule
}

// NewInMemoryScheduleRepository creates a new in-memory schedule repository
func NewInMemoryScheduleRepository() *InMemoryScheduleRepository {
	return &InMemoryScheduleRepository{
		schedules: make(map[uuid.UUID]Schedule),
	}
}

// ListSchedules retrieves all schedules ordered by travel date
func (r *InMemoryScheduleRepository) ListSchedules(ctx context.Context) ([]Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var schedules []Schedule
	for _, s := range r.schedules {
		schedules = append(schedules, s)
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].TravelDate.Before(schedules[j].TravelDate)
	})
	return schedules, nil
}

// CreateSchedule inserts a new schedule
func (r *InMemoryScheduleRepository) CreateSchedule(ctx context.Context, params CreateScheduleParams) (Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Schedule{
		ID:               uuid.New(),
		BookingID:        params.BookingID,
		ReferenceID:      params.ReferenceID,
		LocalReferenceID: params.LocalReferenceID,
		TravelDate:       params.TravelDate,
	}
	r.schedules[s.ID] = s
	return s, nil
}
