package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wandertours/travel-admin/pkg/booking"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

// ScheduleView is a schedule joined with the passenger and package it
// belongs to.
type ScheduleView struct {
	ID            uuid.UUID  `json:"id"`
	PassengerName string     `json:"passenger_name"`
	PackageName   string     `json:"package_name"`
	ReferenceID   *uuid.UUID `json:"reference_id,omitempty"`
	TravelDate    time.Time  `json:"travel_date"`
}

// ScheduleService lists and creates schedules
type ScheduleService struct {
	repo        ScheduleRepository
	bookingRepo booking.BookingRepository
	packageRepo travelpackage.PackageRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo ScheduleRepository, bookingRepo booking.BookingRepository, packageRepo travelpackage.PackageRepository) *ScheduleService {
	return &ScheduleService{
		repo:        repo,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

// ListSchedules retrieves all schedules with passenger and package names
// resolved. Missing bookings or packages show as "Unknown".
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]ScheduleView, error) {
	schedules, err := s.repo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookingsByID := make(map[uuid.UUID]booking.Booking, len(bookings))
	for _, b := range bookings {
		bookingsByID[b.ID] = b
	}

	names := make(map[travelpackage.Scope]map[uuid.UUID]string)
	for _, scope := range []travelpackage.Scope{travelpackage.ScopeInternational, travelpackage.ScopeLocal} {
		packages, err := s.packageRepo.ListPackages(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s packages: %w", scope, err)
		}
		names[scope] = make(map[uuid.UUID]string, len(packages))
		for _, p := range packages {
			names[scope][p.ID] = p.Name
		}
	}

	views := make([]ScheduleView, 0, len(schedules))
	for _, sched := range schedules {
		view := ScheduleView{
			ID:            sched.ID,
			PassengerName: "Unknown",
			PackageName:   "Unknown",
			TravelDate:    sched.TravelDate,
		}
		if sched.ReferenceID != nil {
			view.ReferenceID = sched.ReferenceID
		} else {
			view.ReferenceID = sched.LocalReferenceID
		}

		if b, ok := bookingsByID[sched.BookingID]; ok {
			view.PassengerName = b.FullName
			if b.PackageID != nil {
				if name, ok := names[travelpackage.ScopeInternational][*b.PackageID]; ok {
					view.PackageName = name
				} else {
					view.PackageName = "Unknown International Package"
				}
			} else if b.LocalPackageID != nil {
				if name, ok := names[travelpackage.ScopeLocal][*b.LocalPackageID]; ok {
					view.PackageName = name
				} else {
					view.PackageName = "Unknown Local Package"
				}
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// CreateSchedule inserts a schedule for a booking. One of the references
// must be set.
func (s *ScheduleService) CreateSchedule(ctx context.Context, params CreateScheduleParams) (Schedule, error) {
	if params.ReferenceID == nil && params.LocalReferenceID == nil {
		return Schedule{}, ErrMissingReference
	}
	return s.repo.CreateSchedule(ctx, params)
}
