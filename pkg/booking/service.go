package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wandertours/travel-admin/pkg/notification"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

// BookingView is a booking joined with the destination of its package.
type BookingView struct {
	Booking
	Destination string `json:"destination"`
}

// BookingService lists and updates bookings. The notification manager is
// optional; without it status changes are silent.
type BookingService struct {
	repo                BookingRepository
	packageRepo         travelpackage.PackageRepository
	notificationManager *notification.NotificationManager
}

// NewBookingService creates a new booking service
func NewBookingService(repo BookingRepository, packageRepo travelpackage.PackageRepository, notificationManager *notification.NotificationManager) *BookingService {
	return &BookingService{
		repo:                repo,
		packageRepo:         packageRepo,
		notificationManager: notificationManager,
	}
}

// ListBookings retrieves all bookings with their package destinations
// resolved. Unknown package references map to "Unknown"; a missing status
// defaults to pending.
func (s *BookingService) ListBookings(ctx context.Context) ([]BookingView, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	destinations, err := s.destinationMap(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == "" {
			b.Status = StatusPending
		}

		destination := "Unknown"
		if b.PackageID != nil {
			if d, ok := destinations[*b.PackageID]; ok {
				destination = d
			}
		} else if b.LocalPackageID != nil {
			if d, ok := destinations[*b.LocalPackageID]; ok {
				destination = d + " (Local)"
			}
		}

		views = append(views, BookingView{Booking: b, Destination: destination})
	}

	return views, nil
}

// UpdateStatus sets the booking status and notifies the customer by SMS
// when a phone number is on file. Notification failure does not fail the
// update.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	slog.Info("Booking status updated", "id", id, "status", status)

	if s.notificationManager == nil {
		return nil
	}

	b, err := s.repo.GetBooking(ctx, id)
	if err != nil || b.Phone == "" {
		return nil
	}

	destinations, err := s.destinationMap(ctx)
	if err != nil {
		return nil
	}

	destination := "your trip"
	if b.PackageID != nil {
		if d, ok := destinations[*b.PackageID]; ok {
			destination = d
		}
	} else if b.LocalPackageID != nil {
		if d, ok := destinations[*b.LocalPackageID]; ok {
			destination = d
		}
	}

	err = s.notificationManager.Send(notification.BookingUpdateNoticeSms, notification.NotificationData{
		To: b.Phone,
		Data: map[string]string{
			"FullName":    b.FullName,
			"Destination": destination,
			"Status":      status,
		},
	})
	if err != nil {
		slog.Warn("Failed to send booking status SMS", "id", id, "error", err)
	}

	return nil
}

// UpdateTravelDate sets the booking travel date
func (s *BookingService) UpdateTravelDate(ctx context.Context, id uuid.UUID, travelDate time.Time) error {
	return s.repo.UpdateTravelDate(ctx, id, travelDate)
}

// SendSMS delivers an ad-hoc message to a recipient over the SMS channel.
func (s *BookingService) SendSMS(ctx context.Context, recipient, message string) error {
	if recipient == "" || message == "" {
		return fmt.Errorf("recipient and message required")
	}
	if s.notificationManager == nil {
		return fmt.Errorf("no notification manager configured")
	}
	return s.notificationManager.Send(notification.BookingUpdateNoticeSms, notification.NotificationData{
		To:   recipient,
		Body: message,
	})
}

func (s *BookingService) destinationMap(ctx context.Context) (map[uuid.UUID]string, error) {
	destinations := make(map[uuid.UUID]string)

	for _, scope := range []travelpackage.Scope{travelpackage.ScopeInternational, travelpackage.ScopeLocal} {
		packages, err := s.packageRepo.ListPackages(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s packages: %w", scope, err)
		}
		for _, p := range packages {
			destinations[p.ID] = p.Destination
		}
	}

	return destinations, nil
}
