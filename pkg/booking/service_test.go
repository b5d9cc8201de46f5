package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandertours/travel-admin/pkg/notification"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

type bookingFixture struct {
	service      *BookingService
	repo         *InMemoryBookingRepository
	packageRepo  *travelpackage.InMemoryPackageRepository
	mockNotifier *notification.MockNotifier
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	repo := NewInMemoryBookingRepository()
	packageRepo := travelpackage.NewInMemoryPackageRepository()

	mockNotifier := &notification.MockNotifier{}
	nm := notification.NewNotificationManager()
	nm.RegisterNotifier(notification.SMSSystem, mockNotifier)
	err := nm.RegisterNotification(notification.BookingUpdateNoticeSms, notification.SMSSystem, notification.NoticeTemplate{
		Text: "Hi {{.FullName}}, your booking for {{.Destination}} is now {{.Status}}.",
	})
	require.NoError(t, err)

	return &bookingFixture{
		service:      NewBookingService(repo, packageRepo, nm),
		repo:         repo,
		packageRepo:  packageRepo,
		mockNotifier: mockNotifier,
	}
}

func (f *bookingFixture) seedPackage(t *testing.T, scope travelpackage.Scope, destination string) uuid.UUID {
	t.Helper()
	id, err := f.packageRepo.CreatePackage(context.Background(), scope, travelpackage.PackageParams{
		Name:        destination + " Tour",
		Destination: destination,
	})
	require.NoError(t, err)
	return id
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	intlID := f.seedPackage(t, travelpackage.ScopeInternational, "Tokyo")
	localID := f.seedPackage(t, travelpackage.ScopeLocal, "Palawan")

	f.repo.AddBooking(Booking{FullName: "Juan", Email: "juan@example.com", Status: StatusPending, PackageID: &intlID})
	f.repo.AddBooking(Booking{FullName: "Maria", Email: "maria@example.com", Status: StatusFullyPaid, LocalPackageID: &localID})
	unknownID := uuid.New()
	f.repo.AddBooking(Booking{FullName: "Pedro", Email: "pedro@example.com", PackageID: &unknownID})

	views, err := f.service.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	byName := make(map[string]BookingView)
	for _, v := range views {
		byName[v.FullName] = v
	}

	assert.Equal(t, "Tokyo", byName["Juan"].Destination)
	assert.Equal(t, "Palawan (Local)", byName["Maria"].Destination)
	assert.Equal(t, "Unknown", byName["Pedro"].Destination)
	// Missing status defaults to pending.
	assert.Equal(t, StatusPending, byName["Pedro"].Status)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and notifies by SMS", func(t *testing.T) {
		f := newBookingFixture(t)
		intlID := f.seedPackage(t, travelpackage.ScopeInternational, "Tokyo")
		b := f.repo.AddBooking(Booking{
			FullName:  "Juan",
			Phone:     "+639171234567",
			Status:    StatusPending,
			PackageID: &intlID,
		})

		err := f.service.UpdateStatus(ctx, b.ID, StatusFullyPaid)
		require.NoError(t, err)

		stored, err := f.repo.GetBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusFullyPaid, stored.Status)

		require.Len(t, f.mockNotifier.SentNotifications, 1)
		sent := f.mockNotifier.SentNotifications[0]
		assert.Equal(t, "+639171234567", sent.To)
		assert.Equal(t, "Tokyo", sent.Data["Destination"])
		assert.Equal(t, StatusFullyPaid, sent.Data["Status"])
	})

	t.Run("no phone number, no SMS", func(t *testing.T) {
		f := newBookingFixture(t)
		b := f.repo.AddBooking(Booking{FullName: "Juan", Status: StatusPending})

		err := f.service.UpdateStatus(ctx, b.ID, StatusCancelled)
		require.NoError(t, err)
		assert.Empty(t, f.mockNotifier.SentNotifications)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.service.UpdateStatus(ctx, uuid.New(), StatusCompleted)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateTravelDate(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	b := f.repo.AddBooking(Booking{FullName: "Juan"})

	travelDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.service.UpdateTravelDate(ctx, b.ID, travelDate))

	stored, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TravelDate)
	assert.True(t, stored.TravelDate.Equal(travelDate))
}

func TestSendSMS(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	err := f.service.SendSMS(ctx, "+639171234567", "Gate changes at 5pm")
	require.NoError(t, err)
	require.Len(t, f.mockNotifier.SentNotifications, 1)
	assert.Equal(t, "Gate changes at 5pm", f.mockNotifier.SentNotifications[0].Body)

	err = f.service.SendSMS(ctx, "", "no recipient")
	assert.Error(t, err)
}
