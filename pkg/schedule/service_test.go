package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandertours/travel-admin/pkg/booking"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

type scheduleFixture struct {
	service     *ScheduleService
	repo        *InMemoryScheduleRepository
	bookingRepo *booking.InMemoryBookingRepository
	packageRepo *travelpackage.InMemoryPackageRepository
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	repo := NewInMemoryScheduleRepository()
	bookingRepo := booking.NewInMemoryBookingRepository()
	packageRepo := travelpackage.NewInMemoryPackageRepository()
	return &scheduleFixture{
		service:     NewScheduleService(repo, bookingRepo, packageRepo),
		repo:        repo,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)
	bookingID := uuid.New()
	refID := uuid.New()
	travelDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates with an international reference", func(t *testing.T) {
		s, err := f.service.CreateSchedule(ctx, CreateScheduleParams{
			BookingID:   bookingID,
			ReferenceID: &refID,
			TravelDate:  travelDate,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.Equal(t, bookingID, s.BookingID)
	})

	t.Run("requires a package reference", func(t *testing.T) {
		_, err := f.service.CreateSchedule(ctx, CreateScheduleParams{
			BookingID:  bookingID,
			TravelDate: travelDate,
		})
		assert.ErrorIs(t, err, ErrMissingReference)
	})
}

func TestListSchedules(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)

	tokyoID, err := f.packageRepo.CreatePackage(ctx, travelpackage.ScopeInternational, travelpackage.PackageParams{
		Name: "Tokyo Explorer", Destination: "Tokyo",
	})
	require.NoError(t, err)
	palawanID, err := f.packageRepo.CreatePackage(ctx, travelpackage.ScopeLocal, travelpackage.PackageParams{
		Name: "Palawan Island Hop", Destination: "Palawan",
	})
	require.NoError(t, err)

	intlBooking := f.bookingRepo.AddBooking(booking.Booking{FullName: "Juan", PackageID: &tokyoID})
	localBooking := f.bookingRepo.AddBooking(booking.Booking{FullName: "Maria", LocalPackageID: &palawanID})

	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err = f.service.CreateSchedule(ctx, CreateScheduleParams{
		BookingID: localBooking.ID, LocalReferenceID: &palawanID, TravelDate: second,
	})
	require.NoError(t, err)
	_, err = f.service.CreateSchedule(ctx, CreateScheduleParams{
		BookingID: intlBooking.ID, ReferenceID: &tokyoID, TravelDate: first,
	})
	require.NoError(t, err)

	// Orphan schedule whose booking no longer exists.
	_, err = f.service.CreateSchedule(ctx, CreateScheduleParams{
		BookingID: uuid.New(), ReferenceID: &tokyoID, TravelDate: second,
	})
	require.NoError(t, err)

	views, err := f.service.ListSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Ordered by travel date.
	assert.Equal(t, "Juan", views[0].PassengerName)
	assert.Equal(t, "Tokyo Explorer", views[0].PackageName)
	require.NotNil(t, views[0].ReferenceID)
	assert.Equal(t, tokyoID, *views[0].ReferenceID)

	byName := make(map[string]ScheduleView)
	for _, v := range views {
		byName[v.PassengerName] = v
	}
	assert.Equal(t, "Palawan Island Hop", byName["Maria"].PackageName)
	assert.Equal(t, "Unknown", byName["Unknown"].PackageName)
}
