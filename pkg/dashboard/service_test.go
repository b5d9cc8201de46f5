package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandertours/travel-admin/pkg/booking"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

func seedPackage(t *testing.T, repo *travelpackage.InMemoryPackageRepository, scope travelpackage.Scope, destination string, price float64) uuid.UUID {
	t.Helper()
	id, err := repo.CreatePackage(context.Background(), scope, travelpackage.PackageParams{
		Name:        destination + " Tour",
		Destination: destination,
		Price:       price,
	})
	require.NoError(t, err)
	return id
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	bookingRepo := booking.NewInMemoryBookingRepository()
	packageRepo := travelpackage.NewInMemoryPackageRepository()
	service := NewDashboardService(bookingRepo, packageRepo)

	t.Run("empty data", func(t *testing.T) {
		stats, err := service.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalBookings)
		assert.Equal(t, 0, stats.ActiveCustomers)
		assert.Equal(t, float64(0), stats.TotalSales)
		assert.Empty(t, stats.MostBookedPackages)
	})

	tokyo := seedPackage(t, packageRepo, travelpackage.ScopeInternational, "Tokyo", 45000)
	palawan := seedPackage(t, packageRepo, travelpackage.ScopeLocal, "Palawan", 12000)
	seoul := seedPackage(t, packageRepo, travelpackage.ScopeInternational, "Seoul", 38000)

	// Tokyo: three bookings, one fully paid with 2 passengers.
	bookingRepo.AddBooking(booking.Booking{Email: "a@example.com", Status: booking.StatusFullyPaid, Passengers: 2, PackageID: &tokyo})
	bookingRepo.AddBooking(booking.Booking{Email: "b@example.com", Status: booking.StatusPending, Passengers: 1, PackageID: &tokyo})
	bookingRepo.AddBooking(booking.Booking{Email: "a@example.com", Status: booking.StatusCompleted, Passengers: 1, PackageID: &tokyo})
	// Palawan: two bookings, one completed without a passenger count.
	bookingRepo.AddBooking(booking.Booking{Email: "c@example.com", Status: booking.StatusCompleted, LocalPackageID: &palawan})
	bookingRepo.AddBooking(booking.Booking{Email: "d@example.com", Status: booking.StatusPending, Passengers: 3, LocalPackageID: &palawan})
	// Seoul: one booking, cancelled.
	bookingRepo.AddBooking(booking.Booking{Email: "e@example.com", Status: booking.StatusCancelled, Passengers: 2, PackageID: &seoul})

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	t.Run("cancelled bookings are excluded from the count", func(t *testing.T) {
		assert.Equal(t, 5, stats.TotalBookings)
	})

	t.Run("active customers are distinct emails", func(t *testing.T) {
		// a, b, c, d; the cancelled e does not count.
		assert.Equal(t, 4, stats.ActiveCustomers)
	})

	t.Run("sales cover paid and completed bookings only", func(t *testing.T) {
		// Tokyo 45000*2 + Tokyo 45000*1 + Palawan 12000*1 (defaulted passengers).
		assert.Equal(t, float64(45000*2+45000+12000), stats.TotalSales)
	})

	t.Run("most booked packages are ranked", func(t *testing.T) {
		require.Len(t, stats.MostBookedPackages, 2)
		assert.Equal(t, "Tokyo", stats.MostBookedPackages[0].Destination)
		assert.Equal(t, 3, stats.MostBookedPackages[0].Bookings)
		assert.Equal(t, "Palawan", stats.MostBookedPackages[1].Destination)
		assert.Equal(t, 2, stats.MostBookedPackages[1].Bookings)
	})
}

func TestGetStatsTopThree(t *testing.T) {
	ctx := context.Background()

	bookingRepo := booking.NewInMemoryBookingRepository()
	packageRepo := travelpackage.NewInMemoryPackageRepository()
	service := NewDashboardService(bookingRepo, packageRepo)

	destinations := []string{"Tokyo", "Seoul", "Osaka", "Cebu"}
	for i, destination := range destinations {
		id := seedPackage(t, packageRepo, travelpackage.ScopeInternational, destination, 1000)
		// Tokyo gets 4 bookings, Seoul 3, Osaka 2, Cebu 1.
		for j := 0; j < len(destinations)-i; j++ {
			bookingRepo.AddBooking(booking.Booking{Email: "x@example.com", Status: booking.StatusPending, PackageID: &id})
		}
	}

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.MostBookedPackages, 3)
	assert.Equal(t, "Tokyo", stats.MostBookedPackages[0].Destination)
	assert.Equal(t, "Seoul", stats.MostBookedPackages[1].Destination)
	assert.Equal(t, "Osaka", stats.MostBookedPackages[2].Destination)
}
