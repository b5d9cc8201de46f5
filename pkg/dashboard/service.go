// Package dashboard aggregates booking and catalog data into the stats
// shown on the admin landing page.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/wandertours/travel-admin/pkg/booking"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
)

// RankedPackage is a catalog entry with its booking count
type RankedPackage struct {
	travelpackage.TravelPackage
	Bookings int `json:"bookings"`
}

// Stats holds the aggregated dashboard figures. Cancelled bookings are
// excluded throughout; sales only count fully paid and completed bookings.
type Stats struct {
	TotalBookings      int             `json:"total_bookings"`
	ActiveCustomers    int             `json:"active_customers"`
	TotalSales         float64         `json:"total_sales"`
	MostBookedPackages []RankedPackage `json:"most_booked_packages"`
}

// DashboardService computes dashboard stats
type DashboardService struct {
	bookingRepo booking.BookingRepository
	packageRepo travelpackage.PackageRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(bookingRepo booking.BookingRepository, packageRepo travelpackage.PackageRepository) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

// GetStats aggregates bookings and packages into dashboard figures:
// non-cancelled booking count, distinct customer emails, total sales as
// price times passengers over paid bookings, and the three most booked
// packages.
func (s *DashboardService) GetStats(ctx context.Context) (Stats, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	allPackages := make(map[uuid.UUID]travelpackage.TravelPackage)
	for _, scope := range []travelpackage.Scope{travelpackage.ScopeInternational, travelpackage.ScopeLocal} {
		packages, err := s.packageRepo.ListPackages(ctx, scope)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to list %s packages: %w", scope, err)
		}
		for _, p := range packages {
			allPackages[p.ID] = p
		}
	}

	stats := Stats{MostBookedPackages: []RankedPackage{}}
	emails := make(map[string]struct{})
	bookingCount := make(map[uuid.UUID]int)

	for _, b := range bookings {
		pkgID := uuid.Nil
		if b.PackageID != nil {
			pkgID = *b.PackageID
		} else if b.LocalPackageID != nil {
			pkgID = *b.LocalPackageID
		}

		if b.Status != booking.StatusCancelled {
			stats.TotalBookings++
			emails[b.Email] = struct{}{}
			if pkgID != uuid.Nil {
				bookingCount[pkgID]++
			}
		}

		if b.Status == booking.StatusFullyPaid || b.Status == booking.StatusCompleted {
			if pkg, ok := allPackages[pkgID]; ok {
				passengers := b.Passengers
				if passengers == 0 {
					passengers = 1
				}
				stats.TotalSales += pkg.Price * float64(passengers)
			}
		}
	}
	stats.ActiveCustomers = len(emails)

	type rankEntry struct {
		id    uuid.UUID
		count int
	}
	ranked := make([]rankEntry, 0, len(bookingCount))
	for id, count := range bookingCount {
		ranked = append(ranked, rankEntry{id: id, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	for _, entry := range ranked {
		if len(stats.MostBookedPackages) == 3 {
			break
		}
		pkg, ok := allPackages[entry.id]
		if !ok {
			continue
		}
		stats.MostBookedPackages = append(stats.MostBookedPackages, RankedPackage{
			TravelPackage: pkg,
			Bookings:      entry.count,
		})
	}

	return stats, nil
}
