package services

import (
	"time"

	"eventplanner/internal/domain"
)

func day(s string) domain.CalendarDate { return domain.MustParseDate(s) }

func days(ss ...string) domain.DateSet {
	out := domain.DateSet{}
	for _, s := range ss {
		out.Add(day(s))
	}
	return out
}

func provider(id string, cat domain.CategoryID, avail ...string) *domain.Provider {
	return domain.NewProvider(id, id, cat, days(avail...))
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testCatalog holds a venue, two DJs and a caterer around early June 2024.
func testCatalog() *domain.Catalog {
	return domain.NewCatalog([]*domain.Provider{
		provider("venue-1", domain.CategoryVenue, "2024-06-01", "2024-06-02", "2024-06-03"),
		provider("venue-2", domain.CategoryVenue, "2024-06-05"),
		provider("dj-1", domain.CategoryDJ, "2024-06-01", "2024-06-02"),
		provider("dj-2", domain.CategoryDJ, "2024-06-03", "2024-06-05"),
		provider("catering-1", domain.CategoryCatering, "2024-06-01", "2024-06-02", "2024-06-03", "2024-06-05"),
	}, testNow)
}
