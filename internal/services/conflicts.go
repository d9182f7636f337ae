package services

import "eventplanner/internal/domain"

// ConflictAnnotator reports dates shared with other providers' bookings.
// It is informational only and never blocks a selection.
type ConflictAnnotator struct {
	bookings *BookingManager
}

func NewConflictAnnotator(bookings *BookingManager) *ConflictAnnotator {
	return &ConflictAnnotator{bookings: bookings}
}

// IsDateConflicting reports whether a booking other than excludingProviderID's
// already holds date.
func (a *ConflictAnnotator) IsDateConflicting(date domain.CalendarDate, excludingProviderID string) bool {
	for _, b := range a.bookings.bookings {
		if b.ProviderID != excludingProviderID && b.AssignedDates.Has(date) {
			return true
		}
	}
	return false
}

// ConflictingProviders lists, in category order, the other bookings holding date.
func (a *ConflictAnnotator) ConflictingProviders(date domain.CalendarDate, excludingProviderID string) []domain.Conflict {
	out := []domain.Conflict{}
	for _, b := range a.bookings.AllBookings() {
		if b.ProviderID == excludingProviderID || !b.AssignedDates.Has(date) {
			continue
		}
		out = append(out, domain.Conflict{ProviderID: b.ProviderID, Category: b.Category})
	}
	return out
}
