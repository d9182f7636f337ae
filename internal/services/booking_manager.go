package services

import (
	"fmt"
	"sort"

	"eventplanner/internal/domain"
)

// pendingSelection holds date picks not yet confirmed for one provider.
type pendingSelection struct {
	provider *domain.Provider
	dates    domain.DateSet
}

// BookingManager owns the booking state of one planning session: at most one
// confirmed booking per category plus the in-progress picks per provider.
//
// After every operation each stored booking satisfies
// AssignedDates ⊆ provider.Availability ∩ EventDates() and is non-empty.
// Operations that fail leave the state untouched.
type BookingManager struct {
	bookings map[domain.CategoryID]*domain.ProviderBooking
	pending  map[string]*pendingSelection
}

func NewBookingManager() *BookingManager {
	return &BookingManager{
		bookings: make(map[domain.CategoryID]*domain.ProviderBooking),
		pending:  make(map[string]*pendingSelection),
	}
}

// SelectDateForProvider validates date against the provider's availability
// and the current event dates, then applies it to the provider's pending picks:
// BookingSingle replaces them with {date}, BookingMulti toggles date.
// The first pick for a provider starts from its confirmed booking, if any.
// It returns the pending picks after the change.
func (m *BookingManager) SelectDateForProvider(provider *domain.Provider, date domain.CalendarDate, eventDates domain.DateSet, mode domain.BookingMode) (domain.DateSet, error) {
	if !provider.IsAvailable(date) {
		return nil, &domain.DateNotAvailableError{ProviderID: provider.ID, Date: date, Reason: domain.ReasonNotInAvailability}
	}
	if !eventDates.Has(date) {
		return nil, &domain.DateNotAvailableError{ProviderID: provider.ID, Date: date, Reason: domain.ReasonNotInEventDates}
	}

	p, ok := m.pending[provider.ID]
	if !ok {
		p = &pendingSelection{provider: provider, dates: domain.DateSet{}}
		if b, found := m.Booking(provider.ID); found {
			p.dates = b.AssignedDates.Clone()
		}
		m.pending[provider.ID] = p
	}

	switch mode {
	case domain.BookingSingle:
		p.dates = domain.NewDateSet(date)
	default:
		if p.dates.Has(date) {
			p.dates.Remove(date)
		} else {
			p.dates.Add(date)
		}
	}
	return p.dates.Clone(), nil
}

// PendingDates returns the in-progress picks of a provider.
func (m *BookingManager) PendingDates(providerID string) (domain.DateSet, bool) {
	p, ok := m.pending[providerID]
	if !ok {
		return nil, false
	}
	return p.dates.Clone(), true
}

// ConfirmSelection turns the provider's pending picks into its category's
// booking, replacing whichever provider held that category. Picks that are no
// longer inside eventDates are dropped first. An empty result removes the
// provider's booking and returns nil.
func (m *BookingManager) ConfirmSelection(providerID string, eventDates domain.DateSet) (*domain.ProviderBooking, error) {
	p, ok := m.pending[providerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPendingSelection, providerID)
	}
	delete(m.pending, providerID)

	dates := p.dates.Intersect(eventDates).Intersect(p.provider.Availability)
	category := p.provider.Category
	if len(dates) == 0 {
		if b, found := m.bookings[category]; found && b.ProviderID == providerID {
			delete(m.bookings, category)
		}
		return nil, nil
	}

	b := &domain.ProviderBooking{
		ProviderID:    providerID,
		Category:      category,
		AssignedDates: dates,
	}
	m.bookings[category] = b
	return b.Clone(), nil
}

// CancelSelection discards pending picks; confirmed bookings are untouched.
func (m *BookingManager) CancelSelection(providerID string) {
	delete(m.pending, providerID)
}

// RemoveBooking drops the provider's confirmed booking and pending picks.
func (m *BookingManager) RemoveBooking(providerID string) bool {
	delete(m.pending, providerID)
	for c, b := range m.bookings {
		if b.ProviderID == providerID {
			delete(m.bookings, c)
			return true
		}
	}
	return false
}

// OnEventDatesChanged restores the invariant after EventDates() changed from
// oldDates to newDates: every booking keeps only the days still in newDates and
// is deleted when none survive. Pending picks are trimmed the same way. The
// report lists each booking that shrank or was deleted.
func (m *BookingManager) OnEventDatesChanged(oldDates, newDates domain.DateSet) domain.CascadeReport {
	report := domain.CascadeReport{Changes: []domain.CascadeChange{}}

	for _, c := range domain.AllCategories {
		b, ok := m.bookings[c]
		if !ok {
			continue
		}
		kept := b.AssignedDates.Intersect(newDates)
		if len(kept) == len(b.AssignedDates) {
			continue
		}
		removed := domain.DateSet{}
		for d := range b.AssignedDates {
			if !kept.Has(d) {
				removed.Add(d)
			}
		}
		change := domain.CascadeChange{ProviderID: b.ProviderID, Category: c, Removed: removed}
		if len(kept) == 0 {
			delete(m.bookings, c)
			change.Deleted = true
		} else {
			b.AssignedDates = kept
		}
		report.Changes = append(report.Changes, change)
	}

	for _, p := range m.pending {
		p.dates = p.dates.Intersect(newDates)
	}
	return report
}

// Booking returns a copy of the provider's confirmed booking.
func (m *BookingManager) Booking(providerID string) (*domain.ProviderBooking, bool) {
	for _, b := range m.bookings {
		if b.ProviderID == providerID {
			return b.Clone(), true
		}
	}
	return nil, false
}

// BookingForCategory returns a copy of the category's booking.
func (m *BookingManager) BookingForCategory(category domain.CategoryID) (*domain.ProviderBooking, bool) {
	b, ok := m.bookings[category]
	if !ok {
		return nil, false
	}
	return b.Clone(), true
}

// AllBookings returns copies of every booking in category order.
func (m *BookingManager) AllBookings() []*domain.ProviderBooking {
	out := make([]*domain.ProviderBooking, 0, len(m.bookings))
	for _, c := range domain.AllCategories {
		if b, ok := m.bookings[c]; ok {
			out = append(out, b.Clone())
		}
	}
	return out
}

// PendingProviderIDs lists providers with picks in progress, sorted.
func (m *BookingManager) PendingProviderIDs() []string {
	ids := make([]string, 0, len(m.pending))
	for id := range m.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// restore installs a booking that the caller already validated.
func (m *BookingManager) restore(b *domain.ProviderBooking) {
	if len(b.AssignedDates) == 0 {
		return
	}
	m.bookings[b.Category] = b.Clone()
}
