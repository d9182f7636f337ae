package services

import (
	"fmt"
	"time"

	"eventplanner/internal/domain"
)

// Planner is one user's planning session. It ties the date selector, the
// availability index and the booking manager together and runs the booking
// cascade synchronously whenever EventDates() changes, so callers never see a
// booking that is stale against the current selection.
//
// A Planner is not safe for concurrent use; PlannerService serializes access.
type Planner struct {
	ID           string
	selector     *domain.DateSelector
	index        *AvailabilityIndex
	bookings     *BookingManager
	conflicts    *ConflictAnnotator
	settings     domain.CategorySettings
	contactEmail string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlanner starts an empty session over the given catalog snapshot.
func NewPlanner(id string, catalog *domain.Catalog, now time.Time) *Planner {
	bookings := NewBookingManager()
	return &Planner{
		ID:        id,
		selector:  domain.NewDateSelector(),
		index:     NewAvailabilityIndex(catalog),
		bookings:  bookings,
		conflicts: NewConflictAnnotator(bookings),
		settings:  domain.DefaultCategorySettings(),
		createdAt: now,
		updatedAt: now,
	}
}

func (p *Planner) touch(now time.Time) { p.updatedAt = now }

// EventDates returns the concrete days of the current selection.
func (p *Planner) EventDates() domain.DateSet {
	return p.selector.EventDates()
}

// Selection returns the current selection value.
func (p *Planner) Selection() domain.DateSelection {
	return p.selector.Selection()
}

// SetMode switches the selection mode (clearing the selection) and cascades.
func (p *Planner) SetMode(mode domain.SelectionMode) (*domain.DateChangeResult, error) {
	old := p.selector.EventDates()
	changed, err := p.selector.SetMode(mode)
	if err != nil {
		return nil, err
	}
	report := domain.CascadeReport{Changes: []domain.CascadeChange{}}
	if changed {
		report = p.bookings.OnEventDatesChanged(old, p.selector.EventDates())
	}
	return &domain.DateChangeResult{Selection: domain.ViewOf(p.selector.Selection()), Cascade: report}, nil
}

// PreviewClick returns the selection a click on d would produce.
func (p *Planner) PreviewClick(d domain.CalendarDate) domain.DateSelection {
	return p.selector.Preview(d)
}

// Click applies a calendar click and cascades.
func (p *Planner) Click(d domain.CalendarDate) *domain.DateChangeResult {
	old := p.selector.EventDates()
	p.selector.Click(d)
	report := p.bookings.OnEventDatesChanged(old, p.selector.EventDates())
	return &domain.DateChangeResult{Selection: domain.ViewOf(p.selector.Selection()), Cascade: report}
}

// SetCategoryIncluded toggles an optional category. Bookings are kept.
func (p *Planner) SetCategoryIncluded(category domain.CategoryID, included bool) error {
	return p.settings.Set(category, included)
}

func (p *Planner) Categories() []domain.Category {
	return p.settings.Categories()
}

// EligibleProviders lists providers of category available on an event day.
func (p *Planner) EligibleProviders(category domain.CategoryID) ([]*domain.Provider, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	return p.index.EligibleProviders(category, p.selector.EventDates()), nil
}

// CandidateDates returns the event days every included category can cover.
func (p *Planner) CandidateDates() domain.DateSet {
	return p.index.CandidateDates(p.settings.Included(), p.selector.EventDates())
}

// SelectDate picks a date for a provider. An empty mode follows the event
// selection mode.
func (p *Planner) SelectDate(in domain.SelectDateInput) (domain.DateSet, error) {
	provider, ok := p.index.Catalog().Provider(in.ProviderID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, in.ProviderID)
	}
	mode := in.Mode
	if mode == "" {
		mode = domain.BookingModeFor(p.selector.Mode())
	}
	return p.bookings.SelectDateForProvider(provider, in.Date, p.selector.EventDates(), mode)
}

func (p *Planner) Confirm(providerID string) (*domain.ProviderBooking, error) {
	return p.bookings.ConfirmSelection(providerID, p.selector.EventDates())
}

func (p *Planner) Cancel(providerID string) {
	p.bookings.CancelSelection(providerID)
}

func (p *Planner) Booking(providerID string) (*domain.ProviderBooking, bool) {
	return p.bookings.Booking(providerID)
}

func (p *Planner) Bookings() []*domain.ProviderBooking {
	return p.bookings.AllBookings()
}

func (p *Planner) PendingDates(providerID string) (domain.DateSet, bool) {
	return p.bookings.PendingDates(providerID)
}

func (p *Planner) IsDateConflicting(date domain.CalendarDate, excludingProviderID string) bool {
	return p.conflicts.IsDateConflicting(date, excludingProviderID)
}

func (p *Planner) Conflicts(date domain.CalendarDate, excludingProviderID string) []domain.Conflict {
	return p.conflicts.ConflictingProviders(date, excludingProviderID)
}

// View returns the read model of the session.
func (p *Planner) View() *domain.PlannerSessionView {
	return &domain.PlannerSessionView{
		ID:             p.ID,
		Selection:      domain.ViewOf(p.selector.Selection()),
		Categories:     p.settings.Categories(),
		Bookings:       p.bookings.AllBookings(),
		CandidateDates: p.CandidateDates(),
		ContactEmail:   p.contactEmail,
		CreatedAt:      p.createdAt,
		UpdatedAt:      p.updatedAt,
	}
}

// Snapshot serializes the session into a draft. The caller assigns the id.
func (p *Planner) Snapshot(now time.Time) *domain.EventDraft {
	draft := &domain.EventDraft{
		SessionID:          p.ID,
		IncludedCategories: p.settings.Included(),
		Bookings:           []domain.DraftBooking{},
		ContactEmail:       p.contactEmail,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	draft.SetSelection(p.selector.Selection())
	for _, b := range p.bookings.AllBookings() {
		draft.Bookings = append(draft.Bookings, domain.DraftBooking{
			ProviderID: b.ProviderID,
			Category:   b.Category,
			Dates:      b.AssignedDates.Strings(),
		})
	}
	return draft
}

// RestorePlanner rebuilds a session from a draft against the current catalog.
// Booked days that left the provider's availability or the event dates are
// dropped and reported like a cascade; unknown providers are dropped entirely.
func RestorePlanner(id string, draft *domain.EventDraft, catalog *domain.Catalog, now time.Time) (*Planner, domain.CascadeReport, error) {
	sel, err := draft.Selection()
	if err != nil {
		return nil, domain.CascadeReport{}, err
	}
	p := NewPlanner(id, catalog, now)
	p.selector.Restore(sel)
	p.contactEmail = draft.ContactEmail

	p.settings = domain.CategorySettings{}
	for _, c := range draft.IncludedCategories {
		if err := p.settings.Set(c, true); err != nil {
			return nil, domain.CascadeReport{}, err
		}
	}

	report := domain.CascadeReport{Changes: []domain.CascadeChange{}}
	eventDates := p.selector.EventDates()
	seen := make(map[domain.CategoryID]bool)
	for _, db := range draft.Bookings {
		dates, err := domain.ParseDateSet(db.Dates)
		if err != nil {
			return nil, domain.CascadeReport{}, err
		}
		provider, ok := catalog.Provider(db.ProviderID)
		if !ok || provider.Category != db.Category || seen[db.Category] {
			report.Changes = append(report.Changes, domain.CascadeChange{
				ProviderID: db.ProviderID, Category: db.Category, Removed: dates, Deleted: true,
			})
			continue
		}
		kept := dates.Intersect(eventDates).Intersect(provider.Availability)
		if len(kept) != len(dates) {
			removed := domain.DateSet{}
			for d := range dates {
				if !kept.Has(d) {
					removed.Add(d)
				}
			}
			report.Changes = append(report.Changes, domain.CascadeChange{
				ProviderID: db.ProviderID, Category: db.Category, Removed: removed, Deleted: len(kept) == 0,
			})
		}
		if len(kept) > 0 {
			seen[db.Category] = true
			p.bookings.restore(&domain.ProviderBooking{ProviderID: provider.ID, Category: provider.Category, AssignedDates: kept})
		}
	}
	return p, report, nil
}
