package services

import (
	"errors"
	"fmt"
	"testing"

	"eventplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariant checks every stored booking is non-empty and inside
// availability ∩ eventDates, with at most one booking per category.
func assertInvariant(t *testing.T, m *BookingManager, catalog *domain.Catalog, eventDates domain.DateSet) {
	t.Helper()
	seen := map[domain.CategoryID]bool{}
	for _, b := range m.AllBookings() {
		p, ok := catalog.Provider(b.ProviderID)
		require.True(t, ok)
		assert.NotEmpty(t, b.AssignedDates, b.ProviderID)
		assert.True(t, b.AssignedDates.SubsetOf(p.Availability.Intersect(eventDates)), b.ProviderID)
		assert.False(t, seen[b.Category], "duplicate category %s", b.Category)
		seen[b.Category] = true
	}
}

func book(t *testing.T, m *BookingManager, p *domain.Provider, eventDates domain.DateSet, dates ...string) {
	t.Helper()
	for _, s := range dates {
		_, err := m.SelectDateForProvider(p, day(s), eventDates, domain.BookingMulti)
		require.NoError(t, err)
	}
	_, err := m.ConfirmSelection(p.ID, eventDates)
	require.NoError(t, err)
}

func TestBookingManager_ScenarioA_SelectAndConfirm(t *testing.T) {
	p1 := provider("P1", domain.CategoryVenue, "2024-06-01", "2024-06-02")
	event := days("2024-06-01")
	m := NewBookingManager()

	pending, err := m.SelectDateForProvider(p1, day("2024-06-01"), event, domain.BookingSingle)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01"}, pending.Strings())

	b, err := m.ConfirmSelection("P1", event)
	require.NoError(t, err)
	require.NotNil(t, b)

	got, ok := m.Booking("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"2024-06-01"}, got.AssignedDates.Strings())
	assert.Equal(t, domain.CategoryVenue, got.Category)
}

func TestBookingManager_ScenarioB_SupersetKeepsBooking(t *testing.T) {
	p1 := provider("P1", domain.CategoryVenue, "2024-06-01", "2024-06-02")
	m := NewBookingManager()
	book(t, m, p1, days("2024-06-01"), "2024-06-01")

	report := m.OnEventDatesChanged(days("2024-06-01"), days("2024-06-01", "2024-06-02", "2024-06-03"))

	assert.True(t, report.Empty())
	got, ok := m.Booking("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"2024-06-01"}, got.AssignedDates.Strings())
}

func TestBookingManager_ScenarioC_DisjointDeletes(t *testing.T) {
	p1 := provider("P1", domain.CategoryVenue, "2024-06-01", "2024-06-02")
	m := NewBookingManager()
	book(t, m, p1, days("2024-06-01", "2024-06-02"), "2024-06-02")

	report := m.OnEventDatesChanged(days("2024-06-01", "2024-06-02"), days("2024-06-05"))

	_, ok := m.Booking("P1")
	assert.False(t, ok)
	assert.Equal(t, []string{"P1"}, report.AffectedProviderIDs())
	require.Len(t, report.Changes, 1)
	assert.True(t, report.Changes[0].Deleted)
	assert.Equal(t, []string{"2024-06-02"}, report.Changes[0].Removed.Strings())
}

func TestBookingManager_ScenarioE_UnavailableDateRejected(t *testing.T) {
	p1 := provider("P1", domain.CategoryVenue, "2024-06-01", "2024-06-02")
	event := days("2024-06-01", "2024-07-01")
	m := NewBookingManager()
	book(t, m, p1, event, "2024-06-01")

	_, err := m.SelectDateForProvider(p1, day("2024-07-01"), event, domain.BookingMulti)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDateNotAvailable))
	var dna *domain.DateNotAvailableError
	require.True(t, errors.As(err, &dna))
	assert.Equal(t, domain.ReasonNotInAvailability, dna.Reason)

	got, ok := m.Booking("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"2024-06-01"}, got.AssignedDates.Strings())
	_, pending := m.PendingDates("P1")
	assert.False(t, pending)
}

func TestBookingManager_DateOutsideEventRejected(t *testing.T) {
	p1 := provider("P1", domain.CategoryVenue, "2024-06-01", "2024-06-02")
	m := NewBookingManager()

	_, err := m.SelectDateForProvider(p1, day("2024-06-02"), days("2024-06-01"), domain.BookingSingle)

	var dna *domain.DateNotAvailableError
	require.True(t, errors.As(err, &dna))
	assert.Equal(t, domain.ReasonNotInEventDates, dna.Reason)
	assert.Empty(t, m.PendingProviderIDs())
}

func TestBookingManager_SingleReplacesMultiToggles(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01", "2024-06-02", "2024-06-03")
	event := days("2024-06-01", "2024-06-02", "2024-06-03")
	m := NewBookingManager()

	_, err := m.SelectDateForProvider(p, day("2024-06-01"), event, domain.BookingSingle)
	require.NoError(t, err)
	pending, err := m.SelectDateForProvider(p, day("2024-06-02"), event, domain.BookingSingle)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-02"}, pending.Strings())

	pending, err = m.SelectDateForProvider(p, day("2024-06-03"), event, domain.BookingMulti)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-02", "2024-06-03"}, pending.Strings())

	pending, err = m.SelectDateForProvider(p, day("2024-06-02"), event, domain.BookingMulti)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-03"}, pending.Strings())

	// nothing is booked until confirmation
	_, ok := m.Booking("dj-1")
	assert.False(t, ok)
}

func TestBookingManager_PendingStartsFromBooking(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01", "2024-06-02")
	event := days("2024-06-01", "2024-06-02")
	m := NewBookingManager()
	book(t, m, p, event, "2024-06-01")

	pending, err := m.SelectDateForProvider(p, day("2024-06-02"), event, domain.BookingMulti)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, pending.Strings())

	m.CancelSelection("dj-1")
	got, ok := m.Booking("dj-1")
	require.True(t, ok)
	assert.Equal(t, []string{"2024-06-01"}, got.AssignedDates.Strings())
}

func TestBookingManager_ConfirmReplacesCategory(t *testing.T) {
	dj1 := provider("dj-1", domain.CategoryDJ, "2024-06-01")
	dj2 := provider("dj-2", domain.CategoryDJ, "2024-06-01")
	venue := provider("venue-1", domain.CategoryVenue, "2024-06-01")
	event := days("2024-06-01")
	m := NewBookingManager()
	book(t, m, venue, event, "2024-06-01")
	book(t, m, dj1, event, "2024-06-01")
	book(t, m, dj2, event, "2024-06-01")

	_, ok := m.Booking("dj-1")
	assert.False(t, ok)
	b, ok := m.BookingForCategory(domain.CategoryDJ)
	require.True(t, ok)
	assert.Equal(t, "dj-2", b.ProviderID)

	all := m.AllBookings()
	require.Len(t, all, 2)
	assert.Equal(t, domain.CategoryVenue, all[0].Category)
	assert.Equal(t, domain.CategoryDJ, all[1].Category)
}

func TestBookingManager_ConfirmEmptyRemovesBooking(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01")
	event := days("2024-06-01")
	m := NewBookingManager()
	book(t, m, p, event, "2024-06-01")

	_, err := m.SelectDateForProvider(p, day("2024-06-01"), event, domain.BookingMulti)
	require.NoError(t, err)
	b, err := m.ConfirmSelection("dj-1", event)
	require.NoError(t, err)
	assert.Nil(t, b)
	_, ok := m.Booking("dj-1")
	assert.False(t, ok)
}

func TestBookingManager_ConfirmWithoutPending(t *testing.T) {
	m := NewBookingManager()
	_, err := m.ConfirmSelection("dj-1", days("2024-06-01"))
	assert.True(t, errors.Is(err, domain.ErrNoPendingSelection))
}

func TestBookingManager_ConfirmDropsStalePicks(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01", "2024-06-02")
	m := NewBookingManager()
	_, err := m.SelectDateForProvider(p, day("2024-06-01"), days("2024-06-01", "2024-06-02"), domain.BookingMulti)
	require.NoError(t, err)
	_, err = m.SelectDateForProvider(p, day("2024-06-02"), days("2024-06-01", "2024-06-02"), domain.BookingMulti)
	require.NoError(t, err)

	b, err := m.ConfirmSelection("dj-1", days("2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-02"}, b.AssignedDates.Strings())
}

func TestBookingManager_CascadeShrinksAndTrimsPending(t *testing.T) {
	catalog := testCatalog()
	venue, _ := catalog.Provider("venue-1")
	dj, _ := catalog.Provider("dj-1")
	catering, _ := catalog.Provider("catering-1")
	old := days("2024-06-01", "2024-06-02", "2024-06-03")
	m := NewBookingManager()
	book(t, m, venue, old, "2024-06-01", "2024-06-02", "2024-06-03")
	book(t, m, dj, old, "2024-06-01")
	_, err := m.SelectDateForProvider(catering, day("2024-06-03"), old, domain.BookingMulti)
	require.NoError(t, err)

	next := days("2024-06-02", "2024-06-03")
	report := m.OnEventDatesChanged(old, next)

	require.Len(t, report.Changes, 2)
	assert.Equal(t, "venue-1", report.Changes[0].ProviderID)
	assert.False(t, report.Changes[0].Deleted)
	assert.Equal(t, []string{"2024-06-01"}, report.Changes[0].Removed.Strings())
	assert.Equal(t, "dj-1", report.Changes[1].ProviderID)
	assert.True(t, report.Changes[1].Deleted)
	assertInvariant(t, m, catalog, next)

	pending, ok := m.PendingDates("catering-1")
	require.True(t, ok)
	assert.Equal(t, []string{"2024-06-03"}, pending.Strings())

	m.OnEventDatesChanged(next, days("2024-06-01"))
	pending, _ = m.PendingDates("catering-1")
	assert.Empty(t, pending)
}

func TestBookingManager_CascadeIdempotent(t *testing.T) {
	catalog := testCatalog()
	venue, _ := catalog.Provider("venue-1")
	event := days("2024-06-01", "2024-06-02")
	m := NewBookingManager()
	book(t, m, venue, event, "2024-06-01", "2024-06-02")

	before := m.AllBookings()
	report := m.OnEventDatesChanged(event, event)
	assert.True(t, report.Empty())
	assert.Equal(t, before, m.AllBookings())
}

func TestBookingManager_EmptyDatesRemovesAll(t *testing.T) {
	catalog := testCatalog()
	venue, _ := catalog.Provider("venue-1")
	dj, _ := catalog.Provider("dj-1")
	event := days("2024-06-01")
	m := NewBookingManager()
	book(t, m, venue, event, "2024-06-01")
	book(t, m, dj, event, "2024-06-01")

	report := m.OnEventDatesChanged(event, domain.DateSet{})

	assert.Empty(t, m.AllBookings())
	assert.ElementsMatch(t, []string{"venue-1", "dj-1"}, report.AffectedProviderIDs())
}

func TestBookingManager_RemoveBooking(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01")
	m := NewBookingManager()
	book(t, m, p, days("2024-06-01"), "2024-06-01")

	assert.True(t, m.RemoveBooking("dj-1"))
	assert.False(t, m.RemoveBooking("dj-1"))
	assert.Empty(t, m.AllBookings())
}

func TestBookingManager_ReturnsCopies(t *testing.T) {
	p := provider("dj-1", domain.CategoryDJ, "2024-06-01", "2024-06-02")
	event := days("2024-06-01", "2024-06-02")
	m := NewBookingManager()
	book(t, m, p, event, "2024-06-01")

	b, _ := m.Booking("dj-1")
	b.AssignedDates.Add(day("2024-06-02"))

	again, _ := m.Booking("dj-1")
	assert.Equal(t, []string{"2024-06-01"}, again.AssignedDates.Strings())
}

type plannerStep struct {
	op       string
	mode     domain.SelectionMode
	date     string
	provider string
}

func setMode(m domain.SelectionMode) plannerStep { return plannerStep{op: "mode", mode: m} }
func click(d string) plannerStep { return plannerStep{op: "click", date: d} }
func pick(id, d string) plannerStep { return plannerStep{op: "pick", provider: id, date: d} }
func confirm(id string) plannerStep { return plannerStep{op: "confirm", provider: id} }
func cancel(id string) plannerStep { return plannerStep{op: "cancel", provider: id} }

// apply runs one step. Rejected picks and confirms are expected in some
// sequences; the invariant has to hold either way.
func (s plannerStep) apply(t *testing.T, p *Planner) {
	t.Helper()
	switch s.op {
	case "mode":
		_, err := p.SetMode(s.mode)
		require.NoError(t, err)
	case "click":
		p.Click(day(s.date))
	case "pick":
		_, _ = p.SelectDate(domain.SelectDateInput{ProviderID: s.provider, Date: day(s.date)})
	case "confirm":
		_, _ = p.Confirm(s.provider)
	case "cancel":
		p.Cancel(s.provider)
	default:
		t.Fatalf("unknown step %q", s.op)
	}
}

func TestBookingManager_InvariantHoldsAcrossSequences(t *testing.T) {
	tests := []struct {
		name         string
		steps        []plannerStep
		wantBookings []string
	}{
		{
			name: "single day booking replaced by a later click",
			steps: []plannerStep{
				click("2024-06-01"), pick("venue-1", "2024-06-01"), confirm("venue-1"),
				pick("dj-1", "2024-06-01"), confirm("dj-1"),
				click("2024-06-03"),
				pick("dj-2", "2024-06-03"), confirm("dj-2"),
			},
			wantBookings: []string{"dj-2"},
		},
		{
			name: "range restart drops multi-day bookings",
			steps: []plannerStep{
				setMode(domain.ModeRange), click("2024-06-01"), click("2024-06-03"),
				pick("venue-1", "2024-06-01"), pick("venue-1", "2024-06-02"), pick("venue-1", "2024-06-03"), confirm("venue-1"),
				pick("catering-1", "2024-06-02"), pick("catering-1", "2024-06-03"), confirm("catering-1"),
				pick("dj-1", "2024-06-02"),
				click("2024-06-02"),
				confirm("dj-1"),
				click("2024-06-03"),
				pick("catering-1", "2024-06-03"), confirm("catering-1"),
			},
			wantBookings: []string{"catering-1"},
		},
		{
			name: "multi toggles with pending picks trimmed",
			steps: []plannerStep{
				setMode(domain.ModeMultiSet), click("2024-06-01"), click("2024-06-05"),
				pick("catering-1", "2024-06-01"), pick("catering-1", "2024-06-05"),
				click("2024-06-05"),
				confirm("catering-1"),
				pick("dj-2", "2024-06-05"), confirm("dj-2"),
				pick("dj-1", "2024-06-01"), confirm("dj-1"),
			},
			wantBookings: []string{"dj-1", "catering-1"},
		},
		{
			name: "unavailable and out-of-event picks are refused",
			steps: []plannerStep{
				setMode(domain.ModeMultiSet), click("2024-06-02"),
				pick("venue-2", "2024-06-02"), confirm("venue-2"),
				pick("dj-1", "2024-06-01"), confirm("dj-1"),
				pick("dj-1", "2024-06-02"), confirm("dj-1"),
			},
			wantBookings: []string{"dj-1"},
		},
		{
			name: "cancel and unpick leave no empty booking",
			steps: []plannerStep{
				click("2024-06-02"), pick("venue-1", "2024-06-02"), cancel("venue-1"),
				setMode(domain.ModeMultiSet), click("2024-06-02"),
				pick("venue-1", "2024-06-02"), confirm("venue-1"),
				pick("venue-1", "2024-06-02"), confirm("venue-1"),
			},
			wantBookings: []string{},
		},
		{
			name: "mode switches clear bookings",
			steps: []plannerStep{
				setMode(domain.ModeRange), click("2024-06-01"), click("2024-06-02"),
				pick("venue-1", "2024-06-01"), confirm("venue-1"),
				setMode(domain.ModeMultiSet), click("2024-06-01"),
				pick("dj-1", "2024-06-01"),
				setMode(domain.ModeSingle), click("2024-06-01"),
				confirm("dj-1"),
				pick("catering-1", "2024-06-01"), confirm("catering-1"),
			},
			wantBookings: []string{"catering-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := testCatalog()
			p := NewPlanner("s", catalog, testNow)
			assertInvariant(t, p.bookings, catalog, p.EventDates())
			for i, step := range tt.steps {
				step.apply(t, p)
				if !t.Run(fmt.Sprintf("step %d %s", i, step.op), func(t *testing.T) {
					assertInvariant(t, p.bookings, catalog, p.EventDates())
				}) {
					return
				}
			}
			got := []string{}
			for _, b := range p.Bookings() {
				got = append(got, b.ProviderID)
			}
			assert.Equal(t, tt.wantBookings, got)
		})
	}
}
