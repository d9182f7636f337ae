package ical

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventplanner/internal/domain"
)

const productID = "-//eventplanner//planner export//EN"

// Exporter renders an event draft as an iCalendar file: one all-day VEVENT per
// contiguous run of event days and one per contiguous run of each booking.
type Exporter struct {
	now func() time.Time
}

func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

func (e *Exporter) Export(draft *domain.EventDraft, catalog *domain.Catalog) ([]byte, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: draft is nil", domain.ErrInvalidInput)
	}
	stamp := e.now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	eventDates, err := domain.ParseDateSet(draft.Dates)
	if err != nil {
		return nil, err
	}
	for i, run := range contiguousRuns(eventDates) {
		ev := cal.AddEvent(fmt.Sprintf("%s-event-%d", uidBase(draft), i))
		setAllDay(ev, run, stamp)
		ev.SetSummary("Event")
	}

	for _, b := range draft.Bookings {
		dates, err := domain.ParseDateSet(b.Dates)
		if err != nil {
			return nil, err
		}
		name := b.ProviderID
		if catalog != nil {
			if p, ok := catalog.Provider(b.ProviderID); ok && p.Name != "" {
				name = p.Name
			}
		}
		for i, run := range contiguousRuns(dates) {
			ev := cal.AddEvent(fmt.Sprintf("%s-%s-%d", uidBase(draft), b.ProviderID, i))
			setAllDay(ev, run, stamp)
			ev.SetSummary(fmt.Sprintf("%s: %s", b.Category, name))
			ev.SetDescription(fmt.Sprintf("Provider %s booked for %s", b.ProviderID, strings.Join(b.Dates, ", ")))
		}
	}
	return []byte(cal.Serialize()), nil
}

func uidBase(draft *domain.EventDraft) string {
	if draft.ID != "" {
		return draft.ID
	}
	return draft.SessionID
}

// setAllDay sets DTSTART/DTEND for the run; DTEND is exclusive.
func setAllDay(ev *ics.VEvent, run []domain.CalendarDate, stamp time.Time) {
	ev.SetDtStampTime(stamp)
	ev.SetAllDayStartAt(run[0].Time())
	ev.SetAllDayEndAt(run[len(run)-1].AddDays(1).Time())
}

// contiguousRuns splits the sorted dates into runs of consecutive days.
func contiguousRuns(dates domain.DateSet) [][]domain.CalendarDate {
	var runs [][]domain.CalendarDate
	var cur []domain.CalendarDate
	for _, d := range dates.Sorted() {
		if len(cur) > 0 && cur[len(cur)-1].AddDays(1) != d {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, d)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
