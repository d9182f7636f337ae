package domain

import (
	"context"
	"time"
)

// DraftBooking is the serialized form of a ProviderBooking.
type DraftBooking struct {
	ProviderID string     `json:"provider_id"`
	Category   CategoryID `json:"category"`
	Dates      []string   `json:"dates"`
}

// EventDraft is the persisted snapshot of a planning session: the event
// selection, the include toggles and the confirmed bookings. Dates are ISO
// strings so the record round-trips without time-of-day or zone drift.
// swagger:model EventDraft
type EventDraft struct {
	ID                 string         `json:"id"`
	SessionID          string         `json:"session_id"`
	Mode               SelectionMode  `json:"mode"`
	Date               string         `json:"date,omitempty"`
	RangeStart         string         `json:"range_start,omitempty"`
	RangeEnd           string         `json:"range_end,omitempty"`
	Dates              []string       `json:"dates"`
	IncludedCategories []CategoryID   `json:"included_categories"`
	Bookings           []DraftBooking `json:"bookings"`
	ContactEmail       string         `json:"contact_email,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Selection rebuilds the event date selection stored in the draft.
func (d *EventDraft) Selection() (DateSelection, error) {
	view := SelectionView{Mode: d.Mode}
	var err error
	if view.Date, err = optionalDate(d.Date); err != nil {
		return nil, err
	}
	if view.Start, err = optionalDate(d.RangeStart); err != nil {
		return nil, err
	}
	if view.End, err = optionalDate(d.RangeEnd); err != nil {
		return nil, err
	}
	if d.Mode == ModeMultiSet {
		if view.Dates, err = ParseDateSet(d.Dates); err != nil {
			return nil, err
		}
	}
	return SelectionFromView(view)
}

// SetSelection stores sel into the draft's flat fields.
func (d *EventDraft) SetSelection(sel DateSelection) {
	view := ViewOf(sel)
	d.Mode = view.Mode
	d.Date, d.RangeStart, d.RangeEnd = "", "", ""
	if view.Date != nil {
		d.Date = view.Date.String()
	}
	if view.Start != nil {
		d.RangeStart = view.Start.String()
	}
	if view.End != nil {
		d.RangeEnd = view.End.String()
	}
	d.Dates = view.Dates.Strings()
}

func optionalDate(s string) (*CalendarDate, error) {
	if s == "" {
		return nil, nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DraftRepository persists event drafts.
type DraftRepository interface {
	Save(ctx context.Context, draft *EventDraft) error
	GetByID(ctx context.Context, id string) (*EventDraft, error)
}
