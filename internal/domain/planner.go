package domain

import (
	"context"
	"time"
)

// PlannerSessionView is the read model of one planning session.
// swagger:model PlannerSessionView
type PlannerSessionView struct {
	ID             string             `json:"id"`
	Selection      SelectionView      `json:"selection"`
	Categories     []Category         `json:"categories"`
	Bookings       []*ProviderBooking `json:"bookings"`
	CandidateDates DateSet            `json:"candidate_dates"`
	ContactEmail   string             `json:"contact_email,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// DateChangeResult is returned by every operation that may change EventDates().
// swagger:model DateChangeResult
type DateChangeResult struct {
	Selection SelectionView `json:"selection"`
	Cascade   CascadeReport `json:"cascade"`
}

// SelectDateInput is a date pick for one provider.
type SelectDateInput struct {
	ProviderID string
	Date       CalendarDate
	Mode       BookingMode
}

// Conflict is another provider whose booking shares a date.
// swagger:model Conflict
type Conflict struct {
	ProviderID string     `json:"provider_id"`
	Category   CategoryID `json:"category"`
}

// PlannerService hosts planning sessions. Each session has a single serialized
// writer; operations on different sessions run independently.
type PlannerService interface {
	CreateSession(ctx context.Context) (*PlannerSessionView, error)
	GetSession(ctx context.Context, sessionID string) (*PlannerSessionView, error)
	DeleteSession(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) int

	SetMode(ctx context.Context, sessionID string, mode SelectionMode) (*DateChangeResult, error)
	ClickDate(ctx context.Context, sessionID string, date CalendarDate) (*DateChangeResult, error)
	SetCategoryIncluded(ctx context.Context, sessionID string, category CategoryID, included bool) ([]Category, error)
	SetContactEmail(ctx context.Context, sessionID, email string) error

	EligibleProviders(ctx context.Context, sessionID string, category CategoryID) ([]*Provider, error)
	CandidateDates(ctx context.Context, sessionID string) (DateSet, error)

	SelectDate(ctx context.Context, sessionID string, in SelectDateInput) (DateSet, error)
	Confirm(ctx context.Context, sessionID, providerID string) (*ProviderBooking, error)
	Cancel(ctx context.Context, sessionID, providerID string) error
	Booking(ctx context.Context, sessionID, providerID string) (*ProviderBooking, error)
	Bookings(ctx context.Context, sessionID string) ([]*ProviderBooking, error)
	Conflicts(ctx context.Context, sessionID string, date CalendarDate, excludingProviderID string) ([]Conflict, error)

	SaveDraft(ctx context.Context, sessionID string) (*EventDraft, error)
	RestoreDraft(ctx context.Context, draftID string) (*PlannerSessionView, *CascadeReport, error)
	ExportCalendar(ctx context.Context, sessionID string) ([]byte, error)
}

// CalendarExporter renders a planned event into a calendar file.
type CalendarExporter interface {
	Export(draft *EventDraft, catalog *Catalog) ([]byte, error)
}
