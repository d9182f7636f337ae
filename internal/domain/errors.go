package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services, repositories and handlers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionNotFound    = fmt.Errorf("planner session %w", ErrNotFound)
	ErrProviderNotFound   = fmt.Errorf("provider %w", ErrNotFound)
	ErrDraftNotFound      = fmt.Errorf("draft %w", ErrNotFound)
	ErrNoPendingSelection = errors.New("no pending selection for provider")
	ErrDateNotAvailable   = errors.New("date not available")
)

// Reasons carried by DateNotAvailableError.
const (
	ReasonNotInAvailability = "not_in_availability"
	ReasonNotInEventDates   = "not_in_event_dates"
)

// DateNotAvailableError is returned when a date cannot be assigned to a provider.
// It matches ErrDateNotAvailable with errors.Is.
type DateNotAvailableError struct {
	ProviderID string
	Date       CalendarDate
	Reason     string
}

func (e *DateNotAvailableError) Error() string {
	return fmt.Sprintf("date %s not available for provider %s: %s", e.Date, e.ProviderID, e.Reason)
}

func (e *DateNotAvailableError) Is(target error) bool {
	return target == ErrDateNotAvailable
}
