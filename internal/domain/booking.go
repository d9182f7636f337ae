package domain

import "fmt"

// BookingMode decides how a date pick changes a provider's pending dates:
// single replaces them, multi toggles the picked date.
type BookingMode string

const (
	BookingSingle BookingMode = "single"
	BookingMulti  BookingMode = "multi"
)

// ParseBookingMode validates a booking mode. An empty string yields "" so the
// caller can fall back to the mode implied by the event selection.
func ParseBookingMode(s string) (BookingMode, error) {
	switch m := BookingMode(s); m {
	case "", BookingSingle, BookingMulti:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown booking mode %q", ErrInvalidInput, s)
}

// BookingModeFor mirrors the event selection mode: one day events book a
// single day, ranges and multi-day sets book any subset.
func BookingModeFor(m SelectionMode) BookingMode {
	if m == ModeSingle {
		return BookingSingle
	}
	return BookingMulti
}

// ProviderBooking is the assignment of event days to one provider.
// AssignedDates is never empty for a stored booking.
// swagger:model ProviderBooking
type ProviderBooking struct {
	ProviderID    string     `json:"provider_id"`
	Category      CategoryID `json:"category"`
	AssignedDates DateSet    `json:"assigned_dates"`
}

func (b *ProviderBooking) Clone() *ProviderBooking {
	return &ProviderBooking{
		ProviderID:    b.ProviderID,
		Category:      b.Category,
		AssignedDates: b.AssignedDates.Clone(),
	}
}

// CascadeChange describes how one booking reacted to an event date change.
type CascadeChange struct {
	ProviderID string     `json:"provider_id"`
	Category   CategoryID `json:"category"`
	Removed    DateSet    `json:"removed_dates"`
	// Deleted is true when no assigned date survived and the booking was dropped.
	Deleted bool `json:"deleted"`
}

// CascadeReport lists the bookings deleted or shrunk by a cascade.
// swagger:model CascadeReport
type CascadeReport struct {
	Changes []CascadeChange `json:"changes"`
}

// AffectedProviderIDs returns the ids of every deleted or shrunk booking.
func (r CascadeReport) AffectedProviderIDs() []string {
	out := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		out = append(out, c.ProviderID)
	}
	return out
}

func (r CascadeReport) Empty() bool {
	return len(r.Changes) == 0
}
