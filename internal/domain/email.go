package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EmailBookingLine is one booked provider in an email body.
type EmailBookingLine struct {
	ProviderName string
	Category     CategoryID
	Dates        []string
}

// EventSummaryEmailData holds data for the saved-draft summary email.
type EventSummaryEmailData struct {
	Email    string
	DraftID  string
	Mode     SelectionMode
	Dates    []string
	Bookings []EmailBookingLine
}

// BookingsInvalidatedEmailData holds data for the notice sent after a date change
// shrank or removed bookings.
type BookingsInvalidatedEmailData struct {
	Email   string
	Dates   []string
	Dropped []EmailBookingLine
	Shrunk  []EmailBookingLine
}

// EmailService defines the contract for sending planner emails.
type EmailService interface {
	SendEventSummary(ctx context.Context, data *EventSummaryEmailData) error
	SendBookingsInvalidated(ctx context.Context, data *BookingsInvalidatedEmailData) error
}
