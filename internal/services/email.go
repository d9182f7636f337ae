package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendEventSummary sends the saved-draft summary using the "event_summary" template.
func (s *emailService) SendEventSummary(ctx context.Context, data *domain.EventSummaryEmailData) error {
	if data == nil {
		return fmt.Errorf("event summary data is nil")
	}
	return s.send(ctx, "event_summary", data.Email, data)
}

// SendBookingsInvalidated tells the user which bookings a date change removed or shrank.
func (s *emailService) SendBookingsInvalidated(ctx context.Context, data *domain.BookingsInvalidatedEmailData) error {
	if data == nil {
		return fmt.Errorf("bookings invalidated data is nil")
	}
	return s.send(ctx, "bookings_invalidated", data.Email, data)
}

func (s *emailService) send(ctx context.Context, templateName, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", templateName, "to", to)
	return nil
}
