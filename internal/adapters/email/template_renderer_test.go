package email

import (
	"testing"

	"eventplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_EventSummary(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.EventSummaryEmailData{
		Email:   "host@example.com",
		DraftID: "draft-1",
		Mode:    domain.ModeRange,
		Dates:   []string{"2024-06-01", "2024-06-02"},
		Bookings: []domain.EmailBookingLine{
			{ProviderName: "Old Mill", Category: domain.CategoryVenue, Dates: []string{"2024-06-01", "2024-06-02"}},
		},
	}

	subject, html, text, err := r.Render("event_summary", data)
	require.NoError(t, err)
	assert.Equal(t, "Your event plan draft-1 was saved", subject)
	assert.Contains(t, html, "<strong>venue</strong>: Old Mill on 2024-06-01, 2024-06-02")
	assert.Contains(t, text, "Dates (range): 2024-06-01, 2024-06-02")
	assert.Contains(t, text, "- venue: Old Mill on 2024-06-01, 2024-06-02")
	assert.NotContains(t, text, "No providers are booked yet.")
}

func TestTemplateRenderer_EventSummaryWithoutBookings(t *testing.T) {
	_, html, text, err := NewTemplateRenderer().Render("event_summary", &domain.EventSummaryEmailData{DraftID: "d"})
	require.NoError(t, err)
	assert.Contains(t, html, "No providers are booked yet.")
	assert.Contains(t, text, "No providers are booked yet.")
}

func TestTemplateRenderer_BookingsInvalidated(t *testing.T) {
	data := &domain.BookingsInvalidatedEmailData{
		Dates:   []string{"2024-06-05"},
		Dropped: []domain.EmailBookingLine{{ProviderName: "<b>Spin</b>", Category: domain.CategoryDJ}},
		Shrunk:  []domain.EmailBookingLine{{ProviderName: "Feast", Category: domain.CategoryCatering, Dates: []string{"2024-06-01"}}},
	}

	subject, html, text, err := NewTemplateRenderer().Render("bookings_invalidated", data)
	require.NoError(t, err)
	assert.Equal(t, "Some bookings no longer fit your event dates", subject)
	assert.Contains(t, html, "&lt;b&gt;Spin&lt;/b&gt;", "html body escapes provider names")
	assert.Contains(t, text, "- dj: <b>Spin</b>")
	assert.Contains(t, text, "- catering: Feast (removed 2024-06-01)")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("welcome", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
