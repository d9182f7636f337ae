package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// SetModeRequest is the request body for PUT /planner/sessions/{sessionID}/mode.
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// Validate implements Validator.
func (r SetModeRequest) Validate() []string {
	if _, err := domain.ParseSelectionMode(r.Mode); err != nil {
		return []string{"mode must be one of single, range, multi"}
	}
	return nil
}

// ClickDateRequest is the request body for POST /planner/sessions/{sessionID}/dates/click.
type ClickDateRequest struct {
	Date string `json:"date"`
}

// Validate implements Validator.
func (r ClickDateRequest) Validate() []string {
	if r.Date == "" {
		return []string{"date is required"}
	}
	if _, err := domain.ParseDate(r.Date); err != nil {
		return []string{"date must be YYYY-MM-DD"}
	}
	return nil
}

// SetCategoryRequest is the request body for PUT /planner/sessions/{sessionID}/categories/{category}.
type SetCategoryRequest struct {
	Included *bool `json:"included"`
}

// Validate implements Validator.
func (r SetCategoryRequest) Validate() []string {
	if r.Included == nil {
		return []string{"included is required"}
	}
	return nil
}

// SelectDateRequest is the request body for POST /planner/sessions/{sessionID}/providers/{providerID}/dates.
// Mode is optional and defaults to the booking mode implied by the event selection.
type SelectDateRequest struct {
	Date string `json:"date"`
	Mode string `json:"mode,omitempty"`
}

// Validate implements Validator.
func (r SelectDateRequest) Validate() []string {
	var errs []string
	if r.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := domain.ParseDate(r.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if _, err := domain.ParseBookingMode(r.Mode); err != nil {
		errs = append(errs, "mode must be single or multi")
	}
	return errs
}

// SetContactRequest is the request body for PUT /planner/sessions/{sessionID}/contact.
// An empty email clears the contact address.
type SetContactRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r SetContactRequest) Validate() []string {
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return []string{"email must be a valid email address"}
	}
	return nil
}

// SessionSuccessResponse is the success envelope for endpoints returning a session view.
type SessionSuccessResponse struct {
	Data  *domain.PlannerSessionView `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// DateChangeSuccessResponse is the success envelope for mode and click endpoints.
type DateChangeSuccessResponse struct {
	Data  *domain.DateChangeResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CategoriesSuccessResponse is the success envelope for PUT .../categories/{category}.
type CategoriesSuccessResponse struct {
	Data  []domain.Category `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ProvidersSuccessResponse is the success envelope for GET .../eligible/{category}.
type ProvidersSuccessResponse struct {
	Data  []*domain.Provider `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DatesSuccessResponse is the success envelope for endpoints returning a date set.
type DatesSuccessResponse struct {
	Data  domain.DateSet    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PendingDatesResponse is the data payload for POST .../providers/{providerID}/dates.
type PendingDatesResponse struct {
	ProviderID string         `json:"provider_id"`
	Pending    domain.DateSet `json:"pending"`
}

// PendingDatesSuccessResponse is the success envelope for POST .../providers/{providerID}/dates.
type PendingDatesSuccessResponse struct {
	Data  PendingDatesResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ConfirmResponse is the data payload for POST .../providers/{providerID}/confirm.
// Booking is nil and Removed is true when the confirmed picks were empty.
type ConfirmResponse struct {
	Booking *domain.ProviderBooking `json:"booking"`
	Removed bool                    `json:"removed"`
}

// ConfirmSuccessResponse is the success envelope for POST .../providers/{providerID}/confirm.
type ConfirmSuccessResponse struct {
	Data  ConfirmResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookingSuccessResponse is the success envelope for GET .../bookings/{providerID}.
type BookingSuccessResponse struct {
	Data  *domain.ProviderBooking `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// BookingsSuccessResponse is the success envelope for GET .../bookings.
type BookingsSuccessResponse struct {
	Data  []*domain.ProviderBooking `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ConflictsResponse is the data payload for GET .../conflicts.
type ConflictsResponse struct {
	Date        domain.CalendarDate `json:"date"`
	Conflicting bool                `json:"conflicting"`
	Providers   []domain.Conflict   `json:"providers"`
}

// ConflictsSuccessResponse is the success envelope for GET .../conflicts.
type ConflictsSuccessResponse struct {
	Data  ConflictsResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DraftSuccessResponse is the success envelope for POST .../draft.
type DraftSuccessResponse struct {
	Data  *domain.EventDraft `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RestoreDraftResponse is the data payload for POST /planner/drafts/{draftID}/restore.
type RestoreDraftResponse struct {
	Session *domain.PlannerSessionView `json:"session"`
	Cascade *domain.CascadeReport      `json:"cascade"`
}

// RestoreDraftSuccessResponse is the success envelope for POST /planner/drafts/{draftID}/restore.
type RestoreDraftSuccessResponse struct {
	Data  RestoreDraftResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// StatusResponse is the data payload for endpoints with nothing else to return.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusSuccessResponse is the success envelope wrapping StatusResponse.
type StatusSuccessResponse struct {
	Data  StatusResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type PlannerController struct {
	Logger  *slog.Logger
	Service domain.PlannerService
}

func NewPlannerController(logger *slog.Logger, svc domain.PlannerService) *PlannerController {
	return &PlannerController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps service errors to API errors. Unknown errors are
// logged and reported as 500.
func (c *PlannerController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrDateNotAvailable):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDateNotAvailable, err.Error())
	case errors.Is(err, domain.ErrNoPendingSelection):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeNoPendingSelection, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// pathParam reads a required path value, writing a 400 when it is missing.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.PathValue(name))
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	return v, true
}

// CreateSession godoc
// @Summary Start a planning session
// @Description Creates an empty planning session (single-day mode, default categories) over the current provider catalog.
// @Tags planner
// @Produce json
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the new session"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /planner/sessions [post]
func (c *PlannerController) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.CreateSession(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, view)
}

// GetSession godoc
// @Summary Get a planning session
// @Description Returns the selection, category toggles, confirmed bookings and candidate dates of a session.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID} [get]
func (c *PlannerController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	view, err := c.Service.GetSession(r.Context(), sessionID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// DeleteSession godoc
// @Summary Delete a planning session
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID} [delete]
func (c *PlannerController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	if err := c.Service.DeleteSession(r.Context(), sessionID); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// SetMode godoc
// @Summary Switch the date selection mode
// @Description Switching to a different mode clears the selection and cascades into bookings. Setting the current mode is a no-op.
// @Tags planner
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body SetModeRequest true "single, range or multi"
// @Success 200 {object} controllers.DateChangeSuccessResponse "data contains the selection and cascade report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/mode [put]
func (c *PlannerController) SetMode(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	var req SetModeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.SetMode(r.Context(), sessionID, domain.SelectionMode(req.Mode))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// ClickDate godoc
// @Summary Click a calendar day
// @Description Applies a click to the event selection according to the current mode and cascades into bookings.
// @Tags planner
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body ClickDateRequest true "Clicked day (YYYY-MM-DD)"
// @Success 200 {object} controllers.DateChangeSuccessResponse "data contains the selection and cascade report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/dates/click [post]
func (c *PlannerController) ClickDate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	var req ClickDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := domain.ParseDate(req.Date)
	res, err := c.Service.ClickDate(r.Context(), sessionID, date)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// SetCategoryIncluded godoc
// @Summary Include or exclude a category
// @Description The venue category is required and cannot be excluded. Existing bookings are kept.
// @Tags planner
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param category path string true "Category ID"
// @Param body body SetCategoryRequest true "Include toggle"
// @Success 200 {object} controllers.CategoriesSuccessResponse "data contains all categories"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/categories/{category} [put]
func (c *PlannerController) SetCategoryIncluded(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req SetCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cats, err := c.Service.SetCategoryIncluded(r.Context(), sessionID, category, *req.Included)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cats)
}

// SetContactEmail godoc
// @Summary Set the contact email of a session
// @Description Summaries and booking invalidation notices are sent to this address. An empty email disables them.
// @Tags planner
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body SetContactRequest true "Contact email"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/contact [put]
func (c *PlannerController) SetContactEmail(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	var req SetContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetContactEmail(r.Context(), sessionID, strings.TrimSpace(req.Email)); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// EligibleProviders godoc
// @Summary List providers eligible for the event
// @Description Providers of the category available on at least one event day, ordered by id.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param category path string true "Category ID"
// @Success 200 {object} controllers.ProvidersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/eligible/{category} [get]
func (c *PlannerController) EligibleProviders(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	providers, err := c.Service.EligibleProviders(r.Context(), sessionID, category)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, providers)
}

// CandidateDates godoc
// @Summary List candidate dates
// @Description Event days on which every included category has at least one available provider.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.DatesSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/candidates [get]
func (c *PlannerController) CandidateDates(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	dates, err := c.Service.CandidateDates(r.Context(), sessionID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dates)
}

// SelectDate godoc
// @Summary Pick a date for a provider
// @Description Adds the day to the provider's pending picks (single replaces, multi toggles). The day must be an event day and in the provider's availability.
// @Tags planner
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param providerID path string true "Provider ID"
// @Param body body SelectDateRequest true "Picked day and optional booking mode"
// @Success 200 {object} controllers.PendingDatesSuccessResponse "data contains the pending picks"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: date_not_available"
// @Router /planner/sessions/{sessionID}/providers/{providerID}/dates [post]
func (c *PlannerController) SelectDate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	providerID, ok := pathParam(w, r, "providerID")
	if !ok {
		return
	}
	var req SelectDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := domain.ParseDate(req.Date)
	mode, _ := domain.ParseBookingMode(req.Mode)
	pending, err := c.Service.SelectDate(r.Context(), sessionID, domain.SelectDateInput{
		ProviderID: providerID,
		Date:       date,
		Mode:       mode,
	})
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PendingDatesResponse{ProviderID: providerID, Pending: pending})
}

// Confirm godoc
// @Summary Confirm a provider's picks
// @Description Turns the pending picks into the category's booking, replacing any other provider of that category. Empty picks remove the provider's booking.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param providerID path string true "Provider ID"
// @Success 200 {object} controllers.ConfirmSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: no_pending_selection"
// @Router /planner/sessions/{sessionID}/providers/{providerID}/confirm [post]
func (c *PlannerController) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	providerID, ok := pathParam(w, r, "providerID")
	if !ok {
		return
	}
	booking, err := c.Service.Confirm(r.Context(), sessionID, providerID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ConfirmResponse{Booking: booking, Removed: booking == nil})
}

// Cancel godoc
// @Summary Discard a provider's pending picks
// @Description Confirmed bookings are untouched.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param providerID path string true "Provider ID"
// @Success 200 {object} controllers.StatusSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/providers/{providerID}/cancel [post]
func (c *PlannerController) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	providerID, ok := pathParam(w, r, "providerID")
	if !ok {
		return
	}
	if err := c.Service.Cancel(r.Context(), sessionID, providerID); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "cancelled"})
}

// Bookings godoc
// @Summary List confirmed bookings
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.BookingsSuccessResponse "bookings in category order"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/bookings [get]
func (c *PlannerController) Bookings(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	bookings, err := c.Service.Bookings(r.Context(), sessionID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// Booking godoc
// @Summary Get a provider's confirmed booking
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param providerID path string true "Provider ID"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/bookings/{providerID} [get]
func (c *PlannerController) Booking(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	providerID, ok := pathParam(w, r, "providerID")
	if !ok {
		return
	}
	booking, err := c.Service.Booking(r.Context(), sessionID, providerID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// Conflicts godoc
// @Summary List bookings sharing a date
// @Description Informational only; conflicts never block a selection.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param exclude query string false "Provider ID to leave out"
// @Success 200 {object} controllers.ConflictsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /planner/sessions/{sessionID}/conflicts [get]
func (c *PlannerController) Conflicts(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	conflicts, err := c.Service.Conflicts(r.Context(), sessionID, date, r.URL.Query().Get("exclude"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ConflictsResponse{
		Date:        date,
		Conflicting: len(conflicts) > 0,
		Providers:   conflicts,
	})
}

// SaveDraft godoc
// @Summary Save the session as a draft
// @Description Persists the selection, categories and bookings. Repeated saves of a session update the same draft. A summary email is sent when a contact email is set.
// @Tags planner
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /planner/sessions/{sessionID}/draft [post]
func (c *PlannerController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	draft, err := c.Service.SaveDraft(r.Context(), sessionID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// RestoreDraft godoc
// @Summary Open a session from a saved draft
// @Description Bookings are revalidated against the current catalog; dropped days are reported like a cascade.
// @Tags planner
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 201 {object} controllers.RestoreDraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /planner/drafts/{draftID}/restore [post]
func (c *PlannerController) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathParam(w, r, "draftID")
	if !ok {
		return
	}
	view, report, err := c.Service.RestoreDraft(r.Context(), draftID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, RestoreDraftResponse{Session: view, Cascade: report})
}

// ExportCalendar godoc
// @Summary Export the event as iCalendar
// @Description All-day VEVENTs for the event days and for each confirmed booking.
// @Tags planner
// @Produce text/calendar
// @Param sessionID path string true "Session ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /planner/sessions/{sessionID}/calendar.ics [get]
func (c *PlannerController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathParam(w, r, "sessionID")
	if !ok {
		return
	}
	data, err := c.Service.ExportCalendar(r.Context(), sessionID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
