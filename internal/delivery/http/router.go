package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(plannerController *controllers.PlannerController, catalogController *controllers.CatalogController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, controllers.StatusResponse{Status: "ok"})
	})

	// Catalog
	mux.HandleFunc("GET /catalog/providers", catalogController.ListProviders)
	mux.HandleFunc("GET /catalog/providers/{providerID}", catalogController.GetProvider)

	// Planner sessions
	mux.HandleFunc("POST /planner/sessions", plannerController.CreateSession)
	mux.HandleFunc("GET /planner/sessions/{sessionID}", plannerController.GetSession)
	mux.HandleFunc("DELETE /planner/sessions/{sessionID}", plannerController.DeleteSession)

	// Event dates and categories
	mux.HandleFunc("PUT /planner/sessions/{sessionID}/mode", plannerController.SetMode)
	mux.HandleFunc("POST /planner/sessions/{sessionID}/dates/click", plannerController.ClickDate)
	mux.HandleFunc("PUT /planner/sessions/{sessionID}/categories/{category}", plannerController.SetCategoryIncluded)
	mux.HandleFunc("PUT /planner/sessions/{sessionID}/contact", plannerController.SetContactEmail)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/eligible/{category}", plannerController.EligibleProviders)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/candidates", plannerController.CandidateDates)

	// Provider bookings
	mux.HandleFunc("POST /planner/sessions/{sessionID}/providers/{providerID}/dates", plannerController.SelectDate)
	mux.HandleFunc("POST /planner/sessions/{sessionID}/providers/{providerID}/confirm", plannerController.Confirm)
	mux.HandleFunc("POST /planner/sessions/{sessionID}/providers/{providerID}/cancel", plannerController.Cancel)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/bookings", plannerController.Bookings)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/bookings/{providerID}", plannerController.Booking)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/conflicts", plannerController.Conflicts)

	// Drafts and export
	mux.HandleFunc("POST /planner/sessions/{sessionID}/draft", plannerController.SaveDraft)
	mux.HandleFunc("POST /planner/drafts/{draftID}/restore", plannerController.RestoreDraft)
	mux.HandleFunc("GET /planner/sessions/{sessionID}/calendar.ics", plannerController.ExportCalendar)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
