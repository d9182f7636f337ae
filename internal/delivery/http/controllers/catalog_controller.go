package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventplanner/internal/delivery/http/helpers"
	"eventplanner/internal/domain"
)

// ListProvidersResponse is the data payload for GET /catalog/providers.
type ListProvidersResponse struct {
	Items      []*domain.Provider     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListProvidersSuccessResponse is the success response envelope for GET /catalog/providers (200).
type ListProvidersSuccessResponse struct {
	Data  ListProvidersResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ProviderSuccessResponse is the success response envelope for GET /catalog/providers/{providerID} (200).
type ProviderSuccessResponse struct {
	Data  *domain.Provider  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CatalogController struct {
	Logger     *slog.Logger
	Repository domain.ProviderRepository
}

func NewCatalogController(logger *slog.Logger, repo domain.ProviderRepository) *CatalogController {
	return &CatalogController{
		Logger:     logger,
		Repository: repo,
	}
}

// ListProviders godoc
// @Summary List providers of a category
// @Description Paginated providers of one category with their availability, ordered by id.
// @Tags catalog
// @Produce json
// @Param category query string true "Category ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListProvidersSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/providers [get]
func (c *CatalogController) ListProviders(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	params := helpers.ParsePagination(r)
	list, total, err := c.Repository.ListByCategory(r.Context(), category, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.Provider{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListProvidersResponse{Items: list, Pagination: meta})
}

// GetProvider godoc
// @Summary Get a provider
// @Tags catalog
// @Produce json
// @Param providerID path string true "Provider ID"
// @Success 200 {object} controllers.ProviderSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/providers/{providerID} [get]
func (c *CatalogController) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, ok := pathParam(w, r, "providerID")
	if !ok {
		return
	}
	p, err := c.Repository.GetByID(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "provider not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}
