package controllers

import (
	"log/slog"
	"net/http"

	"snapevents/internal/delivery/http/helpers"
	"snapevents/internal/domain"
)

type ListingController struct {
	Logger  *slog.Logger
	Service domain.EventQueryService
}

func NewListingController(logger *slog.Logger, svc domain.EventQueryService) *ListingController {
	return &ListingController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List upcoming events
// @Description Returns one page of published events starting today or later. Out of range or unparseable parameters are clamped or defaulted, never rejected. The body is not wrapped in the API envelope.
// @Tags events
// @Produce json
// @Param page query int false "Page number (>= 1)" default(1)
// @Param per_page query int false "Page size (1..100)" default(6)
// @Param order query string false "Sort by start date" Enums(ASC, DESC) default(ASC)
// @Param city query string false "Exact city filter"
// @Param state query string false "Exact state filter"
// @Param country query string false "Exact country filter"
// @Success 200 {object} domain.ListingResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *ListingController) ListEvents(w http.ResponseWriter, r *http.Request) {
	criteria := helpers.ParseListingQuery(r)
	result, err := c.Service.ListUpcoming(r.Context(), criteria)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, domain.NewListingResponse(result, criteria.Page, criteria.PageSize))
}
