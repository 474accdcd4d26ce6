package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"snapevents/internal/delivery/http/helpers"
	"snapevents/internal/domain"
)

const maxAttributesBytes = 64 << 10

// RenderBlockResponse is the body of POST /blocks/{layout}/render.
type RenderBlockResponse struct {
	Rendered string `json:"rendered"`
}

type BlockController struct {
	Logger  *slog.Logger
	Service domain.BlockService
}

func NewBlockController(logger *slog.Logger, svc domain.BlockService) *BlockController {
	return &BlockController{
		Logger:  logger,
		Service: svc,
	}
}

// Render godoc
// @Summary Render a listing block
// @Description Renders the grid or list block for the given attributes. Omitted attributes take their defaults. The markup embeds the resolved configuration for the client controller.
// @Tags blocks
// @Accept json
// @Produce json
// @Param layout path string true "Block layout" Enums(grid, list)
// @Param attributes body domain.ListingConfig false "Block attributes"
// @Success 200 {object} controllers.RenderBlockResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /blocks/{layout}/render [post]
func (c *BlockController) Render(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxAttributesBytes))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "failed to read attributes")
		return
	}
	cfg, err := domain.ParseListingConfig(r.PathValue("layout"), body)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	out, err := c.Service.Render(r.Context(), cfg)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to render block")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, RenderBlockResponse{Rendered: string(out)})
}
