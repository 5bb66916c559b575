package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/core/ports"
)

type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Summary handles GET /api/stats.
//
// @Summary      Dashboard counters
// @Tags         stats
// @Produce      json
// @Success      200  {object}  ports.Stats
// @Failure      401  {object}  errorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Summary(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
