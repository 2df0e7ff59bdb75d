package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	"github.com/fisherypulse/councilpulse/internal/usecase/compare"
)

// Compare serves side-by-side and fuzzy action comparisons
type Compare struct {
	service *compare.Service
	logger  *zap.Logger
}

// NewCompare creates the compare handler
func NewCompare(service *compare.Service, logger *zap.Logger) *Compare {
	return &Compare{service: service, logger: logger}
}

// SideBySide handles GET /api/compare?ids=a,b,c
func (h *Compare) SideBySide(c echo.Context) error {
	raw := c.QueryParam("ids")
	if raw == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("ids query parameter is required"))
	}

	ids := make([]string, 0, 4)
	for _, id := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	actions, err := h.service.SideBySide(c.Request().Context(), ids)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, actions)
}

// Similar handles GET /api/compare/similar/:id
func (h *Compare) Similar(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	scored, err := h.service.Similar(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, scored)
}
