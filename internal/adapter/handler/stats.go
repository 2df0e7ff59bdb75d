package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/internal/usecase/stats"
)

// Stats serves dashboard, species and resource allocation aggregates
type Stats struct {
	service *stats.Service
	logger  *zap.Logger
}

// NewStats creates the stats handler
func NewStats(service *stats.Service, logger *zap.Logger) *Stats {
	return &Stats{service: service, logger: logger}
}

// Dashboard handles GET /api/dashboard/stats
func (h *Stats) Dashboard(c echo.Context) error {
	result, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// Species handles GET /api/species/stats
func (h *Stats) Species(c echo.Context) error {
	result, err := h.service.Species(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// SpeciesByName handles GET /api/species/:name
func (h *Stats) SpeciesByName(c echo.Context) error {
	result, err := h.service.SpeciesByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// ResourceAllocation handles GET /api/resource-allocation
func (h *Stats) ResourceAllocation(c echo.Context) error {
	result, err := h.service.ResourceAllocation(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}
