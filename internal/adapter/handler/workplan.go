package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	"github.com/fisherypulse/councilpulse/internal/usecase/workplan"
)

// Workplan serves versioned council workplan snapshots
type Workplan struct {
	service *workplan.Service
	logger  *zap.Logger
}

// NewWorkplan creates the workplan handler
func NewWorkplan(service *workplan.Service, logger *zap.Logger) *Workplan {
	return &Workplan{service: service, logger: logger}
}

// Current handles GET /api/workplan/current
func (h *Workplan) Current(c echo.Context) error {
	version, err := h.service.Current(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, version)
}

// Create handles POST /api/workplan/current
func (h *Workplan) Create(c echo.Context) error {
	var input workplan.VersionInput
	if err := c.Bind(&input); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&input); err != nil {
		return HandleError(h.logger, c, errors.ErrWorkplanInvalid(err.Error()))
	}

	version, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, version)
}

// Version handles GET /api/workplan/version/:id
func (h *Workplan) Version(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid version id"))
	}

	version, err := h.service.Version(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, version)
}

// Versions handles GET /api/workplan/versions
func (h *Workplan) Versions(c echo.Context) error {
	versions, err := h.service.Versions(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, versions)
}

// Stats handles GET /api/workplan/stats
func (h *Workplan) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, stats)
}
