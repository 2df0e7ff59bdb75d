package handler

import (
	stdErrors "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	"github.com/fisherypulse/councilpulse/internal/adapter/presenter"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
	"github.com/fisherypulse/councilpulse/internal/usecase/sync"
)

// Sync triggers scraping runs and exposes run history
type Sync struct {
	service *sync.Service
	logger  *zap.Logger
}

// NewSync creates the sync handler
func NewSync(service *sync.Service, logger *zap.Logger) *Sync {
	return &Sync{service: service, logger: logger}
}

// trigger runs one named source and renders the outcome
func (h *Sync) trigger(c echo.Context, source string) error {
	run, err := h.service.RunSource(c.Request().Context(), source)
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnknownSource):
		return HandleError(h.logger, c, errors.ErrUnknownSource(source))
	case stdErrors.Is(err, usecaseErrors.ErrSyncInProgress):
		return HandleError(h.logger, c, errors.ErrSyncInProgress(source))
	case stdErrors.Is(err, usecaseErrors.ErrSyncFailed):
		// The run carries the counts and error detail; render it with the
		// upstream failure status.
		return HandleError(h.logger, c, errors.ErrSyncFailed(source, err))
	case err != nil:
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSyncResult(run))
}

// ScrapeAmendments handles POST /api/scrape/amendments
func (h *Sync) ScrapeAmendments(c echo.Context) error { return h.trigger(c, "safmc-amendments") }

// ScrapeMeetings handles POST /api/scrape/meetings
func (h *Sync) ScrapeMeetings(c echo.Context) error { return h.trigger(c, "safmc-meetings") }

// ScrapeComments handles POST /api/scrape/comments
func (h *Sync) ScrapeComments(c echo.Context) error { return h.trigger(c, "safmc-comments") }

// ScrapeFisheryPulse handles POST /api/scrape/fisherypulse
func (h *Sync) ScrapeFisheryPulse(c echo.Context) error { return h.trigger(c, "fisherypulse") }

// ImportSSCMeetings handles POST /api/ssc/import/meetings
func (h *Sync) ImportSSCMeetings(c echo.Context) error { return h.trigger(c, "ssc-meetings") }

// ImportCMODWorkshops handles POST /api/cmod/import/workshops
func (h *Sync) ImportCMODWorkshops(c echo.Context) error { return h.trigger(c, "cmod-workshops") }

// ImportEcosystem handles POST /api/ecosystem/import
func (h *Sync) ImportEcosystem(c echo.Context) error { return h.trigger(c, "ecosystem") }

// ScrapeAll handles POST /api/scrape/all
func (h *Sync) ScrapeAll(c echo.Context) error {
	results := h.service.RunAll(c.Request().Context())
	return HandleSuccess(h.logger, c, presenter.ToRunAllResponse(results))
}

// ListRuns handles GET /api/sync/runs
func (h *Sync) ListRuns(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	runs, err := h.service.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToRunResponses(runs))
}
