package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	catalogdto "github.com/fisherypulse/councilpulse/internal/adapter/dto/catalog"
	"github.com/fisherypulse/councilpulse/internal/adapter/dto/common"
	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	"github.com/fisherypulse/councilpulse/internal/usecase/catalog"
)

// Catalog serves read access to scraped records
type Catalog struct {
	service *catalog.Service
	logger  *zap.Logger
}

// NewCatalog creates the catalog handler
func NewCatalog(service *catalog.Service, logger *zap.Logger) *Catalog {
	return &Catalog{service: service, logger: logger}
}

func listResponse(data interface{}, page, pageSize int, total int64) common.ListResponse {
	if pageSize <= 0 {
		pageSize = 25
	}
	if page <= 0 {
		page = 1
	}
	return common.ListResponse{
		Data:       data,
		Pagination: common.NewPagination(page, pageSize, total),
	}
}

// ListActions handles GET /api/actions
func (h *Catalog) ListActions(c echo.Context) error {
	var req catalogdto.ListActionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	actions, total, err := h.service.ListActions(c.Request().Context(), buildActionFilters(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(actions, req.Page, req.PageSize, total))
}

// ListActionsWithStockStatus handles GET /api/actions/with-stock-status
func (h *Catalog) ListActionsWithStockStatus(c echo.Context) error {
	var req catalogdto.ListActionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	actions, total, err := h.service.ListActionsWithStockStatus(c.Request().Context(), buildActionFilters(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(actions, req.Page, req.PageSize, total))
}

// GetAction handles GET /api/actions/:id
func (h *Catalog) GetAction(c echo.Context) error {
	action, err := h.service.GetAction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, action)
}

// ListMeetings handles GET /api/meetings
func (h *Catalog) ListMeetings(c echo.Context) error {
	var req catalogdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	meetings, total, err := h.service.ListMeetings(c.Request().Context(), buildMeetingFilters(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(meetings, req.Page, req.PageSize, total))
}

// ListComments handles GET /api/comments
func (h *Catalog) ListComments(c echo.Context) error {
	var req catalogdto.ListCommentsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	comments, total, err := h.service.ListComments(c.Request().Context(), buildCommentFilters(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(comments, req.Page, req.PageSize, total))
}

// ListSSCMeetings handles GET /api/ssc/meetings
func (h *Catalog) ListSSCMeetings(c echo.Context) error {
	var req catalogdto.ListSSCMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	limit, offset := pageBounds(req.Page, req.PageSize)
	filters := repositories.SSCMeetingFilters{Limit: limit, Offset: offset}
	if req.Status != "" {
		status := entities.SSCMeetingStatus(req.Status)
		filters.Status = &status
	}

	meetings, total, err := h.service.ListSSCMeetings(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(meetings, req.Page, req.PageSize, total))
}

// ListSSCRecommendations handles GET /api/ssc/recommendations
func (h *Catalog) ListSSCRecommendations(c echo.Context) error {
	var req catalogdto.ListSSCRecommendationsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	limit, offset := pageBounds(req.Page, req.PageSize)
	filters := repositories.SSCRecommendationFilters{
		MeetingID: optionalStr(req.MeetingID),
		Type:      optionalStr(req.Type),
		Species:   optionalStr(req.Species),
		Limit:     limit,
		Offset:    offset,
	}

	recs, total, err := h.service.ListSSCRecommendations(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(recs, req.Page, req.PageSize, total))
}

// ListIndicators handles GET /api/ecosystem/indicators
func (h *Catalog) ListIndicators(c echo.Context) error {
	var req catalogdto.ListIndicatorsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	limit, offset := pageBounds(req.Page, req.PageSize)
	filters := repositories.EcosystemFilters{
		Category: optionalStr(req.Category),
		Region:   optionalStr(req.Region),
		Limit:    limit,
		Offset:   offset,
	}

	indicators, total, err := h.service.ListIndicators(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, listResponse(indicators, req.Page, req.PageSize, total))
}
