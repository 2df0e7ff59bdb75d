package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	catalogdto "github.com/fisherypulse/councilpulse/internal/adapter/dto/catalog"
	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/domain/repositories"
	usecaseErrors "github.com/fisherypulse/councilpulse/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	// Map domain sentinels onto the AppError envelope before rendering.
	err = mapDomainError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapDomainError lifts usecase sentinel errors into AppErrors
func mapDomainError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrActionNotFound):
		return errors.ErrNotFound("action")
	case stdErrors.Is(err, usecaseErrors.ErrWorkplanNotFound):
		return errors.ErrNotFound("workplan version")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("resource")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidWorkplanStatus),
		stdErrors.Is(err, usecaseErrors.ErrEmptyWorkplan):
		return errors.ErrWorkplanInvalid(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrConflict):
		return errors.ErrConflict(err.Error())
	}
	return err
}

// optionalStr returns nil for empty query values
func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDateParam parses a yyyy-mm-dd query value, nil when absent or invalid
func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// pageBounds converts page/page_size to limit/offset
func pageBounds(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		pageSize = 25
	}
	if page <= 0 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}

// buildActionFilters converts an action list request to repository filters
func buildActionFilters(req *catalogdto.ListActionsRequest) repositories.ActionFilters {
	limit, offset := pageBounds(req.Page, req.PageSize)
	filters := repositories.ActionFilters{
		Search:    req.Search,
		FMP:       optionalStr(req.FMP),
		Type:      optionalStr(req.Type),
		Stage:     optionalStr(req.Stage),
		Source:    optionalStr(req.Source),
		Limit:     limit,
		Offset:    offset,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Status != "" {
		status := entities.ActionStatus(req.Status)
		filters.Status = &status
	}
	return filters
}

// buildMeetingFilters converts a meeting list request to repository filters
func buildMeetingFilters(req *catalogdto.ListMeetingsRequest) repositories.MeetingFilters {
	limit, offset := pageBounds(req.Page, req.PageSize)
	return repositories.MeetingFilters{
		Council:          optionalStr(req.Council),
		OrganizationType: optionalStr(req.OrgType),
		Region:           optionalStr(req.Region),
		Type:             optionalStr(req.Type),
		From:             parseDateParam(req.From),
		To:               parseDateParam(req.To),
		Limit:            limit,
		Offset:           offset,
		SortBy:           req.SortBy,
		SortOrder:        req.SortOrder,
	}
}

// buildCommentFilters converts a comment list request to repository filters
func buildCommentFilters(req *catalogdto.ListCommentsRequest) repositories.CommentFilters {
	limit, offset := pageBounds(req.Page, req.PageSize)
	filters := repositories.CommentFilters{
		Search:    req.Search,
		ActionID:  optionalStr(req.ActionID),
		State:     optionalStr(req.State),
		Limit:     limit,
		Offset:    offset,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.Position != "" {
		position := entities.NormalizePosition(req.Position)
		filters.Position = &position
	}
	return filters
}
