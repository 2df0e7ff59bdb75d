package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fisherypulse/councilpulse/errors"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/storage"
)

// Archive exposes the raw payloads captured during sync runs so operators
// can inspect what a source returned before normalization.
type Archive struct {
	archive storage.Archive
	logger  *zap.Logger
}

// NewArchive creates the archive handler. The archive may be nil when raw
// payload retention is disabled.
func NewArchive(archive storage.Archive, logger *zap.Logger) *Archive {
	return &Archive{archive: archive, logger: logger}
}

// ListObjects handles GET /api/sync/archive
func (h *Archive) ListObjects(c echo.Context) error {
	if h.archive == nil {
		return HandleError(h.logger, c, errors.ErrConflict("Raw payload archiving is disabled"))
	}

	objects, err := h.archive.List(c.Request().Context(), c.QueryParam("source"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"objects": objects,
		"count":   len(objects),
	})
}

// DownloadURL handles GET /api/sync/archive/url
func (h *Archive) DownloadURL(c echo.Context) error {
	if h.archive == nil {
		return HandleError(h.logger, c, errors.ErrConflict("Raw payload archiving is disabled"))
	}

	objectName := c.QueryParam("object")
	if objectName == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing object parameter"))
	}

	url, err := h.archive.PresignGet(c.Request().Context(), objectName, 1*time.Hour)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to presign archive object",
				zap.String("object", objectName),
				zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"object":     objectName,
		"url":        url,
		"expires_in": "1 hour",
	})
}
