package handlers

import (
	"net/http"

	"github.com/damacus/iron-files/internal/filemeta"
	"github.com/damacus/iron-files/internal/services"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BrowserHandler struct {
	catalog *services.Catalog
	logger  *zap.Logger
}

func NewBrowserHandler(catalog *services.Catalog, logger *zap.Logger) *BrowserHandler {
	return &BrowserHandler{catalog: catalog, logger: logger}
}

// storageError maps a catalog failure to an APIError and logs anything unexpected
func (h *BrowserHandler) storageError(err error, resource, id, message string) error {
	if services.IsNotFound(err) {
		return NewNotFoundError(resource, id)
	}
	h.logger.Error(message, zap.String(resource, id), zap.Error(err))
	return NewInternalError(message)
}

// ListBuckets renders the buckets with their formatted sizes
func (h *BrowserHandler) ListBuckets(c echo.Context) error {
	buckets, err := h.catalog.Buckets(c.Request().Context())
	if err != nil {
		return h.storageError(err, "endpoint", "", "Failed to list buckets")
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, buckets)
	}
	return c.Render(http.StatusOK, "buckets", map[string]interface{}{
		"ActiveNav": "buckets",
		"Buckets":   buckets,
	})
}

// BrowseBucket renders one page of the object browser with folder support
func (h *BrowserHandler) BrowseBucket(c echo.Context) error {
	bucketName := c.Param("bucketName")

	opts := services.BrowseOptions{
		Prefix:            c.QueryParam("prefix"),
		ContinuationToken: c.QueryParam("token"),
	}
	if raw := c.QueryParam("category"); raw != "" {
		category, err := filemeta.ParseCategory(raw)
		if err != nil {
			return NewBadRequestError("unknown category", err)
		}
		opts.Category = category
	}

	listing, err := h.catalog.Browse(c.Request().Context(), bucketName, opts)
	if err != nil {
		return h.storageError(err, "bucket", bucketName, "Failed to list objects")
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, listing)
	}
	return c.Render(http.StatusOK, "browser", map[string]interface{}{
		"ActiveNav":  "buckets",
		"Listing":    listing,
		"Categories": filemeta.Categories(),
	})
}

// GetObjectInfo describes a single object
func (h *BrowserHandler) GetObjectInfo(c echo.Context) error {
	bucketName := c.Param("bucketName")
	objectKey := c.QueryParam("key")
	if objectKey == "" {
		return NewBadRequestError("key is required", nil)
	}

	info, err := h.catalog.Object(c.Request().Context(), bucketName, objectKey)
	if err != nil {
		return h.storageError(err, "object", objectKey, "Failed to get object info")
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, info)
	}
	return c.Render(http.StatusOK, "object_info", info)
}
