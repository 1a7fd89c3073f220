package handlers

import (
	"net/http"
	"strconv"

	"github.com/damacus/iron-files/internal/filemeta"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// maxNameLength bounds the file names accepted by the API.
const maxNameLength = 4096

type FilesHandler struct {
	validate *validator.Validate
}

func NewFilesHandler() *FilesHandler {
	return &FilesHandler{validate: validator.New()}
}

type sizeResponse struct {
	Bytes     int64  `json:"bytes"`
	Formatted string `json:"formatted"`
}

type sanitizeResponse struct {
	Name      string `json:"name"`
	Sanitized string `json:"sanitized"`
}

type categoryResponse struct {
	Category   filemeta.Category `json:"category"`
	IconStyle  string            `json:"iconStyle"`
	Extensions []string          `json:"extensions"`
}

func (h *FilesHandler) nameParam(c echo.Context) (string, error) {
	name := c.QueryParam("name")
	if err := h.validate.Var(name, "required,max="+strconv.Itoa(maxNameLength)); err != nil {
		return "", NewBadRequestError("name is required and must be at most "+strconv.Itoa(maxNameLength)+" characters", err)
	}
	return name, nil
}

// Describe returns the full display metadata for a file name and optional size
func (h *FilesHandler) Describe(c echo.Context) error {
	name, err := h.nameParam(c)
	if err != nil {
		return err
	}

	var size int64
	if err := echo.QueryParamsBinder(c).Int64("size", &size).BindError(); err != nil {
		return NewBadRequestError("size must be an integer byte count", err)
	}
	if size < 0 {
		return NewBadRequestError("size must be a non-negative byte count", nil)
	}

	return c.JSON(http.StatusOK, filemeta.Describe(name, size))
}

// FormatSize returns the human-readable form of a byte count
func (h *FilesHandler) FormatSize(c echo.Context) error {
	var bytes int64
	if err := echo.QueryParamsBinder(c).MustInt64("bytes", &bytes).BindError(); err != nil {
		return NewBadRequestError("bytes is required and must be an integer", err)
	}

	return c.JSON(http.StatusOK, sizeResponse{Bytes: bytes, Formatted: filemeta.FormatSize(bytes)})
}

// Sanitize returns the name with unsafe characters replaced
func (h *FilesHandler) Sanitize(c echo.Context) error {
	name, err := h.nameParam(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sanitizeResponse{Name: name, Sanitized: filemeta.Sanitize(name)})
}

// Categories lists every category with its icon style and extensions
func (h *FilesHandler) Categories(c echo.Context) error {
	categories := filemeta.Categories()
	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		exts := filemeta.ExtensionsFor(category)
		if exts == nil {
			exts = []string{}
		}
		out = append(out, categoryResponse{
			Category:   category,
			IconStyle:  filemeta.IconStyleFor(category),
			Extensions: exts,
		})
	}
	return c.JSON(http.StatusOK, out)
}
