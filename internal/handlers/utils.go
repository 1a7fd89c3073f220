package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// wantsJSON reports whether the client asked for JSON rather than an HTML fragment.
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
