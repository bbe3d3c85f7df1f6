package service

import (
	"errors"
	"net/http"

	"github.com/Kotlang/opsGo/restclient"
	"github.com/labstack/echo/v4"
)

// renderError surfaces a backend ApiError with its own status and message;
// anything else becomes a 500 with the raw error string.
func renderError(c echo.Context, err error) error {
	var apiErr *restclient.ApiError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, map[string]string{"error": apiErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
