package handlers

import (
	"errors"
	"log"
	"net/http"

	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

// respondError maps the typed service errors onto HTTP status codes and the
// structured payload shape clients already consume. Anything unrecognized
// (including StoreError) is logged and surfaced as a generic internal
// failure without leaking details.
func respondError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "Missing or invalid fields",
			"details": validationErr.Fields,
		})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"error": notFoundErr.Error(),
		})
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"error": conflictErr.Message,
		})
	}

	var transportErr *services.TransportError
	if errors.As(err, &transportErr) {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"error":   "Failed to send email",
			"details": transportErr.Reason,
		})
	}

	log.Printf("Internal error handling %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal server error",
	})
}
