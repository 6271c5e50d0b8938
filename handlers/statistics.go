package handlers

import (
	"net/http"

	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetStatisticsHandler returns the dashboard aggregates
func GetStatisticsHandler(c echo.Context) error {
	stats, err := services.GetStatistics(db.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
