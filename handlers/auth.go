package handlers

import (
	"net/http"

	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginHandler performs the single stateless credential check. No
// session or token is issued.
func AdminLoginHandler(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	admin, ok := services.AuthenticateAdmin(db.DB, req.Email, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "Invalid email or password",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"email":   admin.Email,
	})
}
