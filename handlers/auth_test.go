package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"court_track_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestAdminLoginHandler(t *testing.T) {
	setup := func(t *testing.T) {
		database := setupTestDB(t)
		_, err := services.CreateAdmin(database, "admin@example.com", "s3cret-pass")
		assert.NoError(t, err)
	}

	t.Run("Valid credentials", func(t *testing.T) {
		setup(t)

		body := `{"email": "admin@example.com", "password": "s3cret-pass"}`
		_, c, rec := setupEcho(http.MethodPost, "/admin/login", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := AdminLoginHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp["message"])
		assert.Equal(t, "admin@example.com", resp["email"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		setup(t)

		body := `{"email": "admin@example.com", "password": "wrong"}`
		_, c, rec := setupEcho(http.MethodPost, "/admin/login", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := AdminLoginHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email or password", resp["error"])
	})

	t.Run("Unknown account gets the same error", func(t *testing.T) {
		setup(t)

		body := `{"email": "nobody@example.com", "password": "s3cret-pass"}`
		_, c, rec := setupEcho(http.MethodPost, "/admin/login", strings.NewReader(body))
		c.Request().Header.Set("Content-Type", "application/json")

		err := AdminLoginHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid email or password", resp["error"])
	})
}
