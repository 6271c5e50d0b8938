package handlers

import (
	"net/http"

	"court_track_app_go/config"
	"court_track_app_go/db"
	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
)

type sendReminderRequest struct {
	CaseID string `json:"caseId"`
	Email  string `json:"email"`
}

// SendReminderHandler records a reminder against a case and dispatches the
// email. The reminder record and counter update are committed before the
// delivery attempt; a transport failure surfaces to the caller without
// undoing them (unless compensation is configured).
func SendReminderHandler(c echo.Context) error {
	var req sendReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	var missing []string
	if req.CaseID == "" {
		missing = append(missing, "caseId")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return respondError(c, &services.ValidationError{Fields: missing})
	}

	cfg := c.Get("config").(*config.Config)
	mailer := c.Get("mailer").(services.Mailer)

	reminderID, result, err := services.SendCaseReminder(
		db.DB, mailer, req.CaseID, req.Email, cfg.ReminderCompensateOnFailure)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Email reminder sent successfully",
		"reminderId": reminderID,
		"delivery":   result,
	})
}

// GetCaseRemindersHandler returns the reminder log for a case, newest first
func GetCaseRemindersHandler(c echo.Context) error {
	reminders, err := services.ListCaseReminders(db.DB, c.Param("caseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminders)
}
