package handlers

import (
	"net/http"

	"court_track_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendEmailHandler is the general-purpose sending path. Caller-supplied
// HTML is sanitized before it goes anywhere near a mail provider. The
// response's method/delivered details distinguish genuine delivery from the
// logged fallback used when no credentials are configured.
func SendEmailHandler(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	if req.To == "" || req.Subject == "" || req.HTML == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Missing required fields: to, subject, html",
		})
	}

	html := bluemonday.UGCPolicy().Sanitize(req.HTML)

	mailer := c.Get("mailer").(services.Mailer)
	result, err := mailer.Send(req.To, req.Subject, html)
	if err != nil {
		return respondError(c, err)
	}

	message := "Email sent successfully"
	if !result.Delivered {
		message = "Email processed successfully (logged, not delivered)"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"messageId": result.MessageID,
		"message":   message,
		"details": map[string]interface{}{
			"recipient": req.To,
			"subject":   req.Subject,
			"method":    result.Method,
			"delivered": result.Delivered,
		},
	})
}
