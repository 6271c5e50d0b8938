package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"court_track_app_go/config"

	"github.com/resend/resend-go/v2"
)

// SendResult reports the outcome of one delivery attempt. Method and
// Delivered distinguish genuine delivery from the logged no-op fallback:
// callers and clients must be able to tell the two apart.
type SendResult struct {
	MessageID string `json:"messageId"`
	Method    string `json:"method"`
	Delivered bool   `json:"delivered"`
}

// Mailer is the mail transport contract. The delivery strategy (real,
// logged fallback, disabled) is chosen once at construction from
// configuration, never from ambient process state at call time.
type Mailer interface {
	Send(to, subject, htmlBody string) (*SendResult, error)
}

// NewMailer selects the transport strategy for the configured email mode.
func NewMailer(cfg *config.Config) Mailer {
	switch cfg.EmailMode {
	case config.EmailModeResend:
		return NewResendMailer(cfg)
	case config.EmailModeDisabled:
		return &DisabledMailer{}
	default:
		return &LogMailer{}
	}
}

// ResendMailer delivers through the Resend API, bounded by a timeout so a
// slow provider cannot block the HTTP response indefinitely.
type ResendMailer struct {
	client  *resend.Client
	from    string
	timeout time.Duration
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client:  resend.NewClient(cfg.ResendAPIKey),
		from:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		timeout: time.Duration(cfg.EmailTimeoutSeconds) * time.Second,
	}
}

func (m *ResendMailer) Send(to, subject, htmlBody string) (*SendResult, error) {
	if htmlBody == "" {
		return nil, &TransportError{Reason: "empty email body"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, &TransportError{Reason: "resend delivery failed", Err: err}
	}

	log.Printf("[EMAIL] Sent via Resend (ID: %s) to: %s", sent.Id, to)
	return &SendResult{MessageID: sent.Id, Method: "resend", Delivered: true}, nil
}

// LogMailer is the no-credentials fallback: it logs the message, fabricates
// a synthetic delivery id and reports success. Exists so the system stays
// operable without mail configuration; Delivered is always false.
type LogMailer struct{}

func (m *LogMailer) Send(to, subject, htmlBody string) (*SendResult, error) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (logged, not actually sent)\n%s", separator, separator)
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Printf("Body (first 500 chars): %s", truncate(htmlBody, 500))
	log.Printf("%s", separator)

	return &SendResult{
		MessageID: fmt.Sprintf("temp-%d", time.Now().UnixMilli()),
		Method:    "logged",
		Delivered: false,
	}, nil
}

// DisabledMailer fails every send. For operators who prefer loud failures
// over the silent logged fallback.
type DisabledMailer struct{}

func (m *DisabledMailer) Send(to, subject, htmlBody string) (*SendResult, error) {
	return nil, &TransportError{Reason: "mail transport disabled"}
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
