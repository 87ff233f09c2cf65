// Package emailjs sends notification mail through the EmailJS HTTP API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.emailjs.com/api/v1.0/email/send"

// Config carries the EmailJS account identifiers.
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

// Mailer delivers HTML mail via EmailJS.
type Mailer struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewMailer creates a Mailer from the given config. An empty BaseURL
// falls back to the public EmailJS endpoint.
func NewMailer(cfg Config, logger *slog.Logger) *Mailer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mailer{
		baseURL:    baseURL,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "emailjs"),
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	ToEmail     string `json:"to_email"`
	Subject     string `json:"subject"`
	MessageHTML string `json:"message_html"`
}

// Send posts one message to the EmailJS endpoint. The template on the
// EmailJS side is expected to interpolate to_email, subject and
// message_html.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := sendRequest{
		ServiceID:  m.serviceID,
		TemplateID: m.templateID,
		UserID:     m.publicKey,
		TemplateParams: templateParams{
			ToEmail:     to,
			Subject:     subject,
			MessageHTML: htmlBody,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("emailjs: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	m.log.DebugContext(ctx, "emailjs request", slog.String("to", to), slog.String("subject", subject))

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.log.ErrorContext(ctx, "emailjs request failed", slog.String("to", to), slog.String("error", err.Error()))
		return fmt.Errorf("emailjs: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// EmailJS replies with a short plain-text reason on errors.
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		m.log.ErrorContext(ctx, "emailjs rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("reason", string(reason)),
		)
		return fmt.Errorf("emailjs: unexpected status %d: %s", resp.StatusCode, reason)
	}

	m.log.DebugContext(ctx, "emailjs message sent", slog.String("to", to))

	return nil
}
