// Package mailer sends transactional email through the Brevo HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

const defaultAPIURL = "https://api.brevo.com/v3/smtp/email"

type BrevoMailer struct {
	apiKey      string
	senderEmail string
	senderName  string
	url         string
	client      *http.Client
	logger      logger.Logger
}

func NewBrevoMailer(apiKey, senderEmail, senderName string, logger logger.Logger) *BrevoMailer {
	if apiKey == "" {
		logger.Warn("brevo api key is empty, email disabled")
	}

	return &BrevoMailer{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		url:         defaultAPIURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// SendCancellationEmail tells the provider that a client canceled.
func (m *BrevoMailer) SendCancellationEmail(ctx context.Context, job *domain.CancellationJob) error {
	subject := "Appointment canceled"
	body := fmt.Sprintf(
		"<h1>Appointment canceled</h1>"+
			"<p>Hi %s,</p>"+
			"<p>%s canceled the appointment scheduled for <b>%s</b> (UTC).</p>"+
			"<p>The slot is available for booking again.</p>",
		job.ProviderName,
		job.RequesterName,
		job.Appointment.ScheduledAt.Format("02.01.2006 15:04"),
	)

	return m.send(ctx, job.ProviderEmail, job.ProviderName, subject, body)
}

func (m *BrevoMailer) send(ctx context.Context, toEmail, toName, subject, htmlContent string) error {
	if m.apiKey == "" {
		m.logger.Debug("email skipped (mailer disabled)",
			logger.String("to", toEmail),
			logger.String("subject", subject),
		)
		return nil
	}

	payload := brevoPayload{
		Sender:      map[string]string{"email": m.senderEmail, "name": m.senderName},
		To:          []map[string]string{{"email": toEmail, "name": toName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("brevo api returned %d: %s", resp.StatusCode, respBody)
	}

	m.logger.Info("email sent",
		logger.String("to", toEmail),
		logger.String("subject", subject),
	)

	return nil
}
