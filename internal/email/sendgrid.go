package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tcmshop_backend/platform/config"
)

const sendGridSendURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridSender delivers notifications through the SendGrid v3 mail API
// with bearer-token authentication.
type SendGridSender struct {
	apiKey    string
	fromEmail string
	ownerTo   string
	brand     config.BrandConfig
	client    *http.Client
}

// NewSendGridSender creates a new SendGridSender from configuration.
func NewSendGridSender(cfg config.EmailConfig, brand config.BrandConfig) *SendGridSender {
	return &SendGridSender{
		apiKey:    cfg.GetSendGridAPIKey(),
		fromEmail: cfg.GetEmailFromAddress(),
		ownerTo:   cfg.GetEmailOwnerAddress(),
		brand:     brand,
		client:    &http.Client{Timeout: cfg.GetNotifyTimeout()},
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []struct {
		To []sendGridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendGridAddress   `json:"from"`
	Subject string            `json:"subject"`
	Content []sendGridContent `json:"content"`
}

// SendOwnerLeadEmail sends the plain-text new-lead alert to the shop owner.
func (s *SendGridSender) SendOwnerLeadEmail(ctx context.Context, lead LeadNotification) error {
	return s.send(ctx, s.ownerTo, ownerSubject(lead), ownerText(lead), "")
}

// SendClientAckEmail sends the acknowledgement to the submitter with an
// HTML alternative rendered from the branded template.
func (s *SendGridSender) SendClientAckEmail(ctx context.Context, lead LeadNotification) error {
	html, err := renderClientAckHTML(lead, s.brand)
	if err != nil {
		return err
	}
	return s.send(ctx, lead.Email, clientSubject(lead), clientText(lead, s.brand.GetBrandName()), html)
}

func (s *SendGridSender) send(ctx context.Context, toEmail, subject, textContent, htmlContent string) error {
	// SendGrid requires text/plain before text/html.
	content := []sendGridContent{{Type: "text/plain", Value: textContent}}
	if htmlContent != "" {
		content = append(content, sendGridContent{Type: "text/html", Value: htmlContent})
	}

	payload := sendGridRequest{
		From:    sendGridAddress{Email: s.fromEmail},
		Subject: subject,
		Content: content,
	}
	payload.Personalizations = []struct {
		To []sendGridAddress `json:"to"`
	}{{To: []sendGridAddress{{Email: toEmail}}}}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridSendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}
