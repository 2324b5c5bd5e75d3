// Package email delivers lead notifications over a transactional-email HTTP
// API (SendGrid) or direct SMTP. The two messages per lead — owner alert and
// client acknowledgement — are independent sends with independently tracked
// outcomes.
package email

import (
	"context"
	"fmt"
	"time"

	"tcmshop_backend/platform/apperr"
	"tcmshop_backend/platform/config"
)

// LeadNotification carries the lead fields rendered into both messages.
type LeadNotification struct {
	Name        string
	Email       string
	QueryType   string
	Message     string
	SubmittedAt time.Time
}

// Sender delivers the two per-lead notifications.
type Sender interface {
	// SendOwnerLeadEmail sends the plain-text new-lead alert to the shop owner.
	SendOwnerLeadEmail(ctx context.Context, lead LeadNotification) error
	// SendClientAckEmail sends the thank-you acknowledgement to the submitter,
	// plain text with an HTML alternative.
	SendClientAckEmail(ctx context.Context, lead LeadNotification) error
}

// NewSender builds a Sender from configuration. A missing credential does not
// produce a silent no-op: the returned sender fails every send with a
// Configuration error so the submission path can report it.
func NewSender(cfg config.EmailConfig, brand config.BrandConfig) Sender {
	switch cfg.GetEmailProvider() {
	case "smtp":
		if cfg.GetSMTPHost() == "" || cfg.GetEmailFromAddress() == "" || cfg.GetEmailOwnerAddress() == "" {
			return disabledSender{reason: "SMTP not configured. Please set SMTP_HOST, EMAIL_FROM, EMAIL_TO."}
		}
		return NewSMTPSender(cfg, brand)
	default:
		if cfg.GetSendGridAPIKey() == "" || cfg.GetEmailFromAddress() == "" || cfg.GetEmailOwnerAddress() == "" {
			return disabledSender{reason: "SendGrid not configured. Please set SENDGRID_API_KEY, EMAIL_FROM, EMAIL_TO."}
		}
		return NewSendGridSender(cfg, brand)
	}
}

// disabledSender fails explicitly when notification credentials are missing.
type disabledSender struct {
	reason string
}

func (d disabledSender) SendOwnerLeadEmail(context.Context, LeadNotification) error {
	return apperr.Configuration(d.reason)
}

func (d disabledSender) SendClientAckEmail(context.Context, LeadNotification) error {
	return apperr.Configuration(d.reason)
}

// timestampFormat is ISO-8601 with seconds precision.
const timestampFormat = "2006-01-02T15:04:05"

func ownerSubject(lead LeadNotification) string {
	return fmt.Sprintf(subjectOwnerLeadFmt, lead.QueryType, lead.Name)
}

func clientSubject(lead LeadNotification) string {
	return fmt.Sprintf(subjectClientAckFmt, lead.QueryType)
}

func ownerText(lead LeadNotification) string {
	return fmt.Sprintf(
		"New client query received\n\nName: %s\nEmail: %s\nType: %s\nMessage:\n%s\n\nTime: %s",
		lead.Name, lead.Email, lead.QueryType, lead.Message,
		lead.SubmittedAt.Format(timestampFormat),
	)
}

func clientText(lead LeadNotification, brandName string) string {
	name := lead.Name
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out! We received your message and will reply soon.\n\nType: %s\nMessage: %s\n\n— %s",
		name, lead.QueryType, lead.Message, brandName,
	)
}
