package email

import (
	"context"
	"fmt"
	"time"

	"tcmshop_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail. It renders the same bodies as SendGridSender but delivers
// through the shop's own SMTP server.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	ownerTo   string
	timeout   time.Duration
	brand     config.BrandConfig
}

// NewSMTPSender creates a new SMTPSender from configuration.
func NewSMTPSender(cfg config.EmailConfig, brand config.BrandConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromEmail: cfg.GetEmailFromAddress(),
		ownerTo:   cfg.GetEmailOwnerAddress(),
		timeout:   cfg.GetNotifyTimeout(),
		brand:     brand,
	}
}

// SendOwnerLeadEmail sends the plain-text new-lead alert to the shop owner.
func (s *SMTPSender) SendOwnerLeadEmail(ctx context.Context, lead LeadNotification) error {
	return s.send(ctx, s.ownerTo, ownerSubject(lead), ownerText(lead), "")
}

// SendClientAckEmail sends the acknowledgement to the submitter, plain text
// with an HTML alternative.
func (s *SMTPSender) SendClientAckEmail(ctx context.Context, lead LeadNotification) error {
	html, err := renderClientAckHTML(lead, s.brand)
	if err != nil {
		return err
	}
	return s.send(ctx, lead.Email, clientSubject(lead), clientText(lead, s.brand.GetBrandName()), html)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, textContent, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.brand.GetBrandName(), s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, textContent)
	if htmlContent != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, htmlContent)
	}

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(s.timeout),
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
