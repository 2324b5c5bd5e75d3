package email

import (
	"context"
	"strings"
	"testing"
	"time"

	"tcmshop_backend/platform/apperr"
)

type testEmailConfig struct {
	provider string
	apiKey   string
	from     string
	owner    string
	smtpHost string
}

func (c testEmailConfig) GetEmailProvider() string        { return c.provider }
func (c testEmailConfig) GetSendGridAPIKey() string       { return c.apiKey }
func (c testEmailConfig) GetEmailFromAddress() string     { return c.from }
func (c testEmailConfig) GetEmailOwnerAddress() string    { return c.owner }
func (c testEmailConfig) GetSMTPHost() string             { return c.smtpHost }
func (c testEmailConfig) GetSMTPPort() int                { return 587 }
func (c testEmailConfig) GetSMTPUsername() string         { return "" }
func (c testEmailConfig) GetSMTPPassword() string         { return "" }
func (c testEmailConfig) GetNotifyTimeout() time.Duration { return 10 * time.Second }

type testBrand struct{}

func (testBrand) GetBrandName() string    { return "Better For Today" }
func (testBrand) GetBrandTag() string     { return "TCM Shop" }
func (testBrand) GetBrandPrimary() string { return "#0b6b3a" }
func (testBrand) GetLogoURL() string      { return "" }
func (testBrand) GetSiteURL() string      { return "https://www.betterfortoday.com" }
func (testBrand) GetAddress() string      { return "123 Herb Street, Singapore" }
func (testBrand) GetContactEmail() string { return "contact@tcmshop.com" }

func testNotification() LeadNotification {
	return LeadNotification{
		Name:        "Mei Lin",
		Email:       "mei@example.com",
		QueryType:   "Consultation",
		Message:     "Please advise on insomnia",
		SubmittedAt: time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC),
	}
}

func TestNewSender_MissingSendGridCredentialsFailsExplicitly(t *testing.T) {
	sender := NewSender(testEmailConfig{provider: "sendgrid"}, testBrand{})

	err := sender.SendOwnerLeadEmail(context.Background(), testNotification())
	if apperr.GetKind(err) != apperr.KindConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "SENDGRID_API_KEY") {
		t.Fatalf("expected error to name the missing variables, got %q", err.Error())
	}

	err = sender.SendClientAckEmail(context.Background(), testNotification())
	if apperr.GetKind(err) != apperr.KindConfiguration {
		t.Fatalf("expected configuration error on client send too, got %v", err)
	}
}

func TestNewSender_MissingSMTPHostFailsExplicitly(t *testing.T) {
	sender := NewSender(testEmailConfig{provider: "smtp", from: "a@b.c", owner: "a@b.c"}, testBrand{})

	err := sender.SendOwnerLeadEmail(context.Background(), testNotification())
	if apperr.GetKind(err) != apperr.KindConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "SMTP_HOST") {
		t.Fatalf("expected error to name SMTP_HOST, got %q", err.Error())
	}
}

func TestOwnerSubjectAndBody(t *testing.T) {
	lead := testNotification()

	if got := ownerSubject(lead); got != "[New Lead] Consultation — Mei Lin" {
		t.Fatalf("unexpected owner subject %q", got)
	}

	body := ownerText(lead)
	for _, want := range []string{
		"New client query received",
		"Name: Mei Lin",
		"Email: mei@example.com",
		"Type: Consultation",
		"Please advise on insomnia",
		"Time: 2025-06-01T14:30:05",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("owner body missing %q:\n%s", want, body)
		}
	}
}

func TestClientSubjectAndBody(t *testing.T) {
	lead := testNotification()

	if got := clientSubject(lead); got != "We received your query: Consultation" {
		t.Fatalf("unexpected client subject %q", got)
	}

	body := clientText(lead, "Better For Today")
	if !strings.HasPrefix(body, "Hi Mei Lin,") {
		t.Fatalf("expected personalized greeting, got %q", body)
	}
	if !strings.Contains(body, "Better For Today") {
		t.Fatalf("expected brand signature, got %q", body)
	}

	anonymous := lead
	anonymous.Name = ""
	if body := clientText(anonymous, "Better For Today"); !strings.HasPrefix(body, "Hi there,") {
		t.Fatalf("expected fallback greeting, got %q", body)
	}
}

func TestRenderClientAckHTML(t *testing.T) {
	html, err := renderClientAckHTML(testNotification(), testBrand{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Better For Today",
		"Mei Lin",
		"Consultation",
		"Please advise on insomnia",
		"book-a-consultation",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}
