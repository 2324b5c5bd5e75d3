package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"tcmshop_backend/internal/chat/domain"
	"tcmshop_backend/internal/chat/session"
	"tcmshop_backend/internal/events"
	"tcmshop_backend/platform/apperr"
	"tcmshop_backend/platform/logger"

	"github.com/google/uuid"
)

type testBrand struct{}

func (testBrand) GetBrandName() string    { return "Better For Today" }
func (testBrand) GetBrandTag() string     { return "TCM Shop" }
func (testBrand) GetBrandPrimary() string { return "#0b6b3a" }
func (testBrand) GetLogoURL() string      { return "" }
func (testBrand) GetSiteURL() string      { return "https://www.betterfortoday.com" }
func (testBrand) GetAddress() string      { return "123 Herb Street, Singapore" }
func (testBrand) GetContactEmail() string { return "contact@tcmshop.com" }

type stubCatalog struct {
	reply     string
	lastQuery string
}

func (c *stubCatalog) Lookup(query string) string {
	c.lastQuery = query
	return c.reply
}

func newTestService(catalog *stubCatalog) *Service {
	store := session.NewStore(time.Hour)
	classifier := domain.NewClassifier(nil)
	return New(classifier, catalog, store, testBrand{}, logger.New("development"))
}

func TestStartSession_SeedsGreeting(t *testing.T) {
	svc := newTestService(&stubCatalog{})

	id, transcript, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a session id")
	}
	if len(transcript) != 1 {
		t.Fatalf("expected 1 greeting turn, got %d", len(transcript))
	}
	if transcript[0].Role != domain.RoleAssistant {
		t.Fatalf("expected assistant greeting, got role %q", transcript[0].Role)
	}
	if transcript[0].Text != "Welcome to Better For Today! Ask about products, consultations, or shop info." {
		t.Fatalf("unexpected greeting %q", transcript[0].Text)
	}
}

func TestHandleMessage_ProductIntentDelegatesToCatalog(t *testing.T) {
	catalog := &stubCatalog{reply: "**Foot Soak**"}
	svc := newTestService(catalog)
	id, _, _ := svc.StartSession(context.Background())

	reply, intent, err := svc.HandleMessage(context.Background(), id, "Do you have anything for insomnia?")
	if err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if intent != domain.IntentProduct {
		t.Fatalf("expected product intent, got %q", intent)
	}
	if reply != "**Foot Soak**" {
		t.Fatalf("expected catalog reply, got %q", reply)
	}
	if catalog.lastQuery != "Do you have anything for insomnia?" {
		t.Fatalf("catalog received %q", catalog.lastQuery)
	}
}

func TestHandleMessage_BusinessHours(t *testing.T) {
	svc := newTestService(&stubCatalog{})
	id, _, _ := svc.StartSession(context.Background())

	reply, intent, err := svc.HandleMessage(context.Background(), id, "What are your business hours?")
	if err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if intent != domain.IntentGeneral {
		t.Fatalf("expected general intent, got %q", intent)
	}
	if reply != "Business Hours: Mon–Fri, 9am–6pm. Closed weekends/public holidays." {
		t.Fatalf("unexpected hours reply %q", reply)
	}
}

func TestHandleMessage_GeneralWithoutSubKeywordReturnsAllFacts(t *testing.T) {
	svc := newTestService(&stubCatalog{})
	id, _, _ := svc.StartSession(context.Background())

	reply, _, err := svc.HandleMessage(context.Background(), id, "business info please")
	if err != nil {
		t.Fatalf("handle message: %v", err)
	}
	lines := strings.Split(reply, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 fact lines, got %d: %q", len(lines), reply)
	}
	wantPrefixes := []string{"Business Hours:", "Location:", "Shipping:", "Contact:"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
}

func TestHandleMessage_ConsultationAndFallback(t *testing.T) {
	svc := newTestService(&stubCatalog{})
	id, _, _ := svc.StartSession(context.Background())

	reply, intent, err := svc.HandleMessage(context.Background(), id, "How can I book?")
	if err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if intent != domain.IntentConsultation {
		t.Fatalf("expected consultation intent, got %q", intent)
	}
	if reply != "Book your consultation here: https://www.betterfortoday.com/book-a-consultation" {
		t.Fatalf("unexpected consultation reply %q", reply)
	}

	reply, intent, err = svc.HandleMessage(context.Background(), id, "Hello there!")
	if err != nil {
		t.Fatalf("handle message: %v", err)
	}
	if intent != domain.IntentFallback {
		t.Fatalf("expected fallback intent, got %q", intent)
	}
	if reply != "Sorry, I didn't understand. Please rephrase or email contact@tcmshop.com." {
		t.Fatalf("unexpected fallback reply %q", reply)
	}
}

func TestHandleMessage_RecordsBothTurns(t *testing.T) {
	svc := newTestService(&stubCatalog{reply: "here you go"})
	id, _, _ := svc.StartSession(context.Background())

	if _, _, err := svc.HandleMessage(context.Background(), id, "recommend something"); err != nil {
		t.Fatalf("handle message: %v", err)
	}

	transcript, err := svc.Transcript(id)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	// greeting + user turn + assistant turn
	if len(transcript) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(transcript))
	}
	if transcript[1].Role != domain.RoleUser || transcript[1].Text != "recommend something" {
		t.Fatalf("unexpected user turn %+v", transcript[1])
	}
	if transcript[2].Role != domain.RoleAssistant || transcript[2].Text != "here you go" {
		t.Fatalf("unexpected assistant turn %+v", transcript[2])
	}
}

func TestHandleMessage_UnknownSession(t *testing.T) {
	svc := newTestService(&stubCatalog{})

	_, _, err := svc.HandleMessage(context.Background(), uuid.New(), "hello")
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestHandle_LeadSubmittedAppendsConfirmation(t *testing.T) {
	svc := newTestService(&stubCatalog{})
	id, _, _ := svc.StartSession(context.Background())

	event := events.LeadSubmitted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
		SessionID: &id,
		Name:      "Mei Lin",
		Email:     "mei@example.com",
		QueryType: "Consultation",
	}
	if err := svc.Handle(context.Background(), event); err != nil {
		t.Fatalf("handle event: %v", err)
	}

	transcript, err := svc.Transcript(id)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	last := transcript[len(transcript)-1]
	if last.Role != domain.RoleAssistant {
		t.Fatalf("expected assistant confirmation, got role %q", last.Role)
	}
	if last.Text != "Thanks Mei Lin, we received your details and will follow up by email soon." {
		t.Fatalf("unexpected confirmation %q", last.Text)
	}
}

func TestHandle_LeadSubmittedWithoutSessionIsNoOp(t *testing.T) {
	svc := newTestService(&stubCatalog{})

	event := events.LeadSubmitted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
		Name:      "Mei Lin",
	}
	if err := svc.Handle(context.Background(), event); err != nil {
		t.Fatalf("expected nil error for session-less lead, got %v", err)
	}
}
