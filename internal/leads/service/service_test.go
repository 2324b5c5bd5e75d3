package service

import (
	"context"
	"errors"
	"testing"

	"tcmshop_backend/internal/events"
	"tcmshop_backend/internal/leads/domain"
	"tcmshop_backend/internal/leads/ports"
	"tcmshop_backend/platform/apperr"
	"tcmshop_backend/platform/logger"

	"github.com/google/uuid"
)

type stubRepo struct {
	appendErr error
	appended  []domain.Lead
}

func (r *stubRepo) Append(_ context.Context, lead domain.Lead) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.appended = append(r.appended, lead)
	return nil
}

func (r *stubRepo) List(context.Context) ([]domain.Lead, error) {
	return r.appended, nil
}

type stubNotifier struct {
	outcome ports.NotifyOutcome
	calls   int
	last    domain.Lead
}

func (n *stubNotifier) NotifyLead(_ context.Context, lead domain.Lead) ports.NotifyOutcome {
	n.calls++
	n.last = lead
	return n.outcome
}

type stubBus struct {
	published []events.Event
}

func (b *stubBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *stubBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *stubBus) Subscribe(string, events.Handler) {}

func newTestService(repo *stubRepo, notifier *stubNotifier, bus *stubBus) *Service {
	return New(repo, notifier, bus, logger.New("development"))
}

func TestSubmit_RejectsBlankNameOrEmail(t *testing.T) {
	tests := []struct {
		name  string
		input SubmitLeadInput
	}{
		{"missing name", SubmitLeadInput{Email: "mei@example.com"}},
		{"missing email", SubmitLeadInput{Name: "Mei Lin"}},
		{"whitespace only", SubmitLeadInput{Name: "   ", Email: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			notifier := &stubNotifier{}
			bus := &stubBus{}
			svc := newTestService(repo, notifier, bus)

			_, err := svc.Submit(context.Background(), tt.input)
			if apperr.GetKind(err) != apperr.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.appended) != 0 {
				t.Fatal("validation failure must not persist")
			}
			if notifier.calls != 0 {
				t.Fatal("validation failure must not notify")
			}
			if len(bus.published) != 0 {
				t.Fatal("validation failure must not publish events")
			}
		})
	}
}

func TestSubmit_TrimsFieldsBeforePersisting(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, &stubNotifier{}, &stubBus{})

	result, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:      "  Mei Lin  ",
		Email:     " mei@example.com ",
		QueryType: domain.QueryTypeProduct,
		Message:   "  need something for insomnia  ",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Saved() {
		t.Fatal("expected lead to be saved")
	}
	got := repo.appended[0]
	if got.Name != "Mei Lin" || got.Email != "mei@example.com" || got.Message != "need something for insomnia" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
	if got.SubmittedAt.IsZero() {
		t.Fatal("expected a submission timestamp")
	}
}

func TestSubmit_StripsHTMLFromMessage(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo, &stubNotifier{}, &stubBus{})

	_, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:    "Mei Lin",
		Email:   "mei@example.com",
		Message: "<script>alert(1)</script>need help with insomnia",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := repo.appended[0].Message; got != "alert(1)need help with insomnia" {
		t.Fatalf("expected HTML stripped from message, got %q", got)
	}
}

func TestSubmit_PublishesEventAndNotifiesOnSuccess(t *testing.T) {
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	bus := &stubBus{}
	svc := newTestService(repo, notifier, bus)

	sessionID := uuid.New()
	result, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:      "Mei Lin",
		Email:     "mei@example.com",
		QueryType: domain.QueryTypeConsultation,
		SessionID: &sessionID,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Saved() || result.OwnerErr != nil || result.ClientErr != nil {
		t.Fatalf("expected clean result, got %+v", result)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
	event, ok := bus.published[0].(events.LeadSubmitted)
	if !ok {
		t.Fatalf("expected LeadSubmitted, got %T", bus.published[0])
	}
	if event.Name != "Mei Lin" || event.Email != "mei@example.com" {
		t.Fatalf("unexpected event payload %+v", event)
	}
	if event.SessionID == nil || *event.SessionID != sessionID {
		t.Fatalf("expected session id %s on event, got %v", sessionID, event.SessionID)
	}

	if notifier.calls != 1 {
		t.Fatalf("expected 1 notification dispatch, got %d", notifier.calls)
	}
	if notifier.last.Name != "Mei Lin" {
		t.Fatalf("notifier received %+v", notifier.last)
	}
}

func TestSubmit_PersistFailureStillNotifies(t *testing.T) {
	repo := &stubRepo{appendErr: apperr.Persistence("disk full", errors.New("write failed"))}
	notifier := &stubNotifier{}
	bus := &stubBus{}
	svc := newTestService(repo, notifier, bus)

	result, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:  "Mei Lin",
		Email: "mei@example.com",
	})
	if err != nil {
		t.Fatalf("persist failure must not abort the pipeline: %v", err)
	}
	if result.Saved() {
		t.Fatal("expected Saved() false on persist failure")
	}
	if notifier.calls != 1 {
		t.Fatalf("expected notification despite persist failure, got %d calls", notifier.calls)
	}
	if len(bus.published) != 0 {
		t.Fatal("an unsaved lead must not publish LeadSubmitted")
	}
}

func TestSubmit_ReportsPartialNotificationFailure(t *testing.T) {
	ownerFail := apperr.Notification("owner send failed", errors.New("timeout"))
	notifier := &stubNotifier{outcome: ports.NotifyOutcome{OwnerErr: ownerFail}}
	svc := newTestService(&stubRepo{}, notifier, &stubBus{})

	result, err := svc.Submit(context.Background(), SubmitLeadInput{
		Name:  "Mei Lin",
		Email: "mei@example.com",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Saved() {
		t.Fatal("notification failure must not affect persistence")
	}
	if !errors.Is(result.OwnerErr, ownerFail) {
		t.Fatalf("expected owner error surfaced, got %v", result.OwnerErr)
	}
	if result.ClientErr != nil {
		t.Fatalf("expected nil client error, got %v", result.ClientErr)
	}
}
