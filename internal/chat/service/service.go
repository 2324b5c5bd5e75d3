// Package service implements the chat pipeline: classify the query, dispatch
// to the matching fulfillment function, and record both turns in the session
// transcript.
package service

import (
	"context"
	"fmt"
	"strings"

	"tcmshop_backend/internal/chat/domain"
	"tcmshop_backend/internal/chat/session"
	"tcmshop_backend/internal/events"
	"tcmshop_backend/platform/config"
	"tcmshop_backend/platform/logger"

	"github.com/google/uuid"
)

// CatalogLookup resolves a product query to formatted reply text.
// Implemented by the catalog service.
type CatalogLookup interface {
	Lookup(query string) string
}

// Service runs the chat pipeline over per-session transcripts.
type Service struct {
	classifier *domain.Classifier
	catalog    CatalogLookup
	store      *session.Store
	brand      config.BrandConfig
	log        *logger.Logger
}

// New creates a new chat service.
func New(classifier *domain.Classifier, catalog CatalogLookup, store *session.Store, brand config.BrandConfig, log *logger.Logger) *Service {
	return &Service{
		classifier: classifier,
		catalog:    catalog,
		store:      store,
		brand:      brand,
		log:        log,
	}
}

// StartSession opens a new session seeded with a branded greeting turn.
func (s *Service) StartSession(ctx context.Context) (uuid.UUID, []domain.Turn, error) {
	id := s.store.Create()

	greeting := domain.Turn{
		Role: domain.RoleAssistant,
		Text: fmt.Sprintf("Welcome to %s! Ask about products, consultations, or shop info.", s.brand.GetBrandName()),
	}
	if err := s.store.Append(id, greeting); err != nil {
		return uuid.Nil, nil, err
	}

	s.log.WithContext(ctx).Debug("chat session started", "session_id", id.String())

	transcript, err := s.store.Transcript(id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, transcript, nil
}

// HandleMessage classifies the message, produces the reply, and appends both
// turns to the session transcript. The reply and the chosen intent are
// returned so the widget can render them immediately.
func (s *Service) HandleMessage(ctx context.Context, id uuid.UUID, message string) (string, domain.Intent, error) {
	if _, err := s.store.Transcript(id); err != nil {
		return "", "", err
	}

	intent := s.classifier.Classify(message)
	reply := s.fulfill(intent, message)

	err := s.store.Append(id,
		domain.Turn{Role: domain.RoleUser, Text: message},
		domain.Turn{Role: domain.RoleAssistant, Text: reply},
	)
	if err != nil {
		return "", "", err
	}

	s.log.WithContext(ctx).Info("chat message handled",
		"session_id", id.String(), "intent", string(intent))

	return reply, intent, nil
}

// Transcript returns the session's conversation log for display.
func (s *Service) Transcript(id uuid.UUID) ([]domain.Turn, error) {
	return s.store.Transcript(id)
}

// Reset clears the session's conversation log.
func (s *Service) Reset(id uuid.UUID) error {
	return s.store.Clear(id)
}

// Examples returns the canned example queries shown beside the widget.
func (s *Service) Examples() []string {
	return []string{
		"I have cold hands and feet, what do you recommend?",
		"How can I book a consultation?",
		"What are your business hours?",
		"Tell me about the Harmony Mood Herbal Tea.",
		"Do you have anything for insomnia?",
		"I need help with digestion and cold hands.",
	}
}

// fulfill maps an intent to its reply text. Pure function of static config,
// the catalog, and the query.
func (s *Service) fulfill(intent domain.Intent, query string) string {
	switch intent {
	case domain.IntentProduct:
		return s.catalog.Lookup(query)
	case domain.IntentConsultation:
		return fmt.Sprintf("Book your consultation here: %s/book-a-consultation", s.brand.GetSiteURL())
	case domain.IntentGeneral:
		return s.generalAnswer(query)
	default:
		return fmt.Sprintf("Sorry, I didn't understand. Please rephrase or email %s.", s.brand.GetContactEmail())
	}
}

// generalAnswer returns the first business fact whose sub-keywords appear in
// the query; with no sub-keyword match it returns all four facts,
// newline-separated, in the fixed order hours, location, shipping, contact.
func (s *Service) generalAnswer(query string) string {
	lower := strings.ToLower(query)

	hours := "Business Hours: Mon–Fri, 9am–6pm. Closed weekends/public holidays."
	location := fmt.Sprintf("Location: %s.", s.brand.GetAddress())
	shipping := "Shipping: Free local shipping > $50. International available."
	contact := fmt.Sprintf("Contact: %s | +65 1234 5678.", s.brand.GetContactEmail())

	switch {
	case strings.Contains(lower, "hour"):
		return hours
	case strings.Contains(lower, "locat"), strings.Contains(lower, "address"):
		return location
	case strings.Contains(lower, "shipping"), strings.Contains(lower, "deliver"):
		return shipping
	case strings.Contains(lower, "contact"), strings.Contains(lower, "phone"), strings.Contains(lower, "email"):
		return contact
	default:
		return strings.Join([]string{hours, location, shipping, contact}, "\n")
	}
}

// Handle lets the chat module react to domain events. On LeadSubmitted it
// appends a confirmation turn to the transcript of the session the lead
// form was submitted from, when one was provided.
func (s *Service) Handle(ctx context.Context, event events.Event) error {
	lead, ok := event.(events.LeadSubmitted)
	if !ok || lead.SessionID == nil {
		return nil
	}

	confirmation := domain.Turn{
		Role: domain.RoleAssistant,
		Text: fmt.Sprintf("Thanks %s, we received your details and will follow up by email soon.", lead.Name),
	}
	if err := s.store.Append(*lead.SessionID, confirmation); err != nil {
		// The session may have expired between form load and submit.
		s.log.WithContext(ctx).Debug("lead confirmation skipped",
			"session_id", lead.SessionID.String(), "error", err)
	}
	return nil
}
