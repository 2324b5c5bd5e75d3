// Package service implements the lead intake pipeline: validate, persist,
// notify. Persistence failure and notification failure are independent and
// non-fatal to each other; a lead is never lost because a downstream email
// was down.
package service

import (
	"context"
	"strings"
	"time"

	"tcmshop_backend/internal/events"
	"tcmshop_backend/internal/leads/domain"
	"tcmshop_backend/internal/leads/ports"
	"tcmshop_backend/internal/leads/repository"
	"tcmshop_backend/platform/apperr"
	"tcmshop_backend/platform/logger"
	"tcmshop_backend/platform/sanitize"

	"github.com/google/uuid"
)

// SubmitLeadInput carries the validated form fields into the service.
type SubmitLeadInput struct {
	Name      string
	Email     string
	QueryType domain.QueryType
	Message   string
	// SessionID links the submission to the chat session it came from,
	// when the widget provided one.
	SessionID *uuid.UUID
}

// SubmitResult reports the per-step outcome of a submission. Validation
// failures are returned as an error instead; a SubmitResult always means
// the pipeline ran.
type SubmitResult struct {
	Lead       domain.Lead
	PersistErr error
	OwnerErr   error
	ClientErr  error
}

// Saved reports whether the lead record was appended to the store.
func (r SubmitResult) Saved() bool { return r.PersistErr == nil }

// Service orchestrates lead intake.
type Service struct {
	repo     repository.LeadsRepository
	notifier ports.LeadNotifier
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new leads service.
func New(repo repository.LeadsRepository, notifier ports.LeadNotifier, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, bus: bus, log: log}
}

// Submit validates the input, appends the lead to the store, and dispatches
// the two notifications. Only validation aborts the pipeline; a persistence
// failure still lets notification proceed, and notification failures never
// roll back persistence.
func (s *Service) Submit(ctx context.Context, input SubmitLeadInput) (SubmitResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return SubmitResult{}, apperr.Validation("Please provide name and email")
	}

	lead := domain.Lead{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		QueryType:   input.QueryType,
		Message:     sanitize.Text(input.Message),
		SubmittedAt: time.Now(),
	}

	result := SubmitResult{Lead: lead}

	if err := s.repo.Append(ctx, lead); err != nil {
		s.log.WithContext(ctx).PersistenceError("append lead", err)
		result.PersistErr = err
	} else {
		s.bus.Publish(ctx, events.LeadSubmitted{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			SessionID: input.SessionID,
			Name:      lead.Name,
			Email:     lead.Email,
			QueryType: string(lead.QueryType),
		})
	}

	outcome := s.notifier.NotifyLead(ctx, lead)
	result.OwnerErr = outcome.OwnerErr
	result.ClientErr = outcome.ClientErr

	return result, nil
}

// List returns all stored leads in append order.
func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	return s.repo.List(ctx)
}
