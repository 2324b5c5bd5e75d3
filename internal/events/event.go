// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"tcmshop_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadSubmitted is published after a lead record has been appended to the
// store. SessionID carries the chat session the lead form was submitted from,
// when the widget provided one; it is nil for standalone form submissions.
type LeadSubmitted struct {
	BaseEvent
	LeadID    uuid.UUID  `json:"leadId"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	QueryType string     `json:"queryType"`
}

func (e LeadSubmitted) EventName() string { return "leads.lead.submitted" }
