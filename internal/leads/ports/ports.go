// Package ports declares the interfaces the leads module needs from other
// modules, keeping the dependency direction pointed inward.
package ports

import (
	"context"

	"tcmshop_backend/internal/leads/domain"
)

// NotifyOutcome reports the independent results of the two per-lead
// notifications. Either send may fail without affecting the other.
type NotifyOutcome struct {
	OwnerErr  error
	ClientErr error
}

// LeadNotifier dispatches the owner alert and the client acknowledgement
// for a submitted lead. Implemented by the notification module.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead domain.Lead) NotifyOutcome
}
