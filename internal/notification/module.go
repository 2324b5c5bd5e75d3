// Package notification dispatches the two per-lead emails and reports the
// outcome of each send so the intake path can surface partial failures.
package notification

import (
	"context"

	"tcmshop_backend/internal/email"
	"tcmshop_backend/internal/leads/domain"
	"tcmshop_backend/internal/leads/ports"
	"tcmshop_backend/platform/config"
	"tcmshop_backend/platform/logger"
)

// Module sends lead notifications through the configured email sender.
type Module struct {
	sender email.Sender
	cfg    config.EmailConfig
	log    *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.EmailConfig, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		cfg:    cfg,
		log:    log,
	}
}

// NotifyLead sends the owner alert and the client acknowledgement for a
// submitted lead. Each send runs under its own timeout and the two outcomes
// are independent: one failing does not stop the other.
func (m *Module) NotifyLead(ctx context.Context, lead domain.Lead) ports.NotifyOutcome {
	msg := email.LeadNotification{
		Name:        lead.Name,
		Email:       lead.Email,
		QueryType:   string(lead.QueryType),
		Message:     lead.Message,
		SubmittedAt: lead.SubmittedAt,
	}

	var outcome ports.NotifyOutcome

	ownerCtx, cancelOwner := context.WithTimeout(ctx, m.cfg.GetNotifyTimeout())
	outcome.OwnerErr = m.sender.SendOwnerLeadEmail(ownerCtx, msg)
	cancelOwner()
	m.log.NotificationEvent("owner", m.cfg.GetEmailOwnerAddress(), outcome.OwnerErr)

	clientCtx, cancelClient := context.WithTimeout(ctx, m.cfg.GetNotifyTimeout())
	outcome.ClientErr = m.sender.SendClientAckEmail(clientCtx, msg)
	cancelClient()
	m.log.NotificationEvent("client", lead.Email, outcome.ClientErr)

	return outcome
}

// Compile-time check that Module implements ports.LeadNotifier
var _ ports.LeadNotifier = (*Module)(nil)
