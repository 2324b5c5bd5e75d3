package transport

import (
	"tcmshop_backend/internal/leads/domain"
)

// SubmitLeadRequest is the lead form submission body.
type SubmitLeadRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,max=320"`
	QueryType string `json:"queryType" validate:"required,oneof=Consultation Product 'Business Hours' Other"`
	Message   string `json:"message" validate:"omitempty,max=5000"`
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,uuid4"`
}

// SubmitLeadResponse reports the per-channel outcome of a submission.
type SubmitLeadResponse struct {
	Saved          bool     `json:"saved"`
	OwnerNotified  bool     `json:"ownerNotified"`
	ClientNotified bool     `json:"clientNotified"`
	Warnings       []string `json:"warnings,omitempty"`
}

// LeadResponse is the JSON shape of one stored lead.
type LeadResponse struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	QueryType string `json:"queryType"`
	Message   string `json:"message"`
}

// ToLeadResponses maps stored leads preserving append order.
func ToLeadResponses(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, LeadResponse{
			Timestamp: lead.SubmittedAt.Format("2006-01-02T15:04:05"),
			Name:      lead.Name,
			Email:     lead.Email,
			QueryType: string(lead.QueryType),
			Message:   lead.Message,
		})
	}
	return out
}
