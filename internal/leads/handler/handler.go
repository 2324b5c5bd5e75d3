package handler

import (
	"net/http"

	"tcmshop_backend/internal/leads/domain"
	"tcmshop_backend/internal/leads/service"
	"tcmshop_backend/internal/leads/transport"
	"tcmshop_backend/platform/httpkit"
	"tcmshop_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidInput = "Invalid input"

// Handler serves the lead intake endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SubmitLead handles a lead form submission. The response always reports the
// independent persistence and notification outcomes: a failed email never
// hides a saved lead, and a failed save never suppresses the emails.
func (h *Handler) SubmitLead(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, err.Error())
		return
	}

	var sessionID *uuid.UUID
	if req.SessionID != "" {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "Invalid session ID", nil)
			return
		}
		sessionID = &id
	}

	result, err := h.svc.Submit(c.Request.Context(), service.SubmitLeadInput{
		Name:      req.Name,
		Email:     req.Email,
		QueryType: domain.QueryType(req.QueryType),
		Message:   req.Message,
		SessionID: sessionID,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.SubmitLeadResponse{
		Saved:          result.Saved(),
		OwnerNotified:  result.OwnerErr == nil,
		ClientNotified: result.ClientErr == nil,
	}
	if result.PersistErr != nil {
		resp.Warnings = append(resp.Warnings, "Could not save your details: "+result.PersistErr.Error())
	}
	if result.OwnerErr != nil {
		resp.Warnings = append(resp.Warnings, "Owner notification failed: "+result.OwnerErr.Error())
	}
	if result.ClientErr != nil {
		resp.Warnings = append(resp.Warnings, "Confirmation email failed: "+result.ClientErr.Error())
	}

	status := http.StatusCreated
	if !result.Saved() {
		status = http.StatusInternalServerError
	}
	httpkit.JSON(c, status, resp)
}

// ListLeads returns the append-only lead log for the shop owner.
func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"leads": transport.ToLeadResponses(leads)})
}
