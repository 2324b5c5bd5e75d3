package handler

import (
	"net/http"

	"tcmshop_backend/internal/chat/service"
	"tcmshop_backend/internal/chat/transport"
	"tcmshop_backend/platform/httpkit"
	"tcmshop_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidInput = "Invalid input"

// Handler serves the chat widget endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new chat handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// CreateSession opens a new chat session.
func (h *Handler) CreateSession(c *gin.Context) {
	id, transcript, err := h.svc.StartSession(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.SessionResponse{
		SessionID:  id.String(),
		Transcript: transport.ToTurnResponses(transcript),
	})
}

// SendMessage handles one chat exchange for a session.
func (h *Handler) SendMessage(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req transport.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInput, err.Error())
		return
	}

	reply, intent, err := h.svc.HandleMessage(c.Request.Context(), id, req.Message)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.MessageResponse{Reply: reply, Intent: string(intent)})
}

// GetTranscript returns the session's conversation log.
func (h *Handler) GetTranscript(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	transcript, err := h.svc.Transcript(id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"transcript": transport.ToTurnResponses(transcript)})
}

// ResetSession clears the session's conversation log.
func (h *Handler) ResetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.Reset(id)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ListExamples returns the example queries shown beside the widget.
func (h *Handler) ListExamples(c *gin.Context) {
	httpkit.OK(c, gin.H{"examples": h.svc.Examples()})
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
