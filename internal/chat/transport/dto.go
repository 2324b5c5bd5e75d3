package transport

import (
	"time"

	"tcmshop_backend/internal/chat/domain"
)

// SendMessageRequest is the body for posting a chat message.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// TurnResponse is the JSON shape of one transcript turn.
type TurnResponse struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID  string         `json:"sessionId"`
	Transcript []TurnResponse `json:"transcript"`
}

// MessageResponse is returned for a handled chat message.
type MessageResponse struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}

// ToTurnResponses maps transcript turns preserving order.
func ToTurnResponses(turns []domain.Turn) []TurnResponse {
	out := make([]TurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, TurnResponse{Role: string(t.Role), Text: t.Text, At: t.At})
	}
	return out
}
