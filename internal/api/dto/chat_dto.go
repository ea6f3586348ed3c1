package dto

import "github.com/spec-kit/resty-service/internal/domain"

// SubmitMessageRequest payload for a chat submission.
type SubmitMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// SessionResponse describes a chat session.
type SessionResponse struct {
	ID       string `json:"id"`
	Awaiting bool   `json:"awaiting"`
}

// SubmitMessageResponse is returned once a message is accepted.
type SubmitMessageResponse struct {
	Message  domain.ChatMessage `json:"message"`
	Awaiting bool               `json:"awaiting"`
}
