package domain

import "time"

// ChatRole indicates who authored a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// MessageCategory is the detected intent of a chat message.
type MessageCategory string

const (
	CategorySchedule  MessageCategory = "schedule"
	CategoryStaff     MessageCategory = "staff"
	CategoryAnalytics MessageCategory = "analytics"
	CategoryGeneral   MessageCategory = "general"
)

// ChatMetadata tags a message with its intent and an open payload.
type ChatMetadata struct {
	Type *MessageCategory `json:"type,omitempty"`
	Data any              `json:"data,omitempty"`
}

// ChatMessage is one entry of the assistant transcript.
type ChatMessage struct {
	ID        string        `json:"id"`
	Role      ChatRole      `json:"role"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
	Metadata  *ChatMetadata `json:"metadata,omitempty"`
}
