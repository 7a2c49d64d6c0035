package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is an append-only conversation log entry.
// Phone is the conversation identity: a canonical phone or a "web:<session>" key.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
