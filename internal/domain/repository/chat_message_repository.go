package repository

import (
	"context"

	"pedido/internal/domain/entity"
)

// ChatMessageRepository is the append-only conversation log.
type ChatMessageRepository interface {
	// AppendMessage stores a message.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error

	// FindRecentMessages returns up to limit messages of a conversation, most recent first.
	FindRecentMessages(ctx context.Context, phone string, limit int) ([]*entity.ChatMessage, error)
}
