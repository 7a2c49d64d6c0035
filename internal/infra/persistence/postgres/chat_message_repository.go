package postgres

import (
	"context"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository is the constructor for chatMessageRepository.
func NewChatMessageRepository(db *gorm.DB) repository.ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// AppendMessage stores a message.
func (repo *chatMessageRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM := &model.ChatMessageModel{
		ID:        message.ID,
		Phone:     message.Phone,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindRecentMessages returns up to limit messages, most recent first.
func (repo *chatMessageRepository) FindRecentMessages(ctx context.Context, phone string, limit int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	// History must include the message appended just before it is read
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("phone = ?", phone).
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load chat history")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.ChatMessage{
			ID:        messageM.ID,
			Phone:     messageM.Phone,
			Role:      entity.ChatRole(messageM.Role),
			Content:   messageM.Content,
			CreatedAt: messageM.CreatedAt,
		})
	}

	return messages, nil
}
