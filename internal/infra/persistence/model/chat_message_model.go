package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel is the GORM-specific struct for the 'chat_messages' table.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone     string    `gorm:"type:varchar(128);not null;index:idx_chat_messages_phone_created,priority:1"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_chat_messages_phone_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
