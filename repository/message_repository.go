package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"campus-trade-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindByConversationID(ctx context.Context, db *gorm.DB, conversationID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// SaveAndTouch inserts the message and bumps the conversation's updated_at in
// one transaction, so a directory load never sees the insert without the
// reordering.
func (repository MessageRepository) SaveAndTouch(ctx context.Context, db *gorm.DB, message *entity.Message) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

// MarkRead flips the read flag on every counterpart message the reader has
// not seen yet.
func (repository MessageRepository) MarkRead(ctx context.Context, db *gorm.DB, conversationID, readerID string) error {
	return db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read = false", conversationID, readerID).
		Update("read", true).Error
}
