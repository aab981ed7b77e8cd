package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type ChatRepository interface {
	Save(message *models.ChatMessage) error
	Conversation(userA, userB uint, limit int) ([]models.ChatMessage, error)
	MarkConversationRead(recipientID, senderID uint) error
	UnreadCount(recipientID uint) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db}
}

func (r *chatRepository) Save(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *chatRepository) Conversation(userA, userB uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []models.ChatMessage
	err := r.db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA,
	).Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *chatRepository) MarkConversationRead(recipientID, senderID uint) error {
	return r.db.Model(&models.ChatMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND read = ?", recipientID, senderID, false).
		Update("read", true).Error
}

func (r *chatRepository) UnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChatMessage{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}
