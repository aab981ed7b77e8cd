package models

import "gorm.io/gorm"

type ChatMessage struct {
	gorm.Model
	SenderID    uint   `gorm:"index" json:"sender_id"`
	RecipientID uint   `gorm:"index" json:"recipient_id"`
	Content     string `json:"content"`
	Read        bool   `gorm:"default:false" json:"read"`
}
