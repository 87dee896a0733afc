package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation pairs two users. The pair is unordered: (a,b) and (b,a) name
// the same conversation and lookups always match both orders. Created lazily
// the first time one side opens the message view.
type Conversation struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	User1ID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user1_id"`
	User2ID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user2_id"`
	LastUpdated time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"last_updated"`
}

// Message is one append-only entry of a conversation.
type Message struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint         `gorm:"not null;index" json:"conversation_id"`
	Conversation   Conversation `gorm:"foreignKey:ConversationID;references:ID" json:"-"`
	SenderID       uuid.UUID    `gorm:"type:uuid;not null" json:"sender_id"`
	Body           string       `gorm:"type:text" json:"body"`
	CreatedAt      time.Time    `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
