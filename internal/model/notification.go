package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notice for one recipient. Rows are produced as
// side effects of request/application state transitions; the only mutation
// afterwards is flipping IsRead.
type Notification struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Message    string    `gorm:"type:text" json:"message"`
	RelatedURL string    `gorm:"type:text" json:"related_url"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
