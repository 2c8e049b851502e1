package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records one delivery attempt. There is at most one attempt
// per event per due day, so rows double as an audit trail for the
// fire-and-forget delivery policy.
type NotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       int64     `gorm:"index;not null" json:"userId"`
	EventID      uint      `gorm:"index;not null" json:"eventId"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // telegram, whatsapp, sms
	SentAt       time.Time `json:"sentAt"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
