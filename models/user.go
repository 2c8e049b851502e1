package models

import "time"

// Notification channels.
const (
	ChannelTelegram = "telegram"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// User is one chat participant. The primary key is the Telegram chat id.
// A row may exist before a city is set (language selection alone creates it),
// so Timezone always carries a usable default.
type User struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	City     string  `gorm:"not null;default:''" json:"city"`
	Lat      float64 `gorm:"not null;default:0" json:"lat"`
	Lon      float64 `gorm:"not null;default:0" json:"lon"`
	Timezone string  `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Lang     string  `gorm:"type:varchar(5);not null;default:'en'" json:"lang"`

	// Optional SMS/WhatsApp delivery; empty phone means Telegram only.
	Phone   string `gorm:"type:varchar(20);not null;default:''" json:"phone"`
	Channel string `gorm:"type:varchar(16);not null;default:'telegram'" json:"channel"`

	CreatedAt time.Time `json:"createdAt"`
}
