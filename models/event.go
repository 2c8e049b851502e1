package models

import "time"

// DateLayout is the ISO calendar-date format events are stored with.
const DateLayout = "2006-01-02"

// Event is a dated reminder owned by one user. Date is date-only (no
// time-of-day). Notified flips to true exactly once, when the event is
// included in a daily delivery, and is never reset.
type Event struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Date      string    `gorm:"type:varchar(10);index;not null" json:"date"`
	Notified  bool      `gorm:"not null;default:false" json:"notified"`
	CreatedAt time.Time `json:"createdAt"`
}
