package store

import (
	"context"

	"weatherbot-backend/models"
)

// Store defines the persistence operations the bot and the scheduling core
// need. Every mutation touches a single row; no cross-row transactions.
type Store interface {
	// SetUserCity upserts city, coordinates and timezone for a user,
	// leaving language and channel settings untouched on update.
	SetUserCity(ctx context.Context, userID int64, city string, lat, lon float64, timezone string) error
	// SetUserLang upserts the language; a fresh row gets UTC/empty-city defaults.
	SetUserLang(ctx context.Context, userID int64, lang string) error
	// SetUserChannel updates phone and preferred delivery channel.
	SetUserChannel(ctx context.Context, userID int64, phone, channel string) error
	// GetUser returns nil, nil when the user does not exist.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	AddEvent(ctx context.Context, userID int64, title, date string) (uint, error)
	ListEvents(ctx context.Context, userID int64) ([]models.Event, error)
	// DeleteEvent reports whether a row was actually removed.
	DeleteEvent(ctx context.Context, userID int64, eventID uint) (bool, error)
	// DueEvents returns the user's events with the given date and notified=false.
	DueEvents(ctx context.Context, userID int64, date string) ([]models.Event, error)
	MarkNotified(ctx context.Context, eventID uint) error

	CreateLog(ctx context.Context, entry *models.NotificationLog) error
	ListLogs(ctx context.Context, limit int) ([]models.NotificationLog, error)
}
