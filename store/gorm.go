package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weatherbot-backend/models"
)

// GormStore implements Store on a gorm handle (Postgres in production,
// SQLite in tests).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the schema for all models.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.NotificationLog{},
	)
}

func (s *GormStore) SetUserCity(ctx context.Context, userID int64, city string, lat, lon float64, timezone string) error {
	user := models.User{
		ID:        userID,
		City:      city,
		Lat:       lat,
		Lon:       lon,
		Timezone:  timezone,
		Lang:      "en",
		Channel:   models.ChannelTelegram,
		CreatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"city", "lat", "lon", "timezone"}),
	}).Create(&user).Error
}

func (s *GormStore) SetUserLang(ctx context.Context, userID int64, lang string) error {
	user := models.User{
		ID:        userID,
		Timezone:  "UTC",
		Lang:      lang,
		Channel:   models.ChannelTelegram,
		CreatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lang"}),
	}).Create(&user).Error
}

func (s *GormStore) SetUserChannel(ctx context.Context, userID int64, phone, channel string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"phone": phone, "channel": channel}).Error
}

func (s *GormStore) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (s *GormStore) AddEvent(ctx context.Context, userID int64, title, date string) (uint, error) {
	event := models.Event{
		UserID:    userID,
		Title:     title,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return 0, err
	}
	return event.ID, nil
}

func (s *GormStore) ListEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (s *GormStore) DeleteEvent(ctx context.Context, userID int64, eventID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", eventID, userID).
		Delete(&models.Event{})
	return res.RowsAffected > 0, res.Error
}

func (s *GormStore) DueEvents(ctx context.Context, userID int64, date string) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND notified = ?", userID, date, false).
		Order("id ASC").
		Find(&events).Error
	return events, err
}

func (s *GormStore) MarkNotified(ctx context.Context, eventID uint) error {
	return s.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("notified", true).Error
}

func (s *GormStore) CreateLog(ctx context.Context, entry *models.NotificationLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) ListLogs(ctx context.Context, limit int) ([]models.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.NotificationLog
	err := s.db.WithContext(ctx).Order("sent_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
