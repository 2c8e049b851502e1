package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weatherbot-backend/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := NewGormStore(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func TestSetUserCity_InsertAndUpdateKeepsLang(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUserLang(ctx, 7, "ru"))
	require.NoError(t, s.SetUserCity(ctx, 7, "Berlin, DE", 52.52, 13.405, "Europe/Berlin"))

	u, err := s.GetUser(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Berlin, DE", u.City)
	assert.Equal(t, "Europe/Berlin", u.Timezone)
	assert.Equal(t, "ru", u.Lang, "city update must not reset language")

	// Moving city re-upserts coordinates and timezone.
	require.NoError(t, s.SetUserCity(ctx, 7, "Kathmandu, NP", 27.7, 85.3, "Asia/Kathmandu"))
	u, err = s.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kathmandu", u.Timezone)
	assert.Equal(t, "ru", u.Lang)
}

func TestSetUserLang_CreatesRowWithUTCDefault(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUserLang(ctx, 42, "en"))
	u, err := s.GetUser(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "UTC", u.Timezone)
	assert.Equal(t, "", u.City)
}

func TestGetUser_Absent(t *testing.T) {
	s := newTestStore(t)
	u, err := s.GetUser(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestEvents_DueQueryAndMarkNotified(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SetUserCity(ctx, 1, "Berlin, DE", 52.5, 13.4, "Europe/Berlin"))

	id1, err := s.AddEvent(ctx, 1, "Dentist", "2026-09-01")
	require.NoError(t, err)
	id2, err := s.AddEvent(ctx, 1, "Meeting", "2026-09-01")
	require.NoError(t, err)
	_, err = s.AddEvent(ctx, 1, "Later", "2026-09-02")
	require.NoError(t, err)
	_, err = s.AddEvent(ctx, 2, "Other user", "2026-09-01")
	require.NoError(t, err)

	assert.Greater(t, id2, id1, "event ids are monotonically increasing")

	due, err := s.DueEvents(ctx, 1, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, due, 2)

	require.NoError(t, s.MarkNotified(ctx, id1))
	due, err = s.DueEvents(ctx, 1, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, id2, due[0].ID)
}

func TestDeleteEvent_OwnershipEnforced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddEvent(ctx, 1, "Mine", "2026-09-01")
	require.NoError(t, err)

	ok, err := s.DeleteEvent(ctx, 2, id)
	require.NoError(t, err)
	assert.False(t, ok, "other users must not delete the event")

	ok, err = s.DeleteEvent(ctx, 1, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteEvent(ctx, 1, id)
	require.NoError(t, err)
	assert.False(t, ok, "second delete is a no-op")
}

func TestSetUserChannel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SetUserLang(ctx, 5, "en"))

	require.NoError(t, s.SetUserChannel(ctx, 5, "+491701234567", models.ChannelWhatsApp))
	u, err := s.GetUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "+491701234567", u.Phone)
	assert.Equal(t, models.ChannelWhatsApp, u.Channel)
}

func TestNotificationLog_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entry := &models.NotificationLog{
		UserID:  1,
		EventID: 3,
		Message: "Today you have Dentist.",
		Status:  "sent",
		Channel: models.ChannelTelegram,
	}
	require.NoError(t, s.CreateLog(ctx, entry))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", entry.ID.String())

	logs, err := s.ListLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "sent", logs[0].Status)
}
