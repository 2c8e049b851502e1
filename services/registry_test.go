package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weatherbot-backend/models"
)

type recordingChecker struct {
	mu    sync.Mutex
	calls []int64
}

func (c *recordingChecker) RunDailyCheck(ctx context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, userID)
	return nil
}

func newTestRegistry() (*Registry, *recordingChecker) {
	checker := &recordingChecker{}
	return NewRegistry(checker, zap.NewNop()), checker
}

func (r *Registry) entryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestArm_NextFireIsEightLocal(t *testing.T) {
	// Offsets include half-hour and 45-minute zones.
	zones := []string{
		"UTC",
		"Europe/Berlin",
		"Asia/Kolkata",
		"Asia/Kathmandu",
		"America/St_Johns",
		"Pacific/Chatham",
	}
	reg, _ := newTestRegistry()
	after := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	for i, tz := range zones {
		userID := int64(i + 1)
		require.NoError(t, reg.Arm(userID, tz))

		next, ok := reg.nextFire(userID, after)
		require.True(t, ok, "tz=%s", tz)

		loc, err := time.LoadLocation(tz)
		require.NoError(t, err)
		local := next.In(loc)
		assert.Equal(t, 8, local.Hour(), "tz=%s", tz)
		assert.Equal(t, 0, local.Minute(), "tz=%s", tz)
		assert.Equal(t, 0, local.Second(), "tz=%s", tz)

		// The firing after that is the next day's 08:00, local again.
		following, ok := reg.nextFire(userID, next)
		require.True(t, ok)
		followingLocal := following.In(loc)
		assert.Equal(t, 8, followingLocal.Hour(), "tz=%s", tz)
		assert.Equal(t, local.AddDate(0, 0, 1).Format("2006-01-02"), followingLocal.Format("2006-01-02"), "tz=%s", tz)
	}
}

func TestArm_DaylightSavingTransition(t *testing.T) {
	reg, _ := newTestRegistry()
	require.NoError(t, reg.Arm(1, "Europe/Berlin"))

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Europe/Berlin springs forward on 2026-03-29; the clock jumps 02:00→03:00.
	after := time.Date(2026, time.March, 28, 9, 0, 0, 0, loc)
	next, ok := reg.nextFire(1, after)
	require.True(t, ok)
	local := next.In(loc)
	assert.Equal(t, "2026-03-29 08:00", local.Format("2006-01-02 15:04"))

	// Only 23 absolute hours pass between the two local-08:00 firings.
	prev, ok := reg.nextFire(1, after.Add(-24*time.Hour))
	require.True(t, ok)
	assert.Equal(t, 23*time.Hour, next.Sub(prev))
}

func TestArm_ReplacesExistingTrigger(t *testing.T) {
	reg, _ := newTestRegistry()

	require.NoError(t, reg.Arm(1, "Europe/Berlin"))
	require.NoError(t, reg.Arm(1, "Europe/Berlin"))
	require.NoError(t, reg.Arm(1, "Asia/Tokyo"))
	require.NoError(t, reg.Arm(1, "Asia/Tokyo"))

	assert.Equal(t, 1, reg.entryCount(), "exactly one live trigger per user")
	assert.True(t, reg.Armed(1))

	// The surviving trigger uses the latest timezone.
	after := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	next, ok := reg.nextFire(1, after)
	require.True(t, ok)
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	assert.Equal(t, 8, next.In(tokyo).Hour())
}

func TestArm_UnknownTimezone(t *testing.T) {
	reg, _ := newTestRegistry()

	err := reg.Arm(1, "Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
	assert.False(t, reg.Armed(1), "failed arm leaves no trigger installed")
}

func TestArm_FailedReArmRemovesOldTrigger(t *testing.T) {
	reg, _ := newTestRegistry()
	require.NoError(t, reg.Arm(1, "UTC"))

	err := reg.Arm(1, "Nope/Nowhere")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
	// Cancellation precedes validation, so a failed arm leaves no trigger.
	assert.False(t, reg.Armed(1))
}

func TestArm_EmptyTimezoneDefaultsToUTC(t *testing.T) {
	reg, _ := newTestRegistry()
	require.NoError(t, reg.Arm(1, ""))

	after := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	next, ok := reg.nextFire(1, after)
	require.True(t, ok)
	assert.Equal(t, 8, next.UTC().Hour())
}

func TestRestoreAll_ContinuesPastFailures(t *testing.T) {
	reg, _ := newTestRegistry()
	users := []models.User{
		{ID: 1, Timezone: "Europe/Berlin"},
		{ID: 2, Timezone: "Not/A_Zone"},
		{ID: 3, Timezone: "Asia/Kolkata"},
	}

	reg.RestoreAll(users)

	assert.True(t, reg.Armed(1))
	assert.False(t, reg.Armed(2))
	assert.True(t, reg.Armed(3))
	assert.Equal(t, 2, reg.entryCount())
}

func TestFire_InvokesChecker(t *testing.T) {
	reg, checker := newTestRegistry()
	require.NoError(t, reg.Arm(42, "UTC"))

	reg.fire(42)

	checker.mu.Lock()
	defer checker.mu.Unlock()
	assert.Equal(t, []int64{42}, checker.calls)
}
