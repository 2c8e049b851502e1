package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weatherbot-backend/models"
)

// ErrUnknownTimezone reports an IANA timezone name that cannot be loaded.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Checker runs the daily check for one user. Both the cron firing and manual
// requests go through the same implementation.
type Checker interface {
	RunDailyCheck(ctx context.Context, userID int64) error
}

// Registry owns the per-user recurring 08:00-local triggers. It is the only
// mutator of the trigger set; entries live for the process lifetime and are
// rebuilt from the store at startup.
type Registry struct {
	cron    *cron.Cron
	checker Checker
	log     *zap.Logger

	mu      sync.Mutex
	entries map[int64]cron.EntryID
}

func NewRegistry(checker Checker, log *zap.Logger) *Registry {
	return &Registry{
		cron:    cron.New(),
		checker: checker,
		log:     log,
		entries: make(map[int64]cron.EntryID),
	}
}

// Start begins dispatching trigger firings.
func (r *Registry) Start() { r.cron.Start() }

// Stop stops the scheduler; running checks finish on their own.
func (r *Registry) Stop() { r.cron.Stop() }

// Arm installs the recurring daily 08:00-local trigger for a user, replacing
// any existing one. On failure no trigger remains installed for the user.
func (r *Registry) Arm(userID int64, timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Cancel first: a failed arm must leave no trigger for this user.
	if old, ok := r.entries[userID]; ok {
		r.cron.Remove(old)
		delete(r.entries, userID)
	}

	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	spec := fmt.Sprintf("CRON_TZ=%s 0 8 * * *", timezone)
	id, err := r.cron.AddFunc(spec, func() { r.fire(userID) })
	if err != nil {
		return fmt.Errorf("arm user %d: %w", userID, err)
	}
	r.entries[userID] = id

	r.log.Info("armed daily trigger",
		zap.Int64("userID", userID),
		zap.String("timezone", timezone),
	)
	return nil
}

// fire is the cron callback. Only the user id crosses the trigger boundary;
// the runner re-reads current user state so a timezone change between arming
// and firing never acts on stale data.
func (r *Registry) fire(userID int64) {
	if err := r.checker.RunDailyCheck(context.Background(), userID); err != nil {
		r.log.Error("daily check failed", zap.Int64("userID", userID), zap.Error(err))
	}
}

// RestoreAll arms a trigger for every stored user. Individual failures are
// logged and do not abort restoration of the remaining users.
func (r *Registry) RestoreAll(users []models.User) {
	restored := 0
	for _, u := range users {
		if err := r.Arm(u.ID, u.Timezone); err != nil {
			r.log.Error("restore trigger failed",
				zap.Int64("userID", u.ID),
				zap.String("timezone", u.Timezone),
				zap.Error(err),
			)
			continue
		}
		restored++
	}
	r.log.Info("triggers restored", zap.Int("count", restored), zap.Int("total", len(users)))
}

// Armed reports whether a live trigger exists for the user.
func (r *Registry) Armed(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[userID]
	return ok
}

// nextFire returns the trigger's next firing time after the given instant.
func (r *Registry) nextFire(userID int64, after time.Time) (time.Time, bool) {
	r.mu.Lock()
	id, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	entry := r.cron.Entry(id)
	if entry.Schedule == nil {
		return time.Time{}, false
	}
	return entry.Schedule.Next(after), true
}
