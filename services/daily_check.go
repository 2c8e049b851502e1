package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"weatherbot-backend/i18n"
	"weatherbot-backend/models"
	"weatherbot-backend/weather"
)

// ErrWeatherKeyMissing aborts a whole run before any event is touched, so the
// due set survives for the next scheduled or manual invocation.
var ErrWeatherKeyMissing = errors.New("weather api key is not configured")

// EventStore is the slice of the store the runner needs.
type EventStore interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	DueEvents(ctx context.Context, userID int64, date string) ([]models.Event, error)
	MarkNotified(ctx context.Context, eventID uint) error
	CreateLog(ctx context.Context, entry *models.NotificationLog) error
}

// Forecaster supplies weather snapshots.
type Forecaster interface {
	Configured() bool
	FetchCurrent(ctx context.Context, lat, lon float64) (*weather.Snapshot, error)
}

// Sink delivers one text message to a user and reports the channel used.
type Sink interface {
	Send(user *models.User, text string) (channel string, err error)
}

// Runner orchestrates one user's daily check: due-event lookup, weather
// fetch, message composition, delivery and notified-marking. Scheduled and
// manual invocations share this single code path.
type Runner struct {
	store        EventStore
	forecast     Forecaster
	sink         Sink
	log          *zap.Logger
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewRunner(store EventStore, forecast Forecaster, sink Sink, log *zap.Logger) *Runner {
	return &Runner{
		store:        store,
		forecast:     forecast,
		sink:         sink,
		log:          log,
		fetchTimeout: 20 * time.Second,
		now:          time.Now,
	}
}

// RunDailyCheck performs the full check for one user.
//
// Delivery is fire-and-forget: once the weather credential gate is passed,
// every due event is marked notified even if the send fails. That trades
// occasional silent misses for never double-sending on transient delivery
// errors.
func (r *Runner) RunDailyCheck(ctx context.Context, userID int64) error {
	if !r.forecast.Configured() {
		r.log.Error("daily check aborted, weather key missing", zap.Int64("userID", userID))
		return ErrWeatherKeyMissing
	}

	user, err := r.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		// User removed since the trigger was armed.
		return nil
	}

	today := r.localToday(user.Timezone)
	due, err := r.store.DueEvents(ctx, userID, today)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		r.log.Debug("no events due today", zap.Int64("userID", userID), zap.String("date", today))
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	snapshot, fetchErr := r.forecast.FetchCurrent(fetchCtx, user.Lat, user.Lon)
	cancel()
	if fetchErr != nil {
		r.log.Warn("weather fetch failed, sending degraded messages",
			zap.Int64("userID", userID), zap.Error(fetchErr))
	}

	lang := i18n.Norm(user.Lang)
	for _, event := range due {
		text := composeMessage(event.Title, snapshot, fetchErr, lang)

		channel, sendErr := r.sink.Send(user, text)
		status := "sent"
		errorMsg := ""
		if sendErr != nil {
			status = "failed"
			errorMsg = sendErr.Error()
			r.log.Error("delivery failed",
				zap.Int64("userID", userID),
				zap.Uint("eventID", event.ID),
				zap.Error(sendErr),
			)
		}

		if err := r.store.CreateLog(ctx, &models.NotificationLog{
			UserID:       userID,
			EventID:      event.ID,
			Message:      text,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       r.now().UTC(),
		}); err != nil {
			r.log.Error("log notification failed", zap.Uint("eventID", event.ID), zap.Error(err))
		}

		if err := r.store.MarkNotified(ctx, event.ID); err != nil {
			r.log.Error("mark notified failed", zap.Uint("eventID", event.ID), zap.Error(err))
		}
	}
	return nil
}

// localToday resolves "today" as the calendar date in the user's timezone at
// this moment. An unloadable timezone falls back to UTC; arming already
// validated it, so this only covers a concurrent city change gone wrong.
func (r *Runner) localToday(timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return r.now().In(loc).Format(models.DateLayout)
}

func composeMessage(title string, snapshot *weather.Snapshot, fetchErr error, lang string) string {
	head := i18n.T(lang, "today_you_have", "title", title)
	if fetchErr != nil || snapshot == nil {
		return head + "\n" + i18n.T(lang, "weather_unavailable")
	}
	return head + "\n" + weather.Advise(snapshot, lang) + "\n\n" + weather.FormatDetails(snapshot, lang)
}
