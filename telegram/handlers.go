package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"weatherbot-backend/i18n"
	"weatherbot-backend/models"
	"weatherbot-backend/services"
	"weatherbot-backend/utils"
	"weatherbot-backend/weather"
)

const myEventsLimit = 100

func (r *Router) handleStart(ctx context.Context, userID int64) {
	user, lang := r.userLang(ctx, userID)
	if user == nil {
		msg := tgbotapi.NewMessage(userID, i18n.T(i18n.LangEN, "start_pick_lang"))
		msg.ReplyMarkup = langKeyboard()
		if _, err := r.bot.Send(msg); err != nil {
			r.log.Error("send failed", zap.Error(err))
		}
		return
	}
	r.sendText(userID, i18n.T(lang, "start_help"))
}

func (r *Router) handleLanguage(ctx context.Context, userID int64) {
	_, lang := r.userLang(ctx, userID)
	msg := tgbotapi.NewMessage(userID, i18n.T(lang, "start_pick_lang"))
	msg.ReplyMarkup = langKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Error(err))
	}
}

func (r *Router) handleLanguagePick(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := r.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		r.log.Warn("answer callback failed", zap.Error(err))
	}
	newLang := i18n.Norm(strings.TrimPrefix(cb.Data, "lang:"))
	userID := cb.From.ID

	if err := r.store.SetUserLang(ctx, userID, newLang); err != nil {
		r.log.Error("set language failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	if cb.Message != nil {
		edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, i18n.T(newLang, "lang_saved"))
		if _, err := r.bot.Send(edit); err != nil {
			r.log.Warn("edit message failed", zap.Error(err))
		}
	}
	r.sendText(userID, i18n.T(newLang, "start_help"))
}

func (r *Router) handleSetCity(ctx context.Context, userID int64, args string) {
	_, lang := r.userLang(ctx, userID)

	if !r.weather.Configured() {
		r.sendText(userID, i18n.T(lang, "owm_missing"))
		return
	}
	if args == "" {
		r.sendText(userID, i18n.T(lang, "setcity_usage"))
		return
	}

	place, err := r.weather.GeocodeCity(ctx, args)
	if err != nil {
		if !errors.Is(err, weather.ErrCityNotFound) {
			r.log.Error("geocode failed", zap.String("city", args), zap.Error(err))
		}
		r.sendText(userID, i18n.T(lang, "setcity_not_found"))
		return
	}

	tz := utils.DetectTimezone(place.Lat, place.Lon)
	if err := r.store.SetUserCity(ctx, userID, place.Name, place.Lat, place.Lon, tz); err != nil {
		r.log.Error("save city failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	r.sendText(userID, i18n.T(lang, "setcity_ok", "city", place.Name, "tz", tz))

	// The detected timezone was just validated by the finder; an arm failure
	// here is an operational problem, not a user one.
	if err := r.registry.Arm(userID, tz); err != nil {
		r.log.Error("arm trigger failed", zap.Int64("userID", userID), zap.Error(err))
	}
}

func (r *Router) handleAddEvent(ctx context.Context, userID int64, args string) {
	user, lang := r.userLang(ctx, userID)
	if user == nil {
		r.sendText(userID, i18n.T(lang, "addevent_set_city_first"))
		return
	}
	if args == "" {
		r.sendText(userID, i18n.T(lang, "addevent_usage"))
		return
	}

	title, date, ok := utils.ParseEventArgs(args, user.Timezone, time.Now())
	if !ok {
		r.sendText(userID, i18n.T(lang, "addevent_need_date"))
		return
	}
	if title == "" {
		title = i18n.T(lang, "untitled_event")
	}

	if date.Format(models.DateLayout) < localToday(user.Timezone) {
		r.sendText(userID, i18n.T(lang, "addevent_past"))
		return
	}

	eventID, err := r.store.AddEvent(ctx, userID, title, date.Format(models.DateLayout))
	if err != nil {
		r.log.Error("add event failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	r.sendText(userID, i18n.T(lang, "addevent_ok",
		"id", strconv.FormatUint(uint64(eventID), 10),
		"title", title,
		"date", date.Format(utils.DisplayDateLayout),
	))
}

func (r *Router) handleMyEvents(ctx context.Context, userID int64) {
	_, lang := r.userLang(ctx, userID)

	events, err := r.store.ListEvents(ctx, userID)
	if err != nil {
		r.log.Error("list events failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	if len(events) == 0 {
		r.sendText(userID, i18n.T(lang, "no_events"))
		return
	}
	if len(events) > myEventsLimit {
		events = events[:myEventsLimit]
	}

	lines := make([]string, 0, len(events))
	for idx, e := range events {
		mark := "⏳"
		if e.Notified {
			mark = "✅"
		}
		display := e.Date
		if d, err := time.Parse(models.DateLayout, e.Date); err == nil {
			display = d.Format(utils.DisplayDateLayout)
		}
		lines = append(lines, i18n.T(lang, "myevents_line",
			"mark", mark,
			"idx", strconv.Itoa(idx+1),
			"title", e.Title,
			"date", display,
			"id", strconv.FormatUint(uint64(e.ID), 10),
		))
	}
	r.sendText(userID, strings.Join(lines, "\n"))
}

func (r *Router) handleDelete(ctx context.Context, userID int64, args string) {
	_, lang := r.userLang(ctx, userID)

	eventID, err := strconv.ParseUint(args, 10, 32)
	if err != nil {
		r.sendText(userID, i18n.T(lang, "delete_usage"))
		return
	}
	ok, err := r.store.DeleteEvent(ctx, userID, uint(eventID))
	if err != nil {
		r.log.Error("delete event failed", zap.Int64("userID", userID), zap.Error(err))
		ok = false
	}
	if ok {
		r.sendText(userID, i18n.T(lang, "delete_ok"))
	} else {
		r.sendText(userID, i18n.T(lang, "delete_fail"))
	}
}

func (r *Router) handleCheckToday(ctx context.Context, userID int64) {
	user, lang := r.userLang(ctx, userID)
	if user == nil {
		r.sendText(userID, i18n.T(lang, "checktoday_setcity_first"))
		return
	}

	if err := r.runner.RunDailyCheck(ctx, userID); err != nil {
		if errors.Is(err, services.ErrWeatherKeyMissing) {
			r.sendText(userID, i18n.T(lang, "owm_missing"))
			return
		}
		r.log.Error("manual check failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	r.sendText(userID, i18n.T(lang, "checktoday_done"))
}

func (r *Router) handleSetPhone(ctx context.Context, userID int64, args string) {
	user, lang := r.userLang(ctx, userID)
	if user == nil {
		r.sendText(userID, i18n.T(lang, "checktoday_setcity_first"))
		return
	}
	if args == "" {
		r.sendText(userID, i18n.T(lang, "setphone_usage"))
		return
	}

	fields := strings.Fields(args)
	if strings.EqualFold(fields[0], "off") {
		if err := r.store.SetUserChannel(ctx, userID, "", models.ChannelTelegram); err != nil {
			r.log.Error("reset channel failed", zap.Int64("userID", userID), zap.Error(err))
			return
		}
		r.sendText(userID, i18n.T(lang, "setphone_off"))
		return
	}

	phone, valid := utils.NormalizePhone(fields[0])
	if !valid {
		r.sendText(userID, i18n.T(lang, "setphone_invalid"))
		return
	}

	channel := models.ChannelSMS
	if len(fields) > 1 {
		switch strings.ToLower(fields[1]) {
		case models.ChannelSMS:
			channel = models.ChannelSMS
		case models.ChannelWhatsApp:
			channel = models.ChannelWhatsApp
		default:
			r.sendText(userID, i18n.T(lang, "setphone_usage"))
			return
		}
	}

	if err := r.store.SetUserChannel(ctx, userID, phone, channel); err != nil {
		r.log.Error("save phone failed", zap.Int64("userID", userID), zap.Error(err))
		return
	}
	r.sendText(userID, i18n.T(lang, "setphone_ok", "channel", channel))
}

// localToday is the calendar date right now in the given timezone.
func localToday(timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(models.DateLayout)
}
