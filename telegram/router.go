package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"weatherbot-backend/i18n"
	"weatherbot-backend/models"
	"weatherbot-backend/services"
	"weatherbot-backend/store"
	"weatherbot-backend/weather"
)

// Router wires Telegram updates to command handlers.
type Router struct {
	bot      *tgbotapi.BotAPI
	log      *zap.Logger
	store    store.Store
	weather  *weather.Client
	registry *services.Registry
	runner   *services.Runner
}

func NewRouter(
	bot *tgbotapi.BotAPI,
	log *zap.Logger,
	st store.Store,
	wc *weather.Client,
	registry *services.Registry,
	runner *services.Runner,
) *Router {
	return &Router{
		bot:      bot,
		log:      log,
		store:    st,
		weather:  wc,
		registry: registry,
		runner:   runner,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil && upd.Message.IsCommand() {
		msg := upd.Message
		userID := msg.Chat.ID
		args := strings.TrimSpace(msg.CommandArguments())

		switch msg.Command() {
		case "start":
			r.handleStart(ctx, userID)
		case "language":
			r.handleLanguage(ctx, userID)
		case "setcity":
			r.handleSetCity(ctx, userID, args)
		case "addevent":
			r.handleAddEvent(ctx, userID, args)
		case "myevents":
			r.handleMyEvents(ctx, userID)
		case "delete":
			r.handleDelete(ctx, userID, args)
		case "checktoday":
			r.handleCheckToday(ctx, userID)
		case "setphone":
			r.handleSetPhone(ctx, userID, args)
		case "ping":
			r.sendText(userID, "pong")
		default:
			// Unknown command — ignore silently
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		if strings.HasPrefix(cb.Data, "lang:") {
			r.handleLanguagePick(ctx, cb)
		}
		return
	}

	if upd.Message != nil {
		r.log.Debug("ignoring non-command message", zap.Int64("chatID", upd.Message.Chat.ID))
	}
}

// userLang returns the stored user (possibly nil) and a usable language tag.
func (r *Router) userLang(ctx context.Context, userID int64) (*models.User, string) {
	u, err := r.store.GetUser(ctx, userID)
	if err != nil {
		r.log.Error("get user failed", zap.Int64("userID", userID), zap.Error(err))
		return nil, i18n.LangEN
	}
	if u == nil {
		return nil, i18n.LangEN
	}
	return u, i18n.Norm(u.Lang)
}

func (r *Router) sendText(chatID int64, text string) {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func langKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("English 🇬🇧", "lang:en"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Русский 🇷🇺", "lang:ru"),
		),
	)
}
