package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weatherbot-backend/models"
)

// TelegramSink sends messages to the user's Telegram chat. The user id is the
// chat id.
type TelegramSink struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSink(bot *tgbotapi.BotAPI) *TelegramSink {
	return &TelegramSink{bot: bot}
}

func (s *TelegramSink) Send(user *models.User, text string) (string, error) {
	msg := tgbotapi.NewMessage(user.ID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := s.bot.Send(msg)
	return models.ChannelTelegram, err
}
