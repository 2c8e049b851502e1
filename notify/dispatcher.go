// Package notify holds the delivery sinks. Exactly one channel is attempted
// per message; there is no fan-out and no retry.
package notify

import (
	"weatherbot-backend/models"
)

// Sink delivers one text message and reports the channel used.
type Sink interface {
	Send(user *models.User, text string) (channel string, err error)
}

// Dispatcher routes a message to the user's preferred channel. Telegram is
// the default; SMS/WhatsApp apply only when the user linked a phone and
// Twilio is configured.
type Dispatcher struct {
	telegram Sink
	twilio   Sink
}

func NewDispatcher(telegram Sink, twilio *TwilioSink) *Dispatcher {
	d := &Dispatcher{telegram: telegram}
	if twilio != nil {
		d.twilio = twilio
	}
	return d
}

func (d *Dispatcher) Send(user *models.User, text string) (string, error) {
	wantsPhone := user.Channel == models.ChannelSMS || user.Channel == models.ChannelWhatsApp
	if wantsPhone && user.Phone != "" && d.twilio != nil {
		return d.twilio.Send(user, text)
	}
	return d.telegram.Send(user, text)
}
