package notify

import (
	"errors"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"weatherbot-backend/models"
)

// TwilioSink delivers over SMS or WhatsApp for users who linked a phone.
type TwilioSink struct {
	client       *twilio.RestClient
	smsFrom      string
	whatsappFrom string
}

// NewTwilioSink builds the sink; returns nil when credentials are absent so
// callers can treat Twilio as disabled.
func NewTwilioSink(accountSid, authToken, smsFrom, whatsappFrom string) *TwilioSink {
	if accountSid == "" || authToken == "" {
		return nil
	}
	return &TwilioSink{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		smsFrom:      smsFrom,
		whatsappFrom: whatsappFrom,
	}
}

func (s *TwilioSink) Send(user *models.User, text string) (string, error) {
	if user.Phone == "" {
		return "", errors.New("user has no phone on record")
	}

	// WhatsApp needs E.164; anything else goes out as plain SMS.
	channel := models.ChannelSMS
	to := user.Phone
	if user.Channel == models.ChannelWhatsApp && strings.HasPrefix(user.Phone, "+") {
		channel = models.ChannelWhatsApp
		to = "whatsapp:" + user.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(text)
	if channel == models.ChannelWhatsApp {
		params.SetFrom("whatsapp:" + s.whatsappFrom)
	} else {
		params.SetFrom(s.smsFrom)
	}

	_, err := s.client.Api.CreateMessage(params)
	return channel, err
}
