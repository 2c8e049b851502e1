package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
// OWMAPIKey is deliberately optional: its absence is handled at runtime as a
// per-run configuration error, not a startup failure.
type Config struct {
	TelegramToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	OWMAPIKey     string `envconfig:"OWM_API_KEY"`
	DBURL         string `envconfig:"DB_URL" required:"true"`
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
