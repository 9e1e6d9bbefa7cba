package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`
	Port       int  `env:"PORT" envDefault:"3000"`

	ApiKey        string `env:"API_KEY"`
	ApiSecret     string `env:"API_SECRET"`
	ApplicationID string `env:"APPLICATION_ID,notEmpty"`
	// PrivateKey is either an inline PEM value or a path to a key file;
	// see PrivateKeyPEM.
	PrivateKey string `env:"PRIVATE_KEY,notEmpty"`

	ReminderNumber string        `env:"REMINDER_NUMBER"`
	SenderNumber   string        `env:"SENDER_NUMBER"`
	MessagesApiURL string        `env:"MESSAGES_API_URL"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// ReminderCronSpec enables the repeat-reminder trigger; empty keeps
	// it disabled.
	ReminderCronSpec string `env:"REMINDER_CRON_SPEC"`
	Timezone         string `env:"TZ" envDefault:"America/New_York"`
	SendOnStart      bool   `env:"SEND_ON_START"`
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}

// PrivateKeyPEM resolves the configured private key: when the value names
// an existing file the file's contents win, otherwise the value itself is
// taken as the PEM material.
func (c *Config) PrivateKeyPEM() []byte {
	if stat, err := os.Stat(c.PrivateKey); err == nil && !stat.IsDir() {
		if content, err := os.ReadFile(c.PrivateKey); err == nil {
			return content
		}
	}
	return []byte(c.PrivateKey)
}

func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
