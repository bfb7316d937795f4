// Package config holds typed environment configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	OpenAIKey   string `env:"OPENAI_API_KEY,required"`
	OpenAIModel string `env:"OPENAI_MODEL"`

	// WhatsApp Cloud API credentials.
	VerifyToken   string `env:"WP_VERIFY_TOKEN,required"`
	PhoneNumberID string `env:"PHONE_NUMBER_ID,required"`
	WhatsAppToken string `env:"WHATSAPP_TOKEN,required"`
	GraphBaseURL  string `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com/v16.0"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
