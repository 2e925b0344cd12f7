package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Intelligence backend
	IntelligenceURL string `env:"INTELLIGENCE_API_URL,required"`
	IntelligenceKey string `env:"INTELLIGENCE_API_KEY"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`
}

func Load() (*Config, error) {
	// Local development convenience, absent .env files are fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.IntelligenceURL = strings.TrimRight(cfg.IntelligenceURL, "/")
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
