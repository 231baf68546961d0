package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/pkg/log"
)

type TelegramConfig struct {
	Token  string `env:"SECRETO_TELEGRAM_TOKEN,required,notEmpty"`
	ChatID int64  `env:"SECRETO_TELEGRAM_CHAT_ID,required"`
}

func LoadTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, &core.ConfigError{Field: "telegram", Err: err}
	}
	return c, nil
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := LoadTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetTelegramChatID() int64 {
	return c.ChatID
}
