package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sandevgo/secretowatch/pkg/env"
)

// EnvFile is the subset of settings the installer writes to .env.
type EnvFile struct {
	URL            string `env:"SECRETO_URL"`
	Notifier       string `env:"SECRETO_NOTIFIER"`
	TelegramToken  string `env:"SECRETO_TELEGRAM_TOKEN"`
	TelegramChatID int64  `env:"SECRETO_TELEGRAM_CHAT_ID"`
	Debug          string `env:"SECRETO_DEBUG"`
}

// Save writes the file to dir/.env and refuses to overwrite an existing one.
func (e *EnvFile) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf(".env file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	content, err := env.MarshalEnv(e)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
