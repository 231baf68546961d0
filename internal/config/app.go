package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/pkg/log"
)

const (
	NotifierDesktop  = "desktop"
	NotifierTelegram = "telegram"
	NotifierLog      = "log"
)

var validate = validator.New()

type AppConfig struct {
	URL         string `env:"SECRETO_URL,required,notEmpty" validate:"required,http_url"`
	RuntimePath string `env:"SECRETO_RUNTIME_PATH" envDefault:"."`
	StorePath   string `env:"SECRETO_STORE_PATH" envDefault:"messages.txt" validate:"required"`
	Selector    string `env:"SECRETO_SELECTOR" envDefault:"div.msg_block" validate:"required"`

	Interval     time.Duration `env:"SECRETO_INTERVAL" envDefault:"1m" validate:"min=1s"`
	FetchTimeout time.Duration `env:"SECRETO_FETCH_TIMEOUT" envDefault:"15s" validate:"min=1s"`

	AppendOrder string `env:"SECRETO_APPEND_ORDER" envDefault:"reverse" validate:"oneof=reverse forward"`
	Notifier    string `env:"SECRETO_NOTIFIER" envDefault:"desktop" validate:"oneof=desktop telegram log"`
	NotifyTitle string `env:"SECRETO_NOTIFY_TITLE" envDefault:"New Secreto(s)!"`

	// Empty disables the /metrics endpoint
	MetricsAddr string `env:"SECRETO_METRICS_ADDR"`
}

// LoadAppConfig parses and validates the environment. Every failure is a
// *core.ConfigError.
func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, &core.ConfigError{Err: err}
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, &core.ConfigError{
				Field: fe.Field(),
				Err:   fmt.Errorf("failed %q validation (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return nil, &core.ConfigError{Err: err}
	}

	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetURL() string {
	return c.URL
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

// GetStorePath resolves relative store paths against the runtime path.
func (c AppConfig) GetStorePath() string {
	if filepath.IsAbs(c.StorePath) {
		return c.StorePath
	}
	return filepath.Join(c.RuntimePath, c.StorePath)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetSelector() string {
	return c.Selector
}

func (c AppConfig) GetInterval() time.Duration {
	return c.Interval
}

func (c AppConfig) GetFetchTimeout() time.Duration {
	return c.FetchTimeout
}

func (c AppConfig) GetAppendOrder() core.AppendOrder {
	order, err := core.ParseAppendOrder(c.AppendOrder)
	if err != nil {
		return core.AppendReverse
	}
	return order
}

func (c AppConfig) GetNotifyTitle() string {
	return c.NotifyTitle
}

func (c AppConfig) GetMetricsAddr() string {
	return c.MetricsAddr
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.Notifier == NotifierTelegram
}
