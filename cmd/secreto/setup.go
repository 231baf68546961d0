package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/secretowatch/internal/config"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/metrics"
	"github.com/sandevgo/secretowatch/internal/providers/extract"
	"github.com/sandevgo/secretowatch/internal/providers/fetch"
	"github.com/sandevgo/secretowatch/internal/service/cycle"
	"github.com/sandevgo/secretowatch/internal/service/scheduler"
	"github.com/sandevgo/secretowatch/internal/storage/flatfile"
	"github.com/sandevgo/secretowatch/internal/transport/console"
	"github.com/sandevgo/secretowatch/internal/transport/desktop"
	"github.com/sandevgo/secretowatch/internal/transport/telegram"
	"github.com/sandevgo/secretowatch/pkg/log"
	"github.com/sandevgo/secretowatch/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// 1. Configuration
	appCfg := loadConfig(ctx)

	// 2. Metrics
	var recorder cycle.Recorder
	if addr := appCfg.GetMetricsAddr(); addr != "" {
		m := metrics.NewRecorder()
		recorder = m
		services = append(services, srv.NewHTTPServer(addr, m.Handler()))
	}

	// 3. Cycle
	orchestrator, err := initOrchestrator(ctx, appCfg, recorder)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize watcher")
	}

	// 4. Scheduler
	services = append(services, scheduler.New(orchestrator, appCfg.GetInterval()))

	return services
}

// loadConfig reads .env from the runtime path and parses the environment.
// Any error here is fatal.
func loadConfig(ctx context.Context) *config.AppConfig {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	return config.NewAppConfig(ctx)
}

func initOrchestrator(ctx context.Context, cfg *config.AppConfig, recorder cycle.Recorder) (*cycle.Orchestrator, error) {
	extractor, err := extract.NewHTML(cfg.GetSelector())
	if err != nil {
		return nil, err
	}

	notifier, err := initNotifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Info().
		Str("url", cfg.GetURL()).
		Str("store", cfg.GetStorePath()).
		Str("notifier", cfg.Notifier).
		Msg("watcher configured")

	return cycle.New(
		fetch.NewHTTP(cfg.GetFetchTimeout()),
		extractor,
		flatfile.NewStore(cfg.GetStorePath()),
		notifier,
		cycle.Options{
			URL:      cfg.GetURL(),
			Title:    cfg.GetNotifyTitle(),
			Order:    cfg.GetAppendOrder(),
			Recorder: recorder,
		},
	), nil
}

func initNotifier(ctx context.Context, cfg *config.AppConfig) (core.Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierTelegram:
		tgCfg := config.NewTelegramConfig(ctx)
		return telegram.NewNotifier(tgCfg)
	case config.NotifierLog:
		return console.NewNotifier(os.Stdout), nil
	case config.NotifierDesktop, "":
		return desktop.NewNotifier(), nil
	default:
		return nil, &core.ConfigError{Field: "Notifier", Err: fmt.Errorf("unknown notifier %q", cfg.Notifier)}
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
