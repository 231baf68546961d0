package log

import (
	"context"

	"github.com/rs/zerolog"
)

// CronLogger adapts zerolog to robfig/cron's Logger interface
type CronLogger struct {
	logger *zerolog.Logger
}

// Info is used by cron for routine events (wake, run, skip), so it is
// logged at debug level.
func (c *CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (c *CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

func NewCronLoggerFromCtx(ctx context.Context) *CronLogger {
	return &CronLogger{
		logger: FromCtx(ctx),
	}
}
