package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/service/cycle"
	"github.com/sandevgo/secretowatch/pkg/log"
)

const (
	defaultInterval = time.Minute
	// Upper bound on how long Shutdown waits for a running cycle.
	defaultDrainTimeout = 30 * time.Second
)

type Runner interface {
	RunOnce(ctx context.Context) (cycle.Report, error)
}

// Scheduler runs a cycle once at start and then every Interval. A trigger
// that fires while a cycle is still running is skipped.
type Scheduler struct {
	runner       Runner
	Interval     time.Duration
	DrainTimeout time.Duration

	mu      sync.Mutex
	stopped bool
	cron    *cron.Cron

	// first tracks the immediate run, which cron itself does not wait for
	first sync.WaitGroup
}

func New(runner Runner, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		runner:       runner,
		Interval:     interval,
		DrainTimeout: defaultDrainTimeout,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	cl := log.NewCronLoggerFromCtx(ctx)

	c := cron.New(cron.WithLogger(cl))
	job := cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).
		Then(cron.FuncJob(func() { s.tick(ctx) }))
	c.Schedule(cron.Every(s.Interval), job)

	// Start and Shutdown may race; whichever takes mu first decides
	s.mu.Lock()
	if s.stopped || ctx.Err() != nil {
		s.mu.Unlock()
		logger.Debug().Msg("scheduler stopped before start")
		return nil
	}
	s.cron = c
	s.first.Add(1)

	logger.Info().Dur("interval", s.Interval).Msg("starting scheduler")
	c.Start()

	// First run goes through the same chain so a slow first cycle also
	// suppresses the first scheduled trigger.
	go func() {
		defer s.first.Done()
		job.Run()
	}()
	s.mu.Unlock()

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	c := s.cron
	s.mu.Unlock()
	if c == nil {
		return nil
	}

	drained := make(chan struct{})
	go func() {
		<-c.Stop().Done()
		s.first.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		log.FromCtx(ctx).Info().Msg("scheduler stopped")
		return nil
	case <-time.After(s.DrainTimeout):
		return errors.New("timed out waiting for running cycle")
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	_, err := s.runner.RunOnce(ctx)
	if errors.Is(err, core.ErrCycleInProgress) {
		log.FromCtx(ctx).Debug().Msg("cycle still running, trigger skipped")
	}
	// other errors are already logged by the orchestrator
}
