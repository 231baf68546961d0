package cycle

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/service/delta"
	"github.com/sandevgo/secretowatch/pkg/log"
)

const notifySeparator = "\n\n"

type Options struct {
	URL      string
	Title    string
	Order    core.AppendOrder
	Recorder Recorder
}

// Report describes one finished cycle.
type Report struct {
	ID string
	// Reached is the last state entered before the cycle returned.
	Reached   State
	Extracted int
	History   int
	Delta     []core.Message
	Notified  bool
}

// Orchestrator runs the fetch, extract, diff, notify and persist sequence.
type Orchestrator struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	store     core.MessageStore
	notifier  core.Notifier
	opts      Options

	mu      sync.Mutex
	state   State
	stateMu sync.RWMutex
}

func New(fetcher core.Fetcher, extractor core.Extractor, store core.MessageStore, notifier core.Notifier, opts Options) *Orchestrator {
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Order == "" {
		opts.Order = core.AppendReverse
	}
	return &Orchestrator{
		fetcher:   fetcher,
		extractor: extractor,
		store:     store,
		notifier:  notifier,
		opts:      opts,
		state:     StateIdle,
	}
}

// State returns the phase of the cycle currently running, or StateIdle.
func (o *Orchestrator) State() State {
	o.stateMu.RLock()
	defer o.stateMu.RUnlock()
	return o.state
}

// RunOnce performs one complete cycle. It returns ErrCycleInProgress if
// another call has not finished yet. Fetch, parse and store errors end the
// cycle early and are returned; a failed notification is logged and the
// delta is still persisted.
func (o *Orchestrator) RunOnce(ctx context.Context) (Report, error) {
	if !o.mu.TryLock() {
		o.opts.Recorder.ObserveCycle(OutcomeSkipped, 0)
		return Report{Reached: o.State()}, core.ErrCycleInProgress
	}
	defer o.mu.Unlock()

	report := Report{ID: uuid.NewString()}
	logger := log.FromCtx(ctx).With().Str("cycle_id", report.ID).Logger()
	ctx = logger.WithContext(ctx)

	started := time.Now()
	defer o.enter(&logger, &report, StateIdle)

	outcome, err := o.run(ctx, &logger, &report)
	o.opts.Recorder.ObserveCycle(outcome, time.Since(started))
	if err != nil {
		return report, err
	}

	logger.Info().
		Int("extracted", report.Extracted).
		Int("new", len(report.Delta)).
		Dur("took", time.Since(started)).
		Msg("cycle finished")
	return report, nil
}

func (o *Orchestrator) run(ctx context.Context, logger *zerolog.Logger, report *Report) (Outcome, error) {
	o.enter(logger, report, StateFetching)
	logger.Info().Str("url", o.opts.URL).Msg("fetching messages")

	document, err := o.fetcher.Fetch(ctx, o.opts.URL)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch")
		return OutcomeFetchError, err
	}

	o.enter(logger, report, StateParsing)
	extracted, err := o.extractor.Extract(document)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse")
		return OutcomeParseFailure, err
	}
	report.Extracted = len(extracted)

	o.enter(logger, report, StateDiffing)
	history, err := o.store.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load history")
		return OutcomeStoreError, err
	}
	report.History = len(history)

	fresh := delta.Diff(extracted, history)
	report.Delta = fresh
	o.opts.Recorder.ObserveMessages(len(extracted), len(history), len(fresh))

	if len(fresh) == 0 {
		logger.Debug().Int("extracted", len(extracted)).Msg("no new messages")
		return OutcomeOK, nil
	}

	o.enter(logger, report, StateNotifying)
	if err := o.notifier.Notify(ctx, o.opts.Title, notificationBody(fresh)); err != nil {
		logger.Warn().Err(err).Int("count", len(fresh)).Msg("failed to deliver notification")
	} else {
		report.Notified = true
	}
	o.opts.Recorder.ObserveNotify(err)

	o.enter(logger, report, StatePersisting)
	if err := o.store.Append(ctx, fresh, o.opts.Order); err != nil {
		logger.Error().Err(err).Int("count", len(fresh)).Msg("failed to persist new messages")
		return OutcomeStoreError, fmt.Errorf("persist delta: %w", err)
	}

	return OutcomeOK, nil
}

func (o *Orchestrator) enter(logger *zerolog.Logger, report *Report, s State) {
	o.stateMu.Lock()
	o.state = s
	o.stateMu.Unlock()

	if s != StateIdle {
		report.Reached = s
	}
	logger.Debug().Str("state", string(s)).Msg("cycle state")
}

func notificationBody(msgs []core.Message) string {
	return strings.Join(core.Bodies(msgs), notifySeparator)
}
