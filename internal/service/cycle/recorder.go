package cycle

import "time"

// Recorder receives per-cycle observations. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	ObserveCycle(outcome Outcome, duration time.Duration)
	ObserveMessages(extracted, history, fresh int)
	ObserveNotify(err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCycle(Outcome, time.Duration) {}
func (nopRecorder) ObserveMessages(int, int, int)        {}
func (nopRecorder) ObserveNotify(error)                  {}
