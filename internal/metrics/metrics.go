package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/secretowatch/internal/service/cycle"
)

const namespace = "secreto"

// Recorder implements cycle.Recorder on its own Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	cycles        *prometheus.CounterVec
	cycleDuration prometheus.Histogram
	extracted     prometheus.Gauge
	history       prometheus.Gauge
	newMessages   prometheus.Counter
	notifications *prometheus.CounterVec
	lastSuccess   prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Finished watch cycles by outcome.",
		}, []string{"outcome"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Time spent in one watch cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		extracted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "extracted_messages",
			Help:      "Messages found on the page in the last cycle.",
		}),
		history: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_messages",
			Help:      "Messages in the history file before the last cycle.",
		}),
		newMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_messages_total",
			Help:      "New messages detected.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification attempts by result.",
		}, []string{"result"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last cycle that finished without error.",
		}),
	}

	r.registry.MustRegister(
		r.cycles,
		r.cycleDuration,
		r.extracted,
		r.history,
		r.newMessages,
		r.notifications,
		r.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObserveCycle(outcome cycle.Outcome, duration time.Duration) {
	r.cycles.WithLabelValues(string(outcome)).Inc()
	if outcome == cycle.OutcomeSkipped {
		return
	}
	r.cycleDuration.Observe(duration.Seconds())
	if outcome == cycle.OutcomeOK {
		r.lastSuccess.SetToCurrentTime()
	}
}

func (r *Recorder) ObserveMessages(extracted, history, fresh int) {
	r.extracted.Set(float64(extracted))
	r.history.Set(float64(history))
	r.newMessages.Add(float64(fresh))
}

func (r *Recorder) ObserveNotify(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.notifications.WithLabelValues(result).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
