// Package metrics exposes the prometheus counters and histogram the
// orchestrator updates while running the debug-blocking recommender,
// generalizing jhkimqd-chaos-utils/pkg/monitoring/prometheus.Client
// from a chaos-experiment registry wrapper into one for this domain.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder owns a private prometheus registry and the metrics this
// module's orchestrator records per run.
type Recorder struct {
	registry *prometheus.Registry

	ConfigsEvaluated      prometheus.Counter
	PrefixEventsProcessed prometheus.Counter
	PairsScored           prometheus.Counter
	JoinDuration          prometheus.Histogram
}

// NewRecorder builds a Recorder with a fresh, private registry so
// concurrent Recommend calls in the same process never share metric
// state.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.ConfigsEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "debugblocker_configs_evaluated_total",
		Help: "Number of field-subset configurations the rank aggregator evaluated.",
	})
	r.PrefixEventsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "debugblocker_prefix_events_processed_total",
		Help: "Number of prefix events popped across all top-k joins.",
	})
	r.PairsScored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "debugblocker_pairs_scored_total",
		Help: "Number of candidate pairs scored (overlap computed) across all top-k joins.",
	})
	r.JoinDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "debugblocker_join_duration_seconds",
		Help:    "Wall-clock duration of a single configuration's top-k join.",
		Buckets: prometheus.DefBuckets,
	})

	r.registry.MustRegister(r.ConfigsEvaluated, r.PrefixEventsProcessed, r.PairsScored, r.JoinDuration)
	return r
}

// WriteTo dumps the current metric values in Prometheus text
// exposition format, for a batch CLI run that has no long-lived
// /metrics endpoint to scrape.
func (r *Recorder) WriteTo(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
