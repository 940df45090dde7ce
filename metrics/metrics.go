package metrics

import (
	"VisitorIntake/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Persistence outcomes for a single accepted visitor.
const (
	PersistStored  = "stored"
	PersistSkipped = "skipped" // store not connected
	PersistFailed  = "failed"  // insert returned an error or panicked
)

// Metrics holds the intake counters exposed on /metrics.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Persisted   *prometheus.CounterVec
}

// New registers the intake collectors on reg. connected feeds the
// store_connected gauge; pass nil to leave it out.
func New(reg prometheus.Registerer, connected func() bool) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "visitor_intake_submissions_total",
			Help: "Visitor names received, by verdict (accepted or the rejection reason)",
		}, []string{"verdict"}),
		Persisted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "visitor_intake_persist_total",
			Help: "Best-effort visitor writes, by result",
		}, []string{"result"}),
	}
	if connected != nil {
		f.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "visitor_intake_store_connected",
			Help: "1 once the visitor store connection has been published",
		}, func() float64 {
			if connected() {
				return 1
			}
			return 0
		})
	}
	return m
}

// ObserveVerdict counts one validated submission. Safe on a nil receiver.
func (m *Metrics) ObserveVerdict(v core.Verdict) {
	if m == nil {
		return
	}
	label := "accepted"
	if !v.Accepted() {
		label = string(v.Reason)
	}
	m.Submissions.WithLabelValues(label).Inc()
}

// ObservePersist counts one gateway outcome. Safe on a nil receiver.
func (m *Metrics) ObservePersist(result string) {
	if m == nil {
		return
	}
	m.Persisted.WithLabelValues(result).Inc()
}
