package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит счетчики sync-эндпоинтов
type Metrics struct {
	ChangesPushed   prometheus.Counter
	ChangesRejected *prometheus.CounterVec
	PullRequests    prometheus.Counter
	ChangeLogSize   prometheus.Gauge
}

// New регистрирует метрики в переданном registry
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChangesPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kassasync_changes_pushed_total",
			Help: "Number of change records accepted into the change log.",
		}),
		ChangesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kassasync_changes_rejected_total",
			Help: "Number of rejected change records by reason.",
		}, []string{"reason"}),
		PullRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kassasync_pull_requests_total",
			Help: "Number of pull (GET /api/v1/changes) requests served.",
		}),
		ChangeLogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kassasync_change_log_size",
			Help: "Current number of records in the change log.",
		}),
	}

	reg.MustRegister(m.ChangesPushed, m.ChangesRejected, m.PullRequests, m.ChangeLogSize)
	return m
}
