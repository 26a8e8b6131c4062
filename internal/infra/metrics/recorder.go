// Package metrics exposes engine counters and gauges to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fittingroom"

type Recorder struct {
	leaseAttempts   *prometheus.CounterVec
	leasesReleased  prometheus.Counter
	leasesExpired   prometheus.Counter
	queueOperations *prometheus.CounterVec
	changeEvents    *prometheus.CounterVec
	operationTime   *prometheus.HistogramVec
	currentUsers    prometheus.Gauge
	queueLength     prometheus.Gauge
}

// NewRecorder registers every collector on reg; use a fresh registry per test.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		leaseAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lease_attempts_total",
				Help:      "Room lease attempts by outcome",
			},
			[]string{"outcome"},
		),
		leasesReleased: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leases_released_total",
			Help:      "Leases completed by an operator",
		}),
		leasesExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leases_expired_total",
			Help:      "Leases expired by the sweeper",
		}),
		queueOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_operations_total",
				Help:      "Queue entry transitions",
			},
			[]string{"operation"},
		),
		changeEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "change_events_published_total",
				Help:      "Change feed publishes by table and status",
			},
			[]string{"table", "status"},
		),
		operationTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of lease, queue and sweep operations",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"operation"},
		),
		currentUsers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_users",
			Help:      "Active leases at the last summary read",
		}),
		queueLength: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Waiting entries at the last summary read",
		}),
	}
}

func (r *Recorder) LeaseAttempt(outcome string) {
	r.leaseAttempts.WithLabelValues(outcome).Inc()
}

func (r *Recorder) LeaseReleased() { r.leasesReleased.Inc() }

func (r *Recorder) LeasesExpired(n int) { r.leasesExpired.Add(float64(n)) }

func (r *Recorder) QueueJoined()    { r.queueOperations.WithLabelValues("joined").Inc() }
func (r *Recorder) QueueCancelled() { r.queueOperations.WithLabelValues("cancelled").Inc() }
func (r *Recorder) QueuePromoted()  { r.queueOperations.WithLabelValues("promoted").Inc() }

func (r *Recorder) NotifiedExpired(n int) {
	r.queueOperations.WithLabelValues("expired").Add(float64(n))
}

func (r *Recorder) ChangePublished(table string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.changeEvents.WithLabelValues(table, status).Inc()
}

func (r *Recorder) ObserveOperation(op string, d time.Duration) {
	r.operationTime.WithLabelValues(op).Observe(d.Seconds())
}

func (r *Recorder) SetOccupancy(currentUsers, queueLength int) {
	r.currentUsers.Set(float64(currentUsers))
	r.queueLength.Set(float64(queueLength))
}
