package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	opAllocate = "allocate"
)

// Metrics holds the Prometheus metrics for instrumented allocators. It is
// an optional layer: a nil *Metrics in Config disables instrumentation and
// every method is nil-safe.
type Metrics struct {
	operationsTotal *prometheus.CounterVec
	bytesInUse      prometheus.Gauge
}

// NewMetrics creates and registers the allocator metrics with the default
// Prometheus registry. Call it at most once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbl_alloc_operations_total",
				Help: "Total number of allocation operations",
			},
			[]string{"operation", "status"},
		),

		bytesInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pbl_alloc_bytes_in_use",
				Help: "Bytes currently allocated and not yet freed",
			},
		),
	}
}

// recordOperation counts one allocation operation with its outcome.
func (m *Metrics) recordOperation(operation, status string) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// setBytesInUse updates the bytes-in-use gauge.
func (m *Metrics) setBytesInUse(n int64) {
	if m == nil {
		return
	}
	m.bytesInUse.Set(float64(n))
}
