package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "dateformat"

// Format/parse engine Prometheus metrics.
var (
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of format and parse operations",
		},
		[]string{"op", "status"}, // op: "format" / "parse"; status: "ok" / "error"
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Format and parse duration in seconds",
			Buckets:   []float64{0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005},
		},
		[]string{"op"},
	)

	CompileCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compile_cache_total",
			Help:      "Compiled pattern cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CompileCacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "compile_cache_entries",
			Help:      "Number of compiled patterns held in the cache",
		},
	)

	LocalesRegistered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "locales_registered",
			Help:      "Number of locale tables in the registry",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(CompileCacheTotal)
	prometheus.MustRegister(CompileCacheEntries)
	prometheus.MustRegister(LocalesRegistered)
	engineMetricsRegistered = true
}
