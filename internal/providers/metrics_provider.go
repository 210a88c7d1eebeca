package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rantstats/rantstats-extension/internal/structures"
)

// StreamCounterInterface is the slice of the stream store the gauges read.
type StreamCounterInterface interface {
	StreamCount() int
}

// UsageSourceInterface is the slice of the storage adapter the gauges read.
type UsageSourceInterface interface {
	BytesInUse() int
	QuotaBytes() int
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRantsMerged(count int)
	IncStreamsRemoved(count int)
	ObservePersistenceDuration(duration time.Duration)
	ObserveSweepDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	rantsMerged         prometheus.Counter
	streamsRemoved      prometheus.Counter
	persistenceDuration prometheus.Histogram
	sweepDuration       prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRantsMerged(count int) {
	m.rantsMerged.Add(float64(count))
}

func (m *MetricsProvider) IncStreamsRemoved(count int) {
	m.streamsRemoved.Add(float64(count))
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveSweepDuration(duration time.Duration) {
	m.sweepDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, streams StreamCounterInterface, usage UsageSourceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rantstats_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rantstats_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rantstats_cache_hits_total",
			Help: "Total number of read cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rantstats_cache_misses_total",
			Help: "Total number of read cache misses",
		}),

		rantsMerged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rantstats_rants_merged_total",
			Help: "Total number of rant partials merged into the store",
		}),

		streamsRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rantstats_streams_removed_total",
			Help: "Total number of stream records removed by retention sweeps",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rantstats_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		sweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rantstats_sweep_duration_seconds",
			Help:    "Duration of retention sweeps in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rantstats_streams_total",
		Help: "Current number of cached stream records",
	}, func() float64 {
		return float64(streams.StreamCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rantstats_storage_bytes_in_use",
		Help: "Bytes currently stored",
	}, func() float64 {
		return float64(usage.BytesInUse())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "rantstats_storage_quota_bytes",
		Help: "Configured storage quota in bytes",
	}, func() float64 {
		return float64(usage.QuotaBytes())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncRantsMerged(_ int)                             {}
func (n *noopMetrics) IncStreamsRemoved(_ int)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) ObserveSweepDuration(_ time.Duration)             {}
