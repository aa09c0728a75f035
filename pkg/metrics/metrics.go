package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Store metrics
	StoreReads        *prometheus.CounterVec
	StoreWrites       *prometheus.CounterVec
	StoreWriteErrors  *prometheus.CounterVec
	StoreCorruptBlobs *prometheus.CounterVec
	StoreLatency      *prometheus.HistogramVec
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
}

// NewMetrics creates and registers all application metrics on its own
// registry. The registry stays process-local: there is no scrape
// endpoint in a single-user client.
func NewMetrics(namespace, subsystem string) *Metrics {
	reg := prometheus.NewRegistry()
	return NewMetricsWith(namespace, subsystem, reg)
}

// NewMetricsWith registers the metrics on the given registerer.
func NewMetricsWith(namespace, subsystem string, reg prometheus.Registerer) *Metrics {
	factory := func(name, help string) *prometheus.CounterVec {
		c := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, []string{"collection"})
		reg.MustRegister(c)
		return c
	}

	m := &Metrics{
		StoreReads:        factory("store_reads_total", "Total collection reads from the store"),
		StoreWrites:       factory("store_writes_total", "Total collection writes to the store"),
		StoreWriteErrors:  factory("store_write_errors_total", "Total swallowed store write failures"),
		StoreCorruptBlobs: factory("store_corrupt_blobs_total", "Total corrupt blobs recovered as empty"),
		StoreLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operation_duration_seconds",
			Help:      "Time spent in store operations",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_cache_hits_total",
			Help:      "Collection reads served from the in-memory cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_cache_misses_total",
			Help:      "Collection reads that had to hit the key-value store",
		}),
	}
	reg.MustRegister(m.StoreLatency, m.CacheHits, m.CacheMisses)
	return m
}
