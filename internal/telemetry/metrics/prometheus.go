package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on /metrics, with Go build info,
// runtime and process collectors.
func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return promRegistry
}

type CacheStats interface {
	Len() int64
	HitRate() float64
}

// CacheCollectors reads the query cache state at scrape time.
func CacheCollectors(namespace, subsystem string, stats CacheStats) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "query_cache_entries",
			Help:      "Number of backend answers currently held by the query cache",
		}, func() float64 {
			return float64(stats.Len())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "query_cache_hit_rate",
			Help:      "Share of query cache lookups answered without calling the backend",
		}, stats.HitRate),
	}
}
