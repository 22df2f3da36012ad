package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"perfmeter/internal/registry"
)

const namespace = "perfmeter"

var (
	currentCallsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "method", "current_calls"),
		"Calls of a tracked method currently in flight.",
		[]string{"class", "method"}, nil,
	)
	totalCallsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "method", "calls_total"),
		"Completed calls of a tracked method since the last reset.",
		[]string{"class", "method"}, nil,
	)
	retainedCallsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "class", "retained_calls"),
		"Completed call records inside the retention window.",
		[]string{"class"}, nil,
	)
	retentionDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "class", "retention_minutes"),
		"Configured retention window.",
		[]string{"class"}, nil,
	)
	cacheHitsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "report_cache", "hits_total"),
		"Report cache hits.", nil, nil,
	)
	cacheMissesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "report_cache", "misses_total"),
		"Report cache misses.", nil, nil,
	)
	exportDroppedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "export", "dropped_total"),
		"Completed calls dropped because the export buffer was full.", nil, nil,
	)
	exportWrittenDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "export", "written_total"),
		"Completed calls written to the export sink.", nil, nil,
	)
	rateLimitedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "report_api", "rate_limited_total"),
		"Reporting API requests turned away by the rate limiter.",
		[]string{"budget"}, nil,
	)
)

// Collector reads registry counters at scrape time, so nothing is updated on
// the call path.
type Collector struct {
	hub      *registry.Hub
	cache    CacheStats
	exporter *Exporter
	limits   LimitStats
}

type CollectorOption func(*Collector)

func WithCacheStats(c CacheStats) CollectorOption {
	return func(col *Collector) { col.cache = c }
}

func WithExporter(e *Exporter) CollectorOption {
	return func(col *Collector) { col.exporter = e }
}

func WithLimitStats(l LimitStats) CollectorOption {
	return func(col *Collector) { col.limits = l }
}

func NewCollector(hub *registry.Hub, opts ...CollectorOption) *Collector {
	c := &Collector{hub: hub}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- currentCallsDesc
	ch <- totalCallsDesc
	ch <- retainedCallsDesc
	ch <- retentionDesc
	if c.cache != nil {
		ch <- cacheHitsDesc
		ch <- cacheMissesDesc
	}
	if c.exporter != nil {
		ch <- exportDroppedDesc
		ch <- exportWrittenDesc
	}
	if c.limits != nil {
		ch <- rateLimitedDesc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, reg := range c.hub.Registries() {
		class := reg.ClassName()
		current, total := reg.Activity()
		for _, cc := range current {
			ch <- prometheus.MustNewConstMetric(currentCallsDesc, prometheus.GaugeValue,
				float64(cc.Calls), class, cc.Method.Name)
		}
		for _, cc := range total {
			ch <- prometheus.MustNewConstMetric(totalCallsDesc, prometheus.CounterValue,
				float64(cc.Calls), class, cc.Method.Name)
		}
		ch <- prometheus.MustNewConstMetric(retainedCallsDesc, prometheus.GaugeValue,
			float64(reg.Len()), class)
		ch <- prometheus.MustNewConstMetric(retentionDesc, prometheus.GaugeValue,
			float64(reg.RetentionMinutes()), class)
	}

	if c.cache != nil {
		hits, misses, _ := c.cache.Stats()
		ch <- prometheus.MustNewConstMetric(cacheHitsDesc, prometheus.CounterValue, float64(hits))
		ch <- prometheus.MustNewConstMetric(cacheMissesDesc, prometheus.CounterValue, float64(misses))
	}

	if c.exporter != nil {
		ch <- prometheus.MustNewConstMetric(exportDroppedDesc, prometheus.CounterValue, float64(c.exporter.Dropped()))
		ch <- prometheus.MustNewConstMetric(exportWrittenDesc, prometheus.CounterValue, float64(c.exporter.Written()))
	}

	if c.limits != nil {
		reads, writes := c.limits.Denied()
		ch <- prometheus.MustNewConstMetric(rateLimitedDesc, prometheus.CounterValue, float64(reads), "read")
		ch <- prometheus.MustNewConstMetric(rateLimitedDesc, prometheus.CounterValue, float64(writes), "write")
	}
}
