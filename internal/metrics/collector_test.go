package metrics_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/config"
	"perfmeter/internal/metrics"
	"perfmeter/internal/metrics/mocks"
	"perfmeter/internal/registry"
)

func gather(t *testing.T, c prometheus.Collector) map[string]*dto.MetricFamily {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func newCollectorHub(t *testing.T) (*registry.Hub, *registry.Registry) {
	t.Helper()
	hub := registry.NewHub(registry.WithLogger(slog.New(slog.DiscardHandler)))
	reg := hub.GetOrCreateDescribed(registry.Descriptor{
		ClassName: "demo.Inventory",
		Methods:   []registry.MethodSpec{{Name: "Lookup"}, {Name: "Reserve"}},
	})

	lookup, _ := reg.Method("Lookup")
	reserve, _ := reg.Method("Reserve")
	reg.Begin(lookup)
	reg.Begin(reserve)
	reg.End(registry.Completion{Method: reserve, StartTime: time.Now()})
	return hub, reg
}

func TestCollector_RegistryCounters(t *testing.T) {
	hub, _ := newCollectorHub(t)

	families := gather(t, metrics.NewCollector(hub))

	current := families["perfmeter_method_current_calls"]
	require.NotNil(t, current)
	require.Len(t, current.GetMetric(), 2)
	for _, m := range current.GetMetric() {
		assert.Equal(t, "demo.Inventory", labelValue(m, "class"))
		switch labelValue(m, "method") {
		case "Lookup":
			assert.Equal(t, 1.0, m.GetGauge().GetValue())
		case "Reserve":
			assert.Equal(t, 0.0, m.GetGauge().GetValue())
		}
	}

	total := families["perfmeter_method_calls_total"]
	require.NotNil(t, total)
	for _, m := range total.GetMetric() {
		if labelValue(m, "method") == "Reserve" {
			assert.Equal(t, 1.0, m.GetCounter().GetValue())
		}
	}

	retained := families["perfmeter_class_retained_calls"]
	require.NotNil(t, retained)
	assert.Equal(t, 1.0, retained.GetMetric()[0].GetGauge().GetValue())

	retention := families["perfmeter_class_retention_minutes"]
	require.NotNil(t, retention)
	assert.Equal(t, float64(registry.DefaultRetentionMinutes), retention.GetMetric()[0].GetGauge().GetValue())

	assert.NotContains(t, families, "perfmeter_report_cache_hits_total")
	assert.NotContains(t, families, "perfmeter_export_dropped_total")
}

func TestCollector_CacheAndExporter(t *testing.T) {
	hub, _ := newCollectorHub(t)

	stats := mocks.NewMockCacheStats(t)
	stats.EXPECT().Stats().Return(uint64(7), uint64(3), 0.7)

	exporter := metrics.NewExporter(mocks.NewMockCallWriter(t), mocks.NewMockIDEncoder(t),
		&config.ExportConfig{Enabled: true, BufferSize: 1}, slog.New(slog.DiscardHandler))
	exporter.Record(testCall(1))
	exporter.Record(testCall(2))

	families := gather(t, metrics.NewCollector(hub, metrics.WithCacheStats(stats), metrics.WithExporter(exporter)))

	assert.Equal(t, 7.0, families["perfmeter_report_cache_hits_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 3.0, families["perfmeter_report_cache_misses_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 1.0, families["perfmeter_export_dropped_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 0.0, families["perfmeter_export_written_total"].GetMetric()[0].GetCounter().GetValue())
}

func TestCollector_RateLimited(t *testing.T) {
	hub, _ := newCollectorHub(t)

	limits := mocks.NewMockLimitStats(t)
	limits.EXPECT().Denied().Return(uint64(4), uint64(1))

	families := gather(t, metrics.NewCollector(hub, metrics.WithLimitStats(limits)))

	denied := map[string]float64{}
	for _, m := range families["perfmeter_report_api_rate_limited_total"].GetMetric() {
		denied[labelValue(m, "budget")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"read": 4, "write": 1}, denied)
	assert.NotContains(t, families, "perfmeter_export_dropped_total")
}
