package intervaltable

import (
	"fmt"
	"sync"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/atomic"
)

type tableMetrics struct {
	claims   *metrics.Counter
	releases *metrics.Counter
	rejects  *metrics.Counter
	entries  *atomic.Int64
}

// entryCounts holds one entry count per table name, shared by the gauge
// callbacks registered for that name.
var entryCounts sync.Map

func newTableMetrics(name string) *tableMetrics {
	v, loaded := entryCounts.LoadOrStore(name, atomic.NewInt64(0))
	entries := v.(*atomic.Int64)
	if !loaded {
		metrics.GetOrCreateGauge(fmt.Sprintf(`interval_table_entries{table=%q}`, name), func() float64 {
			return float64(entries.Load())
		})
	}
	return &tableMetrics{
		claims:   metrics.GetOrCreateCounter(fmt.Sprintf(`interval_table_claims_total{table=%q}`, name)),
		releases: metrics.GetOrCreateCounter(fmt.Sprintf(`interval_table_releases_total{table=%q}`, name)),
		rejects:  metrics.GetOrCreateCounter(fmt.Sprintf(`interval_table_rejects_total{table=%q}`, name)),
		entries:  entries,
	}
}
