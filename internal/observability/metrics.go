package observability

import "sync/atomic"

// Metrics counts translation requests in-process. The counters are exposed
// through the status endpoint; there is no scrape surface.
type Metrics struct {
	translations atomic.Uint64
	failures     atomic.Uint64
	cacheHits    atomic.Uint64
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordTranslation counts one completed translation. Cached results count
// as translations and as cache hits.
func (m *Metrics) RecordTranslation(cached bool) {
	if m == nil {
		return
	}
	m.translations.Add(1)
	if cached {
		m.cacheHits.Add(1)
	}
}

// RecordFailure counts one failed translation.
func (m *Metrics) RecordFailure() {
	if m == nil {
		return
	}
	m.failures.Add(1)
}

// Snapshot holds a point-in-time view of the counters.
type Snapshot struct {
	Translations uint64 `json:"translations"`
	Failures     uint64 `json:"failures"`
	CacheHits    uint64 `json:"cache_hits"`
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		Translations: m.translations.Load(),
		Failures:     m.failures.Load(),
		CacheHits:    m.cacheHits.Load(),
	}
}
