package service

import (
	"sync"
	"time"

	"github.com/kapu/member-directory-go/internal/domain"
)

// MetricsAggregator tracks process-wide extraction counters and a running
// mean of processing time. Cache hits bump only CacheHits: they do not count
// as requests and contribute no time sample.
type MetricsAggregator struct {
	mu                    sync.Mutex
	totalRequests         int64
	successfulExtractions int64
	failedExtractions     int64
	cacheHits             int64
	averageProcessingMs   float64
}

func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{}
}

func (m *MetricsAggregator) RecordSuccess(elapsed time.Duration) {
	m.mu.Lock()
	m.successfulExtractions++
	m.recordSample(elapsed)
	m.mu.Unlock()
}

func (m *MetricsAggregator) RecordFailure(elapsed time.Duration) {
	m.mu.Lock()
	m.failedExtractions++
	m.recordSample(elapsed)
	m.mu.Unlock()
}

func (m *MetricsAggregator) RecordCacheHit() {
	m.mu.Lock()
	m.cacheHits++
	m.mu.Unlock()
}

// recordSample folds one processing-time sample into the running mean:
// newAvg = (oldAvg*(n-1) + sample) / n with n the request count after
// incrementing. Exact for any sequence of non-negative samples, no history
// kept. Caller must hold the lock.
func (m *MetricsAggregator) recordSample(elapsed time.Duration) {
	m.totalRequests++
	sample := float64(elapsed.Milliseconds())
	n := float64(m.totalRequests)
	m.averageProcessingMs = (m.averageProcessingMs*(n-1) + sample) / n
}

// Snapshot returns current counters plus the supplied cache size.
// Side-effect-free.
func (m *MetricsAggregator) Snapshot(cacheSize int) domain.MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.MetricsSnapshot{
		TotalRequests:         m.totalRequests,
		SuccessfulExtractions: m.successfulExtractions,
		FailedExtractions:     m.failedExtractions,
		CacheHits:             m.cacheHits,
		AverageProcessingTime: m.averageProcessingMs,
		CacheSize:             cacheSize,
	}
}
