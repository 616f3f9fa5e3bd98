package apiclient

import (
	"sync"
	"time"
)

// CallMetrics summarizes the client's traffic to the upstream API
type CallMetrics struct {
	Calls          int64         `json:"calls"`
	Failures       int64         `json:"failures"`
	LastCallAt     time.Time     `json:"last_call_at"`
	LastFailure    string        `json:"last_failure,omitempty"`
	AverageLatency time.Duration `json:"average_latency"`
}

// MetricsTracker is a goroutine-safe CallMetrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics CallMetrics
	total   time.Duration
}

func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

func (t *MetricsTracker) record(latency time.Duration, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.Calls++
	t.metrics.LastCallAt = time.Now()
	t.total += latency
	t.metrics.AverageLatency = t.total / time.Duration(t.metrics.Calls)

	if err != nil {
		t.metrics.Failures++
		t.metrics.LastFailure = err.Error()
	}
}

// Snapshot returns a copy of the current metrics.
func (t *MetricsTracker) Snapshot() CallMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}
