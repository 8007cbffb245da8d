package wallet

// MetricsCollector receives wallet service observations. The default is
// a no-op so callers without a metrics backend pass nil.
type MetricsCollector interface {
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordError(operation, errType string)
}

// NoopMetricsCollector discards all observations.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCacheHit(string)      {}
func (NoopMetricsCollector) RecordCacheMiss(string)     {}
func (NoopMetricsCollector) RecordError(string, string) {}
