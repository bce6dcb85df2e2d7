package plog

import "time"

// MetricsCollector receives one call per event a sink accepts. err is the
// medium failure, if any. Implementations must be concurrency-safe.
type MetricsCollector interface {
	LoggedMessage(sink string, level Level, dur time.Duration, size int, err error)
}

type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) LoggedMessage(string, Level, time.Duration, int, error) {}
