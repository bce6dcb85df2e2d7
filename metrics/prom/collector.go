// Package prom exports sink throughput and failures as Prometheus metrics.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/trickstertwo/plog"
)

const namespace = "plog"

// Collector implements plog.MetricsCollector. One Collector can serve any
// number of sinks; series are labelled by sink name.
type Collector struct {
	// MessagesTotal counts dispatched events by sink, level and result (ok, error).
	MessagesTotal *prometheus.CounterVec
	// BytesTotal counts rendered bytes written by sink.
	BytesTotal *prometheus.CounterVec
	// WriteDurationSeconds is the latency of rendering and writing one event.
	WriteDurationSeconds *prometheus.HistogramVec
}

// New registers the collector's metrics with reg, or with the default
// registerer when reg is nil. Registering twice with the same registerer
// panics, as promauto does.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		MessagesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "messages_total",
				Help:      "Total log events handled by a sink, by level and result.",
			},
			[]string{"sink", "level", "result"},
		),
		BytesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "bytes_total",
				Help:      "Total rendered bytes written by a sink.",
			},
			[]string{"sink"},
		),
		WriteDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "sink",
				Name:      "write_duration_seconds",
				Help:      "Latency of rendering and writing one log event.",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"sink"},
		),
	}
}

func (c *Collector) LoggedMessage(sink string, level plog.Level, dur time.Duration, size int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.MessagesTotal.WithLabelValues(sink, level.String(), result).Inc()
	if size > 0 {
		c.BytesTotal.WithLabelValues(sink).Add(float64(size))
	}
	c.WriteDurationSeconds.WithLabelValues(sink).Observe(dur.Seconds())
}

// Instrument sets c as the metrics collector of every sink that accepts
// one. Sinks embedding plog.BaseSink do.
func Instrument(c *Collector, sinks ...plog.Sink) {
	for _, s := range sinks {
		if m, ok := s.(interface {
			SetMetricsCollector(plog.MetricsCollector)
		}); ok {
			m.SetMetricsCollector(c)
		}
	}
}
