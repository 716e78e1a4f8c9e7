// Package stats is a thin wrapper around a go-metrics registry, giving the
// scheduler and executors a uniform Counter/Gauge/Latency surface that can
// be scoped per component and rendered as JSON for the admin endpoint.
package stats

import (
	"encoding/json"
	"strings"
	"time"

	metrics "github.com/rcrowley/go-metrics"
)

// StatsReceiver hands out instruments registered under hierarchical names.
// Name elements are joined with '/'.
type StatsReceiver interface {
	// Scope returns a receiver that namespaces everything under the given
	// elements: stat.Scope("sched").Counter("jobs") == stat.Counter("sched", "jobs").
	Scope(scope ...string) StatsReceiver

	// Counter provides a monotonically increasing event counter.
	Counter(name ...string) metrics.Counter

	// Gauge holds an int64 value that can be set arbitrarily.
	Gauge(name ...string) metrics.Gauge

	// Latency provides a duration histogram; use Latency(...).Time().Stop()
	// to record one measurement.
	Latency(name ...string) Latency

	// Render marshals the current registry contents as JSON.
	Render() []byte
}

// Latency records elapsed durations.
type Latency interface {
	Time() *StopWatch
}

// DefaultStatsReceiver returns a receiver over a fresh registry.
func DefaultStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{registry: metrics.NewRegistry()}
}

// NilStatsReceiver returns a receiver that discards everything; used in
// tests and as a fallback when no receiver is wired.
func NilStatsReceiver() StatsReceiver {
	return &nilStatsReceiver{}
}

type defaultStatsReceiver struct {
	registry metrics.Registry
	scope    []string
}

func (s *defaultStatsReceiver) Scope(scope ...string) StatsReceiver {
	return &defaultStatsReceiver{registry: s.registry, scope: append(append([]string{}, s.scope...), scope...)}
}

func (s *defaultStatsReceiver) scopedName(name ...string) string {
	return strings.Join(append(append([]string{}, s.scope...), name...), "/")
}

func (s *defaultStatsReceiver) Counter(name ...string) metrics.Counter {
	return s.registry.GetOrRegister(s.scopedName(name...), metrics.NewCounter).(metrics.Counter)
}

func (s *defaultStatsReceiver) Gauge(name ...string) metrics.Gauge {
	return s.registry.GetOrRegister(s.scopedName(name...), metrics.NewGauge).(metrics.Gauge)
}

func (s *defaultStatsReceiver) Latency(name ...string) Latency {
	h := s.registry.GetOrRegister(s.scopedName(name...),
		func() metrics.Histogram { return metrics.NewHistogram(metrics.NewUniformSample(1024)) }).(metrics.Histogram)
	return &histLatency{h: h}
}

func (s *defaultStatsReceiver) Render() []byte {
	out := map[string]interface{}{}
	s.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			out[name] = m.Count()
		case metrics.Gauge:
			out[name] = m.Value()
		case metrics.Histogram:
			out[name] = map[string]interface{}{
				"count": m.Count(),
				"mean":  m.Mean(),
				"p95":   m.Percentile(0.95),
			}
		}
	})
	b, err := json.Marshal(out)
	if err != nil {
		panic("stats registry cannot be marshaled")
	}
	return b
}

type histLatency struct {
	h metrics.Histogram
}

func (l *histLatency) Time() *StopWatch {
	return &StopWatch{start: time.Now(), record: func(d time.Duration) { l.h.Update(int64(d)) }}
}

// StopWatch measures one latency sample from Time() to Stop().
type StopWatch struct {
	start  time.Time
	record func(time.Duration)
}

func (s *StopWatch) Stop() {
	if s.record != nil {
		s.record(time.Since(s.start))
	}
}

type nilStatsReceiver struct{}

func (s *nilStatsReceiver) Scope(scope ...string) StatsReceiver { return s }
func (s *nilStatsReceiver) Counter(name ...string) metrics.Counter {
	return metrics.NilCounter{}
}
func (s *nilStatsReceiver) Gauge(name ...string) metrics.Gauge { return metrics.NilGauge{} }
func (s *nilStatsReceiver) Latency(name ...string) Latency     { return nilLatency{} }
func (s *nilStatsReceiver) Render() []byte                     { return []byte("{}") }

type nilLatency struct{}

func (nilLatency) Time() *StopWatch { return &StopWatch{} }
