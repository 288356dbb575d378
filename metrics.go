package selectk

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    offerCounter     prometheus.Counter
//	    resultsHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordOffer(accepted bool, duration time.Duration) {
//	    p.offerCounter.Inc()
//	    // ... record acceptance, duration, etc.
//	}
type MetricsCollector interface {
	// RecordOffer is called after each offer.
	// accepted reports whether the candidate was retained,
	// duration is the total time taken including scoring.
	RecordOffer(accepted bool, duration time.Duration)

	// RecordResults is called after each results read.
	// count is the number of candidates emitted.
	RecordResults(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOffer(bool, time.Duration)  {}
func (NoopMetricsCollector) RecordResults(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OfferCount      atomic.Int64
	OfferAccepted   atomic.Int64
	OfferRejected   atomic.Int64
	OfferTotalNanos atomic.Int64
	ResultsCount    atomic.Int64
	ResultsEmitted  atomic.Int64
}

// RecordOffer implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOffer(accepted bool, duration time.Duration) {
	b.OfferCount.Add(1)
	b.OfferTotalNanos.Add(duration.Nanoseconds())
	if accepted {
		b.OfferAccepted.Add(1)
	} else {
		b.OfferRejected.Add(1)
	}
}

// RecordResults implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResults(count int, duration time.Duration) {
	b.ResultsCount.Add(1)
	b.ResultsEmitted.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OfferCount:     b.OfferCount.Load(),
		OfferAccepted:  b.OfferAccepted.Load(),
		OfferRejected:  b.OfferRejected.Load(),
		OfferAvgNanos:  b.getAvgOfferNanos(),
		ResultsCount:   b.ResultsCount.Load(),
		ResultsEmitted: b.ResultsEmitted.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgOfferNanos() int64 {
	count := b.OfferCount.Load()
	if count == 0 {
		return 0
	}
	return b.OfferTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OfferCount     int64
	OfferAccepted  int64
	OfferRejected  int64
	OfferAvgNanos  int64
	ResultsCount   int64
	ResultsEmitted int64
}
