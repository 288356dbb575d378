package selectk

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Selector construction behavior.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (no logging, no metrics) is the fast path.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// selection operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &selectk.BasicMetricsCollector{}
//	sel, _ := selectk.Top(10, scorer, selectk.WithMetricsCollector(metrics))
//	// ... offer candidates ...
//	stats := metrics.GetStats()
//	fmt.Printf("Offers: %d, accepted: %d\n", stats.OfferCount, stats.OfferAccepted)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for selection operations.
//
// Example with JSON logging:
//
//	logger := selectk.NewJSONLogger(slog.LevelDebug)
//	sel, _ := selectk.Top(10, scorer, selectk.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
