package cotree

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	parallelism      int
}

// Option configures tree construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for builds and searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cotree.BasicMetricsCollector{}
//	tree, _ := cotree.NewFromSlice(keys, cotree.WithMetricsCollector(metrics))
//	// ... use tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for builds.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cotree.NewJSONLogger(slog.LevelDebug)
//	tree, _ := cotree.New(src, 1<<20, cotree.WithLogger(logger))
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

// WithParallelism sets how many goroutines NewFromSlice may use to lay out
// the bottom subtrees. Values <= 1 build sequentially (default).
//
// Builds from a Source or an iterator are always sequential because keys are
// consumed in order.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		parallelism:      1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
