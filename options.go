package fftwgo

import (
	"log/slog"
	"strings"

	"github.com/hupe1980/fftwgo/pool"
)

// ThreadingProfile selects who runs the engine's parallel jobs.
type ThreadingProfile uint8

const (
	// ProfileExternalPool registers a Bridge with the engine; parallel jobs run
	// on a Go worker pool.
	ProfileExternalPool ThreadingProfile = iota
	// ProfileNative bootstraps the engine's threads but registers no callback;
	// the engine manages its own threads.
	ProfileNative
)

// String returns the string representation of a ThreadingProfile.
func (p ThreadingProfile) String() string {
	switch p {
	case ProfileExternalPool:
		return "external-pool"
	case ProfileNative:
		return "native"
	default:
		return "unknown"
	}
}

// ParseThreadingProfile parses "external-pool" (or "pool") and "native".
func ParseThreadingProfile(s string) (ThreadingProfile, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "external-pool", "pool", "external":
		return ProfileExternalPool, true
	case "native":
		return ProfileNative, true
	default:
		return ProfileExternalPool, false
	}
}

type options struct {
	profile          ThreadingProfile
	pool             *pool.WorkerPool
	poolSize         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Domain.
type Option func(*options)

// WithThreadingProfile selects the threading profile applied by InitThreads.
//
// Default: ProfileExternalPool.
func WithThreadingProfile(p ThreadingProfile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithWorkerPool runs bridge dispatches on wp instead of the process-wide pool.
// The caller owns wp and closes it after the domain is no longer used; a closed
// pool degrades dispatches to the calling goroutine.
func WithWorkerPool(wp *pool.WorkerPool) Option {
	return func(o *options) {
		o.pool = wp
	}
}

// WithPoolSize gives the domain a private pool of n workers.
// Ignored when WithWorkerPool is also set.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fftwgo.BasicMetricsCollector{}
//	d := fftwgo.NewDomain(engine, fftwgo.WithMetricsCollector(metrics))
//	// ... plan and execute ...
//	stats := metrics.GetStats()
//	fmt.Printf("Plans: %d, Avg latency: %dns\n", stats.PlanCount, stats.PlanAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fftwgo.NewJSONLogger(slog.LevelInfo)
//	d := fftwgo.NewDomain(engine, fftwgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
		profile:          ProfileExternalPool,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
