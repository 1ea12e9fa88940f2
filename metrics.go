package fftwgo

import (
	"sync/atomic"
	"time"
)

// WisdomOp identifies a wisdom file operation.
type WisdomOp uint8

const (
	WisdomImport WisdomOp = iota
	WisdomExport
)

// String returns the string representation of a WisdomOp.
func (op WisdomOp) String() string {
	if op == WisdomExport {
		return "export"
	}
	return "import"
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: RecordDispatch is called
// from whichever goroutine the native engine dispatches on.
type MetricsCollector interface {
	// RecordPlan is called after each guarded plan creation.
	// duration includes the time spent waiting for the creation guard.
	RecordPlan(p Precision, duration time.Duration, err error)

	// RecordDispatch is called after the bridge finished a parallel-for.
	RecordDispatch(p Precision, njobs int, duration time.Duration)

	// RecordWisdom is called after each wisdom import or export.
	RecordWisdom(op WisdomOp, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPlan(Precision, time.Duration, error)   {}
func (NoopMetricsCollector) RecordDispatch(Precision, int, time.Duration) {}
func (NoopMetricsCollector) RecordWisdom(WisdomOp, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	PlanCount        atomic.Int64
	PlanErrors       atomic.Int64
	PlanTotalNanos   atomic.Int64
	DispatchCount    atomic.Int64
	DispatchJobs     atomic.Int64
	DispatchNanos    atomic.Int64
	WisdomImports    atomic.Int64
	WisdomExports    atomic.Int64
	WisdomErrors     atomic.Int64
	WisdomTotalNanos atomic.Int64
}

// RecordPlan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPlan(_ Precision, duration time.Duration, err error) {
	b.PlanCount.Add(1)
	b.PlanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PlanErrors.Add(1)
	}
}

// RecordDispatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDispatch(_ Precision, njobs int, duration time.Duration) {
	b.DispatchCount.Add(1)
	b.DispatchJobs.Add(int64(njobs))
	b.DispatchNanos.Add(duration.Nanoseconds())
}

// RecordWisdom implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWisdom(op WisdomOp, duration time.Duration, err error) {
	if op == WisdomExport {
		b.WisdomExports.Add(1)
	} else {
		b.WisdomImports.Add(1)
	}
	b.WisdomTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WisdomErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PlanCount:     b.PlanCount.Load(),
		PlanErrors:    b.PlanErrors.Load(),
		PlanAvgNanos:  avg(b.PlanTotalNanos.Load(), b.PlanCount.Load()),
		DispatchCount: b.DispatchCount.Load(),
		DispatchJobs:  b.DispatchJobs.Load(),
		WisdomImports: b.WisdomImports.Load(),
		WisdomExports: b.WisdomExports.Load(),
		WisdomErrors:  b.WisdomErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PlanCount     int64
	PlanErrors    int64
	PlanAvgNanos  int64
	DispatchCount int64
	DispatchJobs  int64
	WisdomImports int64
	WisdomExports int64
	WisdomErrors  int64
}
