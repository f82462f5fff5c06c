package bigsort

import (
	"time"

	"github.com/filthyfil/bigsort/pkg/bitvec"
)

// Options configures an [Engine].
type Options struct {
	// Strict fails the sort with a DuplicateValueError as soon as a
	// value is marked twice, instead of silently collapsing duplicates
	// into one slot.
	Strict bool

	// ReuseScratch retains the presence vector's backing array across
	// Sort calls on the same engine, trading call-scoped allocation for
	// throughput on repeated sorts. The vector is cleared, not merely
	// overwritten, before each use, so bits from a previous call can
	// never leak into the next. An engine with ReuseScratch set is not
	// safe for concurrent use; give each goroutine its own engine.
	ReuseScratch bool
}

// Metrics describes one completed sort.
type Metrics struct {
	OriginalSize       int           // number of input values
	PresenceVectorSize int           // slots allocated, equal to max(input)
	ResultSize         int           // number of output values
	Elapsed            time.Duration // wall clock from bound discovery through reconstruction
}

// Result is the outcome of a sort: the values in ascending order plus
// the metrics recorded while producing them.
type Result struct {
	Values  []int
	Metrics Metrics
}

// Collapsed reports whether the result holds fewer values than the
// input. With distinct input this never happens; when it does, two or
// more input values shared a slot, which is the observable symptom of
// a duplicate-value precondition violation.
func (r Result) Collapsed() bool {
	return r.Metrics.ResultSize < r.Metrics.OriginalSize
}

// Engine sorts collections of distinct positive integers by presence
// encoding. The zero value is usable and equivalent to New(Options{});
// engines without ReuseScratch hold no state between calls and are
// safe for concurrent use.
type Engine struct {
	opts    Options
	scratch *bitvec.Vector
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Sort returns the input values in ascending order along with sort
// metrics. The input is borrowed read-only and never mutated; the
// returned slice is freshly allocated.
//
// Sort fails with [ErrEmptyInput] on an empty collection, with a
// [NonPositiveValueError] when a value is zero or negative, and, in
// strict mode only, with a [DuplicateValueError] when a value occurs
// twice. No partial result is returned on failure.
func (e *Engine) Sort(input []int) (Result, error) {
	if len(input) == 0 {
		return Result{}, ErrEmptyInput
	}

	start := time.Now()

	// Bound discovery: the maximum sizes the presence vector.
	maxValue := input[0]
	for _, v := range input[1:] {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue <= 0 {
		// Even the maximum is out of domain, so every value is. Report
		// the first as the offender.
		return Result{}, &NonPositiveValueError{Value: input[0], Index: 0}
	}

	// Presence marking: slot v-1 records value v. This mapping and its
	// inverse below are the only places the one-based domain meets the
	// zero-based vector.
	vec := e.vector(maxValue)
	for i, v := range input {
		if v <= 0 {
			return Result{}, &NonPositiveValueError{Value: v, Index: i}
		}
		slot := v - 1
		if e.opts.Strict && vec.Test(slot) {
			return Result{}, &DuplicateValueError{Value: v}
		}
		vec.Set(slot)
	}

	// Reconstruction: ascending slot order yields ascending values.
	values := make([]int, 0, len(input))
	for i, ok := vec.NextSet(0); ok; i, ok = vec.NextSet(i + 1) {
		values = append(values, i+1)
	}

	elapsed := time.Since(start)

	return Result{
		Values: values,
		Metrics: Metrics{
			OriginalSize:       len(input),
			PresenceVectorSize: maxValue,
			ResultSize:         len(values),
			Elapsed:            elapsed,
		},
	}, nil
}

// vector returns a cleared presence vector of n slots, reusing the
// engine's scratch buffer when configured.
func (e *Engine) vector(n int) *bitvec.Vector {
	if !e.opts.ReuseScratch {
		return bitvec.New(n)
	}
	if e.scratch == nil {
		e.scratch = bitvec.New(n)
	} else {
		e.scratch.Reset(n)
	}
	return e.scratch
}

// Sort sorts input with a fresh default engine. It is the one-shot
// form of [Engine.Sort] and carries the same contract.
func Sort(input []int) (Result, error) {
	return New(Options{}).Sort(input)
}
