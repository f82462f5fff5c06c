package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/filthyfil/bigsort/pkg/bigsort"
	"github.com/filthyfil/bigsort/pkg/observability"
	"github.com/filthyfil/bigsort/pkg/pipeline"
)

// Result captures the outcome of one executed case.
type Result struct {
	Case       Case
	Seed       uint64        // The seed the input was generated from
	Runs       int           // Completed sort repetitions
	GenTime    time.Duration // Time spent generating the input
	TotalSort  time.Duration // Sum of sort times across repetitions
	MinSort    time.Duration
	MaxSort    time.Duration
	VectorBits int // Presence vector size used by the sorts
}

// AvgSort returns the mean sort time across repetitions.
func (r Result) AvgSort() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.TotalSort / time.Duration(r.Runs)
}

// Runner executes workload suites.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a workload runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// RunSuite validates and executes every case in the suite, in order.
// Execution stops at the first failing case or at context cancellation,
// returning the results collected so far alongside the error.
func (r *Runner) RunSuite(ctx context.Context, s *Suite) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Workload()
	results := make([]Result, 0, len(s.Cases))

	r.Logger.Info("running workload suite", "suite", s.Name, "cases", len(s.Cases))

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := s.Cases[i].Name
		caseStart := time.Now()
		hooks.OnCaseStart(ctx, s.Name, name)
		res, err := r.runCase(ctx, s, i)
		hooks.OnCaseComplete(ctx, s.Name, name, time.Since(caseStart), err)
		if err != nil {
			return results, fmt.Errorf("case %s: %w", name, err)
		}
		results = append(results, res)

		r.Logger.Info("case complete",
			"suite", s.Name,
			"case", name,
			"runs", res.Runs,
			"avg_sort", res.AvgSort(),
			"vector_bits", res.VectorBits)
	}

	return results, nil
}

// runCase generates the case input once and sorts it Repeat times with a
// scratch-reusing engine, so repetitions measure the sort alone.
func (r *Runner) runCase(ctx context.Context, s *Suite, i int) (Result, error) {
	c := s.Cases[i]
	opts := s.CaseOptions(i)
	if err := opts.ValidateForGenerate(); err != nil {
		return Result{}, err
	}

	genStart := time.Now()
	input, err := pipeline.Generate(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Case:    c,
		Seed:    opts.Seed,
		GenTime: time.Since(genStart),
	}

	engine := bigsort.New(bigsort.Options{Strict: c.Strict, ReuseScratch: true})
	for run := 0; run < c.Repeat; run++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out, err := engine.Sort(input)
		if err != nil {
			return res, err
		}

		elapsed := out.Metrics.Elapsed
		if res.Runs == 0 || elapsed < res.MinSort {
			res.MinSort = elapsed
		}
		if elapsed > res.MaxSort {
			res.MaxSort = elapsed
		}
		res.TotalSort += elapsed
		res.VectorBits = out.Metrics.PresenceVectorSize
		res.Runs++
	}

	return res, nil
}
