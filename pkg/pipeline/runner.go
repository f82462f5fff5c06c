package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/filthyfil/bigsort/pkg/bigsort"
	"github.com/filthyfil/bigsort/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → sort → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.New(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Seed = opts.Seed

	hooks := observability.Run()

	// Stage 1: Generate
	genStart := time.Now()
	hooks.OnGenerateStart(ctx, opts.Size, opts.MinValue, opts.MaxValue)
	input, err := Generate(ctx, opts)
	result.Stats.GenerateTime = time.Since(genStart)
	hooks.OnGenerateComplete(ctx, len(input), result.Stats.GenerateTime, err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Input = input

	r.Logger.Info("generated input",
		"size", len(input),
		"seed", opts.Seed,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Sort
	sortStart := time.Now()
	hooks.OnSortStart(ctx, len(input))
	sorted, err := Sort(ctx, input, opts)
	result.Stats.SortTime = time.Since(sortStart)
	hooks.OnSortComplete(ctx, sorted.Metrics.PresenceVectorSize, result.Stats.SortTime, err)
	if err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}
	result.Sort = sorted

	r.Logger.Info("sorted values",
		"original_size", sorted.Metrics.OriginalSize,
		"vector_bits", sorted.Metrics.PresenceVectorSize,
		"sorted_size", sorted.Metrics.ResultSize,
		"duration", result.Stats.SortTime)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.Render(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate produces the input sequence after validating generate options.
// Defaults assigned during validation, such as a randomly picked seed, are
// written back through opts so callers can report them.
func (r *Runner) Generate(ctx context.Context, opts *Options) ([]int, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	return Generate(ctx, *opts)
}

// Sort runs the sort stage over values.
func (r *Runner) Sort(ctx context.Context, values []int, opts Options) (bigsort.Result, error) {
	return Sort(ctx, values, opts)
}

// Render produces artifacts after validating render options.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Render(res, opts)
}
