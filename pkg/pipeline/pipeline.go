// Package pipeline provides the core run pipeline for bigsort.
//
// This package implements the complete generate → sort → render pipeline
// that can be used by CLI and workload components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Draw a distinct random input sequence, or accept one verbatim
//  2. Sort: Reconstruct the sequence in ascending order from a presence vector
//  3. Render: Produce output artifacts in various formats (text, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Size:     100,
//	    MaxValue: 1000,
//	    Seed:     42,
//	    Formats:  []string{"text"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts["text"]))
//
// Run individual stages:
//
//	// Generate only
//	input, err := runner.Generate(ctx, &opts)
//
//	// Sort existing values
//	sorted, err := runner.Sort(ctx, input, opts)
package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/filthyfil/bigsort/pkg/bigsort"
	errs "github.com/filthyfil/bigsort/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Workload Runner
// =============================================================================

const (
	// DefaultMinValue is the lower bound of the generated value range.
	// Presence-vector sorting only admits values of at least 1, so this
	// is also the smallest admissible bound.
	DefaultMinValue = 1
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the run pipeline.
// This struct supports JSON serialization for workload definitions.
type Options struct {
	// Generate options
	Size     int    `json:"size"`
	MaxValue int    `json:"max_value"`
	MinValue int    `json:"min_value,omitempty"`
	Seed     uint64 `json:"seed,omitempty"`

	// Values supplies an explicit input sequence. When set, the generate
	// stage returns it verbatim and Size/MaxValue are ignored.
	Values []int `json:"values,omitempty"`

	// Sort options
	Strict bool `json:"strict,omitempty"` // Fail on duplicate values instead of collapsing them

	// Render options
	Formats []string `json:"formats,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run.
	RunID uuid.UUID

	// Input is the unsorted sequence fed to the sort stage.
	Input []int

	// Sort holds the sorted values and the sort metrics.
	Sort bigsort.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and seed information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Seed         uint64
	GenerateTime time.Duration
	SortTime     time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// HasValues reports whether an explicit input sequence was supplied.
func (o *Options) HasValues() bool {
	return len(o.Values) > 0
}

// ValidateForGenerate checks required fields for input generation.
func (o *Options) ValidateForGenerate() error {
	if o.HasValues() {
		return nil
	}

	if err := errs.ValidateArraySize(o.Size); err != nil {
		return err
	}
	if err := errs.ValidateMaxElement(o.MaxValue); err != nil {
		return err
	}

	// Generate defaults
	if o.MinValue == 0 {
		o.MinValue = DefaultMinValue
	}
	if err := errs.ValidateMinElement(o.MinValue); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// NewRNG returns the deterministic random source for this run.
// The same seed always yields the same source state.
func (o *Options) NewRNG() *rand.Rand {
	return rand.New(rand.NewPCG(o.Seed, o.Seed^0xdeadbeef))
}
