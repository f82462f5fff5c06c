// Package workload loads and runs benchmark suite definitions.
//
// A workload file is a TOML document describing a named suite of cases,
// each of which generates a distinct input sequence and sorts it a fixed
// number of times:
//
//	name = "smoke"
//	seed = 42
//
//	[[cases]]
//	name = "dense"
//	size = 1000
//	max_value = 1000
//	repeat = 5
//
//	[[cases]]
//	name = "sparse"
//	size = 1000
//	max_value = 100000
//
// When the suite seed is set, each case derives its own seed from it and
// the whole suite replays identically. A zero seed leaves seeding to the
// pipeline, which picks a fresh seed per case.
package workload

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/filthyfil/bigsort/pkg/errors"
	"github.com/filthyfil/bigsort/pkg/pipeline"
)

// Suite is a named collection of benchmark cases.
type Suite struct {
	Name  string `toml:"name"`
	Seed  uint64 `toml:"seed"`
	Cases []Case `toml:"cases"`
}

// Case describes one generate-and-sort scenario.
type Case struct {
	Name     string `toml:"name"`
	Size     int    `toml:"size"`
	MaxValue int    `toml:"max_value"`
	MinValue int    `toml:"min_value"`
	Repeat   int    `toml:"repeat"`
	Strict   bool   `toml:"strict"`
}

// Load reads and parses a workload file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "workload file not found: %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidWorkload, err, "read workload file: %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a workload definition.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidWorkload, err, "malformed workload definition")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the suite definition and fills in defaults for optional
// case fields (min_value and repeat).
func (s *Suite) Validate() error {
	if s.Name == "" {
		return errs.New(errs.ErrCodeInvalidWorkload, "suite name is required")
	}
	if len(s.Cases) == 0 {
		return errs.New(errs.ErrCodeInvalidWorkload, "suite %q defines no cases", s.Name)
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]

		if err := errs.ValidateCaseName(c.Name); err != nil {
			return err
		}
		if seen[c.Name] {
			return errs.New(errs.ErrCodeInvalidWorkload, "duplicate case name %q", c.Name)
		}
		seen[c.Name] = true

		if err := errs.ValidateArraySize(c.Size); err != nil {
			return err
		}
		if err := errs.ValidateMaxElement(c.MaxValue); err != nil {
			return err
		}

		if c.MinValue == 0 {
			c.MinValue = pipeline.DefaultMinValue
		}
		if err := errs.ValidateMinElement(c.MinValue); err != nil {
			return err
		}
		if c.MaxValue < c.MinValue {
			return errs.New(errs.ErrCodeInvalidWorkload,
				"case %q: max_value %d is below min_value %d", c.Name, c.MaxValue, c.MinValue)
		}
		if avail := c.MaxValue - c.MinValue + 1; c.Size > avail {
			return errs.New(errs.ErrCodeInvalidWorkload,
				"case %q: size %d exceeds the %d distinct values in [%d, %d]",
				c.Name, c.Size, avail, c.MinValue, c.MaxValue)
		}

		if c.Repeat == 0 {
			c.Repeat = 1
		}
		if c.Repeat < 0 {
			return errs.New(errs.ErrCodeInvalidWorkload, "case %q: repeat cannot be negative", c.Name)
		}
	}

	return nil
}

// CaseOptions returns the pipeline options for the case at index i.
// With a non-zero suite seed each case gets a derived seed, so a suite
// replays identically from the same file.
func (s *Suite) CaseOptions(i int) pipeline.Options {
	c := s.Cases[i]
	opts := pipeline.Options{
		Size:     c.Size,
		MaxValue: c.MaxValue,
		MinValue: c.MinValue,
		Strict:   c.Strict,
	}
	if s.Seed != 0 {
		opts.Seed = s.Seed + uint64(i)
	}
	return opts
}
