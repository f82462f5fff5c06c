package pipeline

import (
	"context"
	"errors"
	"slices"

	errs "github.com/filthyfil/bigsort/pkg/errors"
	"github.com/filthyfil/bigsort/pkg/randset"
)

// Generate produces the unsorted input sequence for a run.
//
// When opts.Values is set the sequence is returned as a copy. Otherwise
// opts.Size distinct values are drawn from [opts.MinValue, opts.MaxValue]
// using the seeded source from opts.NewRNG, so the same options always
// produce the same sequence.
func Generate(ctx context.Context, opts Options) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.HasValues() {
		return slices.Clone(opts.Values), nil
	}

	values, err := randset.Distinct(opts.NewRNG(), opts.Size, opts.MinValue, opts.MaxValue)
	if err != nil {
		return nil, wrapGenerateErr(err)
	}
	return values, nil
}

// wrapGenerateErr maps generation failures onto coded errors.
func wrapGenerateErr(err error) error {
	var rte *randset.RangeTooSmallError
	if errors.As(err, &rte) {
		return errs.Wrap(errs.ErrCodeRangeTooSmall, err,
			"array size (%d) is greater than the number of unique values in the range [%d, %d]",
			rte.Requested, rte.Min, rte.Max)
	}
	// Option validation rejects negative sizes before generation, so any
	// other failure is a bug.
	return errs.Wrap(errs.ErrCodeInternal, err, "generate input failed")
}
