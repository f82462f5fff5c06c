package pipeline

import (
	"context"
	"errors"

	"github.com/filthyfil/bigsort/pkg/bigsort"
	errs "github.com/filthyfil/bigsort/pkg/errors"
)

// Sort runs the presence-vector sort over values.
func Sort(ctx context.Context, values []int, opts Options) (bigsort.Result, error) {
	if err := ctx.Err(); err != nil {
		return bigsort.Result{}, err
	}

	engine := bigsort.New(bigsort.Options{Strict: opts.Strict})
	res, err := engine.Sort(values)
	if err != nil {
		return bigsort.Result{}, wrapSortErr(err)
	}
	return res, nil
}

// wrapSortErr maps engine failures onto coded errors.
func wrapSortErr(err error) error {
	var npe *bigsort.NonPositiveValueError
	var dve *bigsort.DuplicateValueError
	switch {
	case errors.Is(err, bigsort.ErrEmptyInput):
		return errs.Wrap(errs.ErrCodeEmptyInput, err, "nothing to sort: the input sequence is empty")
	case errors.As(err, &npe):
		return errs.Wrap(errs.ErrCodeNonPositiveValue, err,
			"value %d at index %d is not positive: only values of at least 1 can be sorted",
			npe.Value, npe.Index)
	case errors.As(err, &dve):
		return errs.Wrap(errs.ErrCodeDuplicateValue, err,
			"duplicate value %d is not allowed in strict mode", dve.Value)
	}
	return errs.Wrap(errs.ErrCodeInternal, err, "sort failed")
}
