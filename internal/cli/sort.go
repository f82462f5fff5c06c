package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/filthyfil/bigsort/pkg/errors"
	"github.com/filthyfil/bigsort/pkg/pipeline"
)

// sortOpts holds the command-line flags for the sort command.
type sortOpts struct {
	strict  bool   // fail on duplicates instead of collapsing them
	formats string // comma-separated output formats
	output  string // output file path (stdout if empty)
}

// sortCommand creates the sort command for explicit input values.
// Values come from the argument list or, with no arguments or a single
// "-", from stdin.
func (c *CLI) sortCommand() *cobra.Command {
	opts := sortOpts{}

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort explicit values with a presence vector",
		Long: `Sort distinct positive integers given as arguments or on stdin.

With no arguments, or with a single "-" argument, whitespace-separated
values are read from stdin instead.

Examples:
  bigsort sort 5 3 9 1
  echo "5 3 9 1" | bigsort sort
  bigsort generate --size 100 --max 1000 | bigsort sort -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			pOpts := pipeline.Options{
				Values:  values,
				Strict:  opts.strict,
				Formats: parseFormats(opts.formats),
			}
			if err := pipeline.ValidateFormats(pOpts.Formats); err != nil {
				return err
			}
			return c.execute(cmd.Context(), pOpts, opts.output)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on duplicate values instead of collapsing them")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// readValues parses integers from args, or from r when no explicit values
// are given. A single "-" argument forces reading from r.
func readValues(args []string, r io.Reader) ([]int, error) {
	if len(args) == 1 && args[0] == "-" {
		args = nil
	}
	if len(args) == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		args = strings.Fields(string(data))
	}
	if len(args) == 0 {
		return nil, errs.New(errs.ErrCodeEmptyInput, "nothing to sort: no values given")
	}

	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "value %q is not an integer", arg)
		}
		values[i] = v
	}
	return values, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
