package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filthyfil/bigsort/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	size     int    // number of distinct values to generate
	maxValue int    // upper bound of the value range (inclusive)
	minValue int    // lower bound of the value range (inclusive)
	seed     uint64 // RNG seed, 0 picks a random one
	output   string // output file path (stdout if empty)
}

// generateCommand creates the generate command, which produces a distinct
// random sequence without sorting it.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a distinct random sequence without sorting",
		Long: `Generate a sequence of distinct random positive integers and print it unsorted.

The sequence is written as a single space-separated line, suitable for
piping into "bigsort sort -".

Examples:
  bigsort generate --size 100 --max 1000
  bigsort generate --size 100 --max 1000 --seed 7 -o input.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "number of distinct values to generate")
	cmd.Flags().IntVarP(&opts.maxValue, "max", "m", 0, "largest value allowed in the sequence")
	cmd.Flags().IntVar(&opts.minValue, "min", 0, "smallest value allowed in the sequence (default 1)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one at random)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runGenerate draws the sequence and writes it to the output path or stdout.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	pOpts := pipeline.Options{
		Size:     opts.size,
		MaxValue: opts.maxValue,
		MinValue: opts.minValue,
		Seed:     opts.seed,
	}

	prog := newProgress(logger)
	values, err := c.newRunner().Generate(ctx, &pOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d values in [%d, %d] (seed %d)", len(values), pOpts.MinValue, pOpts.MaxValue, pOpts.Seed))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeValues(out, values); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %d values to %s", len(values), opts.output)
	}
	return nil
}

// writeValues writes values as a single space-separated line.
func writeValues(w io.Writer, values []int) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
