package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/filthyfil/bigsort/pkg/pipeline"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	size     int    // number of distinct values to generate
	maxValue int    // upper bound of the value range (inclusive)
	minValue int    // lower bound of the value range (inclusive)
	seed     uint64 // RNG seed, 0 picks a random one
	strict   bool   // fail on duplicates instead of collapsing them
	formats  string // comma-separated output formats
	output   string // output file path (stdout if empty)
}

// runCommand creates the run command, the end-to-end generate and sort flow.
// Size and max value come from flags or, when omitted, from an interactive
// prompt.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a distinct random sequence and sort it",
		Long: `Generate a sequence of distinct positive integers and sort it with a presence vector.

When --size or --max is omitted, the missing values are requested
interactively. The unsorted input, the sorted output, and the sort metrics
are printed as text by default; use --format json for a machine-readable
report.

Examples:
  bigsort run                                   # prompt for size and max
  bigsort run --size 1000 --max 100000
  bigsort run --size 1000 --max 100000 --seed 42 -o report.txt
  bigsort run --size 50 --max 60 --format text,json -o report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size == 0 || opts.maxValue == 0 {
				if err := promptMissing(&opts); err != nil {
					return err
				}
			}
			return c.runSort(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "number of distinct values to generate")
	cmd.Flags().IntVarP(&opts.maxValue, "max", "m", 0, "largest value allowed in the sequence")
	cmd.Flags().IntVar(&opts.minValue, "min", 0, "smallest value allowed in the sequence (default 1)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one at random)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on duplicate values instead of collapsing them")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runSort translates run flags into pipeline options and executes them.
func (c *CLI) runSort(ctx context.Context, opts *runOpts) error {
	pOpts := pipeline.Options{
		Size:     opts.size,
		MaxValue: opts.maxValue,
		MinValue: opts.minValue,
		Seed:     opts.seed,
		Strict:   opts.strict,
		Formats:  parseFormats(opts.formats),
	}
	if err := pipeline.ValidateFormats(pOpts.Formats); err != nil {
		return err
	}
	return c.execute(ctx, pOpts, opts.output)
}

// execute runs the full pipeline and writes the resulting artifacts.
// With an output path the artifacts go to files and a styled summary is
// printed; without one the artifacts go to stdout and the terminal output
// stays clean for piping.
func (c *CLI) execute(ctx context.Context, opts pipeline.Options, output string) error {
	runner := c.newRunner()

	n := opts.Size
	if opts.HasValues() {
		n = len(opts.Values)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Sorting %d values...", n))
	spinner.Start()
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Sort failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(res, opts.Formats, output); err != nil {
		return err
	}

	if output != "" {
		printNewline()
		m := res.Sort.Metrics
		printSuccess("Sorted %d values in %s", m.OriginalSize, m.Elapsed.Round(time.Microsecond))
		if res.Sort.Collapsed() {
			printWarning("Collapsed %d duplicate values", m.OriginalSize-m.ResultSize)
		}
		printRunStats(m.OriginalSize, m.PresenceVectorSize, m.ResultSize, opts.Seed != 0)
		if !opts.HasValues() {
			printDetail("seed %d", res.Stats.Seed)
			repro := fmt.Sprintf("%s run --size %d --max %d", appName, opts.Size, opts.MaxValue)
			if opts.MinValue > 1 {
				repro += fmt.Sprintf(" --min %d", opts.MinValue)
			}
			repro += fmt.Sprintf(" --seed %d", res.Stats.Seed)
			printNextStep("Reproduce", repro)
		}
	}
	return nil
}

// writeArtifacts writes the rendered artifacts to the output path or stdout.
// With a single format the path is used as-is. With multiple formats the
// path becomes a base and each artifact lands in base.<format>.
func writeArtifacts(res *pipeline.Result, formats []string, output string) error {
	if output == "" || len(formats) == 1 {
		for _, format := range formats {
			if err := writeArtifact(res.Artifacts[format], output); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
			}
		}
		return nil
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, format := range formats {
		// The format name doubles as the file extension.
		path := base + "." + format
		if err := writeArtifact(res.Artifacts[format], path); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// writeArtifact writes one artifact to path, or stdout when path is empty.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}
