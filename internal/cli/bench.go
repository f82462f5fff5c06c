package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/filthyfil/bigsort/pkg/workload"
)

// benchCommand creates the bench command for running workload suites.
func (c *CLI) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [suite.toml]",
		Short: "Run a benchmark suite of sort workloads",
		Long: `Run a benchmark suite defined in a TOML file.

Each case generates a distinct random sequence once and sorts it
repeatedly, reporting minimum, average, and maximum sort times along with
the presence vector size.

A suite file looks like:

  name = "smoke"
  seed = 42

  [[cases]]
  name = "dense"
  size = 100000
  max_value = 100000
  repeat = 5

  [[cases]]
  name = "sparse"
  size = 1000
  max_value = 10000000

Example:
  bigsort bench examples/workloads/smoke.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd.Context(), args[0])
		},
	}

	return cmd
}

// runBench loads the suite, executes it, and prints a result table.
func (c *CLI) runBench(ctx context.Context, path string) error {
	suite, err := workload.Load(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Benchmark " + suite.Name))
	printInfo("%s cases from %s", StyleHighlight.Render(strconv.Itoa(len(suite.Cases))), path)
	printNewline()

	runner := workload.NewRunner(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %d cases...", len(suite.Cases)))
	spinner.Start()
	results, err := runner.RunSuite(ctx, suite)
	if err != nil {
		spinner.StopWithError("Suite failed")
		return err
	}
	spinner.Stop()

	fmt.Println(benchTable(results))
	printNewline()
	printSuccess("Completed %d cases", len(results))
	return nil
}

// benchTable renders workload results as a bordered table.
func benchTable(results []workload.Result) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.Case.Name,
			strconv.Itoa(r.Case.Size),
			strconv.Itoa(r.VectorBits),
			strconv.Itoa(r.Runs),
			r.MinSort.Round(time.Microsecond).String(),
			r.AvgSort().Round(time.Microsecond).String(),
			r.MaxSort.Round(time.Microsecond).String(),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Case", "Size", "Bits", "Runs", "Min", "Avg", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 4:
				return StyleSuccess
			case col == 6:
				return StyleWarning
			default:
				return StyleValue
			}
		})

	return t.Render()
}
