// Package pkg provides the core libraries for Bigsort presence-vector sorting.
//
// # Overview
//
// Bigsort sorts sequences of distinct positive integers by recording each
// value as a single bit in a presence vector and reading the bits back in
// ascending order. The pkg directory is organized into four main areas:
//
//  1. [bigsort] - Domain logic (presence-vector sort engine and metrics)
//  2. [pipeline] - Orchestration (generate → sort → render)
//  3. [workload] - Benchmark suites loaded from TOML
//  4. [observability] - Run identifiers and lifecycle hooks
//
// # Architecture
//
// The typical data flow through Bigsort:
//
//	Size + value range (or explicit values)
//	         ↓
//	    [randset] package (draw distinct values)
//	         ↓
//	    [bigsort] package (mark bits, scan ascending)
//	         ↓
//	    [pipeline] package (metrics + text/JSON artifacts)
//	         ↓
//	    stdout or output files
//
// # Quick Start
//
// Generate a sequence and sort it through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/filthyfil/bigsort/pkg/pipeline"
//	)
//
//	opts := pipeline.Options{Size: 1000, MaxValue: 50000, Seed: 42}
//	res, _ := pipeline.NewRunner(nil).Execute(context.Background(), opts)
//	fmt.Println(res.Sort.Values)            // ascending, distinct
//	fmt.Println(res.Sort.Metrics.Elapsed)   // sort duration
//
// Or call the engine directly when the values are already in hand:
//
//	res, err := bigsort.Sort([]int{5, 3, 9, 1})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [bigsort] - The presence-vector sort. [bigsort.Engine] marks bit v-1 for
// each value v, sizes the vector to the largest input, and reconstructs the
// ascending order with a single scan. Strict mode reports duplicates instead
// of collapsing them; [bigsort.Options.ReuseScratch] keeps the vector
// allocation across calls for benchmark loops.
//
// [bitvec] - Word-packed bit vector backing the engine: Set, Test, Count,
// Reset, and NextSet for the ascending scan.
//
// [randset] - Distinct random integers from a closed range. Switches between
// a dense Fisher-Yates prefix and sparse rejection sampling depending on how
// much of the range is requested.
//
// ## Orchestration
//
// [pipeline] - Complete run pipeline (generate → sort → render) used by every
// CLI command. Validates options, assigns seeds, collects [pipeline.Stats],
// and renders text and JSON artifacts.
//
// [workload] - Benchmark suites: TOML parsing, validation, and a runner that
// repeats each case and aggregates per-case timings.
//
// ## Infrastructure
//
// [errors] - Coded errors with user-facing messages, plus the input
// validation bounds shared by the CLI and the pipeline.
//
// [observability] - Run identifiers and pluggable lifecycle hooks for the
// pipeline and workload stages.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/bigsort/...       # Specific package
//	go test -run Example            # Examples only
//	go test -bench . ./pkg/bigsort  # Engine benchmarks
//
// [bigsort]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/bigsort
// [bigsort.Engine]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/bigsort#Engine
// [bigsort.Options.ReuseScratch]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/bigsort#Options
// [bitvec]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/bitvec
// [randset]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/randset
// [pipeline]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/pipeline
// [pipeline.Stats]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/pipeline#Stats
// [workload]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/workload
// [errors]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/errors
// [observability]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/buildinfo
// [bigsort.Sort]: https://pkg.go.dev/github.com/filthyfil/bigsort/pkg/bigsort#Sort
package pkg
