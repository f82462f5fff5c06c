package pipeline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	errs "github.com/filthyfil/bigsort/pkg/errors"
)

// Render generates output artifacts in the requested formats.
func Render(res *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatText:
			data = renderText(res)
		case FormatJSON:
			data, err = renderJSON(res)
		default:
			// Formats are validated before rendering.
			err = errs.New(errs.ErrCodeInternal, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderText produces the classic report layout: both sequences on single
// lines followed by the size and timing figures.
func renderText(res *Result) []byte {
	var b strings.Builder

	b.WriteString("Original Array: ")
	b.WriteString(joinInts(res.Input))
	b.WriteString("\n")
	b.WriteString("Compact Sorted Array: ")
	b.WriteString(joinInts(res.Sort.Values))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Original array size: %d\n", res.Sort.Metrics.OriginalSize)
	fmt.Fprintf(&b, "Presence vector size: %d\n", res.Sort.Metrics.PresenceVectorSize)
	fmt.Fprintf(&b, "Sorted array size: %d\n", res.Sort.Metrics.ResultSize)
	fmt.Fprintf(&b, "Time taken to sort: %s\n", res.Sort.Metrics.Elapsed)

	return []byte(b.String())
}

// runDocument is the schema of the JSON artifact.
type runDocument struct {
	RunID   string     `json:"run_id"`
	Seed    uint64     `json:"seed,omitempty"`
	Input   []int      `json:"input"`
	Sorted  []int      `json:"sorted"`
	Metrics metricsDoc `json:"metrics"`
}

type metricsDoc struct {
	OriginalSize       int    `json:"original_size"`
	PresenceVectorSize int    `json:"presence_vector_size"`
	SortedSize         int    `json:"sorted_size"`
	ElapsedNs          int64  `json:"elapsed_ns"`
	Elapsed            string `json:"elapsed"`
}

func renderJSON(res *Result) ([]byte, error) {
	doc := runDocument{
		RunID:  res.RunID.String(),
		Seed:   res.Stats.Seed,
		Input:  res.Input,
		Sorted: res.Sort.Values,
		Metrics: metricsDoc{
			OriginalSize:       res.Sort.Metrics.OriginalSize,
			PresenceVectorSize: res.Sort.Metrics.PresenceVectorSize,
			SortedSize:         res.Sort.Metrics.ResultSize,
			ElapsedNs:          res.Sort.Metrics.Elapsed.Nanoseconds(),
			Elapsed:            res.Sort.Metrics.Elapsed.String(),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
