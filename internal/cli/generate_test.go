package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	errs "github.com/filthyfil/bigsort/pkg/errors"
)

func TestWriteValues(t *testing.T) {
	var buf bytes.Buffer
	if err := writeValues(&buf, []int{5, 3, 9, 1}); err != nil {
		t.Fatalf("writeValues() error = %v", err)
	}
	if got := buf.String(); got != "5 3 9 1\n" {
		t.Errorf("writeValues() wrote %q, want %q", got, "5 3 9 1\n")
	}
}

func TestGenerateCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "input.txt")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"generate", "--size", "10", "--max", "50", "--seed", "9", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 10 {
		t.Fatalf("generated %d values, want 10", len(fields))
	}

	seen := make(map[int]bool)
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			t.Fatalf("value %q is not an integer", f)
		}
		if v < 1 || v > 50 {
			t.Errorf("value %d outside [1, 50]", v)
		}
		if seen[v] {
			t.Errorf("value %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestGenerateCommandSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")

	for _, out := range []string{first, second} {
		root := newTestCLI().RootCommand()
		root.SetArgs([]string{"generate", "--size", "20", "--max", "1000", "--seed", "42", "-o", out})
		if err := root.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same seed should generate the same sequence")
	}
}

func TestGenerateCommandRangeTooSmall(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"generate", "--size", "10", "--max", "5"})

	err := root.Execute()
	if !errs.Is(err, errs.ErrCodeRangeTooSmall) {
		t.Errorf("Execute() error = %v, want code %s", err, errs.ErrCodeRangeTooSmall)
	}
}

func TestGenerateCommandRequiresSize(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"generate", "--max", "100"})

	err := root.Execute()
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want code %s", err, errs.ErrCodeInvalidInput)
	}
}
