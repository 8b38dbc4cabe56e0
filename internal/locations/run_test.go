package locations

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/adventcalc/internal/domain"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle_input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeInput(t, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n")

	res, err := Run(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if res.Pairs != 6 {
		t.Errorf("Pairs = %d, want 6", res.Pairs)
	}
	if res.Distance != 11 {
		t.Errorf("Distance = %d, want 11", res.Distance)
	}
	if res.Similarity != 31 {
		t.Errorf("Similarity = %d, want 31", res.Similarity)
	}
	for _, name := range []string{PhaseParse, PhaseSort, PhaseCalculate} {
		if _, ok := res.Timings.Phase(name); !ok {
			t.Errorf("missing %s timing", name)
		}
	}
	if res.Timings.Total <= 0 {
		t.Errorf("Total = %v, want > 0", res.Timings.Total)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "short line", content: "1 2\n3\n", wantErr: domain.ErrFieldCount},
		{name: "long line", content: "1 2 3\n", wantErr: domain.ErrFieldCount},
		{name: "blank line between pairs", content: "1 2\n\n3 4\n", wantErr: domain.ErrFieldCount},
		{name: "whitespace line between pairs", content: "1 2\n \t\n3 4\n", wantErr: domain.ErrFieldCount},
		{name: "bad token", content: "1 x\n", wantErr: domain.ErrParse},
		{name: "distance overflow", content: "9223372036854775807 -1\n", wantErr: domain.ErrOverflow},
		{name: "similarity overflow", content: "4611686018427387904 4611686018427387904\n4611686018427387904 4611686018427387904\n", wantErr: domain.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(writeInput(t, tt.content), zerolog.Nop())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunIgnoresTrailingBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "one trailing blank line", content: "3 4\n4 3\n\n", want: 2},
		{name: "trailing whitespace lines", content: "3 4\n4 3\n  \n\t\r\n", want: 2},
		{name: "only blank lines", content: "\n\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(writeInput(t, tt.content), zerolog.Nop())
			if err != nil {
				t.Fatalf("Run error = %v", err)
			}
			if res.Pairs != tt.want {
				t.Errorf("Pairs = %d, want %d", res.Pairs, tt.want)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing.txt"), zerolog.Nop())
	if !errors.Is(err, domain.ErrFileAccess) {
		t.Errorf("Run error = %v, want ErrFileAccess", err)
	}
}
