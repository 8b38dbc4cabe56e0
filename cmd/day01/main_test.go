package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/adventcalc/internal/cli"
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

func TestCalculate(t *testing.T) {
	path := writeInput(t, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n")

	out, err := calculate(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("calculate error = %v", err)
	}
	if len(out.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(out.Answers))
	}
	if out.Answers[0].Value != 11 {
		t.Errorf("%s = %d, want 11", out.Answers[0].Label, out.Answers[0].Value)
	}
	if out.Answers[1].Value != 31 {
		t.Errorf("%s = %d, want 31", out.Answers[1].Label, out.Answers[1].Value)
	}
}

func TestCommandOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeInput(t, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n")

	cmd := cli.NewCommand(program())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--input", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Parse completed in ",
		"Sort completed in ",
		"Calculate completed in ",
		"Total time: ",
		"Total distance: 11\n",
		"Similarity score: 31\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCommandJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeInput(t, "1 1\n2 5\n")

	cmd := cli.NewCommand(program())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--input", path, "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	var got struct {
		Pairs      int   `json:"pairs"`
		Distance   int64 `json:"total_distance"`
		Similarity int64 `json:"similarity_score"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got.Pairs != 2 || got.Distance != 3 || got.Similarity != 1 {
		t.Errorf("result = %+v, want pairs=2 distance=3 similarity=1", got)
	}
}

func TestCommandFailsOnMalformedLine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeInput(t, "1 2\n3\n")

	cmd := cli.NewCommand(program())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--input", path})
	err := cmd.Execute()
	if !errors.Is(err, domain.ErrFieldCount) {
		t.Errorf("err = %v, want ErrFieldCount", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output printed: %q", buf.String())
	}
}
