// Package output prints calculation results and timing diagnostics.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/adventcalc/internal/domain"
)

// Answer is one labelled numeric result line.
type Answer struct {
	Label string
	Value int64
}

// Printer writes results to W as text or, when JSON is set, as a single
// JSON document.
type Printer struct {
	W       io.Writer
	JSON    bool
	Timings bool
}

// Print writes timings followed by answers. In JSON mode payload is encoded
// instead and answers are ignored.
func (p Printer) Print(tm domain.Timings, answers []Answer, payload any) error {
	if p.JSON {
		enc := json.NewEncoder(p.W)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	var b strings.Builder
	if p.Timings {
		for _, ph := range tm.Phases {
			fmt.Fprintf(&b, "%s completed in %v\n", title(ph.Name), ph.Duration)
		}
		fmt.Fprintf(&b, "Total time: %v\n", tm.Total)
	}
	for _, a := range answers {
		fmt.Fprintf(&b, "%s: %d\n", a.Label, a.Value)
	}
	_, err := io.WriteString(p.W, b.String())
	return err
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
