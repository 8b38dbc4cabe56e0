package reports

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/adventcalc/internal/domain"
	"github.com/bft-labs/adventcalc/internal/input"
	"github.com/bft-labs/adventcalc/internal/tokenize"
)

// Phase names reported in Result.Timings.
const (
	PhaseOpen     = "open"
	PhaseValidate = "parse+validate"
)

// Result is the outcome of one run over a report file.
type Result struct {
	Tally
	Timings domain.Timings `json:"timings"`
}

// Run reads one report per line from path and counts the safe ones.
// Any file or parse failure aborts the run.
func Run(path string, log zerolog.Logger) (Result, error) {
	res := Result{Timings: domain.StartTimings()}

	openStart := time.Now()
	f, err := input.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()
	res.Timings.Mark(PhaseOpen, openStart)

	validateStart := time.Now()
	var c Classifier
	levels := make([]int32, 0, 8)
	err = input.Each(f, func(lineNo int, line []byte) error {
		var err error
		levels, err = tokenize.AppendInt32s(levels[:0], line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		strict, dampened := c.Classify(levels)
		log.Debug().Int("line", lineNo).Stringer("strict", strict).Stringer("dampened", dampened).Msg("classified report")
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	d := res.Timings.Mark(PhaseValidate, validateStart)
	log.Debug().Str("path", path).Int("reports", c.Tally.Reports).Dur("duration", d).Msg("validated reports")

	res.Tally = c.Tally
	res.Timings.Finish()
	return res, nil
}
