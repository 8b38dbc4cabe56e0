package locations

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
	PhaseParse     = "parse"
	PhaseSort      = "sort"
	PhaseCalculate = "calculate"
)

// Result is the outcome of one run over a two-column input file.
type Result struct {
	Pairs      int            `json:"pairs"`
	Distance   int64          `json:"total_distance"`
	Similarity int64          `json:"similarity_score"`
	Timings    domain.Timings `json:"timings"`
}

// Run reads path, sorts both columns and computes the distance and the
// similarity score. Any file, parse or overflow failure aborts the run.
// Whitespace-only lines are accepted only as trailing lines at end of file.
func Run(path string, log zerolog.Logger) (Result, error) {
	res := Result{Timings: domain.StartTimings()}

	parseStart := time.Now()
	cols := NewColumns(1000)
	buf := make([]int64, 0, 2)
	blankAt := 0 // first whitespace-only line not yet followed by data
	err := input.EachLine(path, func(lineNo int, line []byte) error {
		var err error
		buf, err = tokenize.AppendInt64s(buf[:0], line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(buf) == 0 {
			if blankAt == 0 {
				blankAt = lineNo
			}
			return nil
		}
		if blankAt != 0 {
			return fmt.Errorf("line %d: %w: blank line before more pairs", blankAt, domain.ErrFieldCount)
		}
		if err := cols.Add(buf); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	d := res.Timings.Mark(PhaseParse, parseStart)
	log.Debug().Str("path", path).Int("pairs", cols.Len()).Dur("duration", d).Msg("parsed input")

	sortStart := time.Now()
	cols.Sort()
	d = res.Timings.Mark(PhaseSort, sortStart)
	log.Debug().Dur("duration", d).Msg("sorted columns")

	calcStart := time.Now()
	res.Pairs = cols.Len()
	if res.Distance, err = cols.TotalDistance(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if res.Similarity, err = cols.Similarity(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	d = res.Timings.Mark(PhaseCalculate, calcStart)
	log.Debug().Dur("duration", d).Msg("calculated distance and similarity")

	res.Timings.Finish()
	return res, nil
}
