// Package reports classifies reactor safety reports.
//
// A report is safe when its levels are strictly increasing or strictly
// decreasing and every adjacent step differs by at least 1 and at most 3.
// The problem dampener additionally accepts a report that becomes safe after
// removing exactly one level.
package reports

import "github.com/bft-labs/adventcalc/internal/domain"

const (
	minStep = 1
	maxStep = 3
)

// Validate classifies levels under the strict rule.
func Validate(levels []int32) domain.Outcome {
	if len(levels) < 2 {
		return domain.Valid
	}

	first := step(levels[0], levels[1])
	if !stepOK(first, first > 0) {
		return domain.Invalid
	}
	increasing := first > 0

	for i := 2; i < len(levels); i++ {
		if !stepOK(step(levels[i-1], levels[i]), increasing) {
			return domain.Invalid
		}
	}
	return domain.Valid
}

// step widens to int64 so extreme int32 levels cannot wrap.
func step(from, to int32) int64 {
	return int64(to) - int64(from)
}

func stepOK(diff int64, increasing bool) bool {
	if increasing {
		return diff >= minStep && diff <= maxStep
	}
	return diff <= -minStep && diff >= -maxStep
}

// Dampener tries single-level removals. Its scratch buffer is reused across
// calls, so a Dampener must not be shared between goroutines.
type Dampener struct {
	scratch []int32
}

// Validate reports whether removing exactly one level from levels yields a
// report that passes the strict rule. It does not test levels as a whole;
// callers check that first.
func (d *Dampener) Validate(levels []int32) domain.Outcome {
	if cap(d.scratch) < len(levels) {
		d.scratch = make([]int32, 0, len(levels))
	}
	for skip := range levels {
		candidate := append(d.scratch[:0], levels[:skip]...)
		candidate = append(candidate, levels[skip+1:]...)
		if Validate(candidate) == domain.Valid {
			return domain.Valid
		}
	}
	return domain.Invalid
}

// Tally counts classified reports.
type Tally struct {
	Reports int `json:"reports"`
	// Part1 counts reports valid under the strict rule.
	Part1 int `json:"safe"`
	// Part2 counts reports valid under the strict rule or the dampener.
	Part2 int `json:"safe_with_dampener"`
}

// Classifier applies the strict rule and, when that fails, the dampener.
type Classifier struct {
	Tally    Tally
	dampener Dampener
}

// Classify records one report and returns its strict and dampened outcomes.
func (c *Classifier) Classify(levels []int32) (strict, dampened domain.Outcome) {
	c.Tally.Reports++
	strict = Validate(levels)
	dampened = strict
	if strict == domain.Invalid {
		dampened = c.dampener.Validate(levels)
	}
	if strict == domain.Valid {
		c.Tally.Part1++
	}
	if dampened == domain.Valid {
		c.Tally.Part2++
	}
	return strict, dampened
}
