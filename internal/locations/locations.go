// Package locations compares two columns of location IDs.
//
// Each input line holds exactly two integers. The left values and the right
// values are collected into index-aligned columns, which are then compared
// either by sorted distance or by similarity.
package locations

import (
	"fmt"
	"math"
	"slices"

	"github.com/bft-labs/adventcalc/internal/domain"
)

// Columns holds the two index-aligned columns of a two-column input.
// len(Lefts) == len(Rights) always holds.
type Columns struct {
	Lefts  []int64
	Rights []int64
}

// NewColumns returns empty columns with room for capacity pairs.
func NewColumns(capacity int) *Columns {
	return &Columns{
		Lefts:  make([]int64, 0, capacity),
		Rights: make([]int64, 0, capacity),
	}
}

// Add appends one pair. values must hold exactly two integers.
func (c *Columns) Add(values []int64) error {
	if len(values) != 2 {
		return fmt.Errorf("%w: got %d integers, want 2", domain.ErrFieldCount, len(values))
	}
	c.Lefts = append(c.Lefts, values[0])
	c.Rights = append(c.Rights, values[1])
	return nil
}

// Len returns the number of pairs.
func (c *Columns) Len() int { return len(c.Lefts) }

// Sort sorts both columns ascending in place.
func (c *Columns) Sort() {
	slices.Sort(c.Lefts)
	slices.Sort(c.Rights)
}

// TotalDistance sums |left[i] - right[i]| over the columns as they are
// currently ordered. Call Sort first for the puzzle answer. A difference or
// running total outside the int64 range returns domain.ErrOverflow.
func (c *Columns) TotalDistance() (int64, error) {
	var total int64
	for i := range c.Lefts {
		d, ok := absDiff(c.Lefts[i], c.Rights[i])
		if !ok {
			return 0, fmt.Errorf("%w: |%d - %d| at index %d", domain.ErrOverflow, c.Lefts[i], c.Rights[i], i)
		}
		if total, ok = add(total, d); !ok {
			return 0, fmt.Errorf("%w: total distance at index %d", domain.ErrOverflow, i)
		}
	}
	return total, nil
}

// Similarity sums each left value multiplied by how often it occurs in the
// right column. Order does not matter.
func (c *Columns) Similarity() (int64, error) {
	freq := make(map[int64]int64, len(c.Rights))
	for _, r := range c.Rights {
		freq[r]++
	}
	var score int64
	for _, l := range c.Lefts {
		n := freq[l]
		if n == 0 {
			continue
		}
		p, ok := mul(l, n)
		if !ok {
			return 0, fmt.Errorf("%w: %d * %d", domain.ErrOverflow, l, n)
		}
		if score, ok = add(score, p); !ok {
			return 0, fmt.Errorf("%w: similarity score", domain.ErrOverflow)
		}
	}
	return score, nil
}

func absDiff(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) < 0 {
		return 0, false
	}
	if d < 0 {
		if d == math.MinInt64 {
			return 0, false
		}
		d = -d
	}
	return d, true
}

func add(a, b int64) (int64, bool) {
	s := a + b
	if (a^s)&(b^s) < 0 {
		return 0, false
	}
	return s, true
}

// mul expects n > 0.
func mul(a, n int64) (int64, bool) {
	p := a * n
	if p/n != a {
		return 0, false
	}
	return p, true
}
