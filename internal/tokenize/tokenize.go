package tokenize

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/adventcalc/internal/domain"
)

// ParseError describes a token that is not a valid integer.
type ParseError struct {
	Token  string
	Column int // 1-based byte offset of the token
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %d: invalid integer %q: %v", e.Column, e.Token, e.Err)
}

// Unwrap exposes the strconv error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports domain.ErrParse as a match.
func (e *ParseError) Is(target error) bool { return target == domain.ErrParse }

// Span is the half-open byte range [Start, End) of one token in a line.
type Span struct {
	Start int
	End   int
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Fields returns the token spans of line in order of appearance.
func Fields(line []byte) []Span {
	var spans []Span
	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		if i > start {
			spans = append(spans, Span{Start: start, End: i})
		}
	}
	return spans
}

// Int64s parses every token of line as a signed 64-bit integer.
func Int64s(line []byte) ([]int64, error) {
	return AppendInt64s(nil, line)
}

// AppendInt64s appends the integers of line to dst and returns the extended slice.
func AppendInt64s(dst []int64, line []byte) ([]int64, error) {
	for _, sp := range Fields(line) {
		v, err := parse(line, sp, 64)
		if err != nil {
			return dst, err
		}
		dst = append(dst, v)
	}
	return dst, nil
}

// Int32s parses every token of line as a signed 32-bit integer.
func Int32s(line []byte) ([]int32, error) {
	return AppendInt32s(nil, line)
}

// AppendInt32s appends the integers of line to dst and returns the extended slice.
func AppendInt32s(dst []int32, line []byte) ([]int32, error) {
	for _, sp := range Fields(line) {
		v, err := parse(line, sp, 32)
		if err != nil {
			return dst, err
		}
		dst = append(dst, int32(v))
	}
	return dst, nil
}

func parse(line []byte, sp Span, bitSize int) (int64, error) {
	tok := string(line[sp.Start:sp.End])
	v, err := strconv.ParseInt(tok, 10, bitSize)
	if err != nil {
		var cause error = err
		if ne, ok := err.(*strconv.NumError); ok {
			cause = ne.Err
		}
		return 0, &ParseError{Token: tok, Column: sp.Start + 1, Err: cause}
	}
	return v, nil
}
