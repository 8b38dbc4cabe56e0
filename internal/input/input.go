// Package input streams puzzle input files line by line.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/adventcalc/internal/domain"
)

// DefaultPaths are tried in order when no input path is configured.
var DefaultPaths = []string{"puzzle_input.txt", "../puzzle_input.txt"}

// LineFunc handles one line. lineNo is 1-based; line excludes the newline
// and is only valid until the callback returns.
type LineFunc func(lineNo int, line []byte) error

// Open opens path for reading. Failures wrap domain.ErrFileAccess.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}
	return f, nil
}

// Resolve returns path when set, otherwise the first of DefaultPaths that exists.
// When none exists the first default is returned so the open error names it.
func Resolve(path string) string {
	if path != "" {
		return path
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return DefaultPaths[0]
}

// Each calls fn for every line of r. A final line without a newline is
// still delivered. The first error from fn stops the scan and is returned.
func Each(r io.Reader, fn LineFunc) error {
	br := bufio.NewReaderSize(r, 64*1024)
	lineNo := 0
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// Long line: fall back to an owned copy.
			head := append([]byte(nil), line...)
			rest, rerr := br.ReadBytes('\n')
			line = append(head, rest...)
			err = rerr
		}
		if len(line) > 0 {
			lineNo++
			if ferr := fn(lineNo, trimEOL(line)); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: read line %d: %w", domain.ErrFileAccess, lineNo+1, err)
		}
	}
}

// EachLine opens path and calls fn for every line. The file is closed on return.
func EachLine(path string, fn LineFunc) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Each(f, fn)
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
