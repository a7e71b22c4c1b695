package cmdargs

import (
	"bufio"
	"fmt"
	"io"
)

const maxLineSize = 1 << 20

// LineSource reads one arg per line from a reader. Empty lines are empty args
type LineSource struct {
	scanner *bufio.Scanner
	err     error
}

func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &LineSource{scanner: scanner}
}

func (s *LineSource) Next() (string, bool) {
	if s.err != nil {
		return "", false
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	if err := s.scanner.Err(); err != nil {
		s.err = fmt.Errorf("read args: %w", err)
	}
	return "", false
}

// Err returns the read error that ended the source, if any
func (s *LineSource) Err() error {
	return s.err
}
