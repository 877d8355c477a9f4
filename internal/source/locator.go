// Package source recovers the literal text of a source line so failed
// assertions can be reported with the code that failed.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMaxLength bounds the excerpt of a failing line
const DefaultMaxLength = 200

// ErrUnreadable is returned when the source file cannot be read
var ErrUnreadable = errors.New("source unreadable")

// Locator returns the text of a line in a source file
type Locator interface {
	Line(path string, line, max int) (string, error)
}

// FileLocator reads lines straight from the file system.  Every call scans
// the file from its start.
type FileLocator struct{}

// NewFileLocator creates a new FileLocator
func NewFileLocator() *FileLocator {
	return &FileLocator{}
}

// Line implements Locator
func (l *FileLocator) Line(path string, line, max int) (string, error) {
	return ReadLine(path, line, max)
}

// ReadLine returns at most max runes of the 1-based line of the file at
// path.  A line past the end of the file, a line below 1 or a max below 1
// yield an empty string and no error.
func ReadLine(path string, line, max int) (string, error) {
	if line < 1 || max < 1 {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	text, err := scanLine(bufio.NewReader(f), line, max)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	return text, nil
}

// scanLine skips line-1 newlines and copies the following runes up to the
// next newline or max runes, whichever comes first.
func scanLine(r *bufio.Reader, line, max int) (string, error) {
	for seen := 0; seen < line-1; {
		c, err := r.ReadByte()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if c == '\n' {
			seen++
		}
	}

	var b strings.Builder
	for n := 0; n < max; n++ {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if c == '\n' {
			break
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}
