// Package output opens the destination a generated configuration is written to.
package output

import (
	"fmt"
	"io"
	"os"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open returns stdout when path is empty, otherwise the named file, created
// if needed and truncated. Closing the stdout writer is a no-op.
func Open(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, nil
}
