package testutil

import "errors"

// ErrMockWrite is returned by FailingWriter.
var ErrMockWrite = errors.New("write failed") //nolint:gochecknoglobals // Sentinel for tests

// FailingWriter is an io.Writer whose writes always fail.
type FailingWriter struct{}

// Write implements io.Writer.
func (FailingWriter) Write([]byte) (int, error) {
	return 0, ErrMockWrite
}
