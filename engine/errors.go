package engine

import "github.com/pkg/errors"

// ReaderError is a terminal I/O or malformed-input failure that aborts
// the run; any partial counters are discarded, per spec.md §7.
type ReaderError struct {
	cause error
}

func (e *ReaderError) Error() string { return e.cause.Error() }
func (e *ReaderError) Unwrap() error { return e.cause }

func readerError(err error, msg string) error {
	return &ReaderError{cause: errors.Wrap(err, msg)}
}

func readerErrorf(format string, args ...any) error {
	return &ReaderError{cause: errors.Errorf(format, args...)}
}
