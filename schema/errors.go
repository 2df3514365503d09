package schema

import "github.com/pkg/errors"

// PlanError reports an illegal rule/type combination, a duplicate column
// name, an unresolved relation target, an invalid regex, or a malformed
// format string — anything the builder or Finalize can catch
// synchronously, per spec.md §7.
type PlanError struct {
	cause error
}

func (e *PlanError) Error() string { return e.cause.Error() }
func (e *PlanError) Unwrap() error { return e.cause }

func planErrorf(format string, args ...any) error {
	return &PlanError{cause: errors.Errorf(format, args...)}
}

func wrapPlanError(err error, msg string) error {
	return &PlanError{cause: errors.Wrap(err, msg)}
}

// ErrPlanAlreadyFinalized is returned by any Builder mutation attempted
// after Finalize has been called.
var ErrPlanAlreadyFinalized = &PlanError{cause: errors.New("schema: plan already finalized")}
