package domain

import (
	"errors"
	"fmt"
)

// Error kinds carried in ErrorSummary.Kind. These are part of the wire
// contract; clients match on them.
const (
	ErrKindInvalidPlan   = "InvalidPlan"
	ErrKindTaskExecution = "TaskExecutionError"
	ErrKindExecutorLost  = "ExecutorTimeout"
	ErrKindJobFailed     = "JobFailed"
	ErrKindCanceled      = "Canceled"
)

// InvalidPlanError rejects a plan at submission; no job is created.
type InvalidPlanError struct {
	Reason string
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("invalid plan: %s", e.Reason)
}

// NewInvalidPlanError returns an InvalidPlanError with the given reason.
func NewInvalidPlanError(format string, args ...interface{}) *InvalidPlanError {
	return &InvalidPlanError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidPlan reports whether err is an InvalidPlanError.
func IsInvalidPlan(err error) bool {
	_, ok := err.(*InvalidPlanError)
	return ok
}

// ErrStaleTransition is returned by the store when a compare-and-set loses
// a race. Callers retry their read-modify-write; it never surfaces to
// clients.
var ErrStaleTransition = errors.New("stale state transition")

// ErrNotLeader is returned by assignment-affecting operations on a
// scheduler instance that does not hold the leader lease.
var ErrNotLeader = errors.New("not the leader")
