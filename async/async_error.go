// Package async runs functions on goroutines and delivers their results
// back into a single-threaded event loop. The scheduler's step loop uses a
// Runner so RPC fan-out (task launches, cancels) never blocks a step, while
// all state mutation stays on the loop goroutine.
package async

// AsyncError is a future for an error value. SetValue completes it; calling
// SetValue twice panics.
type AsyncError struct {
	errCh     chan error
	val       error
	completed bool
}

func newAsyncError() *AsyncError {
	return &AsyncError{errCh: make(chan error, 1)}
}

// SetValue completes the future with err.
func (e *AsyncError) SetValue(err error) {
	e.errCh <- err
	close(e.errCh)
}

// TryGetValue returns (true, value) once the future completed, without
// blocking. Before completion it returns (false, nil).
func (e *AsyncError) TryGetValue() (bool, error) {
	if e.completed {
		return true, e.val
	}
	select {
	case err := <-e.errCh:
		e.val = err
		e.completed = true
		return true, err
	default:
		return false, nil
	}
}
