package async

// Mailbox pairs AsyncErrors with callbacks and invokes each callback, from
// the caller's goroutine, once its AsyncError completes. It is how an event
// loop observes the outcome of goroutines it spawned without blocking on
// them: spawn with NewAsyncError, then call ProcessMessages once per loop
// iteration.
//
// Mailbox is not safe for concurrent use; it belongs to the loop goroutine.
// The AsyncErrors it hands out may be completed from any goroutine.
type Mailbox struct {
	watching []watchedError
}

type watchedError struct {
	err *AsyncError
	cb  func(error)
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// NewAsyncError returns a future whose eventual value will be passed to cb
// during a later ProcessMessages call.
func (m *Mailbox) NewAsyncError(cb func(error)) *AsyncError {
	e := newAsyncError()
	m.watching = append(m.watching, watchedError{err: e, cb: cb})
	return e
}

// ProcessMessages invokes callbacks for all completed futures and stops
// tracking them. Incomplete futures stay queued for the next call.
func (m *Mailbox) ProcessMessages() {
	var pending []watchedError
	for _, w := range m.watching {
		if done, err := w.err.TryGetValue(); done {
			w.cb(err)
		} else {
			pending = append(pending, w)
		}
	}
	m.watching = pending
}

// Count returns the number of futures still awaiting completion.
func (m *Mailbox) Count() int {
	return len(m.watching)
}
