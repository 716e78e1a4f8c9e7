package async

// Runner spawns goroutines for error-returning functions and routes each
// result to a callback via an internal Mailbox. Callbacks run only inside
// ProcessMessages, so a loop that owns the Runner can mutate its state from
// callbacks without locks.
type Runner struct {
	mailbox *Mailbox
}

func NewRunner() Runner {
	return Runner{mailbox: NewMailbox()}
}

// RunAsync runs f on a new goroutine. cb receives f's return value during a
// later ProcessMessages call; a nil cb discards the result.
func (r Runner) RunAsync(f func() error, cb func(error)) {
	if cb == nil {
		cb = func(error) {}
	}
	e := r.mailbox.NewAsyncError(cb)
	go func() {
		e.SetValue(f())
	}()
}

// ProcessMessages delivers results of completed functions to their
// callbacks.
func (r Runner) ProcessMessages() {
	r.mailbox.ProcessMessages()
}

// NumRunning returns the number of functions that have not yet delivered a
// result.
func (r Runner) NumRunning() int {
	return r.mailbox.Count()
}
