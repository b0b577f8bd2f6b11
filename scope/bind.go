package scope

import "io"

// OnExit binds a deferred task to a fresh guard and returns its exit trigger.
// The trigger is meant to be consumed immediately by a defer statement:
//
//	defer scope.OnExit(func() {
//		f.Close()
//	})()
//
// The defer stack provides the anonymous per-call-site storage: using the
// marker several times in one scope yields independent guards with no
// collision, fired in reverse declaration order on every exit path.
//
// The closure captures enclosing variables by reference, so mutations made
// between registration and scope exit are visible to the task. The caller
// must ensure everything the task captures outlives the guard's scope.
func OnExit(task Task, opts ...Option) func() {
	if task == nil {
		panic("scope: nil task")
	}
	g := newGuard(func() error {
		task()
		return nil
	}, 2, opts)
	return g.Exit
}

// OnExitErr is OnExit for error-returning tasks. A returned error is
// contained exactly like a panic: observed when an observer is attached,
// discarded otherwise, never propagated.
func OnExitErr(task func() error, opts ...Option) func() {
	if task == nil {
		panic("scope: nil task")
	}
	g := newGuard(task, 2, opts)
	return g.Exit
}

// CloseOnExit binds c.Close to a fresh guard.
//
//	defer scope.CloseOnExit(f)()
func CloseOnExit(c io.Closer, opts ...Option) func() {
	if c == nil {
		panic("scope: nil closer")
	}
	g := newGuard(c.Close, 2, opts)
	return g.Exit
}
