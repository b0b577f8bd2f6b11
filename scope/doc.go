// Package scope provides a minimal scope-exit execution mechanism for Go.
//
// Scope-ive Go lets cleanup code be declared textually next to the
// acquisition it undoes, and guarantees it runs when control leaves the
// enclosing block — normal fall-through, early return, or panic — without
// duplicating release logic across exit paths.
//
// # What is a guard?
//
// A guard owns exactly one deferred task: a zero-argument, no-result
// callable. When the guard's scope is exited the task runs exactly once,
// and any failure it raises is contained so that unwinding itself never
// fails. There is no cancel, no re-arm, and no early manual run.
//
// # How does it work?
//
// The binder is the OnExit marker followed by the task block, consumed by a
// defer statement:
//
//	func copyInto(dst string, src io.Reader) error {
//		f, err := os.Create(dst)
//		if err != nil {
//			return err
//		}
//		defer scope.OnExit(func() {
//			f.Close()
//		})()
//
//		_, err = io.Copy(f, src)
//		return err // f is closed on this path, on every early return, and on panic
//	}
//
// The defer stack supplies anonymous per-call-site storage: the marker can
// appear any number of times in one scope, and the guards fire in reverse
// declaration order. Task closures capture enclosing variables by reference,
// so mutations made between registration and scope exit are visible to the
// task; the caller must ensure captured state outlives the guard's scope.
//
// Go's defer is function-scoped. For a guard that must fire at the end of a
// nested block, before guards of the enclosing scope, use Bound:
//
//	scope.Bound(func(s *scope.Scope) {
//		tx := db.Txn(true)
//		s.Defer(tx.Abort)
//		// ... tx is aborted here, before the enclosing function's guards
//	})
//
// # Failure containment
//
// A destructor-like path that is running while another failure is already
// unwinding must not raise a second one. A panic from the task (or an error
// from an error-returning task registered via OnExitErr) is therefore caught
// at the guard and never propagated. By default it is discarded; attach an
// Observer via WithObserver to record contained failures without weakening
// the never-propagate guarantee. See the observe subpackage for zap-backed
// and aggregating observers.
//
// # Design Philosophy
//
// Scope-ive Go embraces:
//   - Exactly construct-then-run-once, with no mutating surface in between
//   - Lifecycle safety over observability on the unwinding path
//   - The Zen of Go: maintainability over magic
package scope
