package trap

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic value together with the stack of the
// goroutine at the point of recovery.
type PanicError struct {
	Value any
	Stack []byte
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", pe.Value)
}

// Unwrap exposes the original error when the panic value was itself an error.
func (pe *PanicError) Unwrap() error {
	if err, ok := pe.Value.(error); ok {
		return err
	}
	return nil
}

// Recovered converts a value obtained from recover() into an error.
// Must be called while the deferred function that recovered is still running,
// so that the captured stack points at the panic site.
func Recovered(r any) error {
	return &PanicError{
		Value: r,
		Stack: debug.Stack(),
	}
}
