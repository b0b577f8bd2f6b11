package scope

import (
	"io"

	"github.com/google/uuid"
)

// Scope is an explicit lexical block. Go's defer is function-scoped, so a
// guard that must fire at the end of a nested block — before any guard of
// the enclosing scope — is registered on a Scope instead, via Bound.
//
// Like a guard, a Scope is single-goroutine: it must not be shared or
// unwound concurrently.
type Scope struct {
	ScopeId string
	opts    []Option
	guards  []*Guard
}

// Bound runs block as a nested lexical scope. Guards registered on the scope
// fire in reverse registration order at the end of the block, whether the
// block returns normally or panics; a panic keeps propagating after the
// scope has unwound. Options passed to Bound become defaults for every
// guard registered on the scope.
//
//	scope.Bound(func(s *scope.Scope) {
//		f := openTemp()
//		s.CloseOnExit(f)
//		// ... work with f; it is closed here, before the caller resumes
//	})
//
// Scopes nest: an inner Bound unwinds completely before the outer one.
func Bound(block func(*Scope), opts ...Option) {
	if block == nil {
		panic("scope: nil block")
	}
	s := &Scope{
		ScopeId: uuid.New().String(),
		opts:    opts,
	}
	defer s.unwind()
	block(s)
}

// Defer registers a deferred task on the scope, backed by its own guard.
// Panics if task is nil.
func (s *Scope) Defer(task Task, opts ...Option) {
	if task == nil {
		panic("scope: nil task")
	}
	s.push(func() error {
		task()
		return nil
	}, opts)
}

// DeferErr registers an error-returning task; the error is contained the
// same way a panic is.
func (s *Scope) DeferErr(task func() error, opts ...Option) {
	if task == nil {
		panic("scope: nil task")
	}
	s.push(task, opts)
}

// CloseOnExit registers c.Close on the scope.
func (s *Scope) CloseOnExit(c io.Closer, opts ...Option) {
	if c == nil {
		panic("scope: nil closer")
	}
	s.push(c.Close, opts)
}

func (s *Scope) push(task func() error, opts []Option) {
	merged := s.opts
	if len(opts) > 0 {
		merged = append(append([]Option{}, s.opts...), opts...)
	}
	s.guards = append(s.guards, newGuard(task, 3, merged))
}

// unwind fires the registered guards last-in-first-out. Exit never panics,
// so unwinding always reaches every guard.
func (s *Scope) unwind() {
	for i := len(s.guards) - 1; i >= 0; i-- {
		s.guards[i].Exit()
	}
}
