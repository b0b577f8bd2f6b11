package scope

import (
	"time"

	"github.com/google/uuid"

	"github.com/on-the-ground/scope_ive_go/scope/internal/site"
	"github.com/on-the-ground/scope_ive_go/scope/internal/trap"
)

// Task is a deferred task: a zero-argument, no-result callable registered
// for scope-exit execution.
type Task func()

// Failure describes a task failure that was contained during scope exit.
// It is delivered to the guard's observer, if any, and discarded otherwise.
type Failure struct {
	GuardId string
	Site    site.Site
	Err     error
	Span    TimeSpan
}

// Observer receives failures that the guard has already contained.
// The never-propagate guarantee does not depend on the observer behaving:
// anything the observer panics with is contained as well.
type Observer interface {
	OnDiscard(Failure)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Failure)

func (f ObserverFunc) OnDiscard(failure Failure) { f(failure) }

// Option configures a guard at construction time.
type Option func(*Guard)

// WithObserver attaches an observer that is notified of contained failures.
func WithObserver(obs Observer) Option {
	return func(g *Guard) {
		g.observer = obs
	}
}

// IMPORTANT:
// A guard is **intentionally NOT thread-safe**.
//
// It is a purely local, stack-bound object, designed with the assumption that
// construction and exit happen on a **single goroutine** within a **single
// lexical scope**. The task and its captured environment carry no
// synchronization of their own, so sharing a guard across goroutines leads to
// undefined behavior.
//
// A guard owns exactly one task. It has no observable state transitions
// before exit, no cancel, no re-arm, and no way to run the task early:
// exactly construct-then-run-once.
type Guard struct {
	GuardId  string
	site     site.Site
	task     func() error
	observer Observer
	done     bool
}

// NewGuard constructs a guard owning the given task. The task is not invoked.
// Panics if task is nil.
func NewGuard(task Task, opts ...Option) *Guard {
	if task == nil {
		panic("scope: nil task")
	}
	return newGuard(func() error {
		task()
		return nil
	}, 2, opts)
}

func newGuard(task func() error, skip int, opts []Option) *Guard {
	g := &Guard{
		GuardId: uuid.New().String(),
		site:    site.Capture(skip),
		task:    task,
		done:    false,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Exit invokes the owned task synchronously on the calling goroutine,
// exactly once; later calls are no-ops. A panic raised by the task, or an
// error returned by an error-returning task, never propagates out of Exit:
// it is handed to the observer when one is attached and discarded otherwise.
// Discarding trades observability for unconditional safety during unwinding,
// where a second failure would be unrecoverable.
func (g *Guard) Exit() {
	if g.done {
		return
	}
	g.done = true

	from := time.Now()
	err := g.invoke()
	if err == nil || g.observer == nil {
		return
	}
	g.notify(Failure{
		GuardId: g.GuardId,
		Site:    g.site,
		Err:     err,
		Span:    NewTimeSpan(from, time.Now()),
	})
}

func (g *Guard) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = trap.Recovered(r)
		}
	}()
	return g.task()
}

func (g *Guard) notify(failure Failure) {
	// The observer runs during unwinding too. Contain it like the task.
	defer func() { _ = recover() }()
	g.observer.OnDiscard(failure)
}
