package observe

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/on-the-ground/scope_ive_go/scope"
)

// Collector aggregates contained failures. Unlike a guard, a Collector may
// be shared: one collector typically serves many guards across many scopes
// (and goroutines), so access is synchronized here rather than in the guard.
type Collector struct {
	mu       sync.Mutex
	failures []scope.Failure
	bySite   map[uint64]int
}

func NewCollector() *Collector {
	return &Collector{
		bySite: make(map[uint64]int),
	}
}

// OnDiscard implements scope.Observer.
func (c *Collector) OnDiscard(f scope.Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, f)
	c.bySite[f.Site.Key()]++
}

// Failures returns a copy of the failures recorded so far, in arrival order.
func (c *Collector) Failures() []scope.Failure {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]scope.Failure, len(c.failures))
	copy(out, c.failures)
	return out
}

// CountBySite returns, per call-site key, how many failures originated from
// guards constructed at that source position.
func (c *Collector) CountBySite() map[uint64]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[uint64]int, len(c.bySite))
	for k, v := range c.bySite {
		out[k] = v
	}
	return out
}

// Err folds every recorded failure into a single error, or nil when none
// were recorded.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, len(c.failures))
	for i, f := range c.failures {
		errs[i] = f.Err
	}
	return multierr.Combine(errs...)
}
