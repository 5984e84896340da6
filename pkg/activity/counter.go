// Package activity tracks how many requests are currently in flight,
// process-wide. Producers call Inc when a request is dispatched and Dec
// when it settles (success or failure); consumers subscribe to drive busy
// indicators. Display debouncing (show only after a sustained-busy
// threshold, hide after a trailing delay) is the subscriber's policy, not
// part of this contract.
package activity

import "sync"

// Counter is a non-negative in-flight request counter with a subscriber
// bus. The zero value is not usable; create one with New.
type Counter struct {
	mu     sync.Mutex
	count  int
	nextID int
	subs   map[int]func(int)
}

// New returns a Counter at zero with no subscribers.
func New() *Counter {
	return &Counter{subs: make(map[int]func(int))}
}

// Inc adds one in-flight request and notifies subscribers.
func (c *Counter) Inc() {
	c.mu.Lock()
	c.count++
	n := c.count
	fns := c.snapshot()
	c.mu.Unlock()
	for _, fn := range fns {
		fn(n)
	}
}

// Dec settles one request and notifies subscribers. The count is floored
// at zero so mismatched Inc/Dec pairs on error paths can never drive it
// negative.
func (c *Counter) Dec() {
	c.mu.Lock()
	if c.count > 0 {
		c.count--
	}
	n := c.count
	fns := c.snapshot()
	c.mu.Unlock()
	for _, fn := range fns {
		fn(n)
	}
}

// Count returns the current number of in-flight requests.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Subscribe registers fn, invokes it immediately with the current count,
// and returns an unsubscribe func. Subscribers are independent: removing
// one never affects the others.
func (c *Counter) Subscribe(fn func(count int)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	n := c.count
	c.mu.Unlock()

	fn(n)

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// snapshot copies the subscriber list so callbacks run outside the lock.
// Callers must hold mu.
func (c *Counter) snapshot() []func(int) {
	fns := make([]func(int), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	return fns
}
