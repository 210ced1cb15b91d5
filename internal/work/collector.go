package work

import "sync"

// Collector is an append-only bag of values shared by concurrent handlers.
// Values are kept with multiplicity: adding equal values multiple times
// yields multiple occurrences. The zero value is an empty collector ready
// for use.
//
// A Collector must not be copied after first use.
type Collector[T any] struct {
	mu    sync.Mutex
	items []T
}

// Add appends v to the bag. It is safe to call from any number of
// goroutines; no ordering is guaranteed between concurrent adds.
func (c *Collector[T]) Add(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, v)
}

// Len returns the number of values in the bag.
func (c *Collector[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Slice returns a copy of the collected values. The order reflects the
// order in which adds won the bag's lock, which is unspecified when adds
// were concurrent.
func (c *Collector[T]) Slice() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
