// Package state provides fine-grained reactive state cells for component trees.
package state

import "sync"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

type cellSub struct {
	id     int
	notify func()
}

// Cell holds one piece of mutable state and a registry of subscribers.
// Every write notifies subscribers in registration order; change
// suppression happens per subscription, against the projection of the
// value each subscription watches (see Watch).
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  []cellSub
	next  int
}

// NewCell creates a cell with an initial value and no subscribers.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	c.mu.Lock()
	value := c.value
	c.mu.Unlock()
	return value
}

// Set replaces the value and notifies all subscribers before returning.
// Calling Set from inside a subscriber callback is not supported; use a
// Scheduler to defer work that writes back into the cell.
func (c *Cell[T]) Set(value T) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.value = value
	round := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(round)
}

// Update replaces the value with fn applied to the current value.
// fn runs under the cell lock, so the read-modify-write cannot interleave
// with other writes; fn must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) {
	if c == nil || fn == nil {
		return
	}
	c.mu.Lock()
	c.value = fn(c.value)
	round := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(round)
}

// Subscribe registers a listener invoked on every write.
// The returned unsubscribe closure is idempotent.
func (c *Cell[T]) Subscribe(fn func()) func() {
	return c.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener dispatched via scheduler.
// If scheduler is nil, the listener runs synchronously inside the write.
func (c *Cell[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil || fn == nil {
		return func() {}
	}
	notify := fn
	if scheduler != nil {
		notify = func() { scheduler.Schedule(fn) }
	}
	id := c.register(notify)
	var once sync.Once
	return func() {
		once.Do(func() { c.remove(id) })
	}
}

// register appends a subscriber and returns its id. Ids start at 0 and
// are monotonic per cell; they are never reused within one cell's
// lifetime and carry no meaning across cells.
func (c *Cell[T]) register(notify func()) int {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs = append(c.subs, cellSub{id: id, notify: notify})
	c.mu.Unlock()
	return id
}

func (c *Cell[T]) remove(id int) {
	c.mu.Lock()
	for i, sub := range c.subs {
		if sub.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}

func (c *Cell[T]) snapshotLocked() []int {
	if len(c.subs) == 0 {
		return nil
	}
	ids := make([]int, len(c.subs))
	for i, sub := range c.subs {
		ids[i] = sub.id
	}
	return ids
}

// notify runs one round over the subscribers captured at write time.
// Membership is re-checked before each callback so an unsubscribe landing
// mid-round stops delivery immediately; subscribers added mid-round wait
// for the next write.
func (c *Cell[T]) notify(round []int) {
	for _, id := range round {
		c.mu.Lock()
		var fn func()
		for _, sub := range c.subs {
			if sub.id == id {
				fn = sub.notify
				break
			}
		}
		c.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
}
