package state

import "sync"

// Subscription is the live registration of one projection against a cell.
// It caches the last delivered projection value and dispatches the
// observer's change callback only when a recomputed projection differs.
type Subscription[D any] struct {
	mu        sync.Mutex
	once      sync.Once
	last      D
	active    bool
	equal     EqualFunc[D]
	onChange  func(D)
	scheduler Scheduler
	remove    func()
}

// Watch subscribes a projection of the cell's value.
//
// The initial delivered value is project applied to the value at
// subscription time. On every write the projection is recomputed and
// compared with == against the last delivered value; onChange runs only
// when it differs, with the new projection value.
//
// Watch panics if project is nil: a projection is required, and failing
// at subscribe time beats silently delivering nothing.
func Watch[T any, D comparable](c *Cell[T], project func(T) D, onChange func(D)) *Subscription[D] {
	return WatchWithScheduler(nil, c, project, onChange)
}

// WatchWithScheduler is Watch with onChange dispatched via scheduler.
// The projection recompute and comparison still run synchronously inside
// the write's notification round; only the observer callback is deferred.
func WatchWithScheduler[T any, D comparable](scheduler Scheduler, c *Cell[T], project func(T) D, onChange func(D)) *Subscription[D] {
	if project == nil {
		panic("state: Watch requires a projection function")
	}
	return newSubscription(scheduler, c, project, EqualComparable[D], onChange)
}

// WatchFunc is Watch for projection outputs that are not comparable.
// equal decides whether a recomputed projection counts as changed; a nil
// equal treats every write as a change.
func WatchFunc[T, D any](c *Cell[T], project func(T) D, equal EqualFunc[D], onChange func(D)) *Subscription[D] {
	if project == nil {
		panic("state: WatchFunc requires a projection function")
	}
	return newSubscription(nil, c, project, equal, onChange)
}

// Observe subscribes to the full cell value. It fires on every write
// whose new value differs by == from the last delivered one.
func Observe[T comparable](c *Cell[T], onChange func(T)) *Subscription[T] {
	return ObserveWithScheduler(nil, c, onChange)
}

// ObserveWithScheduler is Observe with onChange dispatched via scheduler.
func ObserveWithScheduler[T comparable](scheduler Scheduler, c *Cell[T], onChange func(T)) *Subscription[T] {
	return newSubscription(scheduler, c, func(v T) T { return v }, EqualComparable[T], onChange)
}

func newSubscription[T, D any](scheduler Scheduler, c *Cell[T], project func(T) D, equal EqualFunc[D], onChange func(D)) *Subscription[D] {
	s := &Subscription[D]{
		equal:     equal,
		onChange:  onChange,
		scheduler: scheduler,
	}
	if c == nil {
		return s
	}
	s.active = true
	s.last = project(c.Get())
	id := c.register(func() {
		s.deliver(project(c.Get()))
	})
	s.remove = func() { c.remove(id) }
	return s
}

// Value returns the last delivered projection value. It may lag the
// cell's current value until the next notification round.
func (s *Subscription[D]) Value() D {
	if s == nil {
		var zero D
		return zero
	}
	s.mu.Lock()
	value := s.last
	s.mu.Unlock()
	return value
}

// Active reports whether the subscription is still registered.
func (s *Subscription[D]) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	return active
}

// Detach removes the subscription from its cell. It is idempotent, safe
// once the cell itself is gone, and immediate: after it returns the
// observer callback will not run again, even for a write already in
// flight. A detached subscription cannot be re-attached; create a new
// Watch instead.
func (s *Subscription[D]) Detach() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
		if s.remove != nil {
			s.remove()
		}
	})
}

func (s *Subscription[D]) deliver(next D) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	if s.equal != nil && s.equal(s.last, next) {
		s.mu.Unlock()
		return
	}
	s.last = next
	s.mu.Unlock()

	if s.onChange == nil {
		return
	}
	if s.scheduler == nil {
		s.onChange(next)
		return
	}
	s.scheduler.Schedule(func() {
		if !s.Active() {
			return
		}
		s.onChange(next)
	})
}
