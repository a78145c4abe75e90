package state

import "sync"

// Subscriptions ties a set of cell subscriptions to one host lifecycle.
// A component registers subscriptions from its mount hook and calls Clear
// from the paired unmount hook; Clear detaches everything exactly once.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
	sched  Scheduler
}

// NewSubscriptions creates a tracker with a default scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler updates the default scheduler.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
}

// Scheduler returns the default scheduler.
func (s *Subscriptions) Scheduler() Scheduler {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	scheduler := s.sched
	s.mu.Unlock()
	return scheduler
}

// Add registers a teardown callback to run on Clear.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Observe registers a listener using the default scheduler and tracks
// its unsubscribe.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if s == nil {
		return
	}
	s.SubscribeWithScheduler(sub, s.Scheduler(), fn)
}

// SubscribeWithScheduler registers a listener using scheduler and tracks
// its unsubscribe. A nil scheduler subscribes synchronously.
func (s *Subscriptions) SubscribeWithScheduler(sub Subscribable, scheduler Scheduler, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	var unsub func()
	if scheduler == nil {
		unsub = sub.Subscribe(fn)
	} else if sched, ok := sub.(interface {
		SubscribeWithScheduler(Scheduler, func()) func()
	}); ok {
		unsub = sched.SubscribeWithScheduler(scheduler, fn)
	} else {
		unsub = sub.Subscribe(fn)
	}
	s.Add(unsub)
}

// Clear detaches all tracked subscriptions. Repeated calls are no-ops.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		if unsub != nil {
			unsub()
		}
	}
}

// WatchIn creates a projection subscription owned by subs: the tracker's
// scheduler dispatches onChange and Clear detaches it with the rest.
func WatchIn[T any, D comparable](subs *Subscriptions, c *Cell[T], project func(T) D, onChange func(D)) *Subscription[D] {
	var scheduler Scheduler
	if subs != nil {
		scheduler = subs.Scheduler()
	}
	sub := WatchWithScheduler(scheduler, c, project, onChange)
	if subs != nil {
		subs.Add(sub.Detach)
	}
	return sub
}

// ObserveIn creates a full-value subscription owned by subs.
func ObserveIn[T comparable](subs *Subscriptions, c *Cell[T], onChange func(T)) *Subscription[T] {
	var scheduler Scheduler
	if subs != nil {
		scheduler = subs.Scheduler()
	}
	sub := ObserveWithScheduler(scheduler, c, onChange)
	if subs != nil {
		subs.Add(sub.Detach)
	}
	return sub
}
