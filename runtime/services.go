package runtime

import (
	"time"

	"github.com/odvcencio/cellar/state"
)

// Services exposes host-level scheduling and messaging helpers to
// widgets bound into the tree.
type Services struct {
	host *Host
}

// Services returns a service handle for the host.
func (h *Host) Services() Services {
	return Services{host: h}
}

func (s Services) isZero() bool {
	return s.host == nil
}

// Scheduler returns the host state scheduler.
func (s Services) Scheduler() state.Scheduler {
	if s.host == nil {
		return nil
	}
	return s.host.StateScheduler()
}

// InvalidateScheduler returns the host invalidation scheduler.
func (s Services) InvalidateScheduler() state.Scheduler {
	if s.host == nil {
		return nil
	}
	return s.host.InvalidateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.host == nil {
		return
	}
	s.host.Invalidate()
}

// Post sends a message into the host loop.
func (s Services) Post(msg Message) bool {
	if s.host == nil {
		return false
	}
	return s.host.tryPost(msg)
}

// Spawn starts an effect using the host task context.
func (s Services) Spawn(effect Effect) {
	if s.host == nil {
		return
	}
	s.host.Spawn(effect)
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	if s.host == nil {
		return
	}
	s.host.After(delay, msg)
}

// Every schedules a recurring message.
func (s Services) Every(interval time.Duration, fn func(time.Time) Message) {
	if s.host == nil {
		return
	}
	s.host.Every(interval, fn)
}
