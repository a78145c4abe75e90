package runtime

import "time"

// Message represents an event flowing into the host loop.
// Messages come from timers, background effects, or the embedding
// application.
type Message interface {
	isMessage()
}

// ResizeMsg indicates the render surface changed size.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TickMsg is sent on each frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without forcing a full redraw.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// QuitMsg stops the host loop.
type QuitMsg struct{}

func (QuitMsg) isMessage() {}

// PostFunc sends a message into the host loop.
// It returns false when the message queue is full.
type PostFunc func(Message) bool
