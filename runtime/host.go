package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/odvcencio/cellar/state"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(host *Host, msg Message) bool

// FlushFunc receives the render buffer after a pass that changed cells.
// The host clears dirty tracking once it returns.
type FlushFunc func(buf *Buffer)

// HostConfig configures a Host.
type HostConfig struct {
	Root          Widget
	Update        UpdateFunc
	Flush         FlushFunc
	Width         int
	Height        int
	MessageBuffer int
	TickRate      time.Duration
	StateQueue    *state.Queue
	FlushPolicy   QueueFlushPolicy
}

// Host drives a widget tree: it owns the message loop, the mount/unmount
// pairing for the tree, the state queue, and the render buffer. It is the
// rendering mechanism cells and subscriptions plug into.
type Host struct {
	root           Widget
	update         UpdateFunc
	flush          FlushFunc
	buffer         *Buffer
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingMu      sync.Mutex
	pendingEffects []Effect

	running bool
	dirty   bool
}

// NewHost creates a host from config.
func NewHost(cfg HostConfig) *Host {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	width := cfg.Width
	if width <= 0 {
		width = 80
	}
	height := cfg.Height
	if height <= 0 {
		height = 24
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	host := &Host{
		update:      cfg.Update,
		flush:       cfg.Flush,
		buffer:      NewBuffer(width, height),
		messages:    make(chan Message, bufferSize),
		tickRate:    cfg.TickRate,
		stateQueue:  queue,
		flushPolicy: cfg.FlushPolicy,
	}
	if host.update == nil {
		host.update = DefaultUpdate
	}
	host.queueScheduler = NewQueueScheduler(queue, host.tryPost)
	host.invalidator = NewInvalidator(host.tryPost)
	if cfg.Root != nil {
		host.SetRoot(cfg.Root)
	}
	return host
}

// Buffer returns the host render buffer.
func (h *Host) Buffer() *Buffer {
	if h == nil {
		return nil
	}
	return h.buffer
}

// StateQueue returns the host's state queue.
func (h *Host) StateQueue() *state.Queue {
	if h == nil {
		return nil
	}
	return h.stateQueue
}

// StateScheduler returns a scheduler that wakes the host to flush.
func (h *Host) StateScheduler() state.Scheduler {
	if h == nil || h.queueScheduler == nil {
		return nil
	}
	return h.queueScheduler
}

// InvalidateScheduler returns a scheduler that invalidates the render pass.
func (h *Host) InvalidateScheduler() state.Scheduler {
	if h == nil || h.invalidator == nil {
		return nil
	}
	return h.invalidator
}

// Invalidate requests a render pass.
func (h *Host) Invalidate() {
	if h == nil || h.invalidator == nil {
		return
	}
	h.invalidator.Invalidate()
}

// SetRoot swaps the root widget. The old tree is unmounted and unbound
// before the new tree is bound and mounted.
func (h *Host) SetRoot(root Widget) {
	if h == nil {
		return
	}
	if old := h.root; old != nil {
		UnmountTree(old)
		UnbindTree(old)
	}
	h.root = root
	if root != nil {
		BindTree(root, h.Services())
		MountTree(root)
		width, height := h.buffer.Size()
		root.Layout(Rect{Width: width, Height: height})
	}
	h.dirty = true
}

// Root returns the current root widget.
func (h *Host) Root() Widget {
	if h == nil {
		return nil
	}
	return h.root
}

// Post sends a message to the event loop.
func (h *Host) Post(msg Message) {
	_ = h.tryPost(msg)
}

// TryPost sends a message to the event loop without blocking.
func (h *Host) TryPost(msg Message) bool {
	return h.tryPost(msg)
}

func (h *Host) tryPost(msg Message) bool {
	if h == nil || h.messages == nil {
		return false
	}
	select {
	case h.messages <- msg:
		return true
	default:
		return false
	}
}

// Spawn starts an effect using the host task context.
// If Run has not started, the effect is queued until start.
func (h *Host) Spawn(effect Effect) {
	if h == nil || effect.Run == nil {
		return
	}
	if h.taskCtx == nil {
		h.pendingMu.Lock()
		h.pendingEffects = append(h.pendingEffects, effect)
		h.pendingMu.Unlock()
		return
	}
	h.runEffect(effect)
}

// After schedules a delayed message using the host task context.
func (h *Host) After(delay time.Duration, msg Message) {
	h.Spawn(After(delay, msg))
}

// Every schedules a recurring message using the host task context.
func (h *Host) Every(interval time.Duration, fn func(time.Time) Message) {
	h.Spawn(Every(interval, fn))
}

// Run starts the event loop until quit or context cancellation.
func (h *Host) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	h.taskCtx = taskCtx
	h.taskCancel = taskCancel
	defer func() {
		taskCancel()
		h.taskCtx = nil
		h.taskCancel = nil
	}()

	h.running = true
	h.dirty = true

	h.startPendingEffects()

	var ticker *time.Ticker
	var ticks <-chan time.Time
	if h.tickRate > 0 {
		ticker = time.NewTicker(h.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for h.running {
		select {
		case <-ctx.Done():
			h.running = false
			h.cancelTasks()
		case msg := <-h.messages:
			h.Dispatch(msg)
		case now := <-ticks:
			h.Dispatch(TickMsg{Time: now})
		}
	}

	return ctx.Err()
}

// Dispatch processes one message synchronously: update, queue flush per
// policy, and a render pass when anything marked the host dirty. Hosts
// embedded without Run call it directly from their own loop.
func (h *Host) Dispatch(msg Message) {
	if h == nil || msg == nil {
		return
	}
	if _, ok := msg.(QuitMsg); ok {
		h.running = false
		h.cancelTasks()
		return
	}
	if h.update(h, msg) {
		h.dirty = true
	}
	if h.flushQueueIfNeeded(msg) {
		h.dirty = true
	}
	if _, ok := msg.(InvalidateMsg); ok && h.invalidator != nil {
		h.invalidator.resetPending()
	}
	if h.dirty {
		h.render()
		h.dirty = false
	}
}

// DefaultUpdate handles host bookkeeping messages.
func DefaultUpdate(host *Host, msg Message) bool {
	if host == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		host.resize(m.Width, m.Height)
		return true
	case InvalidateMsg:
		return true
	case QueueFlushMsg:
		return false
	default:
		return false
	}
}

func (h *Host) resize(width, height int) {
	h.buffer.Resize(width, height)
	if h.root != nil {
		h.root.Layout(Rect{Width: width, Height: height})
	}
}

func (h *Host) render() {
	if h.root != nil {
		h.root.Render(RenderContext{Buffer: h.buffer})
	}
	if h.flush != nil && h.buffer.IsDirty() {
		h.flush(h.buffer)
	}
	h.buffer.ClearDirty()
}

func (h *Host) taskContext() context.Context {
	if h != nil && h.taskCtx != nil {
		return h.taskCtx
	}
	return context.Background()
}

func (h *Host) cancelTasks() {
	if h == nil || h.taskCancel == nil {
		return
	}
	h.taskCancel()
}

func (h *Host) runEffect(effect Effect) {
	if h == nil || effect.Run == nil {
		return
	}
	ctx := h.taskContext()
	post := h.tryPost
	go effect.Run(ctx, post)
}

func (h *Host) startPendingEffects() {
	if h == nil {
		return
	}
	h.pendingMu.Lock()
	effects := h.pendingEffects
	h.pendingEffects = nil
	h.pendingMu.Unlock()
	for _, effect := range effects {
		h.runEffect(effect)
	}
}

func (h *Host) flushQueueIfNeeded(msg Message) bool {
	if h == nil || h.stateQueue == nil {
		return false
	}
	if !shouldFlushQueue(h.flushPolicy, msg) {
		return false
	}
	if h.queueScheduler != nil {
		h.queueScheduler.resetPending()
	}
	return h.stateQueue.Flush() > 0
}
