package widgets

import (
	"github.com/odvcencio/cellar/runtime"
	"github.com/odvcencio/cellar/state"
)

// CellLabel renders a string projection of a cell. It registers its
// subscription in Mount and detaches it in Unmount, so the label only
// receives notifications while it is part of the tree, and only when the
// projected string actually changes.
type CellLabel[T any] struct {
	Base
	source    *state.Cell[T]
	project   func(T) string
	subs      state.Subscriptions
	text      string
	style     runtime.Style
	alignment Alignment
	mounted   bool
}

// NewCellLabel creates a label bound to a projection of source.
// scheduler defers text updates to the host's flush; nil applies them
// synchronously.
func NewCellLabel[T any](source *state.Cell[T], project func(T) string, scheduler state.Scheduler) *CellLabel[T] {
	if project == nil {
		project = func(T) string { return "" }
	}
	label := &CellLabel[T]{
		source:    source,
		project:   project,
		style:     runtime.DefaultStyle(),
		alignment: AlignLeft,
	}
	label.subs.SetScheduler(scheduler)
	if source != nil {
		label.text = project(source.Get())
	}
	return label
}

// Text returns the current label text.
func (c *CellLabel[T]) Text() string {
	return c.text
}

// SetStyle sets the label style.
func (c *CellLabel[T]) SetStyle(style runtime.Style) {
	c.style = style
}

// SetAlignment sets text alignment.
func (c *CellLabel[T]) SetAlignment(align Alignment) {
	c.alignment = align
}

// Measure returns the size needed for the label.
func (c *CellLabel[T]) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  len(c.text),
		Height: 1,
	})
}

// Render draws the label.
func (c *CellLabel[T]) Render(ctx runtime.RenderContext) {
	bounds := c.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	text := truncateString(c.text, bounds.Width)
	ctx.Buffer.SetString(alignX(bounds, text, c.alignment), bounds.Y, text, c.style)
}

// Mount subscribes to cell changes.
func (c *CellLabel[T]) Mount() {
	c.mounted = true
	c.subscribe()
}

// Unmount detaches the subscription.
func (c *CellLabel[T]) Unmount() {
	c.mounted = false
	c.subs.Clear()
}

func (c *CellLabel[T]) subscribe() {
	c.subs.Clear()
	if c.source == nil {
		c.text = ""
		return
	}
	c.text = c.project(c.source.Get())
	state.WatchIn(&c.subs, c.source, c.project, c.onText)
}

func (c *CellLabel[T]) onText(text string) {
	if !c.mounted {
		return
	}
	c.text = text
	c.Invalidate()
}
