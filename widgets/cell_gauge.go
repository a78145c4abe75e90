package widgets

import (
	"github.com/odvcencio/cellar/runtime"
	"github.com/odvcencio/cellar/state"
)

// CellGauge renders a horizontal bar for an integer projection of a
// cell, clamped to [0, max]. Like CellLabel it subscribes in Mount and
// detaches in Unmount; two gauges on the same cell with different
// projections update independently.
type CellGauge[T any] struct {
	Base
	source  *state.Cell[T]
	project func(T) int
	subs    state.Subscriptions
	value   int
	max     int
	style   runtime.Style
	mounted bool
}

// NewCellGauge creates a gauge bound to a projection of source.
func NewCellGauge[T any](source *state.Cell[T], project func(T) int, max int, scheduler state.Scheduler) *CellGauge[T] {
	if project == nil {
		project = func(T) int { return 0 }
	}
	if max <= 0 {
		max = 100
	}
	gauge := &CellGauge[T]{
		source:  source,
		project: project,
		max:     max,
		style:   runtime.DefaultStyle(),
	}
	gauge.subs.SetScheduler(scheduler)
	if source != nil {
		gauge.value = project(source.Get())
	}
	return gauge
}

// Value returns the current gauge value.
func (c *CellGauge[T]) Value() int {
	return c.value
}

// SetStyle sets the bar style.
func (c *CellGauge[T]) SetStyle(style runtime.Style) {
	c.style = style
}

// Measure returns the size needed for the gauge.
func (c *CellGauge[T]) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: c.max, Height: 1})
}

// Render draws the filled portion of the bar.
func (c *CellGauge[T]) Render(ctx runtime.RenderContext) {
	bounds := c.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	value := c.value
	if value < 0 {
		value = 0
	}
	if value > c.max {
		value = c.max
	}
	filled := bounds.Width * value / c.max
	for x := 0; x < bounds.Width; x++ {
		ch := ' '
		if x < filled {
			ch = '='
		}
		ctx.Buffer.Set(bounds.X+x, bounds.Y, ch, c.style)
	}
}

// Mount subscribes to cell changes.
func (c *CellGauge[T]) Mount() {
	c.mounted = true
	c.subscribe()
}

// Unmount detaches the subscription.
func (c *CellGauge[T]) Unmount() {
	c.mounted = false
	c.subs.Clear()
}

func (c *CellGauge[T]) subscribe() {
	c.subs.Clear()
	if c.source == nil {
		c.value = 0
		return
	}
	c.value = c.project(c.source.Get())
	state.WatchIn(&c.subs, c.source, c.project, c.onValue)
}

func (c *CellGauge[T]) onValue(value int) {
	if !c.mounted {
		return
	}
	c.value = value
	c.Invalidate()
}
