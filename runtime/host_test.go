package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/odvcencio/cellar/state"
)

type textWidget struct {
	bounds Rect
	text   string
}

func (w *textWidget) Measure(constraints Constraints) Size {
	return constraints.Constrain(Size{Width: len(w.text), Height: 1})
}

func (w *textWidget) Layout(bounds Rect) {
	w.bounds = bounds
}

func (w *textWidget) Render(ctx RenderContext) {
	ctx.Buffer.SetString(w.bounds.X, w.bounds.Y, w.text, DefaultStyle())
}

func TestHost_DispatchRenders(t *testing.T) {
	flushes := 0
	widget := &textWidget{text: "hi"}
	host := NewHost(HostConfig{
		Width:  4,
		Height: 2,
		Flush: func(buf *Buffer) {
			flushes++
		},
	})
	host.SetRoot(widget)

	host.Dispatch(InvalidateMsg{})
	if flushes != 1 {
		t.Fatalf("expected 1 flush after invalidate, got %d", flushes)
	}

	// Nothing changed, so the second pass has no dirty cells to flush.
	host.Dispatch(InvalidateMsg{})
	if flushes != 1 {
		t.Fatalf("expected no flush for unchanged buffer, got %d", flushes)
	}
}

func TestHost_StateSchedulerFlush(t *testing.T) {
	host := NewHost(HostConfig{Width: 4, Height: 2})
	cell := state.NewCell(0)
	got := 0

	state.WatchWithScheduler(host.StateScheduler(), cell, func(v int) int { return v }, func(v int) {
		got = v
	})

	cell.Set(3)
	if got != 0 {
		t.Fatalf("expected callback to wait for host flush, got %d", got)
	}

	host.Dispatch(QueueFlushMsg{})
	if got != 3 {
		t.Fatalf("expected callback after flush dispatch, got %d", got)
	}
}

func TestHost_DispatchResize(t *testing.T) {
	widget := &textWidget{text: "hi"}
	host := NewHost(HostConfig{Width: 4, Height: 2})
	host.SetRoot(widget)

	host.Dispatch(ResizeMsg{Width: 8, Height: 3})
	if w, h := host.Buffer().Size(); w != 8 || h != 3 {
		t.Fatalf("expected buffer 8x3, got %dx%d", w, h)
	}
	if widget.bounds.Width != 8 || widget.bounds.Height != 3 {
		t.Fatalf("expected relayout to 8x3, got %+v", widget.bounds)
	}
}

func TestHost_RunQuit(t *testing.T) {
	host := NewHost(HostConfig{Width: 4, Height: 2})
	done := make(chan error, 1)

	go func() {
		done <- host.Run(context.Background())
	}()

	host.Post(QuitMsg{})
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error after quit, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("host did not stop after quit message")
	}
}

func TestHost_RunContextCancel(t *testing.T) {
	host := NewHost(HostConfig{Width: 4, Height: 2})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- host.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("host did not stop after cancellation")
	}
}
