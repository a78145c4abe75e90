package runtime

import "testing"

type lifecycleWidget struct {
	children  []Widget
	mounted   int
	unmounted int
}

func (w *lifecycleWidget) Measure(constraints Constraints) Size {
	return Size{}
}

func (w *lifecycleWidget) Layout(bounds Rect) {}

func (w *lifecycleWidget) Render(ctx RenderContext) {}

func (w *lifecycleWidget) ChildWidgets() []Widget {
	return w.children
}

func (w *lifecycleWidget) Mount() {
	w.mounted++
}

func (w *lifecycleWidget) Unmount() {
	w.unmounted++
}

func TestHost_LifecyclePairing(t *testing.T) {
	child := &lifecycleWidget{}
	root := &lifecycleWidget{children: []Widget{child}}
	host := NewHost(HostConfig{Width: 10, Height: 5})

	host.SetRoot(root)
	if root.mounted != 1 || child.mounted != 1 {
		t.Fatalf("expected mounted calls root=1 child=1, got root=%d child=%d", root.mounted, child.mounted)
	}

	host.SetRoot(nil)
	if root.unmounted != 1 || child.unmounted != 1 {
		t.Fatalf("expected unmounted calls root=1 child=1, got root=%d child=%d", root.unmounted, child.unmounted)
	}
}

func TestHost_SetRootSwapsTrees(t *testing.T) {
	first := &lifecycleWidget{}
	second := &lifecycleWidget{}
	host := NewHost(HostConfig{Width: 10, Height: 5})

	host.SetRoot(first)
	host.SetRoot(second)
	if first.unmounted != 1 {
		t.Fatalf("expected old root unmounted once, got %d", first.unmounted)
	}
	if second.mounted != 1 {
		t.Fatalf("expected new root mounted once, got %d", second.mounted)
	}
	if second.unmounted != 0 {
		t.Fatalf("expected new root to remain mounted, got %d", second.unmounted)
	}
}

func TestUnmountTree_ChildrenFirst(t *testing.T) {
	order := make([]string, 0, 2)
	child := &orderWidget{name: "child", order: &order}
	root := &orderWidget{name: "root", order: &order, children: []Widget{child}}

	MountTree(root)
	if len(order) != 2 || order[0] != "root" || order[1] != "child" {
		t.Fatalf("unexpected mount order: %v", order)
	}

	order = order[:0]
	UnmountTree(root)
	if len(order) != 2 || order[0] != "child" || order[1] != "root" {
		t.Fatalf("unexpected unmount order: %v", order)
	}
}

type orderWidget struct {
	name     string
	order    *[]string
	children []Widget
}

func (w *orderWidget) Measure(constraints Constraints) Size {
	return Size{}
}

func (w *orderWidget) Layout(bounds Rect) {}

func (w *orderWidget) Render(ctx RenderContext) {}

func (w *orderWidget) ChildWidgets() []Widget {
	return w.children
}

func (w *orderWidget) Mount() {
	*w.order = append(*w.order, w.name)
}

func (w *orderWidget) Unmount() {
	*w.order = append(*w.order, w.name)
}
