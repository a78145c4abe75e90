package runtime

// Lifecycle is implemented by widgets that need mount/unmount hooks.
// Mount fires once after the widget enters the tree, Unmount once before
// it leaves; subscriptions belong in Mount and their teardown in Unmount.
type Lifecycle interface {
	Mount()
	Unmount()
}

// MountTree calls Mount on widgets that implement Lifecycle.
// Parents mount before their children.
func MountTree(root Widget) {
	mountWidget(root)
}

// UnmountTree calls Unmount on widgets that implement Lifecycle.
// Children unmount before their parents.
func UnmountTree(root Widget) {
	unmountWidget(root)
}

func mountWidget(w Widget) {
	if w == nil {
		return
	}
	if m, ok := w.(Lifecycle); ok {
		m.Mount()
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			mountWidget(child)
		}
	}
}

func unmountWidget(w Widget) {
	if w == nil {
		return
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			unmountWidget(child)
		}
	}
	if m, ok := w.(Lifecycle); ok {
		m.Unmount()
	}
}
