package runtime

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Constraints bound the size a widget may occupy.
type Constraints struct {
	Min Size
	Max Size
}

// Constrain clamps size to the constraint bounds.
func (c Constraints) Constrain(size Size) Size {
	if size.Width < c.Min.Width {
		size.Width = c.Min.Width
	}
	if size.Height < c.Min.Height {
		size.Height = c.Min.Height
	}
	if c.Max.Width > 0 && size.Width > c.Max.Width {
		size.Width = c.Max.Width
	}
	if c.Max.Height > 0 && size.Height > c.Max.Height {
		size.Height = c.Max.Height
	}
	return size
}

// MaxSize returns the largest size the constraints allow.
func (c Constraints) MaxSize() Size {
	return c.Max
}

// RenderContext carries the render target for one pass.
type RenderContext struct {
	Buffer *Buffer
}

// Widget is a node in the rendering tree.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
}

// ChildProvider is implemented by widgets with children.
// Tree walks (mount, bind, render) use it to recurse.
type ChildProvider interface {
	ChildWidgets() []Widget
}
