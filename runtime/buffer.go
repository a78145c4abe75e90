package runtime

// Color is a palette or RGB color; ColorDefault leaves the surface's
// default in place.
type Color int32

// ColorDefault selects the render surface's default color.
const ColorDefault Color = -1

// Style describes how a cell is drawn.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Underline bool
	Reverse   bool
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{Fg: ColorDefault, Bg: ColorDefault}
}

// Cell is a single character cell in the buffer.
type Cell struct {
	Rune  rune
	Style Style
}

// Buffer is a 2D grid of cells widgets render into. It tracks which
// cells changed since the last flush so the host can push partial
// updates to its render surface.
type Buffer struct {
	cells      []Cell
	width      int
	height     int
	dirty      []bool
	dirtyCount int
	dirtyAll   bool
}

// NewBuffer creates a cleared buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		dirty:  make([]bool, width*height),
	}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions and marks everything dirty.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.dirty = make([]bool, width*height)
	b.Clear()
}

// Clear resets every cell to a blank and marks the buffer dirty.
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Style: DefaultStyle()}
	for i := range b.cells {
		b.cells[i] = blank
	}
	b.MarkAllDirty()
}

// Set writes one cell. Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	next := Cell{Rune: r, Style: style}
	if b.cells[i] == next {
		return
	}
	b.cells[i] = next
	if !b.dirty[i] {
		b.dirty[i] = true
		b.dirtyCount++
	}
}

// SetString writes a string starting at x,y, clipped to the row.
func (b *Buffer) SetString(x, y int, s string, style Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// Fill writes ch into every cell of bounds.
func (b *Buffer) Fill(bounds Rect, ch rune, style Style) {
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			b.Set(x, y, ch, style)
		}
	}
}

// Cells returns the row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// IsDirty reports whether any cell changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	return b.dirtyAll || b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	if b.dirtyAll {
		return b.width * b.height
	}
	return b.dirtyCount
}

// MarkAllDirty forces a full flush on the next render.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
}

// ClearDirty resets change tracking after a flush.
func (b *Buffer) ClearDirty() {
	b.dirtyAll = false
	b.dirtyCount = 0
	for i := range b.dirty {
		b.dirty[i] = false
	}
}

// ForEachDirtyCell visits every changed cell in row-major order.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if fn == nil {
		return
	}
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			i := row + x
			if b.dirtyAll || b.dirty[i] {
				fn(x, y, b.cells[i])
			}
		}
	}
}
