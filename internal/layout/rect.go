package layout

import "fmt"

// Rect is an integer rectangle. Output bounds are absolute within the
// layout root; mounted content bounds are relative to the owning host.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns the rect at (x, y) with the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectLTRB builds a Rect from its edges, the form visibility and mount
// code reason in.
func RectLTRB(left, top, right, bottom int) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Left() int { return r.X }

// Top is the key the top cursor of incremental mount sorts by.
func (r Rect) Top() int { return r.Y }

// Right is exclusive.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is exclusive. The bottom cursor sorts by it.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports a non-positive width or height. Pruned nodes and
// off-screen intersections are empty.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area is zero for empty rects.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains is used by hit testing. The right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by padding or margin. Negative edges grow it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Horizontal(),
		Height: r.Height - edges.Vertical(),
	}
}

// Outset grows r, as touch expansion does.
func (r Rect) Outset(edges Edges) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Horizontal(),
		Height: r.Height + edges.Vertical(),
	}
}

// Translate moves r by (dx, dy), converting between absolute and
// host-relative coordinates.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of r and other, or the zero Rect when they
// only touch or are disjoint.
func (r Rect) Intersect(other Rect) Rect {
	left, top := max(r.X, other.X), max(r.Y, other.Y)
	right, bottom := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Rect{}
	}
	return RectLTRB(left, top, right, bottom)
}

// Union bounds both rects, ignoring an empty one. Hosts accumulate
// invalidated regions with it.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	return RectLTRB(
		min(r.X, other.X), min(r.Y, other.Y),
		max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom()))
}

// Intersects decides whether an output is in a viewport. Touching edges do
// not count.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// String prints the edges as (left,top,right,bottom).
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Right(), r.Bottom())
}
