// Layout types are aliases of internal/layout so callers need one import.

package mount

import "github.com/grindlemire/go-mount/internal/layout"

// Direction is the axis a container stacks children along.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify places leftover main-axis space.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align places children on the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Value is a style dimension.
type Value = layout.Value

// LayoutStyle is the box model a Component is laid out with.
type LayoutStyle = layout.Style

// Rect is used for output bounds, viewports and touch areas.
type Rect = layout.Rect

// Edges are per-side padding, margin, touch expansion or border widths.
type Edges = layout.Edges

// Size is a measured width and height.
type Size = layout.Size

// SizeSpec is a (mode, magnitude) constraint on one axis.
type SizeSpec = layout.SizeSpec

// SpecMode is the mode of a SizeSpec.
type SpecMode = layout.SpecMode

const (
	Unspecified = layout.Unspecified
	Exactly     = layout.Exactly
	AtMost      = layout.AtMost
)

// Fixed is n cells.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent is p percent of the parent's content box.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto sizes from measured content.
func Auto() Value {
	return layout.Auto()
}

// DefaultLayoutStyle is a stretching column.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect returns the rect at (x, y) with the given size.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectLTRB creates a Rect from its four edges.
func RectLTRB(left, top, right, bottom int) Rect {
	return layout.RectLTRB(left, top, right, bottom)
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL takes the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// MakeSizeSpec packs a size and mode into a SizeSpec.
func MakeSizeSpec(size int, mode SpecMode) SizeSpec {
	return layout.MakeSizeSpec(size, mode)
}

// ExactSpec returns an EXACTLY spec of the given size.
func ExactSpec(size int) SizeSpec {
	return layout.ExactSpec(size)
}

// AtMostSpec returns an AT_MOST spec of the given size.
func AtMostSpec(size int) SizeSpec {
	return layout.AtMostSpec(size)
}

// UnspecifiedSpec returns the unbounded spec.
func UnspecifiedSpec() SizeSpec {
	return layout.UnspecifiedSpec()
}
