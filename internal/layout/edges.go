package layout

// Edges holds one value per side, used for padding, margin, touch
// expansion and border widths.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL takes the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal is the width the edges take away from a box.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical is the height the edges take away from a box.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
