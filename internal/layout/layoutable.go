package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box in root coordinates.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect
}

// Layoutable is the interface for anything that can participate in layout calculation.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// Measure returns the node's desired border-box size under the given
	// constraints. Containers usually delegate to MeasureChildren.
	Measure(widthSpec, heightSpec SizeSpec) (width, height int)
}
