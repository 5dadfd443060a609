package layout

// Direction is the main axis children are stacked along.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// Justify places leftover main-axis space.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween // gaps between children only
	JustifySpaceAround  // half gaps at the ends
	JustifySpaceEvenly  // full gaps at the ends
)

// Align places a child on the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	// AlignStretch measures children with an exact cross size.
	AlignStretch
)

// Style is the box model of one component.
type Style struct {
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int

	FlexGrow   float64
	FlexShrink float64
	AlignSelf  *Align // overrides the parent's AlignItems

	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with column direction and stretch alignment,
// the usual shape for scrolling lists.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Column,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

func (s Style) alignFor(child Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return s.AlignItems
}
