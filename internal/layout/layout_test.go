package layout

// testNode is a minimal Layoutable used by the solver tests.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout

	// intrinsic is returned by Measure for leaves.
	intrinsic    Size
	measureCalls int
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style}
}

func (n *testNode) AddChild(children ...*testNode) {
	n.children = append(n.children, children...)
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }

func (n *testNode) GetLayout() Layout { return n.layout }

func (n *testNode) Measure(widthSpec, heightSpec SizeSpec) (int, int) {
	n.measureCalls++
	if len(n.children) > 0 {
		return MeasureChildren(n, widthSpec, heightSpec)
	}
	return widthSpec.Resolve(n.intrinsic.Width), heightSpec.Resolve(n.intrinsic.Height)
}
