package mount

// DiffNode mirrors one LayoutNode of a finished calculation: the component
// it came from, the measurements taken, the resolved nested tree of a
// deferred node, and its children. The next calculation reads it to skip
// measuring content-equivalent nodes.
type DiffNode struct {
	component    *Component
	measurements []measurement
	nested       *nestedDiff
	children     []*DiffNode
}

// nestedDiff caches a deferred node's resolution.
type nestedDiff struct {
	component  *Component
	widthSpec  SizeSpec
	heightSpec SizeSpec
	size       Size
	root       *DiffNode
}

func newDiffTree(n *LayoutNode) *DiffNode {
	d := &DiffNode{
		component:    n.component,
		measurements: n.memo,
	}
	if r, ok := n.nested.(*nestedResolved); ok && r.measured {
		d.nested = &nestedDiff{
			component:  r.component,
			widthSpec:  r.widthSpec,
			heightSpec: r.heightSpec,
			size:       r.size,
			root:       r.prevDiff,
		}
		if r.root != nil {
			d.nested.root = newDiffTree(r.root)
		}
	}
	if len(n.children) > 0 {
		d.children = make([]*DiffNode, len(n.children))
		for i, c := range n.children {
			d.children[i] = newDiffTree(c)
		}
	}
	return d
}

// Component returns the component the entry was captured from.
func (d *DiffNode) Component() *Component { return d.component }

// Children returns the child entries.
func (d *DiffNode) Children() []*DiffNode { return d.children }

// LastWidthSpec returns the width constraint of the most recent measurement.
func (d *DiffNode) LastWidthSpec() SizeSpec { return d.last().widthSpec }

// LastHeightSpec returns the height constraint of the most recent
// measurement.
func (d *DiffNode) LastHeightSpec() SizeSpec { return d.last().heightSpec }

// LastMeasuredWidth returns the most recently measured width.
func (d *DiffNode) LastMeasuredWidth() int { return d.last().width }

// LastMeasuredHeight returns the most recently measured height.
func (d *DiffNode) LastMeasuredHeight() int { return d.last().height }

// Measured reports whether the node was measured at all.
func (d *DiffNode) Measured() bool { return len(d.measurements) > 0 }

func (d *DiffNode) last() measurement {
	if len(d.measurements) == 0 {
		return measurement{}
	}
	return d.measurements[len(d.measurements)-1]
}

// applyDiff walks a new tree and the previous diff tree in lockstep and
// copies measurements onto content-equivalent nodes. A child count mismatch
// invalidates the position and everything below it.
func applyDiff(n *LayoutNode, d *DiffNode) {
	if n == nil || d == nil {
		return
	}
	if len(n.children) != len(d.children) {
		return
	}
	if reusesMeasurement(n) && sameContent(n.component, d.component) {
		n.memo = append(n.memo[:0], d.measurements...)
		if d.nested != nil {
			n.nested = &nestedResolved{
				resolve:    n.component.resolve,
				component:  d.nested.component,
				widthSpec:  d.nested.widthSpec,
				heightSpec: d.nested.heightSpec,
				size:       d.nested.size,
				measured:   true,
				prevDiff:   d.nested.root,
			}
		}
	}
	for i, child := range n.children {
		applyDiff(child, d.children[i])
	}
}

// reusesMeasurement reports whether a node's cached size is worth carrying
// across generations. Containers are re-measured from their children so a
// change deep in the tree is always seen.
func reusesMeasurement(n *LayoutNode) bool {
	c := n.component
	if c.resolve != nil {
		return true
	}
	return len(n.children) == 0 && c.typ != nil && c.typ.Measure != nil
}
