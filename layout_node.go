package mount

import "github.com/grindlemire/go-mount/internal/layout"

// LayoutNode is the resolved per-node tree handed to the solver. It is built
// fresh from a Component tree on every calculation and never shared between
// generations.
type LayoutNode struct {
	component *Component
	key       string
	children  []*LayoutNode
	layout    layout.Layout

	// nested is non-nil only for deferred components.
	nested nestedTree

	// memo holds every measurement taken this generation, plus any copied
	// from the previous generation by applyDiff.
	memo []measurement
}

// measurement is one cached (constraint, result) pair.
type measurement struct {
	widthSpec  SizeSpec
	heightSpec SizeSpec
	width      int
	height     int
}

func (m measurement) compatible(widthSpec, heightSpec SizeSpec) bool {
	return layout.CanReuseMeasurement(m.widthSpec, widthSpec, m.width) &&
		layout.CanReuseMeasurement(m.heightSpec, heightSpec, m.height)
}

// nestedTree is the state of a deferred node: either nestedUnresolved or
// nestedResolved.
type nestedTree interface {
	resolver() ResolveFunc
}

// nestedUnresolved has not been asked for its children yet.
type nestedUnresolved struct {
	resolve ResolveFunc
}

func (n *nestedUnresolved) resolver() ResolveFunc { return n.resolve }

// nestedResolved holds the sub-tree produced for a concrete pair of specs.
type nestedResolved struct {
	resolve    ResolveFunc
	component  *Component
	widthSpec  SizeSpec
	heightSpec SizeSpec
	size       Size
	measured   bool

	// root is built lazily from component. prevDiff is the previous
	// generation's diff of the nested tree, applied when root is built.
	root     *LayoutNode
	prevDiff *DiffNode
}

func (n *nestedResolved) resolver() ResolveFunc { return n.resolve }

// compatible reports whether this resolution can answer the given specs
// without calling the resolver again.
func (n *nestedResolved) compatible(widthSpec, heightSpec SizeSpec) bool {
	if !n.measured {
		return n.widthSpec == widthSpec && n.heightSpec == heightSpec
	}
	return layout.CanReuseMeasurement(n.widthSpec, widthSpec, n.size.Width) &&
		layout.CanReuseMeasurement(n.heightSpec, heightSpec, n.size.Height)
}

func (n *nestedResolved) tree(holderKey string) *LayoutNode {
	if n.root == nil && n.component != nil {
		n.root = buildTree(n.component, childKey(holderKey, localKey(n.component)))
		applyDiff(n.root, n.prevDiff)
	}
	return n.root
}

// buildTree creates the LayoutNode tree for c with c's global key.
func buildTree(c *Component, key string) *LayoutNode {
	n := &LayoutNode{component: c, key: key}
	if c.resolve != nil {
		n.nested = &nestedUnresolved{resolve: c.resolve}
		return n
	}
	if len(c.children) == 0 {
		return n
	}
	keys := siblingKeys(key, c.children)
	n.children = make([]*LayoutNode, len(c.children))
	for i, child := range c.children {
		n.children[i] = buildTree(child, keys[i])
	}
	return n
}

// Component returns the component this node was built from.
func (n *LayoutNode) Component() *Component { return n.component }

// Key returns the node's global identity key.
func (n *LayoutNode) Key() string { return n.key }

// Children returns the child nodes. Deferred nodes have none; their
// resolved sub-tree is reached through the nested state.
func (n *LayoutNode) Children() []*LayoutNode { return n.children }

// Bounds returns the computed border box in root coordinates.
func (n *LayoutNode) Bounds() Rect { return n.layout.Rect }

// LayoutStyle implements layout.Layoutable.
func (n *LayoutNode) LayoutStyle() layout.Style { return n.component.style }

// LayoutChildren implements layout.Layoutable.
func (n *LayoutNode) LayoutChildren() []layout.Layoutable {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]layout.Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// SetLayout implements layout.Layoutable.
func (n *LayoutNode) SetLayout(l layout.Layout) { n.layout = l }

// GetLayout implements layout.Layoutable.
func (n *LayoutNode) GetLayout() layout.Layout { return n.layout }

// Measure implements layout.Layoutable. A compatible cached measurement,
// whether taken earlier this generation or carried over by the diff, is
// returned without calling into the content's measure function.
func (n *LayoutNode) Measure(widthSpec, heightSpec SizeSpec) (int, int) {
	for _, m := range n.memo {
		if m.compatible(widthSpec, heightSpec) {
			return widthSpec.Resolve(m.width), heightSpec.Resolve(m.height)
		}
	}

	var w, h int
	switch {
	case n.nested != nil:
		w, h = n.measureNested(widthSpec, heightSpec)
	case len(n.children) > 0:
		w, h = layout.MeasureChildren(n, widthSpec, heightSpec)
	default:
		w, h = n.measureLeaf(widthSpec, heightSpec)
	}
	n.memo = append(n.memo, measurement{
		widthSpec:  widthSpec,
		heightSpec: heightSpec,
		width:      w,
		height:     h,
	})
	return w, h
}

func (n *LayoutNode) measureLeaf(widthSpec, heightSpec SizeSpec) (int, int) {
	c := n.component
	if c.typ != nil && c.typ.Measure != nil {
		w, h := c.typ.Measure(c.props, widthSpec, heightSpec)
		return widthSpec.Resolve(w), heightSpec.Resolve(h)
	}
	pad := c.style.Padding
	return widthSpec.Resolve(pad.Horizontal()), heightSpec.Resolve(pad.Vertical())
}

func (n *LayoutNode) measureNested(widthSpec, heightSpec SizeSpec) (int, int) {
	r := n.resolveNested(widthSpec, heightSpec)
	w, h := widthSpec.Resolve(0), heightSpec.Resolve(0)
	if root := r.tree(n.key); root != nil {
		mw, mh := layout.MeasureChild(root, widthSpec, heightSpec)
		w, h = widthSpec.Resolve(mw), heightSpec.Resolve(mh)
	}
	r.size = Size{Width: w, Height: h}
	r.measured = true
	return w, h
}

// resolveNested returns the nested sub-tree for the given specs, calling the
// resolver only when no compatible resolution exists.
func (n *LayoutNode) resolveNested(widthSpec, heightSpec SizeSpec) *nestedResolved {
	var prevDiff *DiffNode
	if r, ok := n.nested.(*nestedResolved); ok {
		if r.compatible(widthSpec, heightSpec) {
			return r
		}
		prevDiff = r.prevDiff
		if r.root != nil {
			prevDiff = newDiffTree(r.root)
		}
	}
	resolve := n.nested.resolver()
	r := &nestedResolved{
		resolve:    resolve,
		component:  resolve(widthSpec, heightSpec),
		widthSpec:  widthSpec,
		heightSpec: heightSpec,
		prevDiff:   prevDiff,
	}
	n.nested = r
	return r
}

// resolveForBounds resolves a deferred node against its final size, reusing
// the measured resolution when the exact size is compatible with it.
func (n *LayoutNode) resolveForBounds() *LayoutNode {
	rect := n.layout.Rect
	r := n.resolveNested(layout.ExactSpec(rect.Width), layout.ExactSpec(rect.Height))
	if !r.measured {
		r.size = Size{Width: rect.Width, Height: rect.Height}
		r.measured = true
	}
	root := r.tree(n.key)
	if root != nil {
		layout.CalculateAt(root, rect)
	}
	return root
}
