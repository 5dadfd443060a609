package mount

import (
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/grindlemire/go-mount/internal/debug"
	"github.com/grindlemire/go-mount/internal/layout"
)

// FlattenOptions control how a layout tree is flattened.
type FlattenOptions struct {
	// ForegroundOnHost folds a node's foreground into its host output
	// instead of emitting a separate output after its children.
	ForegroundOnHost bool
	// AccessibilityEnabled makes content descriptions and explicit
	// accessibility importance require a host.
	AccessibilityEnabled bool
	// Logger receives collision reports. Defaults to debug.Logger().
	Logger *slog.Logger
}

var stateSerial atomic.Uint64

// LayoutState is the flattened result of one layout calculation: ordered
// outputs, their top and bottom sort orders, visibility outputs and the diff
// tree used by the next calculation. It is immutable once returned and may
// be read from any goroutine.
type LayoutState struct {
	serial     uint64
	prevSerial uint64
	generation uint64

	root       *Component
	widthSpec  SizeSpec
	heightSpec SizeSpec
	width      int
	height     int

	outputs    []*Output
	byTop      []*Output
	byBottom   []*Output
	visibility []*VisibilityOutput
	index      map[uint64]int
	collisions int

	diffRoot *DiffNode
}

// CalculateLayout resolves root under the given constraints and flattens the
// result. When prev is non-nil its diff tree is used to skip measurements of
// content-equivalent nodes and its outputs decide each UpdateState.
func CalculateLayout(root *Component, widthSpec, heightSpec SizeSpec, prev *LayoutState, opts FlattenOptions) *LayoutState {
	if opts.Logger == nil {
		opts.Logger = debug.Logger()
	}
	s := &LayoutState{
		serial:     stateSerial.Add(1),
		generation: 1,
		root:       root,
		widthSpec:  widthSpec,
		heightSpec: heightSpec,
	}
	var prevDiff *DiffNode
	if prev != nil {
		s.prevSerial = prev.serial
		s.generation = prev.generation + 1
		prevDiff = prev.diffRoot
	}

	var rootNode *LayoutNode
	var size Size
	if root != nil {
		rootNode = buildTree(root, localKey(root))
		applyDiff(rootNode, prevDiff)
		size = layout.CalculateWithSpecs(rootNode, widthSpec, heightSpec)
	}
	s.width, s.height = size.Width, size.Height

	f := newFlattener(s, prev, opts)
	f.flatten(rootNode, size)
	s.collisions = f.collisions

	if rootNode != nil {
		s.diffRoot = newDiffTree(rootNode)
	}
	s.sort()

	opts.Logger.Debug("layout calculated",
		"generation", s.generation,
		"outputs", len(s.outputs),
		"visibility", len(s.visibility),
		"collisions", s.collisions,
		"width", s.width,
		"height", s.height)
	return s
}

func (s *LayoutState) sort() {
	s.byTop = slices.Clone(s.outputs)
	slices.SortStableFunc(s.byTop, func(a, b *Output) int {
		return a.Bounds.Top() - b.Bounds.Top()
	})
	s.byBottom = slices.Clone(s.outputs)
	slices.SortStableFunc(s.byBottom, func(a, b *Output) int {
		return a.Bounds.Bottom() - b.Bounds.Bottom()
	})
}

// Outputs returns the outputs in display order. The slice must not be
// modified.
func (s *LayoutState) Outputs() []*Output { return s.outputs }

// OutputCount returns the number of outputs.
func (s *LayoutState) OutputCount() int { return len(s.outputs) }

// OutputAt returns the output at display index i.
func (s *LayoutState) OutputAt(i int) *Output { return s.outputs[i] }

// IndexOf returns the display index of the output with the given id.
func (s *LayoutState) IndexOf(id uint64) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// OutputsByTop returns outputs sorted by top edge, ties in display order.
func (s *LayoutState) OutputsByTop() []*Output { return s.byTop }

// OutputsByBottom returns outputs sorted by bottom edge, ties in display
// order.
func (s *LayoutState) OutputsByBottom() []*Output { return s.byBottom }

// VisibilityOutputs returns visibility outputs in flatten order.
func (s *LayoutState) VisibilityOutputs() []*VisibilityOutput { return s.visibility }

// Width returns the resolved root width.
func (s *LayoutState) Width() int { return s.width }

// Height returns the resolved root height.
func (s *LayoutState) Height() int { return s.height }

// WidthSpec returns the width constraint the state was calculated with.
func (s *LayoutState) WidthSpec() SizeSpec { return s.widthSpec }

// HeightSpec returns the height constraint the state was calculated with.
func (s *LayoutState) HeightSpec() SizeSpec { return s.heightSpec }

// Root returns the component the state was calculated from.
func (s *LayoutState) Root() *Component { return s.root }

// DiffRoot returns the diff tree for the next calculation.
func (s *LayoutState) DiffRoot() *DiffNode { return s.diffRoot }

// Generation returns how many calculations led to this state.
func (s *LayoutState) Generation() uint64 { return s.generation }

// Collisions returns how many stable id collisions were resolved.
func (s *LayoutState) Collisions() int { return s.collisions }

// follows reports whether s was calculated directly against prev.
func (s *LayoutState) follows(prev *LayoutState) bool {
	return prev != nil && s.prevSerial == prev.serial
}
