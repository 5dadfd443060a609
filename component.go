package mount

import "github.com/grindlemire/go-mount/internal/layout"

const (
	columnName = "Column"
	rowName    = "Row"
)

// Importance is the accessibility importance of a node.
type Importance uint8

const (
	ImportanceAuto Importance = iota
	ImportanceYes
	ImportanceNo
	// ImportanceNoHideDescendants makes the node and all of its descendants
	// not individually accessible.
	ImportanceNoHideDescendants
)

// ResolveFunc builds the children of a deferred component once the size
// constraints handed down by its parent are known.
type ResolveFunc func(widthSpec, heightSpec SizeSpec) *Component

// Component is one node of a declarative screen description. Components are
// immutable once built and may be shared between generations.
type Component struct {
	typ   *ContentType
	name  string
	key   string
	props any

	style    layout.Style
	children []*Component

	wrapInHost           bool
	duplicateParentState bool
	enabled              *bool
	focusable            *bool
	selected             *bool
	touchExpansion       Edges
	importance           Importance
	contentDescription   string
	transitionKey        string

	background *Decoration
	foreground *Decoration
	border     Border

	handlers Handlers
	viewTags map[string]any

	visibility         *VisibilityHandlers
	visibleWidthRatio  float64
	visibleHeightRatio float64

	resolve ResolveFunc
}

// New creates a component that mounts content of the given type.
func New(typ *ContentType, opts ...Option) *Component {
	name := "<nil>"
	if typ != nil {
		name = typ.Name
	}
	return build(&Component{typ: typ, name: name}, opts)
}

// NewColumn creates a layout-only container stacking children top to bottom.
func NewColumn(opts ...Option) *Component {
	return build(&Component{name: columnName}, opts)
}

// NewRow creates a layout-only container placing children left to right.
func NewRow(opts ...Option) *Component {
	return build(&Component{name: rowName}, append([]Option{WithDirection(Row)}, opts...))
}

// Deferred creates a component whose children are only known once its size
// constraints are. name participates in identity like a content type name.
func Deferred(name string, resolve ResolveFunc, opts ...Option) *Component {
	return build(&Component{name: name, resolve: resolve}, opts)
}

func build(c *Component, opts []Option) *Component {
	c.style = layout.DefaultStyle()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the content type, or nil for layout-only components.
func (c *Component) Type() *ContentType { return c.typ }

// Name returns the type name used for identity.
func (c *Component) Name() string { return c.name }

// Key returns the explicit key, if any.
func (c *Component) Key() string { return c.key }

// Props returns the props handed to Bind.
func (c *Component) Props() any { return c.props }

// Children returns the child components.
func (c *Component) Children() []*Component { return c.children }

// IsDeferred reports whether children are resolved at measure time.
func (c *Component) IsDeferred() bool { return c.resolve != nil }

func (c *Component) hasInteraction() bool {
	return c.handlers.any() || len(c.viewTags) > 0
}

// sameContent reports whether two components would produce equivalent
// content: same concrete type and equal props.
func sameContent(a, b *Component) bool {
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ || a.name != b.name {
		return false
	}
	if a.IsDeferred() != b.IsDeferred() {
		return false
	}
	return PropsEqual(a.props, b.props)
}
