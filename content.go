package mount

// ContentKind classifies the platform primitive a ContentType mounts.
type ContentKind uint8

const (
	// KindDrawable is paint-only content registered on its host's draw list.
	KindDrawable ContentKind = iota
	// KindView is interactive content attached to its host as a child and
	// doing its own hit testing.
	KindView
	// KindHost is a composite container. Its content is always a *Host.
	KindHost
)

func (k ContentKind) String() string {
	switch k {
	case KindDrawable:
		return "drawable"
	case KindView:
		return "view"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// Content is an opaque platform content instance. The core never inspects
// it beyond handing it back to its ContentType.
type Content any

// ContentType is the operation table a collaborator supplies for one
// concrete kind of output. Create is required; everything else is optional.
type ContentType struct {
	Name string
	Kind ContentKind

	// Create allocates a fresh content instance.
	Create func() Content
	// Bind applies props to content.
	Bind func(c Content, props any)
	// Unbind releases whatever Bind attached.
	Unbind func(c Content, props any)
	// SetBounds positions content, relative to its host.
	SetBounds func(c Content, bounds Rect)
	// ShouldUpdate reports whether a props change requires the content to
	// be destroyed and recreated instead of rebound in place. Nil rebinds.
	ShouldUpdate func(prev, next any) bool
	// Measure sizes leaf content under the given constraints.
	Measure func(props any, widthSpec, heightSpec SizeSpec) (width, height int)

	// PoolSize caps recycled instances kept per Pool. Zero uses the pool's
	// default; negative disables pooling.
	PoolSize int
}

const defaultPoolSize = 3

func (t *ContentType) create() Content {
	if t.Kind == KindHost && t.Create == nil {
		return NewHost()
	}
	return t.Create()
}

func (t *ContentType) bind(c Content, props any) {
	if t.Bind != nil {
		t.Bind(c, props)
	}
}

func (t *ContentType) unbind(c Content, props any) {
	if t.Unbind != nil {
		t.Unbind(c, props)
	}
}

func (t *ContentType) setBounds(c Content, bounds Rect) {
	if t.SetBounds != nil {
		t.SetBounds(c, bounds)
	}
}

func (t *ContentType) shouldUpdate(prev, next any) bool {
	if t.ShouldUpdate != nil {
		return t.ShouldUpdate(prev, next)
	}
	return false
}

func (t *ContentType) poolSize(fallback int) int {
	if t.PoolSize == 0 {
		return fallback
	}
	return max(t.PoolSize, 0)
}

func (t *ContentType) interactive() bool {
	return t != nil && t.Kind != KindDrawable
}

// HostType is the content type of every host output.
var HostType = &ContentType{
	Name: "Host",
	Kind: KindHost,
	Create: func() Content {
		return NewHost()
	},
	SetBounds: func(c Content, bounds Rect) {
		c.(*Host).setBounds(bounds)
	},
}

// Decoration is paint-only content drawn behind (background) or in front of
// (foreground) a node.
type Decoration struct {
	Type  *ContentType
	Props any
}

// Border describes per-edge widths and colors. An edge draws only when it
// has both a width and a non-zero color.
type Border struct {
	Widths Edges
	// Colors in Top, Right, Bottom, Left order.
	Colors [4]uint32
}

// Visible reports whether any edge would draw.
func (b Border) Visible() bool {
	widths := [4]int{b.Widths.Top, b.Widths.Right, b.Widths.Bottom, b.Widths.Left}
	for i, w := range widths {
		if w > 0 && b.Colors[i] != 0 {
			return true
		}
	}
	return false
}

// BorderDrawable is the content created for border outputs.
type BorderDrawable struct {
	Border Border
	Bounds Rect
}

// BorderType is the content type of border outputs.
var BorderType = &ContentType{
	Name: "Border",
	Kind: KindDrawable,
	Create: func() Content {
		return &BorderDrawable{}
	},
	Bind: func(c Content, props any) {
		c.(*BorderDrawable).Border = props.(Border)
	},
	Unbind: func(c Content, _ any) {
		c.(*BorderDrawable).Border = Border{}
	},
	SetBounds: func(c Content, bounds Rect) {
		c.(*BorderDrawable).Bounds = bounds
	},
}
