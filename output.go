package mount

import "fmt"

// NoHost is the host marker of the root host output.
const NoHost = -1

// UpdateState tells the mount layer how an output relates to the output with
// the same id in the previous generation.
type UpdateState uint8

const (
	// UpdateStateUnknown means no previous generation was compared.
	UpdateStateUnknown UpdateState = iota
	// UpdateStateReuse means type and props are unchanged.
	UpdateStateReuse
	// UpdateStateUpdate means the output is new or its props changed.
	UpdateStateUpdate
	// UpdateStateRecreate forces mounted content to be destroyed and
	// recreated. Set on id collisions.
	UpdateStateRecreate
)

func (s UpdateState) String() string {
	switch s {
	case UpdateStateReuse:
		return "reuse"
	case UpdateStateUpdate:
		return "update"
	case UpdateStateRecreate:
		return "recreate"
	default:
		return "unknown"
	}
}

// OutputFlags are per-output style and behavior bits.
type OutputFlags uint8

const (
	FlagDuplicateParentState OutputFlags = 1 << iota
	FlagTouchableDisabled
	FlagBackground
	FlagForeground
	FlagBorder
)

// Has reports whether all bits in f2 are set.
func (f OutputFlags) Has(f2 OutputFlags) bool {
	return f&f2 == f2
}

// Interaction is the metadata an interactive primitive carries: handlers,
// tags, overrides and the expanded touch area.
type Interaction struct {
	Handlers           Handlers
	ViewTags           map[string]any
	TouchBounds        Rect
	Focusable          *bool
	Selected           *bool
	ContentDescription string
	// Foreground is set when the foreground is drawn by the host itself.
	Foreground *Decoration
}

// Output is one flattened, independently mountable unit. Outputs are
// immutable once the LayoutState holding them is returned.
type Output struct {
	ID         uint64
	Index      int
	HostMarker int
	Key        string

	Type   *ContentType
	Props  any
	Bounds Rect

	Flags              OutputFlags
	Importance         Importance
	TransitionKey      string
	ContentDescription string
	UpdateState        UpdateState

	// Interaction is nil for outputs that do not handle input.
	Interaction *Interaction
}

// IsHost reports whether the output mounts a host container.
func (o *Output) IsHost() bool {
	return o.Type != nil && o.Type.Kind == KindHost
}

func (o *Output) String() string {
	return fmt.Sprintf("#%d %s %s host=%d id=%016x", o.Index, o.Type.Name, o.Bounds, o.HostMarker, o.ID)
}

// VisibilityOutput carries visibility handlers for one node, in absolute
// coordinates.
type VisibilityOutput struct {
	ID       uint64
	Index    int
	Key      string
	Bounds   Rect
	Handlers VisibilityHandlers

	// VisibleWidthRatio and VisibleHeightRatio are the fractions of each
	// axis that must be on screen to count as visible. Zero means any
	// overlap.
	VisibleWidthRatio  float64
	VisibleHeightRatio float64
}
