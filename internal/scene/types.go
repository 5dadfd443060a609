package scene

import (
	"sort"
	"strconv"
	"strings"

	mount "github.com/grindlemire/go-mount"
)

// Primitive is the content instance every scene type creates. It stands in
// for a platform view or drawable.
type Primitive struct {
	Type   string
	Props  any
	Bounds mount.Rect
	State  mount.HostState
}

// SetParentState implements mount.ParentStateReceiver.
func (p *Primitive) SetParentState(s mount.HostState) { p.State = s }

// TextProps are the props of text and button content.
type TextProps struct {
	Text string
}

// ImageProps are the props of image content.
type ImageProps struct {
	Source string
}

// PaintProps are the props of background and foreground paint.
type PaintProps struct {
	Color string
}

// Recorder counts lifecycle calls and collects visibility events for the
// types it was passed to.
type Recorder struct {
	Creates   map[string]int
	Binds     int
	Unbinds   int
	SetBounds int
	Measures  int
	Events    []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Creates: make(map[string]int)}
}

// Event records a visibility event.
func (r *Recorder) Event(key, event string) {
	r.Events = append(r.Events, key+" "+event)
}

// TakeEvents returns the collected events and clears them.
func (r *Recorder) TakeEvents() []string {
	ev := r.Events
	r.Events = nil
	return ev
}

// TotalCreates returns the number of content instances created.
func (r *Recorder) TotalCreates() int {
	n := 0
	for _, c := range r.Creates {
		n += c
	}
	return n
}

// CreateSummary formats creations per type in name order.
func (r *Recorder) CreateSummary() string {
	names := make([]string, 0, len(r.Creates))
	for name := range r.Creates {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + strconv.Itoa(r.Creates[name])
	}
	return strings.Join(parts, " ")
}

// Types are the content types scenes are built from.
type Types struct {
	Text   *mount.ContentType
	Image  *mount.ContentType
	Button *mount.ContentType
	Paint  *mount.ContentType
}

// NewTypes creates the built-in content types. All lifecycle calls are
// counted on rec.
func NewTypes(rec *Recorder) *Types {
	return &Types{
		Text:   newType(rec, "Text", mount.KindDrawable, measureText(rec, 0)),
		Image:  newType(rec, "Image", mount.KindDrawable, nil),
		Button: newType(rec, "Button", mount.KindView, measureText(rec, 1)),
		Paint:  newType(rec, "Paint", mount.KindDrawable, nil),
	}
}

func newType(rec *Recorder, name string, kind mount.ContentKind, measure func(any, mount.SizeSpec, mount.SizeSpec) (int, int)) *mount.ContentType {
	return &mount.ContentType{
		Name: name,
		Kind: kind,
		Create: func() mount.Content {
			rec.Creates[name]++
			return &Primitive{Type: name}
		},
		Bind: func(c mount.Content, props any) {
			rec.Binds++
			c.(*Primitive).Props = props
		},
		Unbind: func(c mount.Content, _ any) {
			rec.Unbinds++
			c.(*Primitive).Props = nil
		},
		SetBounds: func(c mount.Content, b mount.Rect) {
			rec.SetBounds++
			c.(*Primitive).Bounds = b
		},
		Measure: measure,
	}
}

// measureText sizes text one cell per rune, wrapping to the width
// constraint. pad is added on every side.
func measureText(rec *Recorder, pad int) func(any, mount.SizeSpec, mount.SizeSpec) (int, int) {
	return func(props any, widthSpec, _ mount.SizeSpec) (int, int) {
		rec.Measures++
		p, _ := props.(TextProps)
		return wrap(len([]rune(p.Text)), widthSpec, pad)
	}
}

func wrap(runes int, widthSpec mount.SizeSpec, pad int) (int, int) {
	width, lines := runes, 1
	if runes == 0 {
		lines = 0
	}
	if widthSpec.Mode() != mount.Unspecified {
		avail := widthSpec.Size() - 2*pad
		if avail > 0 && width > avail {
			lines = (runes + avail - 1) / avail
			width = avail
		}
	}
	return width + 2*pad, lines + 2*pad
}
