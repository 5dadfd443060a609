package mount

import (
	"os"
	"testing"

	"github.com/grindlemire/go-mount/internal/debug"
)

func TestMain(m *testing.M) {
	if path := os.Getenv(debug.EnvVar); path != "" {
		debug.SetLevel("debug")
	}
	os.Exit(m.Run())
}

// --- Mock content for testing ---

// recorder counts lifecycle calls made on content types built with it.
type recorder struct {
	creates   int
	binds     int
	unbinds   int
	setBounds int
	measures  int
}

// fakeContent is the content instance every test type creates.
type fakeContent struct {
	typ    string
	props  any
	bounds Rect
	state  HostState
}

func (f *fakeContent) SetParentState(s HostState) { f.state = s }

func newType(name string, kind ContentKind, rec *recorder) *ContentType {
	return &ContentType{
		Name: name,
		Kind: kind,
		Create: func() Content {
			rec.creates++
			return &fakeContent{typ: name}
		},
		Bind: func(c Content, props any) {
			rec.binds++
			c.(*fakeContent).props = props
		},
		Unbind: func(c Content, _ any) {
			rec.unbinds++
			c.(*fakeContent).props = nil
		},
		SetBounds: func(c Content, b Rect) {
			rec.setBounds++
			c.(*fakeContent).bounds = b
		},
	}
}

// textProps drive the measured test type: every line is one pixel tall.
type textProps struct {
	Text  string
	Lines int
}

func newTextType(rec *recorder) *ContentType {
	t := newType("Text", KindDrawable, rec)
	t.Measure = func(props any, widthSpec, heightSpec SizeSpec) (int, int) {
		rec.measures++
		p := props.(textProps)
		return len(p.Text), p.Lines
	}
	return t
}

// --- Helpers ---

func findOutput(t *testing.T, s *LayoutState, key string, typ *ContentType) *Output {
	t.Helper()
	for _, out := range s.Outputs() {
		if out.Key == key && out.Type == typ {
			return out
		}
	}
	t.Fatalf("no %s output with key %q", typ.Name, key)
	return nil
}

func column(children ...*Component) *Component {
	return NewColumn(WithChildren(children...))
}

func fixed(typ *ContentType, key string, w, h int, opts ...Option) *Component {
	return New(typ, append([]Option{WithKey(key), WithSize(w, h)}, opts...)...)
}

func calc(root *Component, width int, prev *LayoutState) *LayoutState {
	return CalculateLayout(root, ExactSpec(width), UnspecifiedSpec(), prev, FlattenOptions{Logger: debug.Nop()})
}
