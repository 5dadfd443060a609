package mount

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculateLayout_Order(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	paint := newType("Paint", KindDrawable, rec)
	border := Border{Widths: EdgeAll(1), Colors: [4]uint32{1, 1, 1, 1}}

	card := NewColumn(
		WithKey("card"),
		WithSize(10, 10),
		WithBackground(paint, "bg"),
		WithForeground(paint, "fg"),
		WithBorder(border),
		WithClickHandler(func() {}),
		WithChildren(New(text, WithSize(10, 5))),
	)

	type want struct {
		typ   string
		key   string
		host  int
		flags OutputFlags
	}

	type tc struct {
		opts FlattenOptions
		want []want
	}

	tests := map[string]tc{
		"separate foreground": {
			want: []want{
				{typ: "Host", key: "Column", host: NoHost},
				{typ: "Host", key: "Column/card", host: 0},
				{typ: "Paint", key: "Column/card", host: 1, flags: FlagBackground},
				{typ: "Text", key: "Column/card/Text", host: 1},
				{typ: "Border", key: "Column/card", host: 1, flags: FlagBorder},
				{typ: "Paint", key: "Column/card", host: 1, flags: FlagForeground},
			},
		},
		"foreground on host": {
			opts: FlattenOptions{ForegroundOnHost: true},
			want: []want{
				{typ: "Host", key: "Column", host: NoHost},
				{typ: "Host", key: "Column/card", host: 0},
				{typ: "Paint", key: "Column/card", host: 1, flags: FlagBackground},
				{typ: "Text", key: "Column/card/Text", host: 1},
				{typ: "Border", key: "Column/card", host: 1, flags: FlagBorder},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := CalculateLayout(column(card), ExactSpec(10), UnspecifiedSpec(), nil, tt.opts)
			var got []want
			for _, out := range s.Outputs() {
				got = append(got, want{typ: out.Type.Name, key: out.Key, host: out.HostMarker, flags: out.Flags})
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(want{})); diff != "" {
				t.Errorf("outputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateLayout_ForegroundFoldedIntoHost(t *testing.T) {
	rec := &recorder{}
	paint := newType("Paint", KindDrawable, rec)
	card := NewColumn(WithKey("card"), WithSize(10, 10), WithForeground(paint, "fg"))

	s := CalculateLayout(column(card), ExactSpec(10), UnspecifiedSpec(), nil, FlattenOptions{ForegroundOnHost: true})

	host := findOutput(t, s, "Column/card", HostType)
	if host.Interaction == nil || host.Interaction.Foreground == nil {
		t.Fatal("foreground not folded into host interaction")
	}
	if host.Interaction.Foreground.Props != "fg" {
		t.Errorf("Foreground.Props = %v, want fg", host.Interaction.Foreground.Props)
	}
}

func TestCalculateLayout_Bounds(t *testing.T) {
	rec := &recorder{}
	item := newType("Item", KindDrawable, rec)
	s := calc(column(fixed(item, "a", 10, 10), fixed(item, "b", 10, 10)), 10, nil)

	if s.Width() != 10 || s.Height() != 20 {
		t.Fatalf("size = %dx%d, want 10x20", s.Width(), s.Height())
	}
	want := map[string]Rect{
		"Column/a": NewRect(0, 0, 10, 10),
		"Column/b": NewRect(0, 10, 10, 10),
	}
	for key, r := range want {
		if got := findOutput(t, s, key, item).Bounds; got != r {
			t.Errorf("%s bounds = %v, want %v", key, got, r)
		}
	}
	if got := s.OutputAt(0).Bounds; got != NewRect(0, 0, 10, 20) {
		t.Errorf("root host bounds = %v, want (0,0,10,20)", got)
	}
}

func TestCalculateLayout_HostMarkersPrecedeContent(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	tree := column(
		NewRow(WithClickHandler(func() {}), WithSize(10, 5), WithChildren(
			New(text, WithSize(5, 5)),
			NewColumn(WithWrapInHost(), WithSize(5, 5), WithChildren(New(text, WithSize(5, 5)))),
		)),
		New(text, WithSize(10, 5)),
	)
	s := calc(tree, 10, nil)

	for _, out := range s.Outputs()[1:] {
		if out.HostMarker >= out.Index {
			t.Errorf("output %v references host %d at or after itself", out, out.HostMarker)
			continue
		}
		if !s.OutputAt(out.HostMarker).IsHost() {
			t.Errorf("output %v references non-host %d", out, out.HostMarker)
		}
	}
}

func TestCalculateLayout_RootHostAlwaysPresent(t *testing.T) {
	type tc struct {
		root *Component
	}

	tests := map[string]tc{
		"nil root":    {root: nil},
		"pruned root": {root: NewColumn(WithSize(0, 0))},
		"deferred resolving to nil": {root: Deferred("Empty", func(SizeSpec, SizeSpec) *Component {
			return nil
		})},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := CalculateLayout(tt.root, ExactSpec(0), ExactSpec(0), nil, FlattenOptions{})
			if s.OutputCount() != 1 {
				t.Fatalf("OutputCount() = %d, want 1", s.OutputCount())
			}
			root := s.OutputAt(0)
			if root.ID != RootHostID || root.HostMarker != NoHost || !root.IsHost() {
				t.Errorf("output 0 = %v, want root host", root)
			}
		})
	}
}

func TestCalculateLayout_PrunedChildContributesNothing(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	s := calc(column(
		New(text, WithKey("empty"), WithSize(0, 0)),
		New(text, WithKey("full"), WithSize(10, 10)),
	), 10, nil)

	if s.OutputCount() != 2 {
		t.Fatalf("OutputCount() = %d, want 2", s.OutputCount())
	}
	if got := s.OutputAt(1).Key; got != "Column/full" {
		t.Errorf("output 1 key = %q, want Column/full", got)
	}
}

func TestCalculateLayout_InteractiveContentNeedsNoHost(t *testing.T) {
	rec := &recorder{}
	button := newType("Button", KindView, rec)
	s := calc(column(New(button, WithSize(10, 10), WithClickHandler(func() {}), WithTouchExpansion(EdgeAll(2)))), 10, nil)

	if s.OutputCount() != 2 {
		t.Fatalf("OutputCount() = %d, want 2", s.OutputCount())
	}
	out := s.OutputAt(1)
	if out.Type != button || out.HostMarker != 0 {
		t.Fatalf("output 1 = %v, want button under root host", out)
	}
	if out.Interaction == nil {
		t.Fatal("button output has no interaction")
	}
	if got, want := out.Interaction.TouchBounds, NewRect(-2, -2, 14, 14); got != want {
		t.Errorf("TouchBounds = %v, want %v", got, want)
	}
}

func TestCalculateLayout_InteractiveRoot(t *testing.T) {
	rec := &recorder{}
	button := newType("Button", KindView, rec)
	text := newType("Text", KindDrawable, rec)
	card := &ContentType{Name: "Card", Kind: KindHost}

	type tc struct {
		root            *Component
		wantCount       int
		wantRootTyp     *ContentType
		wantProps       any
		wantRootInt     bool
		wantInteractive int // output carrying the click handler, 0 for none
		wantTransition  string
	}

	tests := map[string]tc{
		"clickable view": {
			root:            fixed(button, "b", 10, 10, WithClickHandler(func() {}), WithTransitionKey("fade")),
			wantCount:       2,
			wantRootTyp:     HostType,
			wantInteractive: 1,
			wantTransition:  "fade",
		},
		"clickable container": {
			root:        NewColumn(WithClickHandler(func() {}), WithChildren(fixed(text, "t", 10, 10))),
			wantCount:   2,
			wantRootTyp: HostType,
			wantRootInt: true,
		},
		"custom host type": {
			root:        New(card, WithProps("card"), WithSize(10, 10)),
			wantCount:   1,
			wantRootTyp: card,
			wantProps:   "card",
			wantRootInt: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := calc(tt.root, 10, nil)
			if s.OutputCount() != tt.wantCount {
				t.Fatalf("OutputCount() = %d, want %d", s.OutputCount(), tt.wantCount)
			}
			root := s.OutputAt(0)
			if root.Type != tt.wantRootTyp || root.Props != tt.wantProps {
				t.Errorf("root = %s %v, want %s %v", root.Type.Name, root.Props, tt.wantRootTyp.Name, tt.wantProps)
			}
			if got := root.Interaction != nil; got != tt.wantRootInt {
				t.Errorf("root has interaction = %v, want %v", got, tt.wantRootInt)
			}
			if tt.wantInteractive == 0 {
				return
			}
			out := s.OutputAt(tt.wantInteractive)
			if out.Interaction == nil || out.Interaction.Handlers.OnClick == nil {
				t.Errorf("output %d has no click handler", tt.wantInteractive)
			}
			if out.TransitionKey != tt.wantTransition {
				t.Errorf("output %d TransitionKey = %q, want %q", tt.wantInteractive, out.TransitionKey, tt.wantTransition)
			}
		})
	}
}

func TestCalculateLayout_NeedsHost(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	paint := newType("Paint", KindDrawable, rec)

	type tc struct {
		opts     []Option
		flatten  FlattenOptions
		wantHost bool
	}

	tests := map[string]tc{
		"plain":             {wantHost: false},
		"wrap in host":      {opts: []Option{WithWrapInHost()}, wantHost: true},
		"click handler":     {opts: []Option{WithClickHandler(func() {})}, wantHost: true},
		"view tag":          {opts: []Option{WithViewTag("id", 1)}, wantHost: true},
		"transition key":    {opts: []Option{WithTransitionKey("t")}, wantHost: true},
		"focusable":         {opts: []Option{WithFocusable(true)}, wantHost: true},
		"disabled only":     {opts: []Option{WithEnabled(false)}, wantHost: false},
		"background only":   {opts: []Option{WithBackground(paint, nil)}, wantHost: false},
		"description no a11y": {
			opts:     []Option{WithContentDescription("label")},
			wantHost: false,
		},
		"description with a11y": {
			opts:     []Option{WithContentDescription("label")},
			flatten:  FlattenOptions{AccessibilityEnabled: true},
			wantHost: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			child := New(text, append([]Option{WithSize(10, 10)}, tt.opts...)...)
			s := CalculateLayout(column(child), ExactSpec(10), UnspecifiedSpec(), nil, tt.flatten)
			gotHost := false
			for _, out := range s.Outputs()[1:] {
				if out.IsHost() {
					gotHost = true
				}
			}
			if gotHost != tt.wantHost {
				t.Errorf("host emitted = %v, want %v", gotHost, tt.wantHost)
			}
		})
	}
}

func TestCalculateLayout_TouchableDisabledPropagates(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	tree := column(NewColumn(WithKey("off"), WithEnabled(false), WithChildren(
		fixed(text, "a", 10, 10),
		fixed(text, "b", 10, 10, WithEnabled(true)),
		NewColumn(WithKey("inner"), WithChildren(fixed(text, "c", 10, 10))),
	)))
	s := calc(tree, 10, nil)

	type tc struct {
		key      string
		disabled bool
	}

	tests := map[string]tc{
		"inherits":   {key: "Column/off/a", disabled: true},
		"re-enabled": {key: "Column/off/b", disabled: false},
		"grandchild": {key: "Column/off/inner/c", disabled: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := findOutput(t, s, tt.key, text)
			if got := out.Flags.Has(FlagTouchableDisabled); got != tt.disabled {
				t.Errorf("touchable disabled = %v, want %v", got, tt.disabled)
			}
		})
	}
}

func TestCalculateLayout_NoHideDescendants(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	tree := column(
		NewColumn(WithKey("hidden"), WithImportantForAccessibility(ImportanceNoHideDescendants), WithChildren(
			fixed(text, "a", 10, 10, WithImportantForAccessibility(ImportanceYes)),
		)),
		fixed(text, "b", 10, 10, WithImportantForAccessibility(ImportanceYes)),
	)
	s := calc(tree, 10, nil)

	if got := findOutput(t, s, "Column/hidden/a", text).Importance; got != ImportanceNo {
		t.Errorf("hidden descendant importance = %d, want ImportanceNo", got)
	}
	if got := findOutput(t, s, "Column/b", text).Importance; got != ImportanceYes {
		t.Errorf("sibling importance = %d, want ImportanceYes", got)
	}
}

func TestCalculateLayout_DuplicateKeysCollide(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	s := calc(column(fixed(text, "dup", 10, 10), fixed(text, "dup", 10, 10)), 10, nil)

	if s.Collisions() != 1 {
		t.Fatalf("Collisions() = %d, want 1", s.Collisions())
	}
	first, second := s.OutputAt(1), s.OutputAt(2)
	if first.ID == second.ID {
		t.Fatal("colliding outputs share an id")
	}
	if first.UpdateState == UpdateStateRecreate {
		t.Error("first output marked for recreation")
	}
	if second.UpdateState != UpdateStateRecreate {
		t.Errorf("second UpdateState = %v, want recreate", second.UpdateState)
	}
}

func TestCalculateLayout_UpdateState(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	build := func(b string) *Component {
		return column(
			fixed(text, "a", 10, 10, WithProps("a")),
			fixed(text, "b", 10, 10, WithProps(b)),
		)
	}

	first := calc(build("b"), 10, nil)
	if got := first.OutputAt(1).UpdateState; got != UpdateStateUnknown {
		t.Errorf("UpdateState without prev = %v, want unknown", got)
	}

	second := calc(build("changed"), 10, first)
	if got := findOutput(t, second, "Column/a", text).UpdateState; got != UpdateStateReuse {
		t.Errorf("unchanged UpdateState = %v, want reuse", got)
	}
	if got := findOutput(t, second, "Column/b", text).UpdateState; got != UpdateStateUpdate {
		t.Errorf("changed UpdateState = %v, want update", got)
	}
	if second.Generation() != first.Generation()+1 {
		t.Errorf("Generation() = %d, want %d", second.Generation(), first.Generation()+1)
	}
}

func TestCalculateLayout_SortOrders(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	// Row children share a top edge but differ in height.
	tree := column(
		NewRow(WithKey("row"), WithAlign(AlignStart), WithChildren(
			fixed(text, "tall", 5, 20),
			fixed(text, "short", 5, 5),
		)),
		fixed(text, "below", 10, 5),
	)
	s := calc(tree, 10, nil)

	var tops, bottoms []int
	for _, out := range s.OutputsByTop() {
		tops = append(tops, out.Bounds.Top())
	}
	for _, out := range s.OutputsByBottom() {
		bottoms = append(bottoms, out.Bounds.Bottom())
	}
	if diff := cmp.Diff([]int{0, 0, 0, 20}, tops); diff != "" {
		t.Errorf("OutputsByTop tops mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 20, 25, 25}, bottoms); diff != "" {
		t.Errorf("OutputsByBottom bottoms mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateLayout_VisibilityOutputs(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	tree := column(
		fixed(text, "a", 10, 10, WithVisibility(VisibilityHandlers{OnVisible: func() {}}), WithVisibleRatios(0, 0.5)),
		fixed(text, "b", 10, 10),
		NewColumn(WithKey("c"), WithSize(10, 10), WithVisibility(VisibilityHandlers{OnInvisible: func() {}})),
	)
	s := calc(tree, 10, nil)

	vis := s.VisibilityOutputs()
	if len(vis) != 2 {
		t.Fatalf("len(VisibilityOutputs()) = %d, want 2", len(vis))
	}
	if vis[0].Key != "Column/a" || vis[0].VisibleHeightRatio != 0.5 || vis[0].Index != 0 {
		t.Errorf("vis[0] = %+v", vis[0])
	}
	if vis[1].Key != "Column/c" || vis[1].Bounds != NewRect(0, 20, 10, 10) {
		t.Errorf("vis[1] = %+v", vis[1])
	}
	if _, ok := s.IndexOf(vis[0].ID); ok {
		t.Error("visibility id shared with a mountable output")
	}
}
