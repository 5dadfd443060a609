// Package scene decodes YAML scene files into component trees.
//
// A scene names the root constraints and a tree of nodes:
//
//	width: 40
//	viewport: 10
//	root:
//	  type: column
//	  children:
//	    - type: text
//	      key: title
//	      text: Hello
//	    - type: list
//	      count: 20
package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	mount "github.com/grindlemire/go-mount"
)

// ErrUnknownType is returned for nodes whose type is not built in.
var ErrUnknownType = errors.New("unknown node type")

// Scene is a decoded scene file.
type Scene struct {
	// Width is the exact root width. Zero leaves it unspecified.
	Width int `yaml:"width"`
	// Height is the exact root height. Zero leaves it unspecified.
	Height int `yaml:"height"`
	// Viewport is the viewport height used by the simulator.
	Viewport int  `yaml:"viewport"`
	Root     Node `yaml:"root"`
}

// Node is one component in a scene.
type Node struct {
	Type string `yaml:"type"`
	Key  string `yaml:"key,omitempty"`

	Text   string `yaml:"text,omitempty"`
	Source string `yaml:"source,omitempty"`
	// Count is the number of rows a list resolves to.
	Count int `yaml:"count,omitempty"`

	Width   int     `yaml:"width,omitempty"`
	Height  int     `yaml:"height,omitempty"`
	Padding int     `yaml:"padding,omitempty"`
	Gap     int     `yaml:"gap,omitempty"`
	Grow    float64 `yaml:"grow,omitempty"`

	Host        bool   `yaml:"host,omitempty"`
	Click       bool   `yaml:"click,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
	Transition  string `yaml:"transition,omitempty"`
	Description string `yaml:"description,omitempty"`
	Background  string `yaml:"background,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Border      int    `yaml:"border,omitempty"`
	Visibility  bool   `yaml:"visibility,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

// Parse decodes a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if s.Root.Type == "" {
		return nil, errors.New("parsing scene: missing root")
	}
	return &s, nil
}

// Load reads and decodes a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// WidthSpec returns the root width constraint.
func (s *Scene) WidthSpec() mount.SizeSpec {
	if s.Width > 0 {
		return mount.ExactSpec(s.Width)
	}
	return mount.UnspecifiedSpec()
}

// HeightSpec returns the root height constraint.
func (s *Scene) HeightSpec() mount.SizeSpec {
	if s.Height > 0 {
		return mount.ExactSpec(s.Height)
	}
	return mount.UnspecifiedSpec()
}

// Build creates the component tree. Click handlers and visibility events
// are reported to rec.
func (s *Scene) Build(types *Types, rec *Recorder) (*mount.Component, error) {
	b := builder{types: types, rec: rec}
	return b.node(s.Root, "root")
}

type builder struct {
	types *Types
	rec   *Recorder
}

func (b builder) node(n Node, path string) (*mount.Component, error) {
	opts, err := b.options(n, path)
	if err != nil {
		return nil, err
	}

	switch n.Type {
	case "column":
		return mount.NewColumn(opts...), nil
	case "row":
		return mount.NewRow(opts...), nil
	case "text":
		return mount.New(b.types.Text, append(opts, mount.WithProps(TextProps{Text: n.Text}))...), nil
	case "button":
		return mount.New(b.types.Button, append(opts, mount.WithProps(TextProps{Text: n.Text}))...), nil
	case "image":
		return mount.New(b.types.Image, append(opts, mount.WithProps(ImageProps{Source: n.Source}))...), nil
	case "list":
		return mount.Deferred("List", b.list(n), opts...), nil
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownType, n.Type)
	}
}

// list resolves to one text row per item, each as wide as the list.
func (b builder) list(n Node) mount.ResolveFunc {
	count, types := n.Count, b.types
	return func(_, _ mount.SizeSpec) *mount.Component {
		rows := make([]*mount.Component, count)
		for i := range rows {
			rows[i] = mount.New(types.Text,
				mount.WithKey("item"+strconv.Itoa(i)),
				mount.WithProps(TextProps{Text: "item " + strconv.Itoa(i)}))
		}
		return mount.NewColumn(mount.WithChildren(rows...))
	}
}

func (b builder) options(n Node, path string) ([]mount.Option, error) {
	var opts []mount.Option
	if n.Key != "" {
		opts = append(opts, mount.WithKey(n.Key))
	}
	if n.Width > 0 {
		opts = append(opts, mount.WithWidth(n.Width))
	}
	if n.Height > 0 {
		opts = append(opts, mount.WithHeight(n.Height))
	}
	if n.Padding > 0 {
		opts = append(opts, mount.WithPadding(n.Padding))
	}
	if n.Gap > 0 {
		opts = append(opts, mount.WithGap(n.Gap))
	}
	if n.Grow > 0 {
		opts = append(opts, mount.WithFlexGrow(n.Grow))
	}
	if n.Host {
		opts = append(opts, mount.WithWrapInHost())
	}
	if n.Disabled {
		opts = append(opts, mount.WithEnabled(false))
	}
	if n.Transition != "" {
		opts = append(opts, mount.WithTransitionKey(n.Transition))
	}
	if n.Description != "" {
		opts = append(opts, mount.WithContentDescription(n.Description))
	}
	if n.Background != "" {
		opts = append(opts, mount.WithBackground(b.types.Paint, PaintProps{Color: n.Background}))
	}
	if n.Foreground != "" {
		opts = append(opts, mount.WithForeground(b.types.Paint, PaintProps{Color: n.Foreground}))
	}
	if n.Border > 0 {
		opts = append(opts, mount.WithBorder(mount.Border{
			Widths: mount.EdgeAll(n.Border),
			Colors: [4]uint32{1, 1, 1, 1},
		}))
	}

	name := n.Key
	if name == "" {
		name = path
	}
	if n.Click {
		rec := b.rec
		opts = append(opts, mount.WithClickHandler(func() { rec.Event(name, "click") }))
	}
	if n.Visibility {
		opts = append(opts, mount.WithVisibility(b.visibility(name)))
	}

	var children []*mount.Component
	for i, child := range n.Children {
		c, err := b.node(child, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if len(children) > 0 {
		opts = append(opts, mount.WithChildren(children...))
	}
	return opts, nil
}

func (b builder) visibility(name string) mount.VisibilityHandlers {
	rec := b.rec
	on := func(ev string) func() {
		return func() { rec.Event(name, ev) }
	}
	return mount.VisibilityHandlers{
		OnVisible:        on("visible"),
		OnInvisible:      on("invisible"),
		OnFocused:        on("focused"),
		OnUnfocused:      on("unfocused"),
		OnFullImpression: on("full"),
	}
}
