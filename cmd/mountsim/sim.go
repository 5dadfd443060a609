package main

import (
	"context"
	"log/slog"

	mount "github.com/grindlemire/go-mount"
	"github.com/grindlemire/go-mount/internal/config"
	"github.com/grindlemire/go-mount/internal/scene"
)

const (
	defaultWidth    = 80
	defaultViewport = 20
)

// simulation owns one scene file mounted through a ComponentTree. Content
// types outlive reloads so successive layouts diff against each other.
type simulation struct {
	path  string
	scene *scene.Scene
	rec   *scene.Recorder
	types *scene.Types
	tree  *mount.ComponentTree
	host  *mount.Host

	viewport int
	offset   int
}

func newSimulation(path string, cfg *config.Config, log *slog.Logger) *simulation {
	rec := scene.NewRecorder()
	host := mount.NewHost()
	return &simulation{
		path:  path,
		rec:   rec,
		types: scene.NewTypes(rec),
		host:  host,
		tree: mount.NewComponentTree(host,
			mount.WithConfig(cfg),
			mount.WithTreeLogger(log)),
	}
}

// reload reads the scene file and commits a new layout calculated in the
// background against the previous one.
func (s *simulation) reload(ctx context.Context) (*mount.LayoutState, error) {
	sc, err := scene.Load(s.path)
	if err != nil {
		return nil, err
	}
	root, err := sc.Build(s.types, s.rec)
	if err != nil {
		return nil, err
	}
	s.scene = sc
	if s.viewport = sc.Viewport; s.viewport <= 0 {
		s.viewport = defaultViewport
	}

	s.tree.SetSizeSpecs(sc.WidthSpec(), sc.HeightSpec())
	s.tree.SetRootAsync(ctx, root)
	if err := s.tree.Wait(); err != nil {
		return nil, err
	}
	s.tree.DrainUpdates()
	return s.tree.Committed(), nil
}

func (s *simulation) width() int {
	if state := s.tree.Committed(); state != nil && state.Width() > 0 {
		return state.Width()
	}
	return defaultWidth
}

// maxOffset is the largest scroll offset that still fills the viewport.
func (s *simulation) maxOffset() int {
	state := s.tree.Committed()
	if state == nil {
		return 0
	}
	return max(state.Height()-s.viewport, 0)
}

// scrollTo clamps y and mounts the viewport starting there.
func (s *simulation) scrollTo(y int) {
	s.offset = min(max(y, 0), s.maxOffset())
	s.tree.SetViewport(s.viewportRect())
}

func (s *simulation) viewportRect() mount.Rect {
	return mount.NewRect(0, s.offset, s.width(), s.viewport)
}

// mounted returns the mounted outputs in display order.
func (s *simulation) mounted() []*mount.Output {
	state := s.tree.Committed()
	if state == nil {
		return nil
	}
	ms := s.tree.MountState()
	var out []*mount.Output
	for _, o := range state.Outputs() {
		if ms.IsMounted(o.ID) {
			out = append(out, o)
		}
	}
	return out
}
