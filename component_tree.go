package mount

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-mount/internal/config"
	"github.com/grindlemire/go-mount/internal/debug"
)

const defaultQueueSize = 16

// TreeOption configures a ComponentTree.
type TreeOption func(*ComponentTree)

// WithSizeSpecs sets the root constraints. Defaults to an unspecified
// width and height.
func WithSizeSpecs(widthSpec, heightSpec SizeSpec) TreeOption {
	return func(t *ComponentTree) {
		t.widthSpec, t.heightSpec = widthSpec, heightSpec
	}
}

// WithFlattenOptions sets the flatten options used for every calculation.
func WithFlattenOptions(opts FlattenOptions) TreeOption {
	return func(t *ComponentTree) {
		t.flatten = opts
	}
}

// WithMountOptions passes options through to the tree's MountState.
func WithMountOptions(opts ...MountOption) TreeOption {
	return func(t *ComponentTree) {
		t.mountOpts = append(t.mountOpts, opts...)
	}
}

// WithTreeLogger sets the logger for the tree and its MountState.
func WithTreeLogger(l *slog.Logger) TreeOption {
	return func(t *ComponentTree) {
		t.log = l
	}
}

// WithQueueSize sets the capacity of the update queue.
func WithQueueSize(n int) TreeOption {
	return func(t *ComponentTree) {
		if n > 0 {
			t.updates = make(chan func(), n)
		}
	}
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg *config.Config) TreeOption {
	return func(t *ComponentTree) {
		t.flatten.ForegroundOnHost = cfg.Mount.ForegroundOnHost
		t.flatten.AccessibilityEnabled = cfg.Mount.AccessibilityEnabled
		t.processVis = cfg.Visibility.Process
		t.mountOpts = append(t.mountOpts,
			WithIncrementalMount(cfg.Mount.Incremental),
			WithVisibilityConfig(VisibilityConfig{FocusedRatio: cfg.Visibility.FocusedRatio}),
			WithPool(NewPool(cfg.Mount.PoolSize)),
		)
	}
}

// ComponentTree owns a root component, the committed LayoutState and the
// MountState it is mounted through. Layout may be calculated on background
// goroutines; commits and mounting happen on the owning thread through the
// update queue.
type ComponentTree struct {
	mu         sync.Mutex
	root       *Component
	committed  *LayoutState
	requested  uint64
	widthSpec  SizeSpec
	heightSpec SizeSpec
	flatten    FlattenOptions
	group      *errgroup.Group

	updates   chan func()
	mount     *MountState
	mountOpts []MountOption
	log       *slog.Logger

	viewport    Rect
	hasViewport bool
	processVis  bool
}

// NewComponentTree creates a tree mounting into host.
func NewComponentTree(host *Host, opts ...TreeOption) *ComponentTree {
	t := &ComponentTree{
		widthSpec:  UnspecifiedSpec(),
		heightSpec: UnspecifiedSpec(),
		group:      new(errgroup.Group),
		updates:    make(chan func(), defaultQueueSize),
		log:        debug.Logger(),
		processVis: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.flatten.Logger == nil {
		t.flatten.Logger = t.log
	}
	t.mount = NewMountState(host, append([]MountOption{WithLogger(t.log)}, t.mountOpts...)...)
	return t
}

// SetRoot calculates the layout for root and commits it. Must be called on
// the owning thread.
func (t *ComponentTree) SetRoot(root *Component) {
	gen, prev, w, h, opts := t.request()
	state := CalculateLayout(root, w, h, prev, opts)
	t.commit(gen, root, state)
}

// SetRootAsync calculates the layout for root on a background goroutine and
// queues the commit. Wait reports the first calculation error, which is
// only ever a context error.
func (t *ComponentTree) SetRootAsync(ctx context.Context, root *Component) {
	gen, prev, w, h, opts := t.request()
	t.mu.Lock()
	g := t.group
	t.mu.Unlock()

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		state := CalculateLayout(root, w, h, prev, opts)
		if err := ctx.Err(); err != nil {
			return err
		}
		t.QueueUpdate(func() { t.commit(gen, root, state) })
		return nil
	})
}

// Wait blocks until every pending background calculation has finished and
// its commit is queued.
func (t *ComponentTree) Wait() error {
	t.mu.Lock()
	g := t.group
	t.group = new(errgroup.Group)
	t.mu.Unlock()
	return g.Wait()
}

func (t *ComponentTree) request() (uint64, *LayoutState, SizeSpec, SizeSpec, FlattenOptions) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requested++
	return t.requested, t.committed, t.widthSpec, t.heightSpec, t.flatten
}

// commit installs state unless a newer generation is already committed.
func (t *ComponentTree) commit(gen uint64, root *Component, state *LayoutState) {
	t.mu.Lock()
	if t.committed != nil && gen <= t.committed.generation {
		t.mu.Unlock()
		t.log.Debug("dropping stale layout", "generation", gen, "committed", t.committed.generation)
		return
	}
	state.generation = gen
	t.committed = state
	t.root = root
	t.mu.Unlock()

	if t.hasViewport {
		t.mount.Mount(state, t.viewport, t.processVis)
	}
}

// QueueUpdate enqueues a function to run on the owning thread. Safe to call
// from any goroutine. When the queue is full the oldest update is dropped;
// a newer commit always supersedes an older one.
func (t *ComponentTree) QueueUpdate(fn func()) {
	for {
		select {
		case t.updates <- fn:
			return
		default:
		}
		select {
		case <-t.updates:
			t.log.Warn("update queue full, dropping oldest update")
		default:
		}
	}
}

// DrainUpdates runs every queued update and returns how many ran. Must be
// called on the owning thread.
func (t *ComponentTree) DrainUpdates() int {
	n := 0
	for {
		select {
		case fn := <-t.updates:
			fn()
			n++
		default:
			return n
		}
	}
}

// Updates exposes the queue for event loops that select on it.
func (t *ComponentTree) Updates() <-chan func() {
	return t.updates
}

// SetViewport mounts the committed state under vp.
func (t *ComponentTree) SetViewport(vp Rect) {
	t.viewport, t.hasViewport = vp, true
	if state := t.Committed(); state != nil {
		t.mount.Mount(state, vp, t.processVis)
	}
}

// SetSizeSpecs changes the root constraints for future calculations.
func (t *ComponentTree) SetSizeSpecs(widthSpec, heightSpec SizeSpec) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.widthSpec, t.heightSpec = widthSpec, heightSpec
}

// Committed returns the committed LayoutState.
func (t *ComponentTree) Committed() *LayoutState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

// Root returns the committed root component.
func (t *ComponentTree) Root() *Component {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root
}

// MountState returns the tree's MountState.
func (t *ComponentTree) MountState() *MountState {
	return t.mount
}

// Release unmounts everything.
func (t *ComponentTree) Release() {
	t.mount.UnmountAll()
	t.hasViewport = false
}
