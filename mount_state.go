package mount

import (
	"log/slog"
	"slices"

	"github.com/grindlemire/go-mount/internal/debug"
)

// DisappearAnimator runs removal animations. Disappear must arrange for done
// to be called on the owning thread once the animation completes.
type DisappearAnimator interface {
	Disappear(item *MountItem, done func())
}

// Stats counts mount side effects since the MountState was created.
type Stats struct {
	Passes            int
	IncrementalPasses int
	Mounts            int
	Unmounts          int
	Binds             int
	Unbinds           int
	Recreates         int
	Moves             int
	BoundsUpdates     int
	PoolHits          int
	ScrapHits         int
}

// MountOption configures a MountState.
type MountOption func(*MountState)

// WithPool shares a content pool. Without it content is always allocated.
func WithPool(p *Pool) MountOption {
	return func(m *MountState) {
		m.pool = p
	}
}

// WithLogger sets the logger. Defaults to debug.Logger().
func WithLogger(l *slog.Logger) MountOption {
	return func(m *MountState) {
		m.log = l
	}
}

// WithIncrementalMount enables or disables incremental mounting. When
// disabled every output is always in range. Enabled by default.
func WithIncrementalMount(enabled bool) MountOption {
	return func(m *MountState) {
		m.incremental = enabled
	}
}

// WithVisibilityConfig sets the visibility constants.
func WithVisibilityConfig(cfg VisibilityConfig) MountOption {
	return func(m *MountState) {
		m.visConfig = cfg
	}
}

// WithDisappearAnimator makes removed outputs with a transition key
// disappear through a.
func WithDisappearAnimator(a DisappearAnimator) MountOption {
	return func(m *MountState) {
		m.animator = a
	}
}

type pendingPass struct {
	state      *LayoutState
	viewport   Rect
	processVis bool
}

// MountState reconciles mounted content with a LayoutState and a viewport.
// All methods must be called from the owning thread.
type MountState struct {
	root        *Host
	pool        *Pool
	log         *slog.Logger
	incremental bool
	visConfig   VisibilityConfig
	animator    DisappearAnimator

	state        *LayoutState
	items        map[uint64]*MountItem
	disappearing map[uint64]*MountItem
	scrapped     []*Host

	viewport     Rect
	hasViewport  bool
	processVis   bool
	topCursor    int
	bottomCursor int

	transient      bool
	pending        *pendingPass
	visibilityHint bool
	visible        map[uint64]*visibilityRecord

	stats Stats
}

// NewMountState creates a MountState mounting into root. A nil root gets a
// fresh host.
func NewMountState(root *Host, opts ...MountOption) *MountState {
	if root == nil {
		root = NewHost()
	}
	m := &MountState{
		root:           root,
		log:            debug.Logger(),
		incremental:    true,
		visConfig:      DefaultVisibilityConfig(),
		items:          make(map[uint64]*MountItem),
		disappearing:   make(map[uint64]*MountItem),
		visibilityHint: true,
		visible:        make(map[uint64]*visibilityRecord),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount reconciles mounted content with state under viewport. Visibility
// events are derived only when processVisibility is set. While transient the
// request is remembered and applied when the flag is cleared.
func (m *MountState) Mount(state *LayoutState, viewport Rect, processVisibility bool) {
	if state == nil {
		return
	}
	if m.transient {
		m.pending = &pendingPass{state: state, viewport: viewport, processVis: processVisibility}
		return
	}
	m.mount(state, viewport, processVisibility, false)
}

func (m *MountState) mount(state *LayoutState, viewport Rect, processVisibility, force bool) {
	unchanged := state == m.state && m.hasViewport && viewport == m.viewport
	if !unchanged || force {
		m.stats.Passes++
		switch {
		case force || state != m.state || !m.hasViewport || !m.incremental ||
			viewport.X != m.viewport.X || viewport.Width != m.viewport.Width:
			m.reconcile(state, viewport)
		default:
			m.stats.IncrementalPasses++
			m.incrementalPass(viewport)
		}
		m.drainScrap()
		m.log.Debug("mount pass",
			"generation", state.Generation(),
			"viewport", viewport.String(),
			"mounted", len(m.items),
			"disappearing", len(m.disappearing))
	}
	m.viewport, m.hasViewport, m.processVis = viewport, true, processVisibility

	if !processVisibility {
		return
	}
	if m.visibilityHint {
		m.processVisibility(viewport)
	} else if len(m.visible) > 0 {
		m.clearVisibility()
	}
}

// reconcile is the full pass: existing items are updated or unmounted in
// descending index order, then missing in-range outputs are mounted in
// ascending order.
func (m *MountState) reconcile(state *LayoutState, vp Rect) {
	trustReuse := state.follows(m.state)
	if state != m.state {
		for id := range m.disappearing {
			if _, ok := state.IndexOf(id); ok {
				m.FinishDisappearing(id)
			}
		}
	}
	m.state = state

	fading := m.fadingHosts(state)
	for _, item := range m.sortedItems() {
		if m.items[item.id] != item {
			continue
		}
		idx, ok := state.IndexOf(item.id)
		if !ok {
			// Content of a disappearing host stays attached until the
			// host finishes.
			if !m.insideFadingHost(item, fading) {
				m.remove(item)
			}
			continue
		}
		out := state.outputs[idx]
		if !m.inRange(out, vp) && !m.keepHost(item) {
			m.unmountItem(item)
			continue
		}
		m.updateItem(item, idx, out, trustReuse)
	}

	for i, out := range state.outputs {
		if m.items[out.ID] == nil && m.disappearing[out.ID] == nil && m.inRange(out, vp) {
			m.mountOutput(i, out)
		}
	}
	m.sweepHosts(vp)
	m.resetCursors(vp)
}

// fadingHosts returns the ids of removed hosts that will start
// disappearing in this pass.
func (m *MountState) fadingHosts(state *LayoutState) map[uint64]bool {
	if m.animator == nil {
		return nil
	}
	fading := make(map[uint64]bool)
	for id, item := range m.items {
		if _, ok := item.content.(*Host); !ok || item.output == nil || item.output.TransitionKey == "" {
			continue
		}
		if _, ok := state.IndexOf(id); !ok {
			fading[id] = true
		}
	}
	return fading
}

// insideFadingHost reports whether any host above item is disappearing or
// in fading.
func (m *MountState) insideFadingHost(item *MountItem, fading map[uint64]bool) bool {
	for h := item.host; h != nil && h != m.root; {
		if fading[h.id] || m.disappearing[h.id] != nil {
			return true
		}
		parent := m.items[h.id]
		if parent == nil {
			return false
		}
		h = parent.host
	}
	return false
}

// sortedItems returns live items by descending display index.
func (m *MountState) sortedItems() []*MountItem {
	items := make([]*MountItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b *MountItem) int {
		return b.index - a.index
	})
	return items
}

func (m *MountState) inRange(out *Output, vp Rect) bool {
	return !m.incremental || out.Index == 0 || out.Bounds.Intersects(vp)
}

// keepHost reports whether an out-of-range host must stay mounted because
// content it holds is still mounted.
func (m *MountState) keepHost(item *MountItem) bool {
	h, ok := item.content.(*Host)
	return ok && (h.MountedCount() > 0 || h.DisappearingCount() > 0)
}

// sweepHosts unmounts out-of-range hosts whose content has all left.
func (m *MountState) sweepHosts(vp Rect) {
	for _, item := range m.sortedItems() {
		if item.index == 0 || m.items[item.id] != item || m.inRange(item.output, vp) {
			continue
		}
		if _, ok := m.state.IndexOf(item.id); !ok {
			continue
		}
		if _, ok := item.content.(*Host); ok && !m.keepHost(item) {
			m.unmountItem(item)
		}
	}
}

// remove handles an item whose id is gone from the new state.
func (m *MountState) remove(item *MountItem) {
	if m.animator != nil && item.output.TransitionKey != "" && m.startDisappearing(item) {
		return
	}
	m.unmountItem(item)
}

func (m *MountState) updateItem(item *MountItem, idx int, out *Output, trustReuse bool) {
	if idx == 0 {
		m.bindRoot(item, out)
		return
	}
	if out.Type != item.typ || out.UpdateState == UpdateStateRecreate {
		m.recreate(item)
		return
	}
	propsChanged := !(trustReuse && out.UpdateState == UpdateStateReuse) && !PropsEqual(item.props, out.Props)
	if propsChanged && !out.IsHost() && out.Type.shouldUpdate(item.props, out.Props) {
		m.recreate(item)
		return
	}

	host := m.ensureHost(out.HostMarker)
	rel := m.relativeBounds(out)
	switch {
	case host != item.host:
		item.host.unmount(item.index, item.entry)
		item.entry.bounds = rel
		host.mount(idx, item.entry)
		item.host = host
		m.stats.Moves++
	case idx != item.index:
		host.move(item.index, idx, item.entry)
		m.stats.Moves++
	}
	item.index = idx

	if propsChanged {
		item.typ.unbind(item.content, item.props)
		item.typ.bind(item.content, out.Props)
		m.stats.Unbinds++
		m.stats.Binds++
		item.props = out.Props
	}

	if out.Bounds != item.bounds || rel != item.entry.bounds {
		out.Type.setBounds(item.content, rel)
		host.updateBounds(item.entry, rel, m.touchBounds(out, rel))
		item.bounds = out.Bounds
		m.stats.BoundsUpdates++
	} else {
		item.entry.touchBounds = m.touchBounds(out, rel)
	}
	item.output = out
	m.fillEntry(item.entry, out)
	if h, ok := item.content.(*Host); ok {
		h.id = out.ID
		h.interaction = out.Interaction
		h.setBounds(rel)
	}
}

// recreate destroys the content. The mount loop that follows the update
// pass mounts fresh content if the output is still in range.
func (m *MountState) recreate(item *MountItem) {
	m.stats.Recreates++
	m.unmountItem(item)
}

func (m *MountState) bindRoot(item *MountItem, out *Output) {
	if item.typ != out.Type || !PropsEqual(item.props, out.Props) {
		if item.props != nil {
			item.typ.unbind(m.root, item.props)
			m.stats.Unbinds++
		}
		if out.Props != nil {
			out.Type.bind(m.root, out.Props)
			m.stats.Binds++
		}
		item.typ, item.props = out.Type, out.Props
	}
	item.index = 0
	item.output = out
	item.bounds = out.Bounds
	m.root.id = out.ID
	m.root.interaction = out.Interaction
	m.root.setBounds(out.Bounds)
}

func (m *MountState) mountOutput(idx int, out *Output) *MountItem {
	if idx == 0 {
		item := &MountItem{
			id:      out.ID,
			typ:     out.Type,
			content: m.root,
		}
		m.bindRoot(item, out)
		m.items[out.ID] = item
		m.stats.Mounts++
		return item
	}

	host := m.ensureHost(out.HostMarker)
	var content Content
	if out.IsHost() {
		if h := host.takeScrapHost(out.Type); h != nil {
			content = h
			m.stats.ScrapHits++
		}
	}
	if content == nil {
		hits := m.pool.Hits()
		content = m.pool.Acquire(out.Type)
		if m.pool.Hits() > hits {
			m.stats.PoolHits++
		}
	}
	out.Type.bind(content, out.Props)
	m.stats.Binds++

	rel := m.relativeBounds(out)
	out.Type.setBounds(content, rel)
	if h, ok := content.(*Host); ok {
		h.id = out.ID
		h.interaction = out.Interaction
		h.setBounds(rel)
	}

	entry := &hostEntry{
		id:          out.ID,
		kind:        out.Type.Kind,
		content:     content,
		bounds:      rel,
		touchBounds: m.touchBounds(out, rel),
	}
	m.fillEntry(entry, out)
	host.mount(idx, entry)

	item := &MountItem{
		id:      out.ID,
		index:   idx,
		output:  out,
		typ:     out.Type,
		props:   out.Props,
		content: content,
		host:    host,
		entry:   entry,
		bounds:  out.Bounds,
	}
	m.items[out.ID] = item
	m.stats.Mounts++
	return item
}

// ensureHost returns the mounted host for a host marker, mounting the host
// chain first if needed.
func (m *MountState) ensureHost(marker int) *Host {
	if marker < 0 {
		return m.root
	}
	out := m.state.outputs[marker]
	item := m.items[out.ID]
	if item == nil {
		item = m.mountOutput(marker, out)
	}
	if h, ok := item.content.(*Host); ok {
		return h
	}
	m.log.Warn("host marker references non-host content", "index", marker, "type", out.Type.Name)
	return m.root
}

func (m *MountState) relativeBounds(out *Output) Rect {
	if out.HostMarker < 0 {
		return out.Bounds
	}
	hb := m.state.outputs[out.HostMarker].Bounds
	return out.Bounds.Translate(-hb.X, -hb.Y)
}

func (m *MountState) touchBounds(out *Output, rel Rect) Rect {
	if out.Interaction == nil {
		return rel
	}
	return out.Interaction.TouchBounds.Translate(rel.X-out.Bounds.X, rel.Y-out.Bounds.Y)
}

func (m *MountState) fillEntry(e *hostEntry, out *Output) {
	disabled := out.Flags.Has(FlagTouchableDisabled)
	switch {
	case disabled || out.Interaction == nil:
		e.touchable = false
	case out.Type.Kind == KindView:
		e.touchable = true
	default:
		e.touchable = out.Interaction.Handlers.any()
	}
	e.dupState = out.Flags.Has(FlagDuplicateParentState)
	e.description = out.ContentDescription
}

func (m *MountState) unmountItem(item *MountItem) {
	if h, ok := item.content.(*Host); ok {
		for _, id := range h.disappearingIDs() {
			m.FinishDisappearing(id)
		}
		children := h.entries.sorted()
		for _, e := range h.entries.scrap {
			children = append(children, e)
		}
		for i := len(children) - 1; i >= 0; i-- {
			if child := m.items[children[i].id]; child != nil && child.host == h {
				m.unmountItem(child)
			}
		}
	}
	if item.host != nil {
		item.host.unmount(item.index, item.entry)
	}
	item.typ.unbind(item.content, item.props)
	m.stats.Unbinds++
	m.stats.Unmounts++
	delete(m.items, item.id)
	m.release(item, true)
}

// release returns content to the pool. Hosts emptied during a pass are
// scrapped on their parent first so a later mount in the same pass can
// claim them.
func (m *MountState) release(item *MountItem, scrap bool) {
	if item.host == nil {
		return
	}
	if h, ok := item.content.(*Host); ok && scrap {
		item.host.scrapHost(item.typ, h)
		m.scrapped = append(m.scrapped, item.host)
		return
	}
	m.pool.Release(item.typ, item.content)
}

func (m *MountState) drainScrap() {
	for _, h := range m.scrapped {
		h.drainScrap(m.pool)
	}
	m.scrapped = m.scrapped[:0]
}

// StartDisappearing moves a mounted item into the disappearing state. It
// stays attached and drawn but no longer counts as mounted.
func (m *MountState) StartDisappearing(id uint64) bool {
	item := m.items[id]
	if item == nil {
		return false
	}
	return m.startDisappearing(item)
}

func (m *MountState) startDisappearing(item *MountItem) bool {
	if item.host == nil {
		return false
	}
	delete(m.items, item.id)
	item.disappearing = true
	item.host.startDisappearing(item.index, item.entry)
	m.disappearing[item.id] = item
	if m.animator != nil {
		id := item.id
		m.animator.Disappear(item, func() { m.FinishDisappearing(id) })
	}
	return true
}

// FinishDisappearing unmounts a disappearing item. Unknown ids are ignored.
func (m *MountState) FinishDisappearing(id uint64) bool {
	item := m.disappearing[id]
	if item == nil {
		return false
	}
	delete(m.disappearing, id)
	if h, ok := item.content.(*Host); ok {
		for _, childID := range h.disappearingIDs() {
			m.FinishDisappearing(childID)
		}
		for _, e := range h.entries.sorted() {
			if child := m.items[e.id]; child != nil {
				m.unmountItem(child)
			}
		}
	}
	item.host.finishDisappearing(item.entry)
	item.typ.unbind(item.content, item.props)
	m.stats.Unbinds++
	m.stats.Unmounts++
	m.release(item, false)
	return true
}

// SetTransient suspends all mount side effects and visibility events.
// Clearing the flag runs a full pass against the most recent request.
func (m *MountState) SetTransient(transient bool) {
	if m.transient == transient {
		return
	}
	m.transient = transient
	if transient {
		return
	}
	switch p := m.pending; {
	case p != nil:
		m.pending = nil
		m.mount(p.state, p.viewport, p.processVis, true)
	case m.state != nil && m.hasViewport:
		m.mount(m.state, m.viewport, m.processVis, true)
	}
}

// IsTransient reports whether side effects are suspended.
func (m *MountState) IsTransient() bool { return m.transient }

// SetVisibilityHint marks the whole tree visible or hidden. Hiding fires
// become-invisible for everything currently visible.
func (m *MountState) SetVisibilityHint(visible bool) {
	if m.visibilityHint == visible {
		return
	}
	m.visibilityHint = visible
	if m.transient {
		return
	}
	if !visible {
		m.clearVisibility()
		return
	}
	if m.state != nil && m.hasViewport && m.processVis {
		m.processVisibility(m.viewport)
	}
}

// Detach fires become-invisible for everything and forgets the viewport.
// Content stays mounted; the next Mount runs a full pass.
func (m *MountState) Detach() {
	m.clearVisibility()
	m.hasViewport = false
}

// UnmountAll releases the tree: visibility is cleared, disappearing items
// are finished and every item, the root host last, is unmounted.
func (m *MountState) UnmountAll() {
	m.clearVisibility()
	for id := range m.disappearing {
		m.FinishDisappearing(id)
	}
	for _, item := range m.sortedItems() {
		if m.items[item.id] == item {
			m.unmountItem(item)
		}
	}
	m.drainScrap()
	m.state = nil
	m.hasViewport = false
	m.pending = nil
	m.topCursor, m.bottomCursor = 0, 0
}

// IsMounted reports whether id has a live, non-disappearing mount record.
func (m *MountState) IsMounted(id uint64) bool {
	_, ok := m.items[id]
	return ok
}

// IsDisappearing reports whether id is animating out.
func (m *MountState) IsDisappearing(id uint64) bool {
	_, ok := m.disappearing[id]
	return ok
}

// MountedCount returns the number of live mount records, excluding
// disappearing ones.
func (m *MountState) MountedCount() int { return len(m.items) }

// MountItem returns the live or disappearing record for id.
func (m *MountState) MountItem(id uint64) *MountItem {
	if item, ok := m.items[id]; ok {
		return item
	}
	return m.disappearing[id]
}

// Host returns the mounted host for id, or nil if id is not a mounted host.
func (m *MountState) Host(id uint64) *Host {
	item := m.MountItem(id)
	if item == nil {
		return nil
	}
	h, _ := item.content.(*Host)
	return h
}

// Root returns the root host.
func (m *MountState) Root() *Host { return m.root }

// State returns the last reconciled state.
func (m *MountState) State() *LayoutState { return m.state }

// Viewport returns the last applied viewport.
func (m *MountState) Viewport() (Rect, bool) { return m.viewport, m.hasViewport }

// Stats returns side-effect counters.
func (m *MountState) Stats() Stats { return m.stats }
