package mount

import "slices"

// HostState is the pressed/focused state a host mirrors onto children that
// duplicate parent state.
type HostState struct {
	Pressed bool
	Focused bool
}

// ParentStateReceiver is implemented by content that duplicates its host's
// state when mounted with FlagDuplicateParentState.
type ParentStateReceiver interface {
	SetParentState(HostState)
}

// hostEntry is one mounted primitive as seen by its host. It refers back to
// the mount registry only by stable id.
type hostEntry struct {
	id          uint64
	kind        ContentKind
	content     Content
	bounds      Rect
	touchBounds Rect
	touchable   bool
	dupState    bool
	description string
}

// indexedEntries maps display index to entry. Moves that land on an
// occupied index park the previous occupant in scrap until it is moved or
// unmounted itself.
type indexedEntries struct {
	items map[int]*hostEntry
	scrap map[int]*hostEntry
}

func (s *indexedEntries) put(i int, e *hostEntry) {
	if s.items == nil {
		s.items = make(map[int]*hostEntry)
	}
	s.items[i] = e
}

// insert puts e at i, parking a different occupant in scrap.
func (s *indexedEntries) insert(i int, e *hostEntry) {
	s.park(i, e)
	s.put(i, e)
}

func (s *indexedEntries) park(i int, e *hostEntry) {
	if cur, ok := s.items[i]; ok && cur != e {
		if s.scrap == nil {
			s.scrap = make(map[int]*hostEntry)
		}
		s.scrap[i] = cur
	}
}

func (s *indexedEntries) remove(i int, e *hostEntry) bool {
	if s.scrap[i] == e {
		delete(s.scrap, i)
		return true
	}
	if s.items[i] == e {
		delete(s.items, i)
		s.settle(i)
		return true
	}
	return false
}

func (s *indexedEntries) move(from, to int, e *hostEntry) {
	s.park(to, e)
	if s.scrap[from] == e {
		delete(s.scrap, from)
	} else if s.items[from] == e {
		delete(s.items, from)
	}
	s.put(to, e)
	s.settle(from)
}

// settle returns a scrapped entry to its slot once that slot is free again.
func (s *indexedEntries) settle(i int) {
	if parked, ok := s.scrap[i]; ok {
		if _, taken := s.items[i]; !taken {
			delete(s.scrap, i)
			s.items[i] = parked
		}
	}
}

func (s *indexedEntries) sorted() []*hostEntry {
	keys := make([]int, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]*hostEntry, len(keys))
	for i, k := range keys {
		out[i] = s.items[k]
	}
	return out
}

func (s *indexedEntries) len() int {
	return len(s.items) + len(s.scrap)
}

// Host is a composite container. It owns mounted paint-only and interactive
// content, computes draw and hit order, and accumulates dirty regions.
// Coordinates of mounted content are relative to the host.
type Host struct {
	id          uint64
	bounds      Rect
	interaction *Interaction
	state       HostState

	entries      indexedEntries
	drawables    indexedEntries
	children     []*hostEntry
	disappearing []*hostEntry

	dirty        Rect
	suspended    bool
	pendingFlush bool
	onInvalidate func(Rect)

	scrapHosts map[*ContentType][]*Host
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{}
}

// ID returns the stable id of the output this host is mounted for.
func (h *Host) ID() uint64 { return h.id }

// Bounds returns the host bounds relative to its parent host.
func (h *Host) Bounds() Rect { return h.bounds }

// Interaction returns the interaction metadata of the host output, if any.
func (h *Host) Interaction() *Interaction { return h.interaction }

// MountedCount returns the number of live mounted items, excluding
// disappearing ones.
func (h *Host) MountedCount() int { return h.entries.len() }

// ChildCount returns the number of attached interactive children, including
// disappearing ones.
func (h *Host) ChildCount() int { return len(h.children) }

// DisappearingCount returns the number of items still animating out.
func (h *Host) DisappearingCount() int { return len(h.disappearing) }

// Children returns the ids of attached interactive children in attach order.
func (h *Host) Children() []uint64 {
	ids := make([]uint64, len(h.children))
	for i, e := range h.children {
		ids[i] = e.id
	}
	return ids
}

// DrawOrder returns ids in the order they are drawn: paint-only content by
// display index, then live interactive children by display index, then
// disappearing items in the order they started disappearing.
func (h *Host) DrawOrder() []uint64 {
	var ids []uint64
	for _, e := range h.drawables.sorted() {
		ids = append(ids, e.id)
	}
	for _, e := range h.entries.sorted() {
		if e.kind != KindDrawable {
			ids = append(ids, e.id)
		}
	}
	for _, e := range h.disappearing {
		ids = append(ids, e.id)
	}
	return ids
}

// ContentDescriptions returns the accessibility labels of paint-only
// content in draw order.
func (h *Host) ContentDescriptions() []string {
	var out []string
	for _, e := range h.drawables.sorted() {
		if e.description != "" {
			out = append(out, e.description)
		}
	}
	return out
}

// HitTest returns the id of the topmost touchable item under (x, y), in
// host coordinates. Child hosts are searched before being considered
// themselves.
func (h *Host) HitTest(x, y int) (uint64, bool) {
	live := h.entries.sorted()
	for i := len(live) - 1; i >= 0; i-- {
		e := live[i]
		if e.kind == KindDrawable || !e.touchBounds.Contains(x, y) {
			continue
		}
		if child, ok := e.content.(*Host); ok {
			if id, ok := child.HitTest(x-e.bounds.X, y-e.bounds.Y); ok {
				return id, true
			}
		}
		if e.touchable {
			return e.id, true
		}
	}
	return 0, false
}

// SetState updates the host state and mirrors it onto children that
// duplicate parent state.
func (h *Host) SetState(s HostState) {
	h.state = s
	for _, e := range h.entries.items {
		h.applyState(e)
	}
}

func (h *Host) applyState(e *hostEntry) {
	if !e.dupState {
		return
	}
	if r, ok := e.content.(ParentStateReceiver); ok {
		r.SetParentState(h.state)
	}
}

// SetInvalidateHandler registers fn to receive redraw requests.
func (h *Host) SetInvalidateHandler(fn func(Rect)) {
	h.onInvalidate = fn
}

// SuspendInvalidation starts bulk-update mode.
func (h *Host) SuspendInvalidation() {
	h.suspended = true
}

// ResumeInvalidation ends bulk-update mode. If anything changed while
// suspended, a single request for the whole host is issued.
func (h *Host) ResumeInvalidation() {
	if !h.suspended {
		return
	}
	h.suspended = false
	if h.pendingFlush {
		h.pendingFlush = false
		full := NewRect(0, 0, h.bounds.Width, h.bounds.Height)
		h.dirty = h.dirty.Union(full)
		if h.onInvalidate != nil {
			h.onInvalidate(full)
		}
	}
}

// Dirty returns the accumulated dirty region.
func (h *Host) Dirty() Rect { return h.dirty }

// TakeDirty returns the accumulated dirty region and clears it.
func (h *Host) TakeDirty() Rect {
	d := h.dirty
	h.dirty = Rect{}
	return d
}

func (h *Host) invalidate(r Rect) {
	if r.IsEmpty() {
		return
	}
	if h.suspended {
		h.pendingFlush = true
		return
	}
	h.dirty = h.dirty.Union(r)
	if h.onInvalidate != nil {
		h.onInvalidate(r)
	}
}

func (h *Host) setBounds(r Rect) {
	h.bounds = r
}

func (h *Host) mount(index int, e *hostEntry) {
	h.entries.insert(index, e)
	if e.kind == KindDrawable {
		h.drawables.insert(index, e)
	} else {
		h.children = append(h.children, e)
	}
	h.applyState(e)
	h.invalidate(e.bounds)
}

func (h *Host) unmount(index int, e *hostEntry) {
	h.entries.remove(index, e)
	if e.kind == KindDrawable {
		h.drawables.remove(index, e)
	} else {
		h.detachChild(e)
	}
	h.invalidate(e.bounds)
}

// move reorders an item without unmounting it.
func (h *Host) move(from, to int, e *hostEntry) {
	if from == to {
		return
	}
	h.entries.move(from, to, e)
	if e.kind == KindDrawable {
		h.drawables.move(from, to, e)
	}
	h.invalidate(e.bounds)
}

func (h *Host) updateBounds(e *hostEntry, bounds, touch Rect) {
	old := e.bounds
	e.bounds = bounds
	e.touchBounds = touch
	h.invalidate(old.Union(bounds))
}

// startDisappearing removes an item from the live maps while keeping it
// attached and drawn.
func (h *Host) startDisappearing(index int, e *hostEntry) {
	h.entries.remove(index, e)
	if e.kind == KindDrawable {
		h.drawables.remove(index, e)
	}
	h.disappearing = append(h.disappearing, e)
}

// finishDisappearing detaches a disappearing item for real.
func (h *Host) finishDisappearing(e *hostEntry) bool {
	i := slices.Index(h.disappearing, e)
	if i < 0 {
		return false
	}
	h.disappearing = slices.Delete(h.disappearing, i, i+1)
	if e.kind != KindDrawable {
		h.detachChild(e)
	}
	h.invalidate(e.bounds)
	return true
}

func (h *Host) disappearingIDs() []uint64 {
	ids := make([]uint64, len(h.disappearing))
	for i, e := range h.disappearing {
		ids[i] = e.id
	}
	return ids
}

func (h *Host) detachChild(e *hostEntry) {
	if i := slices.Index(h.children, e); i >= 0 {
		h.children = slices.Delete(h.children, i, i+1)
	}
}

// scrapHost keeps an emptied child host for reuse later in the same pass.
func (h *Host) scrapHost(t *ContentType, child *Host) {
	if h.scrapHosts == nil {
		h.scrapHosts = make(map[*ContentType][]*Host)
	}
	h.scrapHosts[t] = append(h.scrapHosts[t], child)
}

func (h *Host) takeScrapHost(t *ContentType) *Host {
	list := h.scrapHosts[t]
	if len(list) == 0 {
		return nil
	}
	child := list[len(list)-1]
	h.scrapHosts[t] = list[:len(list)-1]
	return child
}

// drainScrap releases every unclaimed scrapped host into the pool.
func (h *Host) drainScrap(p *Pool) int {
	n := 0
	for t, list := range h.scrapHosts {
		for _, child := range list {
			p.Release(t, child)
			n++
		}
		delete(h.scrapHosts, t)
	}
	return n
}

// reset clears a host before it is pooled.
func (h *Host) reset() {
	*h = Host{}
}
