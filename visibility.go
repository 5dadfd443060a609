package mount

import "slices"

// VisibilityConfig holds the visibility constants.
type VisibilityConfig struct {
	// FocusedRatio is the fraction of min(item area, viewport area) the
	// visible area must reach for the item to count as focused. The
	// boundary is inclusive.
	FocusedRatio float64
}

// DefaultVisibilityConfig returns the default constants.
func DefaultVisibilityConfig() VisibilityConfig {
	return VisibilityConfig{FocusedRatio: 0.5}
}

// visibilityRecord is the last derived visibility of one output.
type visibilityRecord struct {
	out            *VisibilityOutput
	visible        bool
	focused        bool
	fullImpression bool
	width          int
	height         int
}

// processVisibility derives transitions for every visibility output and
// dispatches them once the whole pass is computed. Outputs that left the
// state go first, then the rest in ascending index order.
func (m *MountState) processVisibility(vp Rect) {
	current := m.state.visibility
	live := make(map[uint64]struct{}, len(current))
	for _, vo := range current {
		live[vo.ID] = struct{}{}
	}

	var events []func()
	for _, rec := range m.sortedRecords() {
		if _, ok := live[rec.out.ID]; !ok {
			events = m.transition(events, rec, Rect{}, vp)
			delete(m.visible, rec.out.ID)
		}
	}
	for _, vo := range current {
		inter := vo.Bounds.Intersect(vp)
		rec := m.visible[vo.ID]
		if rec == nil {
			if inter.IsEmpty() {
				continue
			}
			rec = &visibilityRecord{}
			m.visible[vo.ID] = rec
		}
		rec.out = vo
		events = m.transition(events, rec, inter, vp)
		if inter.IsEmpty() {
			delete(m.visible, vo.ID)
		}
	}

	for _, fn := range events {
		fn()
	}
}

// clearVisibility fires the invisible side of every transition for all
// tracked outputs.
func (m *MountState) clearVisibility() {
	var events []func()
	for _, rec := range m.sortedRecords() {
		events = m.transition(events, rec, Rect{}, m.viewport)
	}
	clear(m.visible)
	for _, fn := range events {
		fn()
	}
}

func (m *MountState) sortedRecords() []*visibilityRecord {
	recs := make([]*visibilityRecord, 0, len(m.visible))
	for _, rec := range m.visible {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b *visibilityRecord) int {
		return a.out.Index - b.out.Index
	})
	return recs
}

// transition compares rec with the new intersection, updates it and appends
// the handlers to fire.
func (m *MountState) transition(events []func(), rec *visibilityRecord, inter, vp Rect) []func() {
	vo := rec.out
	h := vo.Handlers
	w, ht := inter.Width, inter.Height
	if inter.IsEmpty() {
		w, ht = 0, 0
	}

	visible := w > 0 && ht > 0 &&
		meetsRatio(w, vo.Bounds.Width, vo.VisibleWidthRatio) &&
		meetsRatio(ht, vo.Bounds.Height, vo.VisibleHeightRatio)
	if visible != rec.visible {
		rec.visible = visible
		if visible {
			events = appendEvent(events, h.OnVisible)
		} else {
			rec.fullImpression = false
			events = appendEvent(events, h.OnInvisible)
		}
	}

	focused := w > 0 && ht > 0 && m.isFocused(inter, vo.Bounds, vp)
	if focused != rec.focused {
		rec.focused = focused
		if focused {
			events = appendEvent(events, h.OnFocused)
		} else {
			events = appendEvent(events, h.OnUnfocused)
		}
	}

	if visible && !rec.fullImpression && inter == vo.Bounds {
		rec.fullImpression = true
		events = appendEvent(events, h.OnFullImpression)
	}

	if w != rec.width || ht != rec.height {
		rec.width, rec.height = w, ht
		if fn := h.OnVisibilityChanged; fn != nil {
			ev := VisibilityChangedEvent{
				VisibleRect:   inter,
				VisibleWidth:  w,
				VisibleHeight: ht,
				PercentWidth:  percent(w, vo.Bounds.Width),
				PercentHeight: percent(ht, vo.Bounds.Height),
			}
			events = append(events, func() { fn(ev) })
		}
	}
	return events
}

func (m *MountState) isFocused(inter, bounds, vp Rect) bool {
	need := m.visConfig.FocusedRatio * float64(min(bounds.Area(), vp.Area()))
	return float64(inter.Area()) >= need
}

// meetsRatio reports whether visible out of size satisfies ratio. A zero
// ratio accepts any overlap.
func meetsRatio(visible, size int, ratio float64) bool {
	if ratio <= 0 || size <= 0 {
		return true
	}
	return float64(visible)/float64(size) >= ratio
}

func percent(visible, size int) float64 {
	if size <= 0 {
		return 0
	}
	return 100 * float64(visible) / float64(size)
}

func appendEvent(events []func(), fn func()) []func() {
	if fn == nil {
		return events
	}
	return append(events, fn)
}
