package mount

import (
	"slices"
	"sort"
)

// resetCursors positions the top and bottom cursors for vp. topCursor counts
// outputs whose top is above vp's bottom; bottomCursor counts outputs whose
// bottom is at or above vp's top. An output is in vertical range iff it is
// inside the first prefix and outside the second.
func (m *MountState) resetCursors(vp Rect) {
	byTop, byBottom := m.state.byTop, m.state.byBottom
	m.topCursor = sort.Search(len(byTop), func(i int) bool {
		return byTop[i].Bounds.Top() >= vp.Bottom()
	})
	m.bottomCursor = sort.Search(len(byBottom), func(i int) bool {
		return byBottom[i].Bounds.Bottom() > vp.Top()
	})
}

// incrementalPass handles a vertical viewport change against the same
// state by walking only the outputs whose edges the viewport crossed.
func (m *MountState) incrementalPass(vp Rect) {
	prev := m.viewport
	byTop, byBottom := m.state.byTop, m.state.byBottom
	var enter, leave []int

	switch {
	case vp.Top() > prev.Top():
		for m.bottomCursor < len(byBottom) && byBottom[m.bottomCursor].Bounds.Bottom() <= vp.Top() {
			leave = append(leave, byBottom[m.bottomCursor].Index)
			m.bottomCursor++
		}
	case vp.Top() < prev.Top():
		for m.bottomCursor > 0 && byBottom[m.bottomCursor-1].Bounds.Bottom() > vp.Top() {
			m.bottomCursor--
			enter = append(enter, byBottom[m.bottomCursor].Index)
		}
	}

	switch {
	case vp.Bottom() < prev.Bottom():
		for m.topCursor > 0 && byTop[m.topCursor-1].Bounds.Top() >= vp.Bottom() {
			m.topCursor--
			leave = append(leave, byTop[m.topCursor].Index)
		}
	case vp.Bottom() > prev.Bottom():
		for m.topCursor < len(byTop) && byTop[m.topCursor].Bounds.Top() < vp.Bottom() {
			enter = append(enter, byTop[m.topCursor].Index)
			m.topCursor++
		}
	}

	slices.Sort(leave)
	leave = slices.Compact(leave)
	for i := len(leave) - 1; i >= 0; i-- {
		out := m.state.outputs[leave[i]]
		if m.inRange(out, vp) {
			continue
		}
		if item := m.items[out.ID]; item != nil && !m.keepHost(item) {
			m.unmountItem(item)
		}
	}

	slices.Sort(enter)
	enter = slices.Compact(enter)
	for _, i := range enter {
		out := m.state.outputs[i]
		if m.items[out.ID] == nil && m.disappearing[out.ID] == nil && m.inRange(out, vp) {
			m.mountOutput(i, out)
		}
	}

	if len(leave) > 0 {
		m.sweepHosts(vp)
	}
}
