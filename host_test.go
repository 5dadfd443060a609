package mount

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func drawable(id uint64, bounds Rect) *hostEntry {
	return &hostEntry{id: id, kind: KindDrawable, bounds: bounds}
}

func TestHost_MoveAndBack(t *testing.T) {
	h := NewHost()
	a := drawable(1, NewRect(0, 0, 5, 5))
	b := drawable(2, NewRect(0, 5, 5, 5))
	h.mount(0, a)
	h.mount(1, b)

	h.move(1, 0, b)
	require.Equal(t, []uint64{2}, h.DrawOrder(), "parked entry is not drawn")
	require.Equal(t, 2, h.MountedCount())

	h.move(0, 1, b)
	require.Equal(t, []uint64{1, 2}, h.DrawOrder())
	require.Equal(t, 2, h.MountedCount())
}

func TestHost_SwapThroughScrap(t *testing.T) {
	h := NewHost()
	a := drawable(1, Rect{})
	b := drawable(2, Rect{})
	h.mount(0, a)
	h.mount(1, b)

	h.move(1, 0, b)
	h.move(0, 1, a)

	require.Equal(t, []uint64{2, 1}, h.DrawOrder())
	require.Equal(t, 2, h.MountedCount())
}

func TestHost_UnmountParkedEntry(t *testing.T) {
	h := NewHost()
	a := drawable(1, Rect{})
	b := drawable(2, Rect{})
	h.mount(0, a)
	h.mount(1, b)

	h.move(1, 0, b)
	h.unmount(0, a)

	require.Equal(t, []uint64{2}, h.DrawOrder())
	require.Equal(t, 1, h.MountedCount())
}

func TestHost_DrawOrder(t *testing.T) {
	h := NewHost()
	h.mount(3, &hostEntry{id: 30, kind: KindView})
	h.mount(1, &hostEntry{id: 10, kind: KindView})
	h.mount(2, drawable(20, Rect{}))
	h.mount(4, drawable(40, Rect{}))

	if diff := cmp.Diff([]uint64{20, 40, 10, 30}, h.DrawOrder()); diff != "" {
		t.Errorf("DrawOrder() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{30, 10}, h.Children()); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
}

func TestHost_HitTestClickableRoot(t *testing.T) {
	rec := &recorder{}
	button := newType("Button", KindView, rec)
	s := calc(fixed(button, "b", 10, 10, WithClickHandler(func() {})), 10, nil)
	m := newMountState()
	m.Mount(s, NewRect(0, 0, 10, 10), false)

	id, ok := m.Root().HitTest(5, 5)
	if !ok || id != s.OutputAt(1).ID {
		t.Errorf("HitTest(5, 5) = %016x, %v, want %016x, true", id, ok, s.OutputAt(1).ID)
	}
}

func TestHost_HitTest(t *testing.T) {
	rec := &recorder{}
	button := newType("Button", KindView, rec)
	tree := column(
		fixed(button, "a", 10, 10, WithClickHandler(func() {}), WithTouchExpansion(EdgeAll(5))),
		fixed(button, "b", 10, 10, WithEnabled(false)),
		NewColumn(WithKey("card"), WithClickHandler(func() {}), WithChildren(
			fixed(button, "inner", 10, 10),
		)),
		NewColumn(WithKey("tagged"), WithViewTag("k", "v"), WithSize(10, 10)),
	)
	s := calc(tree, 10, nil)
	m := newMountState()
	m.Mount(s, NewRect(0, 0, 10, 40), false)

	a := findOutput(t, s, "Column/a", button).ID
	inner := findOutput(t, s, "Column/card/inner", button).ID

	type tc struct {
		x, y   int
		wantID uint64
		wantOK bool
	}

	tests := map[string]tc{
		"inside a":              {x: 5, y: 5, wantID: a, wantOK: true},
		"disabled b falls to a": {x: 5, y: 12, wantID: a, wantOK: true},
		"disabled b":            {x: 5, y: 18, wantOK: false},
		"nested host child":     {x: 5, y: 25, wantID: inner, wantOK: true},
		"tag only host":         {x: 5, y: 35, wantOK: false},
		"outside":               {x: 50, y: 50, wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, ok := m.Root().HitTest(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("HitTest(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("HitTest(%d, %d) = %016x, want %016x", tt.x, tt.y, id, tt.wantID)
			}
		})
	}
}

func TestHost_Invalidation(t *testing.T) {
	h := NewHost()
	h.setBounds(NewRect(5, 5, 20, 30))
	var got []Rect
	h.SetInvalidateHandler(func(r Rect) { got = append(got, r) })

	h.mount(0, drawable(1, NewRect(0, 0, 5, 5)))
	require.Equal(t, []Rect{NewRect(0, 0, 5, 5)}, got)

	got = nil
	h.SuspendInvalidation()
	h.mount(1, drawable(2, NewRect(5, 5, 5, 5)))
	h.mount(2, drawable(3, NewRect(10, 10, 5, 5)))
	require.Empty(t, got)

	h.ResumeInvalidation()
	require.Equal(t, []Rect{NewRect(0, 0, 20, 30)}, got)
	require.Equal(t, NewRect(0, 0, 20, 30), h.TakeDirty())
	require.True(t, h.Dirty().IsEmpty())

	got = nil
	h.SuspendInvalidation()
	h.ResumeInvalidation()
	require.Empty(t, got, "nothing changed while suspended")
}

func TestHost_ContentDescriptions(t *testing.T) {
	h := NewHost()
	h.mount(2, &hostEntry{id: 2, kind: KindDrawable, description: "second"})
	h.mount(1, &hostEntry{id: 1, kind: KindDrawable, description: "first"})
	h.mount(3, &hostEntry{id: 3, kind: KindDrawable})

	require.Equal(t, []string{"first", "second"}, h.ContentDescriptions())
}

func TestPool(t *testing.T) {
	rec := &recorder{}
	item := newType("Item", KindDrawable, rec)

	t.Run("acquire and release", func(t *testing.T) {
		p := NewPool(2)
		c := p.Acquire(item)
		require.Equal(t, 1, p.Misses())
		require.True(t, p.Release(item, c))
		require.Same(t, c, p.Acquire(item))
		require.Equal(t, 1, p.Hits())
	})

	t.Run("default size caps freelist", func(t *testing.T) {
		p := NewPool(2)
		require.True(t, p.Release(item, &fakeContent{}))
		require.True(t, p.Release(item, &fakeContent{}))
		require.False(t, p.Release(item, &fakeContent{}))
		require.Equal(t, 2, p.Len(item))
	})

	t.Run("type size overrides default", func(t *testing.T) {
		small := newType("Small", KindDrawable, rec)
		small.PoolSize = 1
		p := NewPool(5)
		require.True(t, p.Release(small, &fakeContent{}))
		require.False(t, p.Release(small, &fakeContent{}))
	})

	t.Run("negative size disables pooling", func(t *testing.T) {
		none := newType("None", KindDrawable, rec)
		none.PoolSize = -1
		p := NewPool(5)
		require.False(t, p.Release(none, &fakeContent{}))
	})

	t.Run("non-empty host rejected", func(t *testing.T) {
		p := NewPool(2)
		h := NewHost()
		h.mount(0, drawable(1, Rect{}))
		require.False(t, p.Release(HostType, h))

		h.unmount(0, h.entries.items[0])
		h.setBounds(NewRect(1, 2, 3, 4))
		require.True(t, p.Release(HostType, h))
		require.Equal(t, Rect{}, h.Bounds(), "pooled host is reset")
	})

	t.Run("nil pool allocates", func(t *testing.T) {
		var p *Pool
		before := rec.creates
		require.NotNil(t, p.Acquire(item))
		require.Equal(t, before+1, rec.creates)
		require.False(t, p.Release(item, &fakeContent{}))
		require.Zero(t, p.Hits())
	})
}
