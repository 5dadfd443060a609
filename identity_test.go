package mount

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSiblingKeys(t *testing.T) {
	rec := &recorder{}
	text := newType("Text", KindDrawable, rec)
	image := newType("Image", KindDrawable, rec)

	type tc struct {
		children []*Component
		want     []string
	}

	tests := map[string]tc{
		"distinct types": {
			children: []*Component{New(text), New(image)},
			want:     []string{"p/Text", "p/Image"},
		},
		"implicit duplicates": {
			children: []*Component{New(text), New(image), New(text), New(text)},
			want:     []string{"p/Text", "p/Image", "p/Text!1", "p/Text!2"},
		},
		"explicit keys": {
			children: []*Component{New(text, WithKey("a")), New(text), New(text, WithKey("a"))},
			want:     []string{"p/a", "p/Text", "p/a"},
		},
		"layout containers": {
			children: []*Component{NewRow(), NewColumn(), NewRow()},
			want:     []string{"p/Row", "p/Column", "p/Row!1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, siblingKeys("p", tt.children)); diff != "" {
				t.Errorf("siblingKeys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStableID_SurvivesInsertionOfOtherType(t *testing.T) {
	rec := &recorder{}
	item := newType("Item", KindDrawable, rec)
	row := func(text string) *Component {
		return NewRow(WithHeight(10), WithChildren(New(item, WithProps(text), WithSize(10, 10))))
	}

	before := calc(column(row("a"), row("b")), 10, nil)
	after := calc(column(NewColumn(WithKey("header"), WithHeight(10), WithWrapInHost()), row("a"), row("b")), 10, before)

	for _, key := range []string{"Column/Row/Item", "Column/Row!1/Item"} {
		old := findOutput(t, before, key, item)
		cur := findOutput(t, after, key, item)
		if old.ID != cur.ID {
			t.Errorf("%s id changed from %016x to %016x", key, old.ID, cur.ID)
		}
		if cur.UpdateState != UpdateStateReuse {
			t.Errorf("%s UpdateState = %v, want reuse", key, cur.UpdateState)
		}
	}
}

func TestStableID_InsertionOfSameType(t *testing.T) {
	rec := &recorder{}
	item := newType("Item", KindDrawable, rec)
	row := func(text string, opts ...Option) *Component {
		opts = append(opts, WithHeight(10), WithChildren(New(item, WithProps(text), WithSize(10, 10))))
		return NewRow(opts...)
	}

	t.Run("implicit keys shift", func(t *testing.T) {
		before := calc(column(row("a"), row("b")), 10, nil)
		after := calc(column(row("new"), row("a"), row("b")), 10, before)

		// "a" now takes the id "b" had, and "b" gets a fresh one.
		a := findOutput(t, after, "Column/Row!1/Item", item)
		if a.Props != "a" {
			t.Fatalf("Column/Row!1/Item props = %v, want a", a.Props)
		}
		if old := findOutput(t, before, "Column/Row!1/Item", item); a.ID != old.ID {
			t.Errorf("a id = %016x, want %016x", a.ID, old.ID)
		}
		if a.UpdateState != UpdateStateUpdate {
			t.Errorf("a UpdateState = %v, want update", a.UpdateState)
		}
		if b := findOutput(t, after, "Column/Row!2/Item", item); b.UpdateState != UpdateStateUpdate {
			t.Errorf("b UpdateState = %v, want update", b.UpdateState)
		}
	})

	t.Run("explicit keys survive", func(t *testing.T) {
		before := calc(column(row("a", WithKey("a")), row("b", WithKey("b"))), 10, nil)
		after := calc(column(row("new", WithKey("new")), row("a", WithKey("a")), row("b", WithKey("b"))), 10, before)

		for _, key := range []string{"Column/a/Item", "Column/b/Item"} {
			old := findOutput(t, before, key, item)
			cur := findOutput(t, after, key, item)
			if old.ID != cur.ID {
				t.Errorf("%s id changed from %016x to %016x", key, old.ID, cur.ID)
			}
			if cur.UpdateState != UpdateStateReuse {
				t.Errorf("%s UpdateState = %v, want reuse", key, cur.UpdateState)
			}
		}
	})
}

func TestStableID_StructuralMoveChangesID(t *testing.T) {
	rec := &recorder{}
	item := newType("Item", KindDrawable, rec)

	before := calc(column(fixed(item, "x", 10, 10)), 10, nil)
	after := calc(column(NewColumn(WithKey("wrap"), WithChildren(fixed(item, "x", 10, 10)))), 10, before)

	old := findOutput(t, before, "Column/x", item)
	cur := findOutput(t, after, "Column/wrap/x", item)
	if old.ID == cur.ID {
		t.Error("moving a node under a new parent kept its id")
	}
	if cur.UpdateState != UpdateStateUpdate {
		t.Errorf("UpdateState = %v, want update", cur.UpdateState)
	}
}

func TestStableID_Discriminators(t *testing.T) {
	seen := make(map[uint64]discriminator)
	for _, d := range []discriminator{discContent, discHost, discBackground, discForeground, discBorder, discVisibility} {
		id := stableID("Column/a", d)
		if id == RootHostID {
			t.Fatalf("stableID(%q) returned the root host id", d)
		}
		if other, ok := seen[id]; ok {
			t.Errorf("discriminators %q and %q share id %016x", d, other, id)
		}
		seen[id] = d
	}
}

func TestRehash(t *testing.T) {
	id := stableID("Column/a", discContent)
	first, second := rehash(id, 1), rehash(id, 2)
	if first == id || second == id || first == second {
		t.Errorf("rehash produced repeats: %016x %016x %016x", id, first, second)
	}
	if rehash(id, 1) != first {
		t.Error("rehash is not deterministic")
	}
}
