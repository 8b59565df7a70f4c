package dock

import (
	"testing"

	"github.com/matzehuels/tiledock/pkg/geom"
)

func TestEligible(t *testing.T) {
	groups := []Group{
		&fakeGroup{id: "open"},
		&fakeGroup{id: "locked", lock: Locked},
		&fakeGroup{id: "nodrop", lock: LockedNoDrop},
		&fakeGroup{id: "statusbar", hidden: true},
		nil,
		&fakeGroup{id: "open2"},
	}

	got := Eligible(groups)
	if len(got) != 2 || got[0].ID() != "open" || got[1].ID() != "open2" {
		t.Errorf("Eligible() = %v, want [open open2]", ids(got))
	}
}

func TestSelectTargetDirections(t *testing.T) {
	tests := []struct {
		name    string
		fixture func() *fixture
		dir     Direction
		want    string
	}{
		{"columns left", columns, Left, "left"},
		{"columns right", columns, Right, "right"},
		{"cross left", cross, Left, "left"},
		{"cross right", cross, Right, "right"},
		{"cross above", cross, Above, "top"},
		{"cross below", cross, Below, "bottom"},
		{"cross within", cross, Within, "center"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.fixture()
			dec := SelectTarget(tt.dir, f.list(), f.geo)
			if dec.TargetID() != tt.want {
				t.Errorf("SelectTarget(%s) = %q, want %q", tt.dir, dec.TargetID(), tt.want)
			}
			if !dec.Matched {
				t.Errorf("SelectTarget(%s) Matched = false, want true", tt.dir)
			}
		})
	}
}

func TestSelectTargetPrefersFewestPanels(t *testing.T) {
	f := newFixture()
	f.add("upper-left", geom.XYWH(0, 0, 400, 400), 2)
	f.add("lower-left", geom.XYWH(0, 400, 400, 400), 0)
	f.add("main", geom.XYWH(400, 0, 800, 800), 0)

	dec := SelectTarget(Left, f.list(), f.geo)
	if dec.TargetID() != "lower-left" {
		t.Errorf("SelectTarget(left) = %q, want %q", dec.TargetID(), "lower-left")
	}
	if dec.Matching != 2 {
		t.Errorf("Matching = %d, want 2", dec.Matching)
	}
}

func TestSelectTargetTieKeepsFirst(t *testing.T) {
	f := newFixture()
	f.add("upper-left", geom.XYWH(0, 0, 400, 400), 1)
	f.add("lower-left", geom.XYWH(0, 400, 400, 400), 1)
	f.add("main", geom.XYWH(400, 0, 800, 800), 0)

	if got := SelectTarget(Left, f.list(), f.geo).TargetID(); got != "upper-left" {
		t.Errorf("SelectTarget(left) = %q, want first of the tie %q", got, "upper-left")
	}

	// Reversing the enumeration order flips the winner.
	f.groups[0], f.groups[1] = f.groups[1], f.groups[0]
	if got := SelectTarget(Left, f.list(), f.geo).TargetID(); got != "lower-left" {
		t.Errorf("SelectTarget(left) = %q, want first of the tie %q", got, "lower-left")
	}
}

func TestSelectTargetFallback(t *testing.T) {
	f := newFixture()
	f.add("only", geom.XYWH(0, 0, 1200, 800), 3)

	for _, d := range []Direction{Left, Right, Above, Below} {
		dec := SelectTarget(d, f.list(), f.geo)
		if dec.TargetID() != "only" {
			t.Errorf("SelectTarget(%s) = %q, want %q", d, dec.TargetID(), "only")
		}
		if dec.Matched {
			t.Errorf("SelectTarget(%s) Matched = true, want fallback", d)
		}
	}
}

func TestSelectTargetFallbackUsesFewestPanels(t *testing.T) {
	f := columns()
	f.groups[0].panels = 4
	f.groups[1].panels = 0
	f.groups[2].panels = 2

	dec := SelectTarget(Above, f.list(), f.geo)
	if dec.TargetID() != "center" || dec.Matched {
		t.Errorf("SelectTarget(above) = %q matched=%v, want center via fallback", dec.TargetID(), dec.Matched)
	}
}

func TestSelectTargetNeverReturnsIneligible(t *testing.T) {
	for _, d := range append(Directions, Direction("bogus")) {
		for _, mutate := range []func(*fakeGroup){
			func(g *fakeGroup) { g.lock = Locked },
			func(g *fakeGroup) { g.lock = LockedNoDrop },
			func(g *fakeGroup) { g.hidden = true },
		} {
			f := cross()
			excluded := map[string]bool{}
			for i, g := range f.groups {
				// Exclude every other group, including the natural match
				// for most directions.
				if i%2 == 0 {
					mutate(g)
					excluded[g.id] = true
				}
			}
			dec := SelectTarget(d, f.list(), f.geo)
			if excluded[dec.TargetID()] {
				t.Errorf("SelectTarget(%s) returned excluded group %q", d, dec.TargetID())
			}
			if !dec.Found() {
				t.Errorf("SelectTarget(%s) found nothing with eligible groups present", d)
			}
		}
	}
}

func TestSelectTargetLockedNeighbourShiftsMatch(t *testing.T) {
	f := columns()
	f.groups[0].lock = Locked

	if got := SelectTarget(Left, f.list(), f.geo).TargetID(); got != "center" {
		t.Errorf("SelectTarget(left) = %q, want %q", got, "center")
	}
}

func TestSelectTargetNoEligibleGroups(t *testing.T) {
	empty := newFixture()
	allLocked := columns()
	for _, g := range allLocked.groups {
		g.lock = Locked
	}

	for _, f := range []*fixture{empty, allLocked} {
		for _, d := range Directions {
			dec := SelectTarget(d, f.list(), f.geo)
			if dec.Found() {
				t.Errorf("SelectTarget(%s) = %q, want no target", d, dec.TargetID())
			}
			if dec.Eligible != 0 {
				t.Errorf("Eligible = %d, want 0", dec.Eligible)
			}
		}
	}
}

func TestSelectTargetUnmountedContainer(t *testing.T) {
	f := columns()
	f.groups[0].panels = 0
	f.groups[1].panels = 3
	f.groups[2].panels = 0
	f.geo.unmounted = true

	dec := SelectTarget(Right, f.list(), f.geo)
	if dec.Matched {
		t.Error("no directional match is possible without a container")
	}
	if dec.TargetID() != "left" {
		t.Errorf("SelectTarget(right) = %q, want fallback %q", dec.TargetID(), "left")
	}
}

func TestSelectTargetUnrenderedGroup(t *testing.T) {
	f := newFixture()
	f.add("visible", geom.XYWH(0, 0, 1200, 800), 2)
	hidden := &fakeGroup{id: "offscreen"}
	f.groups = append(f.groups, hidden)

	// The rendered group is the sole positioned group, so it is central.
	if got := SelectTarget(Within, f.list(), f.geo).TargetID(); got != "visible" {
		t.Errorf("SelectTarget(within) = %q, want %q", got, "visible")
	}
	// Nothing matches right; the unrendered group wins the fallback.
	if got := SelectTarget(Right, f.list(), f.geo).TargetID(); got != "offscreen" {
		t.Errorf("SelectTarget(right) = %q, want %q", got, "offscreen")
	}
}

func TestSelectTargetUnknownDirectionFallsBack(t *testing.T) {
	f := columns()
	f.groups[2].panels = 0

	dec := SelectTarget(Direction("sideways"), f.list(), f.geo)
	if dec.Matched || dec.Matching != 0 {
		t.Errorf("unknown direction matched %d groups", dec.Matching)
	}
	if dec.TargetID() != "right" {
		t.Errorf("SelectTarget(sideways) = %q, want fallback %q", dec.TargetID(), "right")
	}
}

func TestSelectTargetDeterministic(t *testing.T) {
	f := cross()
	for _, d := range Directions {
		first := SelectTarget(d, f.list(), f.geo)
		for i := 0; i < 5; i++ {
			again := SelectTarget(d, f.list(), f.geo)
			if again.TargetID() != first.TargetID() || again.Matched != first.Matched {
				t.Fatalf("SelectTarget(%s) changed between calls: %q -> %q", d, first.TargetID(), again.TargetID())
			}
		}
	}
}

func ids(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.ID()
	}
	return out
}
