package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPlacementHooks{}
	p.OnDecision(ctx, "left", "g1", true, 3, 1, time.Millisecond)
	p.OnDecision(ctx, "within", "", false, 0, 0, 0)
	p.OnPanelAdded(ctx, "p1", "g1", false, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/panels")
	h.OnResponse(ctx, "POST", "/panels", 201, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Placement() should return NoopPlacementHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPlacement := &testPlacementHooks{}
	SetPlacementHooks(customPlacement)
	if Placement() != customPlacement {
		t.Error("SetPlacementHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Reset() should restore NoopPlacementHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlacementHooks{}
	SetPlacementHooks(custom)
	SetPlacementHooks(nil)

	if Placement() != custom {
		t.Error("SetPlacementHooks(nil) should not replace registered hooks")
	}
	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPlacementHooks{}
	SetPlacementHooks(custom)

	Placement().OnDecision(context.Background(), "right", "g2", true, 2, 1, time.Millisecond)
	Placement().OnPanelAdded(context.Background(), "p1", "g2", false, nil)

	if custom.decisions != 1 {
		t.Errorf("decisions = %d, want 1", custom.decisions)
	}
	if custom.lastTarget != "g2" {
		t.Errorf("lastTarget = %q, want %q", custom.lastTarget, "g2")
	}
	if custom.added != 1 {
		t.Errorf("added = %d, want 1", custom.added)
	}
}

type testPlacementHooks struct {
	decisions  int
	added      int
	lastTarget string
}

func (h *testPlacementHooks) OnDecision(_ context.Context, _, target string, _ bool, _, _ int, _ time.Duration) {
	h.decisions++
	h.lastTarget = target
}

func (h *testPlacementHooks) OnPanelAdded(context.Context, string, string, bool, error) {
	h.added++
}

type testHTTPHooks struct{}

func (testHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
