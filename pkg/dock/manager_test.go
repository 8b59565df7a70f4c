package dock

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestManager(l *fakeLayout, opts ...Option) *Manager {
	opts = append([]Option{
		WithIDSource(&seqIDs{}),
		WithLogger(log.New(&bytes.Buffer{})),
		WithHooks(&recordingHooks{}),
	}, opts...)
	return NewManager(l, l.geo, opts...)
}

func TestManagerAddPanelToTarget(t *testing.T) {
	l := &fakeLayout{fixture: columns()}
	m := newTestManager(l)

	p, err := m.AddPanel(context.Background(), Left)
	if err != nil {
		t.Fatalf("AddPanel() error = %v", err)
	}

	if len(l.calls) != 1 {
		t.Fatalf("layout received %d commands, want 1", len(l.calls))
	}
	got := l.calls[0].Position
	if got.ReferenceGroup != "left" || got.Index != 1 || got.Direction != "" {
		t.Errorf("position = %+v, want reference left at index 1", got)
	}
	if p.NewGroup() {
		t.Error("NewGroup() = true, want false")
	}
	if p.Panel.Component != DefaultComponent || p.Panel.TabComponent != DefaultTabComponent {
		t.Errorf("components = %q/%q", p.Panel.Component, p.Panel.TabComponent)
	}
}

func TestManagerAddPanelNewGroup(t *testing.T) {
	f := columns()
	for _, g := range f.groups {
		g.lock = LockedNoDrop
	}
	l := &fakeLayout{fixture: f}
	m := newTestManager(l)

	p, err := m.AddPanel(context.Background(), Below)
	if err != nil {
		t.Fatalf("AddPanel() error = %v", err)
	}

	got := l.calls[0].Position
	if got.Relative() || got.Direction != Below {
		t.Errorf("position = %+v, want raw direction below", got)
	}
	if !p.NewGroup() {
		t.Error("NewGroup() = false, want true")
	}
}

func TestManagerAddPanelTwiceCreatesDistinctPanels(t *testing.T) {
	f := columns()
	f.groups[0].panels = 0
	l := &fakeLayout{fixture: f}
	m := newTestManager(l)

	first, err := m.AddPanel(context.Background(), Left)
	if err != nil {
		t.Fatalf("first AddPanel() error = %v", err)
	}
	second, err := m.AddPanel(context.Background(), Left)
	if err != nil {
		t.Fatalf("second AddPanel() error = %v", err)
	}

	if first.Panel.ID == second.Panel.ID {
		t.Errorf("both calls produced panel %q", first.Panel.ID)
	}
	// The second call sees the panel added by the first.
	if first.Position.Index != 0 || second.Position.Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", first.Position.Index, second.Position.Index)
	}
}

func TestManagerAddPanelParams(t *testing.T) {
	l := &fakeLayout{fixture: columns()}
	m := newTestManager(l, WithComponents("Editor", "EditorTab"))

	p, err := m.AddPanel(context.Background(), Within)
	if err != nil {
		t.Fatalf("AddPanel() error = %v", err)
	}

	params, ok := ParamsAs[DemoParams](p.Panel)
	if !ok {
		t.Fatal("ParamsAs[DemoParams]() ok = false")
	}
	if params.Title != "Panel-xxxx" {
		t.Errorf("Title = %q, want %q", params.Title, "Panel-xxxx")
	}
	if len(params.Random) != 8 {
		t.Errorf("Random = %q, want 8 characters", params.Random)
	}
	if p.Panel.Component != "Editor" || p.Panel.TabComponent != "EditorTab" {
		t.Errorf("components = %q/%q, want Editor/EditorTab", p.Panel.Component, p.Panel.TabComponent)
	}
}

func TestManagerAddPanelLayoutError(t *testing.T) {
	boom := errors.New("boom")
	l := &fakeLayout{fixture: columns(), err: boom}
	hooks := &recordingHooks{}
	m := newTestManager(l, WithHooks(hooks))

	_, err := m.AddPanel(context.Background(), Right)
	if !errors.Is(err, boom) {
		t.Fatalf("AddPanel() error = %v, want %v", err, boom)
	}
	if hooks.addErr != boom {
		t.Errorf("hook saw error %v, want %v", hooks.addErr, boom)
	}
}

func TestManagerReportsHooksAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	hooks := &recordingHooks{}
	l := &fakeLayout{fixture: cross()}
	m := newTestManager(l, WithHooks(hooks), WithLogger(logger))

	if _, err := m.AddPanel(context.Background(), Within); err != nil {
		t.Fatalf("AddPanel() error = %v", err)
	}

	if hooks.decisions != 1 || hooks.target != "center" || !hooks.matched {
		t.Errorf("hooks = %+v, want one matched decision for center", hooks)
	}
	if !strings.Contains(buf.String(), "placement decided") {
		t.Errorf("debug log missing decision trace:\n%s", buf.String())
	}
}

func TestManagerSelectTargetDoesNotMutate(t *testing.T) {
	l := &fakeLayout{fixture: cross()}
	m := newTestManager(l)

	dec := m.SelectTarget(Above)
	if dec.TargetID() != "top" {
		t.Errorf("SelectTarget(above) = %q, want %q", dec.TargetID(), "top")
	}
	if len(l.calls) != 0 {
		t.Errorf("SelectTarget issued %d commands, want 0", len(l.calls))
	}
}

type recordingHooks struct {
	decisions int
	target    string
	matched   bool
	addErr    error
}

func (h *recordingHooks) OnDecision(_ context.Context, _, target string, matched bool, _, _ int, _ time.Duration) {
	h.decisions++
	h.target = target
	h.matched = matched
}

func (h *recordingHooks) OnPanelAdded(_ context.Context, _, _ string, _ bool, err error) {
	h.addErr = err
}
