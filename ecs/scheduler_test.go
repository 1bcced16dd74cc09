package ecs

import (
	"errors"
	"testing"
)

type recordSystem struct {
	name  string
	log   *[]string
	ticks []uint64
}

func (r *recordSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	r.ticks = append(r.ticks, w.ChangeTick())
}

func TestSchedulerStageOrder(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Add(PostUpdate, &recordSystem{name: "post", log: &log})
	s.Add(Update, &recordSystem{name: "update_a", log: &log})
	s.Add(PreUpdate, &recordSystem{name: "pre", log: &log})
	s.Add(Update, &recordSystem{name: "update_b", log: &log})
	s.Add(Update, nil)

	s.Update(NewWorld())

	want := []string{"pre", "update_a", "update_b", "post"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if got := len(s.Systems(Update)); got != 2 {
		t.Fatalf("expected 2 update systems, got %d", got)
	}
}

func TestSchedulerAdvancesTickPerSystem(t *testing.T) {
	var log []string
	a := &recordSystem{name: "a", log: &log}
	b := &recordSystem{name: "b", log: &log}
	s := NewScheduler(a, b)
	w := NewWorld()

	s.Update(w)
	s.Update(w)

	if len(a.ticks) != 2 || len(b.ticks) != 2 {
		t.Fatalf("expected two runs each, got a=%v b=%v", a.ticks, b.ticks)
	}
	if !(a.ticks[0] < b.ticks[0] && b.ticks[0] < a.ticks[1] && a.ticks[1] < b.ticks[1]) {
		t.Fatalf("expected strictly increasing ticks, got a=%v b=%v", a.ticks, b.ticks)
	}
}

type testPlugin struct {
	name   string
	builds int
	err    error
}

func (p *testPlugin) Name() string { return p.name }

func (p *testPlugin) Build(app *App) error {
	p.builds++
	if p.err != nil {
		return p.err
	}
	app.AddSystem(Update, SystemFunc(func(*World) {}))
	return nil
}

func TestAppAddPlugins(t *testing.T) {
	app := NewApp()
	p := &testPlugin{name: "p"}
	if err := app.AddPlugins(p); err != nil {
		t.Fatal(err)
	}
	if err := app.AddPlugins(&testPlugin{name: "p"}); !errors.Is(err, ErrDuplicatePlugin) {
		t.Fatalf("expected ErrDuplicatePlugin, got %v", err)
	}
	if p.builds != 1 {
		t.Fatalf("expected one build, got %d", p.builds)
	}

	boom := errors.New("boom")
	if err := app.AddPlugins(&testPlugin{name: "bad", err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped build error, got %v", err)
	}
	if err := app.AddPlugins(&testPlugin{name: "bad"}); err != nil {
		t.Fatalf("failed plugin should not be recorded as added: %v", err)
	}

	before := app.World.ChangeTick()
	app.Update()
	if app.World.ChangeTick() <= before {
		t.Fatal("Update should advance the world tick")
	}
}
