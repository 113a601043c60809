package orchestrator

import (
	"testing"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

func makeOrchestrator(seed int64) (*Orchestrator, *conference.Model, *parts.Manager, *rng.Source) {
	model := conference.NewModel()
	pm := parts.NewManager()
	pm.RegisterPart("p1", "Critic", parts.PartOptions{Trust: 0.5})
	pm.RegisterPart("p2", "Exile", parts.PartOptions{Trust: 0.3})
	src := rng.New(seed)
	return New(model, pm, src, DefaultConfig()), model, pm, src
}

func TestGrievanceHolderGetsScheduled(t *testing.T) {
	o, model, pm, src := makeOrchestrator(1)
	if err := pm.SetGrievance("p1", []string{"p2"}, []string{"you left me"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}
	model.AddTarget("p1")

	o.Tick(1.0)
	snap := o.Snapshot()
	if len(snap.MessageTimers) != 1 || snap.MessageTimers[0].CloudID != "p1" {
		t.Fatalf("expected one timer for p1, got %+v", snap.MessageTimers)
	}
	config := DefaultConfig()
	d := snap.MessageTimers[0].Remaining
	if d < config.MessageDelayBase || d >= config.MessageDelayBase+config.MessageDelayJitter {
		t.Fatalf("delay %v outside [base, base+jitter)", d)
	}
	if got := src.CallCount(); got != 1 {
		t.Fatalf("scheduling should cost one draw, got %d", got)
	}
}

func TestOutsidersAreNotScheduled(t *testing.T) {
	o, _, pm, _ := makeOrchestrator(1)
	if err := pm.SetGrievance("p1", []string{"p2"}, []string{"you left me"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}

	o.Tick(1.0)
	if got := o.Snapshot().MessageTimers; len(got) != 0 {
		t.Fatalf("part outside the conference should not speak, got %+v", got)
	}
}

func TestElapsedTimerDeliversGrievanceAndCoolsDown(t *testing.T) {
	o, model, pm, _ := makeOrchestrator(1)
	if err := pm.SetGrievance("p1", []string{"p2"}, []string{"you left me"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}
	model.AddTarget("p1")

	o.Tick(1.0) // schedules: delay is at most base+jitter
	o.Tick(10.0)
	if !model.HasMessageContaining("you left me") {
		t.Fatal("grievance line should be delivered")
	}
	snap := o.Snapshot()
	if len(snap.MessageTimers) != 0 {
		t.Fatalf("delivered timer should be gone, got %+v", snap.MessageTimers)
	}
	if len(snap.Cooldowns) != 1 || snap.Cooldowns[0].CloudID != "p1" {
		t.Fatalf("expected cooldown for p1, got %+v", snap.Cooldowns)
	}

	// On cooldown: no reschedule.
	o.Tick(1.0)
	if got := o.Snapshot().MessageTimers; len(got) != 0 {
		t.Fatalf("cooling part should stay quiet, got %+v", got)
	}

	// Cooldown expires, the part schedules again.
	o.Tick(10.0)
	snap = o.Snapshot()
	if len(snap.Cooldowns) != 0 {
		t.Fatalf("cooldown should have decayed, got %+v", snap.Cooldowns)
	}
	if len(snap.MessageTimers) != 1 {
		t.Fatalf("expected a fresh timer, got %+v", snap.MessageTimers)
	}
}

func TestSpontaneousBlendTakesTimeToSettle(t *testing.T) {
	o, model, _, _ := makeOrchestrator(1)
	model.SetBlended("p1", conference.BlendSpontaneous, 1.0)

	o.Tick(1.0) // registers the readiness countdown
	if o.IsBlendReady("p1") {
		t.Fatal("fresh spontaneous blend should not be ready")
	}
	o.Tick(DefaultConfig().BlendReadiness)
	if !o.IsBlendReady("p1") {
		t.Fatal("settled blend should be ready")
	}
}

func TestTherapistBlendIsImmediatelyReady(t *testing.T) {
	o, model, _, _ := makeOrchestrator(1)
	model.SetBlended("p1", conference.BlendTherapist, 1.0)

	o.Tick(1.0)
	if !o.IsBlendReady("p1") {
		t.Fatal("therapist blend needs no settling")
	}
}

func TestUnblendedPartIsNeverReady(t *testing.T) {
	o, _, _, _ := makeOrchestrator(1)
	if o.IsBlendReady("p1") {
		t.Fatal("unblended part cannot be blend-ready")
	}
}

func TestReplayAlignmentAcrossSameSeed(t *testing.T) {
	run := func() ([]rng.Call, State) {
		o, model, pm, src := makeOrchestrator(7)
		_ = pm.SetGrievance("p1", []string{"p2"}, []string{"first", "second", "third"})
		_ = pm.SetGrievance("p2", []string{"p1"}, []string{"other"})
		model.AddTarget("p1")
		model.AddTarget("p2")
		for i := 0; i < 20; i++ {
			o.Tick(1.0)
		}
		return src.Calls(), o.Snapshot()
	}

	callsA, snapA := run()
	callsB, snapB := run()
	if len(callsA) != len(callsB) {
		t.Fatalf("draw counts diverged: %d vs %d", len(callsA), len(callsB))
	}
	for i := range callsA {
		if callsA[i] != callsB[i] {
			t.Fatalf("draw %d diverged: %+v vs %+v", i, callsA[i], callsB[i])
		}
	}
	for i, e := range snapA.MessageTimers {
		if snapB.MessageTimers[i] != e {
			t.Fatalf("timer state diverged at %d", i)
		}
	}
}
