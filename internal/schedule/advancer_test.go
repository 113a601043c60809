package schedule

import (
	"testing"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

func makeAdvancer(config Config) (*Advancer, *conference.Model, *parts.Manager) {
	model := conference.NewModel()
	pm := parts.NewManager()
	pm.RegisterPart("p1", "Critic", parts.PartOptions{Trust: 0.5})
	pm.RegisterPart("p2", "Exile", parts.PartOptions{Trust: 0.3})
	return New(model, pm, rng.New(1), config, nil), model, pm
}

func TestAdvanceCrossesIntervalsFractionally(t *testing.T) {
	config := DefaultConfig()
	config.SkipAttentionChecks = true
	a, _, _ := makeAdvancer(config)

	a.Advance(0.5)
	if a.Intervals != 0 {
		t.Fatalf("half an interval should not tick, got %d", a.Intervals)
	}
	a.Advance(0.5)
	if a.Intervals != 1 {
		t.Fatalf("expected 1 interval, got %d", a.Intervals)
	}
	a.Advance(2.25)
	if a.Intervals != 3 {
		t.Fatalf("expected 3 intervals, got %d", a.Intervals)
	}
}

func TestAdvanceIntervalsExactCount(t *testing.T) {
	config := DefaultConfig()
	config.SkipAttentionChecks = true
	a, _, _ := makeAdvancer(config)

	a.AdvanceIntervals(5)
	if a.Intervals != 5 {
		t.Fatalf("expected 5 intervals, got %d", a.Intervals)
	}
}

func TestPendingBlendFiresInConference(t *testing.T) {
	config := DefaultConfig()
	config.SkipAttentionChecks = true
	a, model, _ := makeAdvancer(config)
	model.AddTarget("p1")
	model.EnqueuePendingBlend("p1", conference.BlendSpontaneous, 2.0)

	a.AdvanceIntervals(1)
	if model.IsBlended("p1") {
		t.Fatal("timer should still be running")
	}
	a.AdvanceIntervals(1)
	b, ok := model.BlendOf("p1")
	if !ok || b.Reason != conference.BlendSpontaneous || b.Degree != 1.0 {
		t.Fatalf("expected full spontaneous blend, got %+v", b)
	}
	if model.IsTarget("p1") {
		t.Fatal("blended part should leave the target set")
	}
	if got := len(model.PendingBlends()); got != 0 {
		t.Fatalf("fired blend should leave the queue, got %d", got)
	}
}

func TestPendingBlendDegradesOutsideConference(t *testing.T) {
	config := DefaultConfig()
	config.SkipAttentionChecks = true
	a, model, pm := makeAdvancer(config)
	model.EnqueuePendingBlend("p1", conference.BlendSpontaneous, 1.0)

	a.AdvanceIntervals(1)
	if model.IsBlended("p1") {
		t.Fatal("absent part should not blend")
	}
	if got := pm.NeedAttention("p1"); got != 0.5 {
		t.Fatalf("expected need 0.5, got %v", got)
	}
}

func TestAttentionDemandSummonsOutsider(t *testing.T) {
	a, model, pm := makeAdvancer(DefaultConfig())
	// Need 10 * scale 0.1 clamps to probability 1: the demand always fires.
	pm.SetNeedAttention("p1", 10)

	a.AdvanceIntervals(1)
	if !model.IsSupporting("p1") {
		t.Fatal("demanding outsider should be summoned")
	}
	// Need resets to the assessed baseline for a plain part.
	if got := pm.NeedAttention("p1"); got != 0.3 {
		t.Fatalf("expected reassessed need 0.3, got %v", got)
	}
}

func TestAttentionDemandQueuesBlendForMember(t *testing.T) {
	config := DefaultConfig()
	a, model, pm := makeAdvancer(config)
	model.AddTarget("p1")
	pm.SetNeedAttention("p1", 10)

	a.AdvanceIntervals(1)
	pending := model.PendingBlends()
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending blend, got %d", len(pending))
	}
	if pending[0].CloudID != "p1" || pending[0].Timer != config.BlendDelay {
		t.Fatalf("unexpected pending blend: %+v", pending[0])
	}
}

func TestSkipAttentionChecksSuppressesDemands(t *testing.T) {
	config := DefaultConfig()
	config.SkipAttentionChecks = true
	a, model, pm := makeAdvancer(config)
	pm.SetNeedAttention("p1", 10)

	a.AdvanceIntervals(3)
	if model.IsSupporting("p1") {
		t.Fatal("skipped checks must not summon")
	}
	if a.Intervals != 3 {
		t.Fatalf("interval counting should continue, got %d", a.Intervals)
	}
}

func TestZeroNeedConsumesNoDraws(t *testing.T) {
	src := rng.New(1)
	model := conference.NewModel()
	pm := parts.NewManager()
	pm.RegisterPart("p1", "Critic", parts.PartOptions{Trust: 0.5})
	a := New(model, pm, src, DefaultConfig(), nil)

	a.AdvanceIntervals(4)
	if got := src.CallCount(); got != 0 {
		t.Fatalf("parts without need must not roll, got %d draws", got)
	}
}
