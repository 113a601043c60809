package headless

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
)

func demoScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name: "demo",
		Seed: 42,
		Parts: []scenario.PartConfig{
			{ID: "p1", Name: "Critic", Trust: 0.5},
			{ID: "p2", Name: "Exile", Trust: 0.3},
			{ID: "p3", Name: "Firefighter", Trust: 0.4},
		},
		Relationships: scenario.RelationshipConfig{
			Protections: []scenario.ProtectionConfig{{ProtectorID: "p1", ProtectedID: "p2"}},
			Grievances: []scenario.GrievanceConfig{
				{SenderID: "p2", TargetIDs: []string{"p1"}, Dialogues: []string{"you kept me small"}},
			},
			Attacks: []scenario.AttackConfig{{VictimID: "p3", AttackerID: "p1"}},
		},
		InitialTargets: []string{"p1"},
	}
}

func buildSim(t *testing.T, sc *scenario.Scenario, seed int64) *Simulator {
	t.Helper()
	sim, err := FromScenario(sc, seed, DefaultConfig())
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}
	return sim
}

func TestFromScenarioBuildsRelations(t *testing.T) {
	sim := buildSim(t, demoScenario(), 0)

	if got := sim.Parts.IDs(); len(got) != 3 {
		t.Fatalf("expected 3 parts, got %v", got)
	}
	if !sim.Parts.IsProtecting("p1") {
		t.Fatal("protection edge missing")
	}
	if !sim.Parts.HasGrievances("p2") {
		t.Fatal("grievance missing")
	}
	if !sim.Parts.IsAttacked("p3") {
		t.Fatal("attack edge missing")
	}
	if !sim.Model.IsTarget("p1") {
		t.Fatal("initial target missing")
	}
	if got := sim.Parts.MaxTrust("p3"); got != 0.8 {
		t.Fatalf("attacked part's ceiling should be 0.8, got %v", got)
	}
}

func TestFromScenarioRejectsGrievanceWithoutDialogue(t *testing.T) {
	sc := demoScenario()
	sc.Relationships.Grievances = []scenario.GrievanceConfig{
		{SenderID: "p2", TargetIDs: []string{"p1"}},
	}

	if _, err := FromScenario(sc, 0, DefaultConfig()); err == nil {
		t.Fatal("a grievance with no dialogue must fail construction")
	}
}

func TestFromScenarioSeedOverride(t *testing.T) {
	sc := demoScenario()

	if got := buildSim(t, sc, 0).RNG.Seed(); got != 42 {
		t.Fatalf("zero override should use the scenario seed, got %d", got)
	}
	if got := buildSim(t, sc, 99).RNG.Seed(); got != 99 {
		t.Fatalf("nonzero override should win, got %d", got)
	}
}

func TestExecuteActionAppliesEffects(t *testing.T) {
	sim := buildSim(t, demoScenario(), 0)

	res := sim.ExecuteAction(controller.ActionSelectTarget, "p2", controller.Options{})
	if !res.Success {
		t.Fatalf("select failed: %s", res.Message)
	}
	// The self-ray directive is interpreted, not just returned.
	if sim.Model.SelfRayTarget() != "p2" {
		t.Fatal("self-ray effect was not applied")
	}
}

func TestFailedActionHasNoSideEffects(t *testing.T) {
	sim := buildSim(t, demoScenario(), 0)
	before := sim.RNG.CallCount()

	res := sim.ExecuteAction(controller.ActionSelectTarget, "p1", controller.Options{})
	if res.Success {
		t.Fatal("selecting an existing target should fail")
	}
	if sim.RNG.CallCount() != before {
		t.Fatal("failed action must not consume draws")
	}
}

func TestSameSeedSameTrajectory(t *testing.T) {
	run := func() *Simulator {
		sim := buildSim(t, demoScenario(), 7)
		sim.ExecuteAction(controller.ActionSelectTarget, "p2", controller.Options{})
		sim.ExecuteAction(controller.ActionBlend, "p2", controller.Options{})
		sim.ExecuteAction(controller.ActionBeWith, "p2", controller.Options{})
		sim.AdvanceIntervals(5)
		sim.ExecuteAction(controller.ActionJob, "p1", controller.Options{})
		sim.AdvanceIntervals(5)
		return sim
	}

	a, b := run(), run()
	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Fatalf("same seed diverged:\n%s", diff)
	}
	if a.RNG.CallCount() != b.RNG.CallCount() {
		t.Fatalf("draw counts diverged: %d vs %d", a.RNG.CallCount(), b.RNG.CallCount())
	}
}

func TestFromSnapshotRoundTrip(t *testing.T) {
	sim := buildSim(t, demoScenario(), 7)
	sim.ExecuteAction(controller.ActionSelectTarget, "p2", controller.Options{})

	restored := FromSnapshot(sim.Snapshot(), 7, DefaultConfig())
	if diff := cmp.Diff(sim.Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("snapshot round trip drifted:\n%s", diff)
	}
}
