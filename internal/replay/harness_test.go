package replay

import (
	"testing"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

func pairScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name: "pair",
		Seed: 17,
		Parts: []scenario.PartConfig{
			{ID: "p1", Name: "Critic", Trust: 0.5},
			{ID: "p2", Name: "Exile", Trust: 0.3},
		},
		Relationships: scenario.RelationshipConfig{
			Protections: []scenario.ProtectionConfig{{ProtectorID: "p1", ProtectedID: "p2"}},
			Grievances: []scenario.GrievanceConfig{
				{SenderID: "p2", TargetIDs: []string{"p1"}, Dialogues: []string{"you kept me small"}},
			},
		},
		InitialTargets: []string{"p1"},
	}
}

func recordSession(t *testing.T) session.Recording {
	t.Helper()
	sim, err := headless.FromScenario(pairScenario(), 0, headless.DefaultConfig())
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}
	rec := session.NewRecorder(sim, "test-build")

	rec.ExecuteAction(controller.ActionJob, "p1", controller.Options{})
	rec.AdvanceIntervals(3)
	rec.ExecuteAction(controller.ActionSelectTarget, "p2", controller.Options{})
	rec.ExecuteAction(controller.ActionBlend, "p2", controller.Options{})
	rec.ExecuteAction(controller.ActionBeWith, "p2", controller.Options{})
	rec.AdvanceIntervals(5)
	return rec.Finish()
}

func TestReplayMatchesRecording(t *testing.T) {
	recording := recordSession(t)

	report := ReplaySession(recording, headless.DefaultConfig())
	if !report.Matched() {
		t.Fatalf("replay diverged:\n%v", report.Differences)
	}
	if len(report.Steps) != len(recording.Actions) {
		t.Fatalf("expected %d step outcomes, got %d", len(recording.Actions), len(report.Steps))
	}
	for _, s := range report.Steps {
		if !s.Matched {
			t.Fatalf("step %d (%s) flagged despite clean replay", s.Index, s.Action)
		}
	}
	if report.SessionSeed != 17 {
		t.Fatalf("expected seed 17, got %d", report.SessionSeed)
	}
}

func TestReplayFlagsTamperedTrust(t *testing.T) {
	recording := recordSession(t)

	// Corrupt one recorded trust value; the replay must pin the exact step.
	state := recording.Actions[2].ModelState
	p := state.PartStates["p1"]
	p.Trust = 0.999
	state.PartStates["p1"] = p

	report := ReplaySession(recording, headless.DefaultConfig())
	if report.Matched() {
		t.Fatal("tampered recording should diverge")
	}
	if report.Steps[2].Matched {
		t.Fatal("tampered step should be flagged")
	}
	if report.Steps[0].Matched != true || report.Steps[1].Matched != true {
		t.Fatal("untampered steps should still match")
	}
}

func TestReplayFlagsRNGMisalignment(t *testing.T) {
	recording := recordSession(t)
	recording.Actions[0].RNGBefore.Model = 99

	report := ReplaySession(recording, headless.DefaultConfig())
	if report.Matched() {
		t.Fatal("count mismatch should diverge")
	}
}

func TestReplayCollectsAllDifferences(t *testing.T) {
	recording := recordSession(t)
	for i := range recording.Actions {
		recording.Actions[i].RNGBefore.Model += 100
	}

	report := ReplaySession(recording, headless.DefaultConfig())
	// No fail-fast: every step must still be examined.
	if len(report.Steps) != len(recording.Actions) {
		t.Fatalf("expected %d step outcomes, got %d", len(recording.Actions), len(report.Steps))
	}
	if len(report.Differences) < len(recording.Actions) {
		t.Fatalf("expected a difference per step, got %d", len(report.Differences))
	}
}
