package controller

import (
	"testing"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

func makeController(seed int64) (*Controller, *conference.Model, *parts.Manager) {
	model := conference.NewModel()
	pm := parts.NewManager()
	pm.RegisterPart("p1", "Critic", parts.PartOptions{Trust: 0.5})
	pm.RegisterPart("p2", "Exile", parts.PartOptions{Trust: 0.3})
	pm.RegisterPart("p3", "Firefighter", parts.PartOptions{Trust: 0.4})
	return New(model, pm, rng.New(seed)), model, pm
}

func TestUnknownPartFailsWithoutMutation(t *testing.T) {
	c, model, _ := makeController(1)

	res := c.ExecuteAction(ActionSelectTarget, "ghost", Options{})
	if res.Success {
		t.Fatal("unknown part should fail")
	}
	if model.TargetCount() != 0 {
		t.Fatal("failure should not mutate the model")
	}
}

func TestUnknownActionFails(t *testing.T) {
	c, _, _ := makeController(1)

	res := c.ExecuteAction(Action("levitate"), "p1", Options{})
	if res.Success {
		t.Fatal("unknown action should fail")
	}
}

func TestNoticePartRequiresTarget(t *testing.T) {
	c, _, _ := makeController(1)

	res := c.ExecuteAction(ActionNoticePart, "p1", Options{})
	if res.Success {
		t.Fatal("missing targetCloudId should fail")
	}
}

func TestSelectTargetCreatesSelfRayDirective(t *testing.T) {
	c, model, _ := makeController(1)

	res := c.ExecuteAction(ActionSelectTarget, "p1", Options{})
	if !res.Success {
		t.Fatalf("select failed: %s", res.Message)
	}
	if res.CreateSelfRay != "p1" {
		t.Fatalf("expected self-ray directive for p1, got %q", res.CreateSelfRay)
	}
	if !model.IsTarget("p1") {
		t.Fatal("p1 should be targeted")
	}

	// Selecting again is rejected.
	if res := c.ExecuteAction(ActionSelectTarget, "p1", Options{}); res.Success {
		t.Fatal("double select should fail")
	}
}

func TestSelectTargetConsumesSummonedPart(t *testing.T) {
	c, model, _ := makeController(1)
	model.Summon("p2")

	res := c.ExecuteAction(ActionSelectTarget, "p2", Options{})
	if !res.Success {
		t.Fatalf("select failed: %s", res.Message)
	}
	if !model.IsTarget("p2") || model.IsSupporting("p2") {
		t.Fatalf("p2 should be a target only: supporting=%v", model.Supporting())
	}
	if hasTuple(c.ValidActions(), ValidTuple{Action: ActionJoinConference, CloudID: "p2"}) {
		t.Fatal("join_conference must not be offered for a part already inside")
	}
}

func TestBlendMovesTargetIntoBlendedSet(t *testing.T) {
	c, model, _ := makeController(1)
	model.AddTarget("p1")

	res := c.ExecuteAction(ActionBlend, "p1", Options{})
	if !res.Success {
		t.Fatalf("blend failed: %s", res.Message)
	}
	if model.IsTarget("p1") {
		t.Fatal("blended part should leave the target set")
	}
	b, ok := model.BlendOf("p1")
	if !ok || b.Reason != conference.BlendTherapist || b.Degree != 1.0 {
		t.Fatalf("expected full therapist blend, got %+v", b)
	}
}

func TestBeWithGainsTrustAndRequestsSeparation(t *testing.T) {
	c, model, pm := makeController(1)
	model.SetBlended("p1", conference.BlendSpontaneous, 1.0)

	res := c.ExecuteAction(ActionBeWith, "p1", Options{})
	if !res.Success {
		t.Fatalf("be_with failed: %s", res.Message)
	}
	if !res.ReduceBlending {
		t.Fatal("be_with should request blend reduction")
	}
	if got := pm.Trust("p1"); got != 0.55 {
		t.Fatalf("expected trust 0.55, got %v", got)
	}
	if res.TriggerBacklash != nil {
		t.Fatal("no protectors: no backlash")
	}
}

func TestBacklashHalvesProtectorTrust(t *testing.T) {
	c, model, pm := makeController(1)
	pm.AddProtection("p1", "p2")
	model.SetBlended("p2", conference.BlendSpontaneous, 1.0)

	res := c.ExecuteAction(ActionBeWith, "p2", Options{})
	if !res.Success {
		t.Fatalf("be_with failed: %s", res.Message)
	}
	// The protector always pays half the gain, triggered or not.
	if got := pm.Trust("p1"); got != 0.475 {
		t.Fatalf("expected protector trust 0.475, got %v", got)
	}
}

func TestBacklashAlwaysTriggersAtZeroTrust(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 0)
	pm.AddProtection("p1", "p2")
	model.SetBlended("p2", conference.BlendSpontaneous, 1.0)

	res := c.ExecuteAction(ActionBeWith, "p2", Options{})
	// Threshold is 1 - newTrust/2 = 1.0 at zero trust: every draw triggers.
	if res.TriggerBacklash == nil {
		t.Fatal("zero-trust protector must trigger backlash")
	}
	if res.TriggerBacklash.ProtectorID != "p1" || res.TriggerBacklash.ProtecteeID != "p2" {
		t.Fatalf("wrong directive: %+v", res.TriggerBacklash)
	}
}

func TestConsentedProtectorSkipsBacklash(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 0)
	pm.AddProtection("p1", "p2")
	pm.SetConsentedToHelp("p1")
	model.SetBlended("p2", conference.BlendSpontaneous, 1.0)

	res := c.ExecuteAction(ActionBeWith, "p2", Options{})
	if res.TriggerBacklash != nil {
		t.Fatal("consented protector must not trigger backlash")
	}
	if got := pm.Trust("p1"); got != 0 {
		t.Fatalf("consented protector should not pay trust, got %v", got)
	}
}

func TestJobOnProtectorSummonsProtected(t *testing.T) {
	c, model, pm := makeController(1)
	pm.AddProtection("p1", "p2")
	model.AddTarget("p1")

	res := c.ExecuteAction(ActionJob, "p1", Options{})
	if !res.Success {
		t.Fatalf("job failed: %s", res.Message)
	}
	if !pm.IsFieldRevealed("p1", parts.FieldJob) ||
		!pm.IsFieldRevealed("p1", parts.FieldProtects) ||
		!pm.IsFieldRevealed("p1", parts.FieldIdentity) {
		t.Fatal("protector job should reveal job, protects, and identity")
	}
	if !pm.IsFieldRevealed("p2", parts.FieldIdentity) {
		t.Fatal("protected part's identity should come out too")
	}
	if !model.IsSupporting("p2") {
		t.Fatal("protected part should be summoned")
	}
	// Disclosure gain: only identity carries weight here (0.2), one target.
	if got := pm.Trust("p1"); got != 0.7 {
		t.Fatalf("expected trust 0.7, got %v", got)
	}
}

func TestHelpProtectedConsentsAtFullTrust(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 1.0)
	pm.AddProtection("p1", "p2")
	pm.RevealIdentity("p1")
	model.AddTarget("p1")

	res := c.ExecuteAction(ActionHelpProtected, "p1", Options{})
	if !res.Success {
		t.Fatalf("help_protected failed: %s", res.Message)
	}
	// Any draw in [0, 1) is at most full trust, so consent is certain.
	if res.Message != "Consented" {
		t.Fatalf("expected Consented, got %q", res.Message)
	}
	if !pm.HasConsentedToHelp("p1") {
		t.Fatal("consent flag should be set")
	}
}

func TestHelpProtectedRefusedByLowTrustProtector(t *testing.T) {
	// Fixed-seed regression: with seed 1 the willingness roll is the first
	// draw, 0.6046602879796196, so a protector at trust 0.3 after the job
	// reveal deterministically refuses.
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 0.1)
	pm.AddProtection("p1", "p2")
	model.AddTarget("p1")

	job := c.ExecuteAction(ActionJob, "p1", Options{})
	if !job.Success || job.TrustGain != 0.2 {
		t.Fatalf("job on the protector should gain 0.2, got %+v", job)
	}

	res := c.ExecuteAction(ActionHelpProtected, "p1", Options{})
	if !res.Success {
		t.Fatalf("help_protected failed: %s", res.Message)
	}
	if res.Message != "Refused" {
		t.Fatalf("expected Refused, got %q", res.Message)
	}
	if pm.HasConsentedToHelp("p1") {
		t.Fatal("refusal must not set the consent flag")
	}
	if res.UIFeedback == nil || res.UIFeedback.ThoughtBubble != "It is not safe yet." {
		t.Fatalf("expected the refusal fallback line, got %+v", res.UIFeedback)
	}
}

func TestHelpProtectedNeedsRevealedIdentity(t *testing.T) {
	c, model, pm := makeController(1)
	pm.AddProtection("p1", "p2")
	model.AddTarget("p1")

	if res := c.ExecuteAction(ActionHelpProtected, "p1", Options{}); res.Success {
		t.Fatal("hidden identity should block help_protected")
	}
}

func TestMutualNoticeEqualizesTrust(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 0.75)
	pm.SetTrust("p2", 0.25)
	pm.AddProtection("p1", "p2")
	model.AddTarget("p1")
	model.AddTarget("p2")

	res := c.ExecuteAction(ActionNoticePart, "p1", Options{TargetCloudID: "p2"})
	if !res.Success {
		t.Fatalf("notice failed: %s", res.Message)
	}
	if a, b := pm.Trust("p1"), pm.Trust("p2"); a != 0.5 || b != 0.5 {
		t.Fatalf("expected both at 0.5, got %v and %v", a, b)
	}
	if !pm.IsProtecting("p1") {
		t.Fatal("protection should survive below the ceiling")
	}
}

func TestMutualNoticeAtCeilingReleasesProtection(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 1.0)
	pm.SetTrust("p2", 1.0)
	pm.AddProtection("p1", "p2")
	model.AddTarget("p1")
	model.AddTarget("p2")

	res := c.ExecuteAction(ActionNoticePart, "p1", Options{TargetCloudID: "p2"})
	if !res.Success {
		t.Fatalf("notice failed: %s", res.Message)
	}
	if pm.IsProtecting("p1") {
		t.Fatal("protection should release at ceiling")
	}
	if !pm.IsUnburdened("p1") {
		t.Fatal("protector should be unburdened")
	}
	if got := pm.NeedAttention("p1"); got != 0 {
		t.Fatalf("released protector's need should reset, got %v", got)
	}
}

func TestHostileNoticeRecognitionThenReaffirm(t *testing.T) {
	c, model, pm := makeController(1)
	pm.SetTrust("p1", 0.6)
	pm.SetTrust("p2", 0.4)
	pm.SetRelation(parts.InterPartRelation{FromID: "p1", ToID: "p2", Trust: 0.6})
	model.AddTarget("p1")
	model.AddTarget("p2")

	res := c.ExecuteAction(ActionNoticePart, "p1", Options{TargetCloudID: "p2"})
	if !res.Success {
		t.Fatalf("notice failed: %s", res.Message)
	}
	rel, _ := pm.Relation("p1", "p2")
	if rel.TrustFloor != 0.25 {
		t.Fatalf("recognition should set the floor, got %v", rel.TrustFloor)
	}

	// Repeats nudge relation trust toward ceiling multiplicatively.
	before := rel.Trust
	res = c.ExecuteAction(ActionNoticePart, "p1", Options{TargetCloudID: "p2"})
	if !res.Success {
		t.Fatalf("repeat notice failed: %s", res.Message)
	}
	want := 1 - (1-before)*0.98
	if rel.Trust != want {
		t.Fatalf("expected trust %v after reaffirm, got %v", want, rel.Trust)
	}
}

func TestRayFieldSelectRevealsAndGains(t *testing.T) {
	c, model, pm := makeController(1)
	model.AddTarget("p1")
	model.SetSelfRay("p1")
	pm.SetTrust("p1", 0.3)

	res := c.ExecuteAction(ActionRayFieldSelect, "p1", Options{Field: string(parts.FieldAge)})
	if !res.Success {
		t.Fatalf("ray_field_select failed: %s", res.Message)
	}
	if !pm.IsFieldRevealed("p1", parts.FieldAge) {
		t.Fatal("age should be revealed")
	}
	// Age carries weight 0.5 and p1 is the only target.
	if got := pm.Trust("p1"); got != 0.8 {
		t.Fatalf("expected trust 0.8, got %v", got)
	}
}

func TestRayFieldSelectRejectsUnavailableField(t *testing.T) {
	c, model, pm := makeController(1)
	model.AddTarget("p1")
	model.SetSelfRay("p1")
	pm.RevealIdentity("p1")

	// Identity revealed and p1 protects no one: jobAppraisal is off the list.
	res := c.ExecuteAction(ActionRayFieldSelect, "p1", Options{Field: string(parts.FieldJobAppraisal)})
	if res.Success {
		t.Fatal("unavailable field should be rejected")
	}
}

func TestProxyDeflectionKeepsInvariants(t *testing.T) {
	c, model, pm := makeController(1)
	pm.AddProxy("p1", "p3")
	model.AddTarget("p1")
	model.SetSelfRay("p1")

	res := c.ExecuteAction(ActionRayFieldSelect, "p1", Options{Field: string(parts.FieldAge)})
	if !res.Success {
		t.Fatalf("ray_field_select failed: %s", res.Message)
	}
	if pm.HasProxies("p1") {
		// Deflected: nothing revealed, no trust movement.
		if pm.IsFieldRevealed("p1", parts.FieldAge) {
			t.Fatal("deflection must not reveal the field")
		}
		if got := pm.Trust("p1"); got != 0.5 {
			t.Fatalf("deflection must not move trust, got %v", got)
		}
	} else {
		// Got through: proxies released and marked.
		p3, _ := pm.Part("p3")
		if !p3.WasProxy {
			t.Fatal("released proxy should carry WasProxy")
		}
		if !pm.IsFieldRevealed("p1", parts.FieldAge) {
			t.Fatal("getting through should reveal the field")
		}
	}
}

func TestStepBackDissolvesTherapistBlend(t *testing.T) {
	c, model, _ := makeController(1)
	model.AddTarget("p1")
	model.SetSelfRay("p1")
	res := c.ExecuteAction(ActionBlend, "p1", Options{})
	if !res.Success {
		t.Fatalf("blend failed: %s", res.Message)
	}

	res = c.ExecuteAction(ActionStepBack, "p1", Options{})
	if !res.Success {
		t.Fatalf("step_back failed: %s", res.Message)
	}
	if model.IsBlended("p1") || model.IsTarget("p1") {
		t.Fatal("part should have left the conference")
	}
	if !model.IsSupporting("p1") {
		t.Fatal("part should wait in the supporting set")
	}
	if model.SelfRayTarget() != "" {
		t.Fatal("self-ray should be cleared")
	}
}

func TestStepBackRefusedForSpontaneousBlend(t *testing.T) {
	c, model, _ := makeController(1)
	model.SetBlended("p1", conference.BlendSpontaneous, 1.0)

	if res := c.ExecuteAction(ActionStepBack, "p1", Options{}); res.Success {
		t.Fatal("spontaneous blend should not step back")
	}
}
