package controller

import (
	"fmt"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

// #region controller

// Controller executes therapist actions against the conference model and
// part store. All randomness flows through the injected seeded source; an
// ambient random source anywhere in these paths would break replay.
type Controller struct {
	model *conference.Model
	parts *parts.Manager
	rng   *rng.Source
}

// New creates a controller over the given model, part store, and RNG.
func New(model *conference.Model, pm *parts.Manager, src *rng.Source) *Controller {
	return &Controller{model: model, parts: pm, rng: src}
}

// #endregion controller

// #region execute

// ExecuteAction dispatches one action. Unknown actions and missing required
// options return a failure result without touching any state.
func (c *Controller) ExecuteAction(action Action, cloudID string, opts Options) Result {
	if !c.parts.Has(cloudID) {
		return failure(fmt.Sprintf("unknown part %q", cloudID))
	}

	switch action {
	case ActionSelectTarget:
		return c.selectTarget(cloudID)
	case ActionJoinConference:
		return c.joinConference(cloudID)
	case ActionSeparate:
		return c.separate(cloudID)
	case ActionBeWith:
		return c.beWith(cloudID)
	case ActionValidate:
		return c.validate(cloudID)
	case ActionStepBack:
		return c.stepBack(cloudID)
	case ActionJob:
		return c.job(cloudID)
	case ActionBlend:
		return c.blend(cloudID)
	case ActionHelpProtected:
		return c.helpProtected(cloudID)
	case ActionNoticePart:
		if opts.TargetCloudID == "" {
			return failure("notice_part requires targetCloudId")
		}
		return c.noticePart(cloudID, opts.TargetCloudID)
	case ActionRayFieldSelect:
		if opts.Field == "" {
			return failure("ray_field_select requires field")
		}
		return c.rayFieldSelect(cloudID, opts.Field)
	case ActionBacklash:
		if opts.TargetCloudID == "" {
			return failure("backlash requires targetCloudId")
		}
		return c.backlash(cloudID, opts.TargetCloudID)
	default:
		return failure(fmt.Sprintf("unknown action %q", action))
	}
}

// #endregion execute

// #region simple-handlers

func (c *Controller) selectTarget(cloudID string) Result {
	if c.model.IsTarget(cloudID) || c.model.IsBlended(cloudID) {
		return failure("part is already in focus")
	}
	c.model.AddTarget(cloudID)
	return Result{
		Success:       true,
		StateChanges:  []string{"target_selected:" + cloudID},
		CreateSelfRay: cloudID,
	}
}

func (c *Controller) joinConference(cloudID string) Result {
	if !c.model.IsSupporting(cloudID) || c.model.IsBlended(cloudID) {
		return failure("part is not waiting to join")
	}
	c.model.PromoteSupporting(cloudID)
	return Result{
		Success:      true,
		StateChanges: []string{"joined_conference:" + cloudID},
	}
}

func (c *Controller) separate(cloudID string) Result {
	if !c.model.IsBlended(cloudID) {
		return failure("part is not blended")
	}
	return Result{
		Success:        true,
		StateChanges:   []string{"separation_requested:" + cloudID},
		ReduceBlending: true,
	}
}

func (c *Controller) beWith(cloudID string) Result {
	if !c.model.IsBlended(cloudID) {
		return failure("part is not blended")
	}
	const gain = 0.05
	c.parts.AddTrust(cloudID, gain)
	res := Result{
		Success:        true,
		StateChanges:   []string{"was_with:" + cloudID},
		ReduceBlending: true,
		TrustGain:      gain,
	}
	res.TriggerBacklash = c.checkBacklash(cloudID, gain)
	return res
}

func (c *Controller) validate(cloudID string) Result {
	if !c.model.IsBlended(cloudID) {
		return failure("part is not blended")
	}
	const gain = 0.03
	c.parts.AddTrust(cloudID, gain)
	res := Result{
		Success:      true,
		StateChanges: []string{"validated:" + cloudID},
		UIFeedback:   &UIFeedback{ThoughtBubble: c.dialogueOr(cloudID, "validated", "That is how it feels.")},
		TrustGain:    gain,
	}
	res.TriggerBacklash = c.checkBacklash(cloudID, gain)
	return res
}

func (c *Controller) stepBack(cloudID string) Result {
	if !c.model.InConference(cloudID) {
		return failure("part is not in the conference")
	}
	if c.isSpontaneousBlend(cloudID) {
		return failure("a spontaneous blend cannot step back")
	}
	if c.model.IsBlended(cloudID) {
		// Therapist-reason blend dissolves when stepping back.
		c.model.ReduceBlend(cloudID, 1.0)
	}
	c.model.RemoveTarget(cloudID)
	c.model.Summon(cloudID)
	if c.model.SelfRayTarget() == cloudID {
		c.model.ClearSelfRay()
	}
	return Result{
		Success:      true,
		StateChanges: []string{"stepped_back:" + cloudID},
	}
}

func (c *Controller) blend(cloudID string) Result {
	if !c.model.IsTarget(cloudID) || c.model.IsBlended(cloudID) {
		return failure("part cannot blend now")
	}
	c.model.RemoveTarget(cloudID)
	c.model.SetBlended(cloudID, conference.BlendTherapist, 1.0)
	return Result{
		Success:      true,
		StateChanges: []string{"blended:" + cloudID},
	}
}

// #endregion simple-handlers

// #region job

// job reveals a part's job. For a protector this is a bigger disclosure:
// both identities come out and the protected part is summoned to wait at
// the edge of the conference.
func (c *Controller) job(cloudID string) Result {
	if !c.model.IsTarget(cloudID) && !c.model.IsBlended(cloudID) {
		return failure("part is not in focus")
	}

	changes := []string{"job_revealed:" + cloudID}
	c.parts.RevealJob(cloudID)

	if protected := c.parts.Protecting(cloudID); len(protected) > 0 {
		c.parts.RevealProtects(cloudID)
		c.parts.RevealIdentity(cloudID)
		changes = append(changes, "identity_revealed:"+cloudID)
		for _, pid := range protected {
			c.parts.RevealIdentity(pid)
			c.model.Summon(pid)
			changes = append(changes, "summoned:"+pid)
		}
	}

	gain := c.disclosureGain(cloudID)
	c.parts.AddTrust(cloudID, gain)

	res := Result{
		Success:      true,
		Message:      c.dialogueOr(cloudID, "job", "It does what it has always done."),
		StateChanges: changes,
		TrustGain:    gain,
	}
	res.TriggerBacklash = c.checkBacklash(cloudID, gain)
	return res
}

// #endregion job

// #region help-protected

// helpProtected asks a protector for consent to help the part it protects.
// Willingness is trust-gated: the roll passes only when trust is at least
// the draw.
func (c *Controller) helpProtected(cloudID string) Result {
	if !c.model.IsTarget(cloudID) {
		return failure("part is not targeted")
	}
	if !c.parts.IsProtecting(cloudID) {
		return failure("part protects no one")
	}
	if !c.parts.IsFieldRevealed(cloudID, parts.FieldIdentity) {
		return failure("part's identity is not revealed")
	}

	roll := c.rng.Random("help_protected_willingness")
	if c.parts.Trust(cloudID) < roll {
		return Result{
			Success:      true,
			Message:      "Refused",
			StateChanges: []string{"help_refused:" + cloudID},
			UIFeedback:   &UIFeedback{ThoughtBubble: c.dialogueOr(cloudID, "refusal", "It is not safe yet.")},
		}
	}

	c.parts.SetConsentedToHelp(cloudID)
	return Result{
		Success:      true,
		Message:      "Consented",
		StateChanges: []string{"consented_to_help:" + cloudID},
	}
}

// #endregion help-protected

// #region notice-part

func (c *Controller) noticePart(cloudID, targetID string) Result {
	if !c.parts.Has(targetID) {
		return failure(fmt.Sprintf("unknown part %q", targetID))
	}
	if !c.model.InConference(cloudID) || c.model.IsBlended(cloudID) {
		return failure("part cannot notice right now")
	}
	if !c.model.InConference(targetID) {
		return failure("noticed part is not in the conference")
	}

	if targetID == cloudID {
		const gain = 0.02
		c.parts.AddTrust(cloudID, gain)
		res := Result{
			Success:      true,
			StateChanges: []string{"self_notice:" + cloudID},
			TrustGain:    gain,
		}
		res.TriggerBacklash = c.checkBacklash(cloudID, gain)
		return res
	}

	// Protector/protectee pairs get the mutual-notice handshake.
	if c.isProtectionPair(cloudID, targetID) {
		return c.mutualNotice(cloudID, targetID)
	}

	// A standing inter-part relation runs the hostile-relation exchange.
	if rel, ok := c.parts.Relation(cloudID, targetID); ok {
		return c.hostileNotice(cloudID, targetID, rel)
	}

	return Result{
		Success:      true,
		StateChanges: []string{"noticed:" + cloudID + "->" + targetID},
	}
}

func (c *Controller) isProtectionPair(a, b string) bool {
	for _, id := range c.parts.Protecting(a) {
		if id == b {
			return true
		}
	}
	for _, id := range c.parts.Protecting(b) {
		if id == a {
			return true
		}
	}
	return false
}

// mutualNotice equalizes trust across a protection pair: the higher side
// gives half the gap to the lower. When the protectee reaches its ceiling
// the protection releases entirely and the protector is unburdened.
func (c *Controller) mutualNotice(cloudID, targetID string) Result {
	protector, protectee := cloudID, targetID
	if !protects(c.parts, protector, protectee) {
		protector, protectee = targetID, cloudID
	}

	a := c.parts.Trust(cloudID)
	b := c.parts.Trust(targetID)
	gap := a - b
	if gap < 0 {
		gap = -gap
	}
	half := gap / 2
	if a > b {
		c.parts.AddTrust(cloudID, -half)
		c.parts.AddTrust(targetID, half)
	} else {
		c.parts.AddTrust(targetID, -half)
		c.parts.AddTrust(cloudID, half)
	}

	changes := []string{"trust_equalized:" + cloudID + "<->" + targetID}

	if c.parts.Trust(protectee) >= c.parts.MaxTrust(protectee) {
		c.parts.RemoveProtection(protector, protectee)
		c.parts.SetNeedAttention(protector, 0)
		c.parts.SetUnburdened(protector)
		changes = append(changes, "protection_released:"+protector+"->"+protectee)
	}

	return Result{
		Success:      true,
		StateChanges: changes,
		TrustGain:    half,
	}
}

// hostileNotice runs the impact-recognition exchange over an inter-part
// relation. Once a trust floor is set, repeats short-circuit to an
// "already answered" response that nudges relation trust toward ceiling
// multiplicatively instead of granting fresh disclosure gains.
func (c *Controller) hostileNotice(cloudID, targetID string, rel *parts.InterPartRelation) Result {
	if rel.TrustFloor > 0 {
		c.parts.SetRelationTrust(cloudID, targetID, 1-(1-rel.Trust)*0.98)
		return Result{
			Success:      true,
			Message:      c.pickPool(rel.RuminationDialogues, "rumination", "We have been over this."),
			StateChanges: []string{"impact_reaffirmed:" + cloudID + "->" + targetID},
		}
	}

	if rel.Trust >= 0.5 && c.parts.Trust(cloudID) >= c.parts.Trust(targetID) {
		rel.TrustFloor = 0.25
		if rel.Trust < rel.TrustFloor {
			rel.Trust = rel.TrustFloor
		}
		return Result{
			Success:      true,
			Message:      c.pickPool(rel.ImpactRecognitionDialogues, "impact_recognition", "It finally hears what it did."),
			StateChanges: []string{"impact_recognized:" + cloudID + "->" + targetID},
		}
	}

	return Result{
		Success:      true,
		Message:      c.pickPool(rel.ImpactRejectionDialogues, "impact_rejection", "It will not hear it."),
		StateChanges: []string{"impact_rejected:" + cloudID + "->" + targetID},
	}
}

func protects(pm *parts.Manager, protector, protectee string) bool {
	for _, id := range pm.Protecting(protector) {
		if id == protectee {
			return true
		}
	}
	return false
}

// #endregion notice-part

// #region ray-field-select

func (c *Controller) rayFieldSelect(cloudID, field string) Result {
	if c.model.SelfRayTarget() != cloudID {
		return failure("self-ray is not on this part")
	}
	if !validField(c.ValidRayFields(cloudID), field) {
		return failure(fmt.Sprintf("field %q is not available", field))
	}

	changes := []string{}

	// Proxy deflection: a part hiding behind stand-ins answers through them
	// 95% of the time.
	if c.parts.HasProxies(cloudID) {
		if c.rng.Random("proxy_deflection") < 0.95 {
			return Result{
				Success:      true,
				Message:      c.dialogueOr(cloudID, "deflection", "I'd rather not say."),
				StateChanges: []string{"deflected:" + cloudID},
			}
		}
		released := c.parts.ReleaseProxies(cloudID)
		for _, id := range released {
			changes = append(changes, "proxy_released:"+id)
		}
	}

	var gain float64
	switch field {
	case string(parts.FieldAge):
		c.parts.RevealAge(cloudID)
		changes = append(changes, "age_revealed:"+cloudID)
		gain = c.disclosureGain(cloudID)
	case string(parts.FieldIdentity):
		c.parts.RevealIdentity(cloudID)
		changes = append(changes, "identity_revealed:"+cloudID)
		gain = c.disclosureGain(cloudID)
	case string(parts.FieldJobAppraisal):
		c.parts.RevealJobAppraisal(cloudID)
		changes = append(changes, "job_appraisal_revealed:"+cloudID)
		gain = c.disclosureGain(cloudID)
	case RayFieldGratitude, RayFieldCompassion:
		gain = 0.05
	}

	c.parts.AddTrust(cloudID, gain)

	res := Result{
		Success:      true,
		Message:      c.dialogueOr(cloudID, field, "..."),
		StateChanges: append(changes, "field_answered:"+field),
		TrustGain:    gain,
	}
	res.TriggerBacklash = c.checkBacklash(cloudID, gain)
	return res
}

func validField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

// #endregion ray-field-select

// #region backlash-action

// backlash executes a queued backlash: the protector (cloudID) reacts to
// therapy progress on its protectee.
func (c *Controller) backlash(cloudID, protecteeID string) Result {
	if !c.parts.Has(protecteeID) {
		return failure(fmt.Sprintf("unknown part %q", protecteeID))
	}
	return Result{
		Success:      true,
		StateChanges: []string{"backlash:" + cloudID + "->" + protecteeID},
		TriggerBacklash: &BacklashDirective{
			ProtectorID: cloudID,
			ProtecteeID: protecteeID,
		},
	}
}

// #endregion backlash-action

// #region helpers

// disclosureGain is the trust gained per disclosure, diluted by how many
// parts share the focus.
func (c *Controller) disclosureGain(cloudID string) float64 {
	n := c.model.TargetCount()
	if n < 1 {
		n = 1
	}
	return c.parts.Openness(cloudID) / float64(n)
}

// dialogueOr picks a random line from the part's bank for the context, or
// returns fallback without consuming a draw when the bank is empty. The
// bank's presence is part of model state, so replay stays aligned.
func (c *Controller) dialogueOr(cloudID, context, fallback string) string {
	bank := c.parts.Dialogue(cloudID, context)
	if len(bank) == 0 {
		return fallback
	}
	return rng.Pick(c.rng, bank, "dialogue:"+context)
}

func (c *Controller) pickPool(pool []string, label, fallback string) string {
	if len(pool) == 0 {
		return fallback
	}
	return rng.Pick(c.rng, pool, "dialogue:"+label)
}

// #endregion helpers
