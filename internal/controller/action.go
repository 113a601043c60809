// Package controller implements the therapist action state machine: which
// actions are currently legal, and what executing one does. Decision logic
// is pure over model state plus the seeded RNG; the three declarative effect
// fields on Result are applied separately by the effects package.
package controller

// #region actions

// Action identifies one entry of the therapist action palette.
type Action string

// The action palette. Backlash is dispatched internally when a queued
// backlash fires; it is not offered by the validity oracle.
const (
	ActionSelectTarget   Action = "select_a_target"
	ActionJoinConference Action = "join_conference"
	ActionSeparate       Action = "separate"
	ActionBeWith         Action = "be_with"
	ActionValidate       Action = "validate"
	ActionStepBack       Action = "step_back"
	ActionJob            Action = "job"
	ActionBlend          Action = "blend"
	ActionHelpProtected  Action = "help_protected"
	ActionNoticePart     Action = "notice_part"
	ActionRayFieldSelect Action = "ray_field_select"
	ActionBacklash       Action = "backlash"
)

// PaletteActions lists every action the validity oracle can offer, in a
// fixed order so enumeration stays deterministic.
var PaletteActions = []Action{
	ActionSelectTarget,
	ActionJoinConference,
	ActionSeparate,
	ActionBeWith,
	ActionValidate,
	ActionStepBack,
	ActionJob,
	ActionBlend,
	ActionHelpProtected,
	ActionNoticePart,
	ActionRayFieldSelect,
}

// #endregion actions

// #region options-result

// Options carries the optional parameters of an action.
type Options struct {
	TargetCloudID string
	Field         string
}

// UIFeedback is the display payload of a result.
type UIFeedback struct {
	ThoughtBubble string
}

// BacklashDirective instructs the applicator to run a backlash against a
// protector. Extras are additional triggered protectors to enqueue as
// pending spontaneous blends.
type BacklashDirective struct {
	ProtectorID string
	ProtecteeID string
	Extras      []string
}

// Result is the structured outcome of one action execution. The effect
// fields (TriggerBacklash, CreateSelfRay, ReduceBlending) are declarative:
// the controller never applies them itself.
type Result struct {
	Success         bool
	Message         string
	StateChanges    []string
	UIFeedback      *UIFeedback
	TriggerBacklash *BacklashDirective
	CreateSelfRay   string
	ReduceBlending  bool
	TrustGain       float64
}

func failure(msg string) Result {
	return Result{Success: false, Message: msg}
}

// #endregion options-result

// #region valid-tuple

// ValidTuple is one legal (action, cloud, target/field) combination.
type ValidTuple struct {
	Action        Action
	CloudID       string
	TargetCloudID string
	Field         string
}

// #endregion valid-tuple
