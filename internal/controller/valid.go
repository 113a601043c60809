package controller

import (
	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
)

// #region ray-fields

// Ray fields that carry no biography flag.
const (
	RayFieldGratitude  = "gratitude"
	RayFieldCompassion = "compassion"
)

// ValidRayFields returns the fields the self-ray may ask a part about:
// always age, identity, gratitude, compassion; jobAppraisal joins when the
// part's identity is still hidden or the part is (or was) a protector.
func (c *Controller) ValidRayFields(cloudID string) []string {
	fields := []string{
		string(parts.FieldAge),
		string(parts.FieldIdentity),
		RayFieldGratitude,
		RayFieldCompassion,
	}
	if !c.parts.IsFieldRevealed(cloudID, parts.FieldIdentity) ||
		c.parts.IsProtecting(cloudID) || c.parts.IsUnburdened(cloudID) {
		fields = append(fields, string(parts.FieldJobAppraisal))
	}
	return fields
}

// #endregion ray-fields

// #region validity-oracle

// ValidActions enumerates every currently legal action tuple. It is the
// shared precondition oracle: the UI offers exactly these, and the random
// walker samples only from these.
func (c *Controller) ValidActions() []ValidTuple {
	var out []ValidTuple
	ids := c.parts.IDs()

	for _, id := range ids {
		for _, action := range PaletteActions {
			switch action {
			case ActionSelectTarget:
				if !c.model.IsTarget(id) && !c.model.IsBlended(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionJoinConference:
				if c.model.IsSupporting(id) && !c.model.IsBlended(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionSeparate, ActionBeWith, ActionValidate:
				if c.model.IsBlended(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionStepBack:
				if c.model.InConference(id) && !c.isSpontaneousBlend(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionJob:
				if c.model.IsTarget(id) || c.model.IsBlended(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionBlend:
				if c.model.IsTarget(id) && !c.model.IsBlended(id) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionHelpProtected:
				if c.model.IsTarget(id) && c.parts.IsProtecting(id) &&
					c.parts.IsFieldRevealed(id, parts.FieldIdentity) {
					out = append(out, ValidTuple{Action: action, CloudID: id})
				}
			case ActionNoticePart:
				if c.model.InConference(id) && !c.model.IsBlended(id) {
					for _, target := range ids {
						if c.model.InConference(target) {
							out = append(out, ValidTuple{Action: action, CloudID: id, TargetCloudID: target})
						}
					}
				}
			case ActionRayFieldSelect:
				if c.model.SelfRayTarget() == id {
					for _, field := range c.ValidRayFields(id) {
						out = append(out, ValidTuple{Action: action, CloudID: id, Field: field})
					}
				}
			}
		}
	}
	return out
}

func (c *Controller) isSpontaneousBlend(id string) bool {
	b, ok := c.model.BlendOf(id)
	return ok && b.Reason == conference.BlendSpontaneous
}

// #endregion validity-oracle
