// Package effects interprets the declarative fields of a controller result
// against the live model. Keeping this interpreter separate leaves the
// controller's decision logic a pure function of model state plus RNG.
package effects

import (
	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
)

// #region applicator

// Applicator applies controller results to the model and part store.
type Applicator struct {
	model *conference.Model
	parts *parts.Manager

	// BacklashBlendTimer is the delay given to extra triggered protectors
	// queued as pending spontaneous blends.
	BacklashBlendTimer float64
}

// New creates an Applicator.
func New(model *conference.Model, pm *parts.Manager) *Applicator {
	return &Applicator{model: model, parts: pm, BacklashBlendTimer: 2.0}
}

// #endregion applicator

// #region apply

// Apply interprets one result for the acting part.
func (a *Applicator) Apply(res controller.Result, cloudID string) {
	if !res.Success {
		return
	}

	if res.UIFeedback != nil && res.UIFeedback.ThoughtBubble != "" {
		a.model.QueueMessage(cloudID, res.UIFeedback.ThoughtBubble)
	}

	if res.ReduceBlending {
		// Separation amount is dynamic: the model's own resistance logic
		// decides the step, never a flat subtraction.
		amount := a.model.CalculateSeparationAmount(cloudID)
		a.model.ReduceBlend(cloudID, amount)
	}

	if res.TriggerBacklash != nil {
		a.applyBacklash(*res.TriggerBacklash)
	}

	if res.CreateSelfRay != "" {
		a.model.SetSelfRay(res.CreateSelfRay)
	}
}

// applyBacklash raises the protector's need in proportion to its distrust
// and forces it into the conversation: blended if present, otherwise marked
// as demanding attention for a later summon. Extra triggered protectors
// queue as pending spontaneous blends.
func (a *Applicator) applyBacklash(b controller.BacklashDirective) {
	trust := a.parts.Trust(b.ProtectorID)
	a.parts.AddNeedAttention(b.ProtectorID, 0.5*(1-trust))

	if a.model.InConference(b.ProtectorID) {
		a.model.RemoveTarget(b.ProtectorID)
		a.model.SetBlended(b.ProtectorID, conference.BlendSpontaneous, 1.0)
	} else {
		a.parts.SetNeedAttention(b.ProtectorID, a.parts.NeedAttention(b.ProtectorID)+0.5)
	}

	for _, extra := range b.Extras {
		a.model.EnqueuePendingBlend(extra, conference.BlendSpontaneous, a.BacklashBlendTimer)
	}
}

// #endregion apply
