package randomwalk

import (
	"math"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
)

// #region phases

// Phase classifies where a session stands on the road to resolution. The
// heuristic walker weights actions by the current phase.
type Phase string

const (
	PhaseSummon     Phase = "summon"      // parts still outside the conference
	PhaseClearProxy Phase = "clear_proxy" // principals still hide behind proxies
	PhaseClearBlend Phase = "clear_blend" // parts still blended
	PhaseGetConsent Phase = "get_consent" // protectors have not consented to help
	PhaseBuildTrust Phase = "build_trust" // trust below ceiling somewhere
	PhaseUnburden   Phase = "unburden"    // protections still in place
	PhaseDone       Phase = "done"
)

// ClassifyPhase inspects the simulator and returns the earliest unfinished
// phase.
func ClassifyPhase(sim *headless.Simulator) Phase {
	if sim.Model.VictoryAchieved {
		return PhaseDone
	}
	ids := sim.Parts.IDs()
	for _, id := range ids {
		if !sim.Model.InConference(id) && !sim.Model.IsSupporting(id) {
			return PhaseSummon
		}
	}
	for _, id := range ids {
		if sim.Parts.HasProxies(id) {
			return PhaseClearProxy
		}
	}
	if len(sim.Model.BlendedIDs()) > 0 {
		return PhaseClearBlend
	}
	for _, id := range ids {
		if sim.Parts.IsProtecting(id) && !sim.Parts.HasConsentedToHelp(id) {
			return PhaseGetConsent
		}
	}
	const eps = 1e-9
	for _, id := range ids {
		if sim.Parts.Trust(id) < sim.Parts.MaxTrust(id)-eps {
			return PhaseBuildTrust
		}
	}
	if sim.Parts.ProtectionCount() > 0 {
		return PhaseUnburden
	}
	return PhaseDone
}

// #endregion phases

// #region scoring

// phaseWeights gives each action a score per phase. Unlisted actions score
// the base weight of 1, so nothing is ever excluded outright; the softmax
// only tilts the odds.
var phaseWeights = map[Phase]map[controller.Action]float64{
	PhaseSummon: {
		controller.ActionSelectTarget:   10,
		controller.ActionJoinConference: 8,
	},
	PhaseClearProxy: {
		controller.ActionRayFieldSelect: 10,
		controller.ActionJob:            4,
	},
	PhaseClearBlend: {
		controller.ActionBeWith:   8,
		controller.ActionValidate: 8,
		controller.ActionSeparate: 6,
	},
	PhaseGetConsent: {
		controller.ActionJob:            8,
		controller.ActionHelpProtected:  10,
		controller.ActionRayFieldSelect: 5,
	},
	PhaseBuildTrust: {
		controller.ActionBeWith:         6,
		controller.ActionValidate:       6,
		controller.ActionRayFieldSelect: 6,
		controller.ActionNoticePart:     4,
	},
	PhaseUnburden: {
		controller.ActionNoticePart: 10,
	},
	PhaseDone: {},
}

// Score returns the heuristic weight of one tuple in one phase.
func Score(phase Phase, t controller.ValidTuple) float64 {
	if w, ok := phaseWeights[phase][t.Action]; ok {
		return w
	}
	return 1
}

// SoftmaxWeights converts scores into Boltzmann selection weights at the
// given temperature. Higher temperature flattens the distribution toward
// uniform; lower temperature sharpens it toward greedy.
func SoftmaxWeights(scores []float64, temperature float64) []float64 {
	if temperature <= 0 {
		temperature = 1
	}
	weights := make([]float64, len(scores))
	for i, s := range scores {
		weights[i] = math.Exp(s / temperature)
	}
	return weights
}

// #endregion scoring
