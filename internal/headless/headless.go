// Package headless assembles the full simulation stack with no rendering
// dependency: part store, conference model, seeded RNG, controller, effect
// applicator, message orchestrator, and time advancer.
package headless

import (
	"fmt"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/effects"
	"github.com/jpritikin/urbb-web-sub002/internal/orchestrator"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
	"github.com/jpritikin/urbb-web-sub002/internal/schedule"
)

// #region config

// Config bundles the sub-component configs.
type Config struct {
	Schedule     schedule.Config
	Orchestrator orchestrator.Config
}

// DefaultConfig returns standard tuning for all components.
func DefaultConfig() Config {
	return Config{
		Schedule:     schedule.DefaultConfig(),
		Orchestrator: orchestrator.DefaultConfig(),
	}
}

// #endregion config

// #region simulator

// Simulator is a UI-free instantiation of the whole stack.
type Simulator struct {
	Model        *conference.Model
	Parts        *parts.Manager
	RNG          *rng.Source
	Controller   *controller.Controller
	Applicator   *effects.Applicator
	Orchestrator *orchestrator.Orchestrator
	Advancer     *schedule.Advancer
}

// New creates an empty simulator with the given seed.
func New(seed int64, config Config) *Simulator {
	model := conference.NewModel()
	pm := parts.NewManager()
	return assemble(model, pm, seed, config)
}

// FromScenario builds a simulator from a declarative fixture. The
// scenario's own seed applies unless overridden by a nonzero seed argument.
// A fixture that breaks a construction invariant, such as a grievance with
// no dialogue, is rejected outright.
func FromScenario(sc *scenario.Scenario, seed int64, config Config) (*Simulator, error) {
	if seed == 0 {
		seed = sc.Seed
	}
	sim := New(seed, config)
	for _, p := range sc.Parts {
		sim.Parts.RegisterPart(p.ID, p.Name, parts.PartOptions{
			Trust:         p.Trust,
			NeedAttention: p.NeedAttention,
			Dialogues:     p.Dialogues,
		})
	}
	for _, pr := range sc.Relationships.Protections {
		sim.Parts.AddProtection(pr.ProtectorID, pr.ProtectedID)
	}
	for _, g := range sc.Relationships.Grievances {
		if err := sim.Parts.SetGrievance(g.SenderID, g.TargetIDs, g.Dialogues); err != nil {
			return nil, fmt.Errorf("grievance of %s: %w", g.SenderID, err)
		}
	}
	for _, px := range sc.Relationships.Proxies {
		sim.Parts.AddProxy(px.PrincipalID, px.ProxyID)
	}
	for _, at := range sc.Relationships.Attacks {
		sim.Parts.AddAttacker(at.VictimID, at.AttackerID)
	}
	for _, rel := range sc.Relationships.InterPart {
		sim.Parts.SetRelation(parts.InterPartRelation{
			FromID:                     rel.FromID,
			ToID:                       rel.ToID,
			Trust:                      rel.Trust,
			TrustFloor:                 rel.TrustFloor,
			Stance:                     rel.Stance,
			StanceFlipOdds:             rel.StanceFlipOdds,
			RuminationDialogues:        rel.Rumination,
			ImpactRecognitionDialogues: rel.Recognition,
			ImpactRejectionDialogues:   rel.Rejection,
		})
	}
	for _, id := range sc.InitialTargets {
		sim.Model.AddTarget(id)
	}
	for _, id := range sc.InitialBlended {
		sim.Model.SetBlended(id, conference.BlendTherapist, 1.0)
	}
	return sim, nil
}

// FromSnapshot rebuilds a simulator from a serialized model and a seed.
func FromSnapshot(s conference.SerializedModel, seed int64, config Config) *Simulator {
	model, pm := conference.Restore(s)
	return assemble(model, pm, seed, config)
}

func assemble(model *conference.Model, pm *parts.Manager, seed int64, config Config) *Simulator {
	src := rng.New(seed)
	ctrl := controller.New(model, pm, src)
	app := effects.New(model, pm)
	orch := orchestrator.New(model, pm, src, config.Orchestrator)
	adv := schedule.New(model, pm, src, config.Schedule, orch)
	return &Simulator{
		Model:        model,
		Parts:        pm,
		RNG:          src,
		Controller:   ctrl,
		Applicator:   app,
		Orchestrator: orch,
		Advancer:     adv,
	}
}

// #endregion simulator

// #region operations

// ExecuteAction runs one action through the controller, applies its
// declarative effects, and re-evaluates the victory condition.
func (s *Simulator) ExecuteAction(action controller.Action, cloudID string, opts controller.Options) controller.Result {
	res := s.Controller.ExecuteAction(action, cloudID, opts)
	if res.Success {
		s.Applicator.Apply(res, cloudID)
		s.Model.EvaluateVictory(s.Parts)
	}
	return res
}

// AdvanceIntervals steps simulated time.
func (s *Simulator) AdvanceIntervals(count int) {
	s.Advancer.AdvanceIntervals(count)
}

// Snapshot returns the full serialized model.
func (s *Simulator) Snapshot() conference.SerializedModel {
	return s.Model.Snapshot(s.Parts)
}

// SnapshotJSON returns the serialized model as JSON.
func (s *Simulator) SnapshotJSON() ([]byte, error) {
	return s.Model.ToJSON(s.Parts)
}

// #endregion operations
