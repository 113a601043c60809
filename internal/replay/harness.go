// Package replay re-executes recorded sessions against a fresh simulator and
// verifies that every step reproduces the recorded state exactly.
package replay

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

// #region report

// StepOutcome is the verification record for one replayed step.
type StepOutcome struct {
	Index   int
	Action  string
	CloudID string
	Matched bool
}

// Report is the full result of replaying one recording. Differences are
// collected, never fail-fast, so a single divergence early in a long session
// still yields a complete picture.
type Report struct {
	SessionSeed int64
	Steps       []StepOutcome
	Differences []string
}

// Matched reports whether the replay reproduced the recording exactly.
func (r *Report) Matched() bool {
	return len(r.Differences) == 0
}

func (r *Report) diff(idx int, field string, actual, expected interface{}) {
	r.Differences = append(r.Differences, fmt.Sprintf("#%d %s: %v vs %v", idx, field, actual, expected))
}

// #endregion report

// #region replay

// ReplaySession rebuilds a simulator from the recording's initial snapshot
// and seed, re-executes every step, and compares RNG call counts, conference
// membership, per-part trust and biography, and orchestrator timers against
// the recorded values. The config must match the one used during recording.
func ReplaySession(rec session.Recording, config headless.Config) *Report {
	report := &Report{SessionSeed: rec.ModelSeed}
	sim := headless.FromSnapshot(rec.InitialModel, rec.ModelSeed, config)

	for i, step := range rec.Actions {
		if got := sim.RNG.CallCount(); got != step.RNGBefore.Model {
			report.diff(i, "rngBefore", got, step.RNGBefore.Model)
		}

		if step.Action == session.ActionAdvanceIntervals {
			sim.AdvanceIntervals(step.Count)
		} else {
			sim.ExecuteAction(controller.Action(step.Action), step.CloudID, controller.Options{
				TargetCloudID: step.TargetCloudID,
				Field:         step.Field,
			})
		}

		if got := sim.RNG.CallCount(); got != step.RNGAfter.Model {
			report.diff(i, "rngAfter", got, step.RNGAfter.Model)
		}

		before := len(report.Differences)
		compareModels(report, i, sim.Snapshot(), step.ModelState)
		if timers := sim.Orchestrator.Snapshot(); !cmp.Equal(timers, step.Timers) {
			report.diff(i, "timers", fmt.Sprintf("%+v", timers), fmt.Sprintf("%+v", step.Timers))
		}

		report.Steps = append(report.Steps, StepOutcome{
			Index:   i,
			Action:  step.Action,
			CloudID: step.CloudID,
			Matched: len(report.Differences) == before,
		})
	}

	if rec.FinalModel != nil {
		compareModels(report, len(rec.Actions), sim.Snapshot(), *rec.FinalModel)
	}
	return report
}

// #endregion replay

// #region compare

// compareModels checks the state dimensions that matter for determinism:
// target and blended membership, per-part trust and biography, relationship
// sets, and the victory flag.
func compareModels(r *Report, idx int, got, want conference.SerializedModel) {
	if !equalStringSets(got.TargetCloudIDs, want.TargetCloudIDs) {
		r.diff(idx, "targets", got.TargetCloudIDs, want.TargetCloudIDs)
	}
	if !equalStringSets(blendedIDs(got), blendedIDs(want)) {
		r.diff(idx, "blended", blendedIDs(got), blendedIDs(want))
	}
	for _, id := range sortedPartIDs(want) {
		wp := want.PartStates[id]
		gp, ok := got.PartStates[id]
		if !ok {
			r.diff(idx, "part:"+id, "<missing>", wp.Name)
			continue
		}
		if gp.Trust != wp.Trust {
			r.diff(idx, "trust:"+id, gp.Trust, wp.Trust)
		}
		if gp.Biography != wp.Biography {
			r.diff(idx, "biography:"+id, fmt.Sprintf("%+v", gp.Biography), fmt.Sprintf("%+v", wp.Biography))
		}
	}
	for id := range got.PartStates {
		if _, ok := want.PartStates[id]; !ok {
			r.diff(idx, "part:"+id, got.PartStates[id].Name, "<missing>")
		}
	}
	if d := cmp.Diff(want.Protections, got.Protections); d != "" {
		r.diff(idx, "protections", fmt.Sprintf("%v", got.Protections), fmt.Sprintf("%v", want.Protections))
	}
	if d := cmp.Diff(want.Proxies, got.Proxies); d != "" {
		r.diff(idx, "proxies", fmt.Sprintf("%v", got.Proxies), fmt.Sprintf("%v", want.Proxies))
	}
	if got.VictoryAchieved != want.VictoryAchieved {
		r.diff(idx, "victory", got.VictoryAchieved, want.VictoryAchieved)
	}
}

func blendedIDs(s conference.SerializedModel) []string {
	ids := make([]string, 0, len(s.BlendedParts))
	for id := range s.BlendedParts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedPartIDs(s conference.SerializedModel) []string {
	ids := make([]string, 0, len(s.PartStates))
	for id := range s.PartStates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// #endregion compare
