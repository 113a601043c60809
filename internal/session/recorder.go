package session

import (
	"runtime"
	"time"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
)

// #region recorder

// Recorder drives a simulator while logging every step into a Recording.
type Recorder struct {
	sim *headless.Simulator
	rec Recording
}

// NewRecorder starts a recording of the given simulator.
func NewRecorder(sim *headless.Simulator, codeVersion string) *Recorder {
	return &Recorder{
		sim: sim,
		rec: Recording{
			Version:      FormatVersion,
			CodeVersion:  codeVersion,
			Platform:     runtime.GOOS + "/" + runtime.GOARCH,
			ModelSeed:    sim.RNG.Seed(),
			Timestamp:    time.Now().UTC(),
			InitialModel: sim.Snapshot(),
		},
	}
}

// #endregion recorder

// #region record

// ExecuteAction runs an action on the simulator and records it.
func (r *Recorder) ExecuteAction(action controller.Action, cloudID string, opts controller.Options) controller.Result {
	before := r.sim.RNG.CallCount()
	res := r.sim.ExecuteAction(action, cloudID, opts)
	r.rec.Actions = append(r.rec.Actions, RecordedAction{
		Action:        string(action),
		CloudID:       cloudID,
		TargetCloudID: opts.TargetCloudID,
		Field:         opts.Field,
		RNGBefore:     RNGCounts{Model: before},
		RNGAfter:      RNGCounts{Model: r.sim.RNG.CallCount()},
		ModelState:    r.sim.Snapshot(),
		Timers:        r.sim.Orchestrator.Snapshot(),
	})
	return res
}

// AdvanceIntervals steps time on the simulator and records the advancement,
// so the replay consumes the same draws in the same places.
func (r *Recorder) AdvanceIntervals(count int) {
	before := r.sim.RNG.CallCount()
	r.sim.AdvanceIntervals(count)
	r.rec.Actions = append(r.rec.Actions, RecordedAction{
		Action:     ActionAdvanceIntervals,
		Count:      count,
		RNGBefore:  RNGCounts{Model: before},
		RNGAfter:   RNGCounts{Model: r.sim.RNG.CallCount()},
		ModelState: r.sim.Snapshot(),
		Timers:     r.sim.Orchestrator.Snapshot(),
	})
}

// Finish closes the recording with a final snapshot and returns it.
func (r *Recorder) Finish() Recording {
	final := r.sim.Snapshot()
	r.rec.FinalModel = &final
	return r.rec
}

// #endregion record
