// Package randomwalk explores the action space of a simulation, either
// uniformly or guided by a phase heuristic, and reports action coverage.
package randomwalk

import (
	"fmt"
	"math/rand"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
)

// #region config

// Mode selects the walker's action policy.
type Mode string

const (
	// ModeRandom picks uniformly among valid tuples.
	ModeRandom Mode = "random"
	// ModeHeuristic weights valid tuples by the current phase through a
	// Boltzmann softmax.
	ModeHeuristic Mode = "heuristic"
)

// Config tunes one walk.
type Config struct {
	Steps int
	Mode  Mode
	// WalkSeed seeds the selection RNG. The walker deliberately keeps its
	// own stream: selection draws must not perturb the simulation's
	// recorded RNG sequence.
	WalkSeed int64
	// Temperature controls the softmax in heuristic mode.
	Temperature float64
	// IntervalEvery inserts one time advancement after every N actions.
	// Zero disables time advancement.
	IntervalEvery int
}

// DefaultConfig returns the standard exploration settings.
func DefaultConfig() Config {
	return Config{
		Steps:         500,
		Mode:          ModeHeuristic,
		WalkSeed:      1,
		Temperature:   8.0,
		IntervalEvery: 5,
	}
}

// #endregion config

// #region result

// StepRecord logs one executed step of the walk.
type StepRecord struct {
	Index   int
	Phase   Phase
	Tuple   controller.ValidTuple
	Success bool
	Message string
}

// Result is the outcome of one walk.
type Result struct {
	StepsTaken  int
	Victory     bool
	VictoryStep int // step index of victory, -1 if never reached
	Stalled     bool
	Coverage    *Coverage
	Steps       []StepRecord
}

// #endregion result

// #region walker

// Runner drives one simulator through a walk.
type Runner struct {
	sim    *headless.Simulator
	config Config
	sel    *rand.Rand
}

// New creates a walker over an assembled simulator.
func New(sim *headless.Simulator, config Config) *Runner {
	return &Runner{
		sim:    sim,
		config: config,
		sel:    rand.New(rand.NewSource(config.WalkSeed)),
	}
}

// Run executes the walk until the step budget runs out, victory is reached,
// or no action is valid.
func (r *Runner) Run() (*Result, error) {
	if r.config.Steps <= 0 {
		return nil, fmt.Errorf("step budget must be positive, got %d", r.config.Steps)
	}
	result := &Result{VictoryStep: -1, Coverage: NewCoverage()}
	var prev controller.Action

	for i := 0; i < r.config.Steps; i++ {
		tuples := r.sim.Controller.ValidActions()
		result.Coverage.observeValid(tuples)
		if len(tuples) == 0 {
			result.Stalled = true
			break
		}

		phase := ClassifyPhase(r.sim)
		tuple := r.pick(phase, tuples)
		result.Coverage.observePick(prev, tuple)
		prev = tuple.Action

		res := r.sim.ExecuteAction(tuple.Action, tuple.CloudID, controller.Options{
			TargetCloudID: tuple.TargetCloudID,
			Field:         tuple.Field,
		})
		result.Steps = append(result.Steps, StepRecord{
			Index:   i,
			Phase:   phase,
			Tuple:   tuple,
			Success: res.Success,
			Message: res.Message,
		})
		result.StepsTaken++

		if r.config.IntervalEvery > 0 && (i+1)%r.config.IntervalEvery == 0 {
			r.sim.AdvanceIntervals(1)
		}

		if r.sim.Model.VictoryAchieved {
			result.Victory = true
			result.VictoryStep = i
			break
		}
	}
	return result, nil
}

func (r *Runner) pick(phase Phase, tuples []controller.ValidTuple) controller.ValidTuple {
	if r.config.Mode == ModeRandom {
		return tuples[r.sel.Intn(len(tuples))]
	}
	scores := make([]float64, len(tuples))
	for i, t := range tuples {
		scores[i] = Score(phase, t)
	}
	weights := SoftmaxWeights(scores, r.config.Temperature)
	var total float64
	for _, w := range weights {
		total += w
	}
	draw := r.sel.Float64() * total
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return tuples[i]
		}
	}
	return tuples[len(tuples)-1]
}

// #endregion walker
