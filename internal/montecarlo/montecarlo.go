// Package montecarlo runs a scripted scenario many times under different
// seeds and aggregates statistics over user-chosen metrics.
package montecarlo

import (
	"fmt"
	"math"
	"sort"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
)

// #region config

// Metric extracts one number from a finished simulation.
type Metric func(sim *headless.Simulator) float64

// Config tunes one Monte Carlo run.
type Config struct {
	Iterations int
	// BaseSeed is the seed of iteration 0; iteration i runs with BaseSeed+i,
	// each on its own independent RNG stream.
	BaseSeed int64
	// StopOnError aborts the whole run on the first iteration that reports
	// an edge case instead of just recording it.
	StopOnError bool
	// HistogramBins is the bin count for each metric's histogram. Zero means
	// no histograms.
	HistogramBins int
}

// DefaultConfig returns a moderate batch size with histograms enabled.
func DefaultConfig() Config {
	return Config{
		Iterations:    1000,
		BaseSeed:      1,
		HistogramBins: 10,
	}
}

// #endregion config

// #region stats

// HistogramBin counts samples falling into [Low, High).
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Stats summarizes one metric across all iterations.
type Stats struct {
	Samples   int
	Min       float64
	Max       float64
	Mean      float64
	Median    float64
	StdDev    float64
	Histogram []HistogramBin
}

func summarize(values []float64, bins int) Stats {
	s := Stats{Samples: len(values)}
	if len(values) == 0 {
		return s
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	s.Mean = sum / float64(len(sorted))

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	var sq float64
	for _, v := range sorted {
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(sorted)))

	if bins > 0 && s.Max > s.Min {
		width := (s.Max - s.Min) / float64(bins)
		s.Histogram = make([]HistogramBin, bins)
		for i := range s.Histogram {
			s.Histogram[i].Low = s.Min + float64(i)*width
			s.Histogram[i].High = s.Histogram[i].Low + width
		}
		for _, v := range sorted {
			idx := int((v - s.Min) / width)
			if idx >= bins {
				idx = bins - 1
			}
			s.Histogram[idx].Count++
		}
	}
	return s
}

// #endregion stats

// #region runner

// EdgeCase pins a seed whose iteration hit an unexpected condition, so it
// can be re-run in isolation.
type EdgeCase struct {
	Seed    int64
	Message string
}

// Result is the aggregate outcome of one Monte Carlo batch.
type Result struct {
	Iterations int
	Metrics    map[string]Stats
	EdgeCases  []EdgeCase
}

// Runner executes one scenario across many seeds.
type Runner struct {
	scenario  *scenario.Scenario
	config    Config
	simConfig headless.Config
	names     []string
	metrics   map[string]Metric
}

// New creates a Runner over a scenario.
func New(sc *scenario.Scenario, config Config, simConfig headless.Config) *Runner {
	return &Runner{
		scenario:  sc,
		config:    config,
		simConfig: simConfig,
		metrics:   make(map[string]Metric),
	}
}

// AddMetric registers a named metric, evaluated on the final simulator state
// of every iteration. Registration order is preserved in the result.
func (r *Runner) AddMetric(name string, fn Metric) {
	if _, ok := r.metrics[name]; !ok {
		r.names = append(r.names, name)
	}
	r.metrics[name] = fn
}

// Run executes all iterations and aggregates statistics.
func (r *Runner) Run() (*Result, error) {
	if len(r.metrics) == 0 {
		return nil, fmt.Errorf("no metrics registered")
	}
	samples := make(map[string][]float64, len(r.metrics))
	result := &Result{Iterations: r.config.Iterations}

	for i := 0; i < r.config.Iterations; i++ {
		seed := r.config.BaseSeed + int64(i)
		sim, err := headless.FromScenario(r.scenario, seed, r.simConfig)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", r.scenario.Name, err)
		}

		for _, step := range r.scenario.Actions {
			if step.Action == "advance_intervals" {
				sim.AdvanceIntervals(1)
				continue
			}
			res := sim.ExecuteAction(controller.Action(step.Action), step.CloudID, controller.Options{
				TargetCloudID: step.TargetCloudID,
				Field:         step.Field,
			})
			if !res.Success {
				ec := EdgeCase{Seed: seed, Message: fmt.Sprintf("%s %s: %s", step.Action, step.CloudID, res.Message)}
				result.EdgeCases = append(result.EdgeCases, ec)
				if r.config.StopOnError {
					return result, fmt.Errorf("seed %d: %s", ec.Seed, ec.Message)
				}
			}
		}

		for _, name := range r.names {
			samples[name] = append(samples[name], r.metrics[name](sim))
		}
	}

	result.Metrics = make(map[string]Stats, len(samples))
	for _, name := range r.names {
		result.Metrics[name] = summarize(samples[name], r.config.HistogramBins)
	}
	return result, nil
}

// #endregion runner

// #region builtin-metrics

// MeanTrust averages trust over every registered part.
func MeanTrust(sim *headless.Simulator) float64 {
	ids := sim.Parts.IDs()
	if len(ids) == 0 {
		return 0
	}
	var sum float64
	for _, id := range ids {
		sum += sim.Parts.Trust(id)
	}
	return sum / float64(len(ids))
}

// BlendedCount counts currently blended parts.
func BlendedCount(sim *headless.Simulator) float64 {
	return float64(len(sim.Model.BlendedIDs()))
}

// MessageCount counts queued conversational messages.
func MessageCount(sim *headless.Simulator) float64 {
	return float64(len(sim.Model.Messages()))
}

// VictoryRate is 1 when the run ended in victory, 0 otherwise. Averaged over
// a batch it becomes the victory probability.
func VictoryRate(sim *headless.Simulator) float64 {
	if sim.Model.VictoryAchieved {
		return 1
	}
	return 0
}

// #endregion builtin-metrics
