package replay

import (
	"fmt"
	"strings"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
)

// #region scenario-result

// ScenarioResult reports one scripted scenario run: per-step controller
// results plus the outcome of every assertion over the final state.
type ScenarioResult struct {
	Name        string
	StepResults []controller.Result
	Failures    []string
}

// Passed reports whether every assertion held.
func (r *ScenarioResult) Passed() bool {
	return len(r.Failures) == 0
}

// #endregion scenario-result

// #region run

// RunScenario builds a simulator from the fixture, executes its action
// script, and evaluates its assertions. A failed action step is not itself a
// scenario failure; scenarios may script invalid actions on purpose to pin
// down rejection behavior.
func RunScenario(sc *scenario.Scenario, config headless.Config) (*ScenarioResult, error) {
	sim, err := headless.FromScenario(sc, 0, config)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	result := &ScenarioResult{Name: sc.Name}

	for _, step := range sc.Actions {
		if step.Action == "advance_intervals" {
			sim.AdvanceIntervals(1)
			result.StepResults = append(result.StepResults, controller.Result{Success: true})
			continue
		}
		res := sim.ExecuteAction(controller.Action(step.Action), step.CloudID, controller.Options{
			TargetCloudID: step.TargetCloudID,
			Field:         step.Field,
		})
		result.StepResults = append(result.StepResults, res)
	}

	for i, a := range sc.Assertions {
		if err := evaluate(sim, a); err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return result, nil
}

// #endregion run

// #region assertions

func evaluate(sim *headless.Simulator, a scenario.Assertion) error {
	switch a.Field {
	case "trust":
		want, err := toFloat(a.Value)
		if err != nil {
			return err
		}
		return compareFloat(sim.Parts.Trust(a.CloudID), a.Op, want,
			fmt.Sprintf("trust of %s", a.CloudID))
	case "blended":
		return compareBool(sim.Model.IsBlended(a.CloudID), a.Op, a.Value,
			fmt.Sprintf("blended %s", a.CloudID))
	case "target":
		return compareBool(sim.Model.IsTarget(a.CloudID), a.Op, a.Value,
			fmt.Sprintf("target %s", a.CloudID))
	case "message":
		want, ok := a.Value.(string)
		if !ok {
			return fmt.Errorf("message assertion needs a string value, got %T", a.Value)
		}
		if a.Op != "contains" {
			return fmt.Errorf("message assertion supports only contains, got %q", a.Op)
		}
		if !sim.Model.HasMessageContaining(want) {
			return fmt.Errorf("no message contains %q", want)
		}
		return nil
	case "biography":
		got := sim.Parts.IsFieldRevealed(a.CloudID, parts.Field(a.BiographyField))
		return compareBool(got, a.Op, a.Value,
			fmt.Sprintf("biography %s of %s", a.BiographyField, a.CloudID))
	case "victory":
		return compareBool(sim.Model.VictoryAchieved, a.Op, a.Value, "victory")
	default:
		return fmt.Errorf("unknown assertion field %q", a.Field)
	}
}

func compareFloat(got float64, op string, want float64, what string) error {
	ok := false
	switch op {
	case "==":
		ok = got == want
	case "!=":
		ok = got != want
	case ">=":
		ok = got >= want
	case "<=":
		ok = got <= want
	default:
		return fmt.Errorf("unknown op %q for %s", op, what)
	}
	if !ok {
		return fmt.Errorf("%s: %v %s %v does not hold", what, got, op, want)
	}
	return nil
}

func compareBool(got bool, op string, value interface{}, what string) error {
	want, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%s: expected a bool value, got %T", what, value)
	}
	switch op {
	case "==":
		if got != want {
			return fmt.Errorf("%s: got %v, want %v", what, got, want)
		}
	case "!=":
		if got == want {
			return fmt.Errorf("%s: got %v, want not %v", what, got, want)
		}
	default:
		return fmt.Errorf("unknown op %q for %s", op, what)
	}
	return nil
}

// toFloat accepts the numeric types JSON and YAML decoders produce for an
// untyped value.
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &f); err != nil {
			return 0, fmt.Errorf("cannot parse %q as a number", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot use %T as a number", v)
	}
}

// #endregion assertions
