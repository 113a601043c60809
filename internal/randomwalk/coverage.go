package randomwalk

import (
	"sort"

	"github.com/jpritikin/urbb-web-sub002/internal/controller"
)

// #region coverage

// Coverage tracks which actions the walk saw and took. The distinction
// between "never valid" and "valid but never picked" matters when reading a
// run: the first points at the state space, the second at the selector.
type Coverage struct {
	ValidCounts  map[controller.Action]int
	PickedCounts map[controller.Action]int
	Transitions  map[string]int // "prev>next" action pairs actually taken
	RayFields    map[string]int // fields chosen by ray_field_select
}

// NewCoverage returns an empty tracker.
func NewCoverage() *Coverage {
	return &Coverage{
		ValidCounts:  make(map[controller.Action]int),
		PickedCounts: make(map[controller.Action]int),
		Transitions:  make(map[string]int),
		RayFields:    make(map[string]int),
	}
}

func (c *Coverage) observeValid(tuples []controller.ValidTuple) {
	seen := make(map[controller.Action]bool)
	for _, t := range tuples {
		if !seen[t.Action] {
			seen[t.Action] = true
			c.ValidCounts[t.Action]++
		}
	}
}

func (c *Coverage) observePick(prev controller.Action, t controller.ValidTuple) {
	c.PickedCounts[t.Action]++
	if prev != "" {
		c.Transitions[string(prev)+">"+string(t.Action)]++
	}
	if t.Action == controller.ActionRayFieldSelect {
		c.RayFields[t.Field]++
	}
}

// NeverValid lists palette actions whose preconditions never held at any
// step of the walk.
func (c *Coverage) NeverValid() []controller.Action {
	return c.missing(c.ValidCounts, nil)
}

// NeverPicked lists palette actions that were offered at least once but
// never chosen.
func (c *Coverage) NeverPicked() []controller.Action {
	return c.missing(c.PickedCounts, c.ValidCounts)
}

func (c *Coverage) missing(counts map[controller.Action]int, within map[controller.Action]int) []controller.Action {
	var out []controller.Action
	for _, a := range controller.PaletteActions {
		if counts[a] > 0 {
			continue
		}
		if within != nil && within[a] == 0 {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// #endregion coverage
