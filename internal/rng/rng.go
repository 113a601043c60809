package rng

import (
	"math/rand"
)

// #region types

// Call records a single draw from the source: the advisory label passed by
// the caller, the value produced, and the position in the call sequence.
type Call struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Seq   int     `json:"seq"`
}

// Source is a deterministic random source with an append-only call log.
// Two sources built with the same seed and driven by the same number of
// calls produce identical value sequences; labels are for debugging
// divergence only and never affect the values.
type Source struct {
	seed  int64
	rand  *rand.Rand
	calls []Call
}

// #endregion types

// #region constructor

// New creates a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// #endregion constructor

// #region draw

// Random returns the next float64 in [0, 1) and logs the call.
func (s *Source) Random(label string) float64 {
	v := s.rand.Float64()
	s.calls = append(s.calls, Call{Label: label, Value: v, Seq: len(s.calls)})
	return v
}

// PickIndex returns a uniformly random index in [0, n). It consumes exactly
// one call, like Random, so replay stays aligned regardless of n.
func (s *Source) PickIndex(n int, label string) int {
	if n <= 0 {
		return 0
	}
	v := s.Random(label)
	idx := int(v * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Pick returns a uniformly random element of list. Panics on empty input;
// callers check emptiness as a precondition.
func Pick[T any](s *Source, list []T, label string) T {
	return list[s.PickIndex(len(list), label)]
}

// #endregion draw

// #region inspection

// CallCount returns the number of draws made so far.
func (s *Source) CallCount() int {
	return len(s.calls)
}

// Calls returns a copy of the call log.
func (s *Source) Calls() []Call {
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Seed returns the seed this source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// #endregion inspection
