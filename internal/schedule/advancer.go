// Package schedule advances simulated time in fixed intervals, running the
// randomized attention-demand checks and the pending-blend timers.
package schedule

import (
	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

// #region config

// Config tunes the advancer.
type Config struct {
	// IntervalLength is the simulated seconds per interval.
	IntervalLength float64
	// AttentionScale converts a part's attention need into a per-interval
	// demand probability.
	AttentionScale float64
	// BlendDelay is the timer given to spontaneous blends queued by an
	// attention demand, in intervals.
	BlendDelay float64
	// SkipAttentionChecks disables the randomized spontaneous events while
	// leaving interval counting intact. The headless harness uses this for
	// purely mechanical replay verification.
	SkipAttentionChecks bool
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		IntervalLength: 1.0,
		AttentionScale: 0.1,
		BlendDelay:     3.0,
	}
}

// #endregion config

// #region advancer

// Ticker receives one callback per elapsed interval. The message
// orchestrator hangs its timers off this.
type Ticker interface {
	Tick(dt float64)
}

// Advancer steps simulated time for one simulation instance.
type Advancer struct {
	model  *conference.Model
	parts  *parts.Manager
	rng    *rng.Source
	config Config
	ticker Ticker

	elapsed   float64 // carry-over toward the next interval
	Intervals int     // total intervals processed
}

// New creates an Advancer. ticker may be nil.
func New(model *conference.Model, pm *parts.Manager, src *rng.Source, config Config, ticker Ticker) *Advancer {
	if config.IntervalLength <= 0 {
		config.IntervalLength = 1.0
	}
	return &Advancer{model: model, parts: pm, rng: src, config: config, ticker: ticker}
}

// #endregion advancer

// #region advance

// Advance accumulates deltaTime and processes every full interval crossed.
func (a *Advancer) Advance(deltaTime float64) {
	a.elapsed += deltaTime
	for a.elapsed >= a.config.IntervalLength {
		a.elapsed -= a.config.IntervalLength
		a.interval()
	}
}

// AdvanceIntervals processes exactly count intervals.
func (a *Advancer) AdvanceIntervals(count int) {
	for i := 0; i < count; i++ {
		a.interval()
	}
}

func (a *Advancer) interval() {
	a.Intervals++
	a.tickPendingBlends()
	if !a.config.SkipAttentionChecks {
		a.attentionChecks()
	}
	if a.ticker != nil {
		a.ticker.Tick(a.config.IntervalLength)
	}
}

// #endregion advance

// #region pending-blends

// tickPendingBlends counts each queued blend down one interval. An elapsed
// blend goes live only if its part is still in the conference; otherwise it
// degrades to a standalone attention demand.
func (a *Advancer) tickPendingBlends() {
	pending := a.model.PendingBlends()
	var remaining []conference.PendingBlend
	for _, pb := range pending {
		pb.Timer -= 1.0
		if pb.Timer > 0 {
			remaining = append(remaining, pb)
			continue
		}
		if a.model.InConference(pb.CloudID) && !a.model.IsBlended(pb.CloudID) {
			a.model.RemoveTarget(pb.CloudID)
			a.model.SetBlended(pb.CloudID, pb.Reason, 1.0)
		} else if !a.model.IsBlended(pb.CloudID) {
			a.parts.AddNeedAttention(pb.CloudID, 0.5)
		}
	}
	a.model.SetPendingBlends(remaining)
}

// #endregion pending-blends

// #region attention

// attentionChecks rolls each part for a spontaneous attention demand.
// Parts are visited in sorted id order so the draw sequence is stable.
func (a *Advancer) attentionChecks() {
	for _, id := range a.parts.IDs() {
		need := a.parts.NeedAttention(id)
		if need <= 0 {
			continue
		}
		p := need * a.config.AttentionScale
		if p > 1 {
			p = 1
		}
		if a.rng.Random("attention:"+id) >= p {
			continue
		}
		// The demand fires: conference members queue a spontaneous blend,
		// outsiders get summoned to the edge.
		if a.model.InConference(id) && !a.model.IsBlended(id) {
			a.model.EnqueuePendingBlend(id, conference.BlendSpontaneous, a.config.BlendDelay)
		} else if !a.model.InConference(id) {
			a.model.Summon(id)
		}
		a.parts.SetNeedAttention(id, a.parts.AssessNeedAttention(id))
	}
}

// #endregion attention
