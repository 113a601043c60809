// Package orchestrator manages the asynchronous conversational layer:
// inter-part message timers, blend-readiness timers, and per-part cooldowns,
// all driven by the shared seeded RNG so recorded sessions replay exactly.
package orchestrator

import (
	"sort"

	"github.com/jpritikin/urbb-web-sub002/internal/conference"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
	"github.com/jpritikin/urbb-web-sub002/internal/rng"
)

// #region config

// Config tunes the orchestrator's timing.
type Config struct {
	// MessageDelayBase and MessageDelayJitter bound the delay before a part
	// voices a grievance: base + draw*jitter intervals.
	MessageDelayBase   float64
	MessageDelayJitter float64
	// MessageCooldown is the quiet period after a part speaks.
	MessageCooldown float64
	// BlendReadiness is how long a spontaneous blend takes to become
	// workable.
	BlendReadiness float64
}

// DefaultConfig returns the standard timing.
func DefaultConfig() Config {
	return Config{
		MessageDelayBase:   2.0,
		MessageDelayJitter: 4.0,
		MessageCooldown:    5.0,
		BlendReadiness:     3.0,
	}
}

// #endregion config

// #region orchestrator

// Orchestrator owns the timer state for one simulation instance.
type Orchestrator struct {
	model  *conference.Model
	parts  *parts.Manager
	rng    *rng.Source
	config Config

	messageTimers map[string]float64 // sender → intervals until it speaks
	cooldowns     map[string]float64 // sender → quiet time remaining
	blendReady    map[string]float64 // blended part → readiness countdown
}

// New creates an Orchestrator.
func New(model *conference.Model, pm *parts.Manager, src *rng.Source, config Config) *Orchestrator {
	return &Orchestrator{
		model:         model,
		parts:         pm,
		rng:           src,
		config:        config,
		messageTimers: make(map[string]float64),
		cooldowns:     make(map[string]float64),
		blendReady:    make(map[string]float64),
	}
}

// #endregion orchestrator

// #region tick

// Tick advances every timer by dt. Parts are visited in sorted order so the
// draw sequence is identical between a live run and its replay.
func (o *Orchestrator) Tick(dt float64) {
	o.decayCooldowns(dt)
	o.tickBlendReadiness(dt)
	o.tickMessages(dt)
	o.scheduleMessages()
}

func (o *Orchestrator) decayCooldowns(dt float64) {
	for _, id := range sortedIDs(o.cooldowns) {
		o.cooldowns[id] -= dt
		if o.cooldowns[id] <= 0 {
			delete(o.cooldowns, id)
		}
	}
}

func (o *Orchestrator) tickBlendReadiness(dt float64) {
	for _, id := range sortedIDs(o.blendReady) {
		if !o.model.IsBlended(id) {
			delete(o.blendReady, id)
			continue
		}
		// A settled blend keeps its zeroed entry while blended, so the
		// registration pass below cannot restart the countdown.
		if o.blendReady[id] <= 0 {
			continue
		}
		o.blendReady[id] -= dt
		if o.blendReady[id] < 0 {
			o.blendReady[id] = 0
		}
	}
	// Newly blended parts start a readiness countdown.
	for _, id := range o.model.BlendedIDs() {
		b, _ := o.model.BlendOf(id)
		if b.Reason != conference.BlendSpontaneous {
			continue
		}
		if _, ok := o.blendReady[id]; !ok {
			o.blendReady[id] = o.config.BlendReadiness
		}
	}
}

func (o *Orchestrator) tickMessages(dt float64) {
	for _, id := range sortedIDs(o.messageTimers) {
		o.messageTimers[id] -= dt
		if o.messageTimers[id] > 0 {
			continue
		}
		delete(o.messageTimers, id)
		o.deliverGrievance(id)
	}
}

// scheduleMessages starts a timer for every conference member that holds a
// grievance, is not already scheduled, and is off cooldown.
func (o *Orchestrator) scheduleMessages() {
	for _, id := range o.parts.IDs() {
		if !o.model.InConference(id) || !o.parts.HasGrievances(id) {
			continue
		}
		if _, ok := o.messageTimers[id]; ok {
			continue
		}
		if _, ok := o.cooldowns[id]; ok {
			continue
		}
		delay := o.config.MessageDelayBase + o.rng.Random("message_delay:"+id)*o.config.MessageDelayJitter
		o.messageTimers[id] = delay
	}
}

func (o *Orchestrator) deliverGrievance(senderID string) {
	lines := o.parts.GrievanceDialogues(senderID)
	if len(lines) == 0 {
		return
	}
	line := rng.Pick(o.rng, lines, "grievance_line:"+senderID)
	o.model.QueueMessage(senderID, line)
	o.cooldowns[senderID] = o.config.MessageCooldown
}

// IsBlendReady reports whether a spontaneous blend has settled enough to
// work with.
func (o *Orchestrator) IsBlendReady(id string) bool {
	if !o.model.IsBlended(id) {
		return false
	}
	remaining, waiting := o.blendReady[id]
	return !waiting || remaining <= 0
}

// #endregion tick

// #region state

// TimerEntry is one serialized timer.
type TimerEntry struct {
	CloudID   string  `json:"cloudId"`
	Remaining float64 `json:"remaining"`
}

// State is the orchestrator's serializable timer state, compared step by
// step during replay verification.
type State struct {
	MessageTimers  []TimerEntry `json:"messageTimers"`
	Cooldowns      []TimerEntry `json:"cooldowns"`
	BlendReadiness []TimerEntry `json:"blendReadiness"`
}

// Snapshot returns the current timer state in sorted order.
func (o *Orchestrator) Snapshot() State {
	return State{
		MessageTimers:  entries(o.messageTimers),
		Cooldowns:      entries(o.cooldowns),
		BlendReadiness: entries(o.blendReady),
	}
}

func entries(m map[string]float64) []TimerEntry {
	out := make([]TimerEntry, 0, len(m))
	for _, id := range sortedIDs(m) {
		out = append(out, TimerEntry{CloudID: id, Remaining: m[id]})
	}
	return out
}

func sortedIDs(m map[string]float64) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// #endregion state
