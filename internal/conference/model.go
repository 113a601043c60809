// Package conference holds the live simulation model: which parts are in
// focus, which are blended with Self, the pending-blend queue, the self-ray
// pointer, and the message queue.
package conference

import (
	"sort"
	"strings"

	"github.com/jpritikin/urbb-web-sub002/internal/parts"
)

// #region types

// BlendReason records how a part came to be blended.
type BlendReason string

// Blend reasons.
const (
	BlendSpontaneous BlendReason = "spontaneous"
	BlendTherapist   BlendReason = "therapist"
)

// Blend is one part's blended state.
type Blend struct {
	Reason BlendReason
	Degree float64
}

// PendingBlend is a queued spontaneous blend waiting on its timer.
type PendingBlend struct {
	CloudID string
	Reason  BlendReason
	Timer   float64
}

// SelfRay points from Self at one target part.
type SelfRay struct {
	TargetCloudID string
}

// Message is one queued inter-part utterance.
type Message struct {
	ID     int64
	FromID string
	Text   string
}

// Model is the conference state. Single-threaded by contract: one logical
// flow per instance, every mutation a single synchronous call.
type Model struct {
	targets   []string
	blended   map[string]*Blend
	pending   []PendingBlend
	selfRay   *SelfRay
	displaced []string // summoned supporting parts, waiting outside the main circle
	messages  []Message
	nextMsgID int64

	VictoryAchieved bool
	Mode            string
	PendingAction   string
}

// NewModel returns an empty conference model.
func NewModel() *Model {
	return &Model{blended: make(map[string]*Blend)}
}

// #endregion types

// #region targets

// AddTarget puts a part in the target set. No-op if already present. A
// summoned part entering the conference leaves the supporting set; a part is
// never both at once.
func (m *Model) AddTarget(cloudID string) {
	if m.IsTarget(cloudID) {
		return
	}
	for i, id := range m.displaced {
		if id == cloudID {
			m.displaced = append(m.displaced[:i], m.displaced[i+1:]...)
			break
		}
	}
	m.targets = append(m.targets, cloudID)
}

// RemoveTarget takes a part out of the target set.
func (m *Model) RemoveTarget(cloudID string) {
	for i, id := range m.targets {
		if id == cloudID {
			m.targets = append(m.targets[:i], m.targets[i+1:]...)
			return
		}
	}
}

// IsTarget reports whether a part is currently targeted.
func (m *Model) IsTarget(cloudID string) bool {
	for _, id := range m.targets {
		if id == cloudID {
			return true
		}
	}
	return false
}

// Targets returns a copy of the target list in insertion order.
func (m *Model) Targets() []string {
	return append([]string(nil), m.targets...)
}

// TargetCount returns the number of current targets.
func (m *Model) TargetCount() int {
	return len(m.targets)
}

// #endregion targets

// #region supporting

// Summon adds a part to the supporting (summoned) set. No-op if the part is
// already supporting or already in the conference.
func (m *Model) Summon(cloudID string) {
	if m.IsSupporting(cloudID) || m.InConference(cloudID) {
		return
	}
	m.displaced = append(m.displaced, cloudID)
}

// IsSupporting reports whether a part is summoned but not yet in the main
// conference.
func (m *Model) IsSupporting(cloudID string) bool {
	for _, id := range m.displaced {
		if id == cloudID {
			return true
		}
	}
	return false
}

// Supporting returns a copy of the supporting list.
func (m *Model) Supporting() []string {
	return append([]string(nil), m.displaced...)
}

// PromoteSupporting moves a summoned part into the main conference as a
// target.
func (m *Model) PromoteSupporting(cloudID string) {
	for i, id := range m.displaced {
		if id == cloudID {
			m.displaced = append(m.displaced[:i], m.displaced[i+1:]...)
			m.AddTarget(cloudID)
			return
		}
	}
}

// #endregion supporting

// #region blending

// SetBlended puts a part into the blended set with the given reason and
// degree, replacing any existing entry.
func (m *Model) SetBlended(cloudID string, reason BlendReason, degree float64) {
	m.blended[cloudID] = &Blend{Reason: reason, Degree: degree}
}

// IsBlended reports whether a part is blended.
func (m *Model) IsBlended(cloudID string) bool {
	_, ok := m.blended[cloudID]
	return ok
}

// BlendOf returns a part's blend entry.
func (m *Model) BlendOf(cloudID string) (Blend, bool) {
	b, ok := m.blended[cloudID]
	if !ok {
		return Blend{}, false
	}
	return *b, true
}

// BlendedIDs returns the blended part ids in sorted order.
func (m *Model) BlendedIDs() []string {
	ids := make([]string, 0, len(m.blended))
	for id := range m.blended {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ReduceBlend subtracts amount from a part's blend degree. At zero the part
// leaves the blended set and becomes a plain target.
func (m *Model) ReduceBlend(cloudID string, amount float64) {
	b, ok := m.blended[cloudID]
	if !ok {
		return
	}
	b.Degree -= amount
	if b.Degree <= 0 {
		delete(m.blended, cloudID)
		m.AddTarget(cloudID)
	}
}

// CalculateSeparationAmount is the model's dynamic separation step: a third
// of full blending per separation normally, slower against the resistance of
// a spontaneous blend.
func (m *Model) CalculateSeparationAmount(cloudID string) float64 {
	b, ok := m.blended[cloudID]
	if !ok {
		return 0
	}
	sep := 0.34
	if b.Reason == BlendSpontaneous {
		sep = 0.2
	}
	if sep > b.Degree {
		sep = b.Degree
	}
	return sep
}

// InConference reports whether a part is a target or blended.
func (m *Model) InConference(cloudID string) bool {
	return m.IsTarget(cloudID) || m.IsBlended(cloudID)
}

// #endregion blending

// #region pending-blends

// EnqueuePendingBlend queues a spontaneous blend with a timer.
func (m *Model) EnqueuePendingBlend(cloudID string, reason BlendReason, timer float64) {
	m.pending = append(m.pending, PendingBlend{CloudID: cloudID, Reason: reason, Timer: timer})
}

// PendingBlends returns a copy of the pending-blend queue.
func (m *Model) PendingBlends() []PendingBlend {
	return append([]PendingBlend(nil), m.pending...)
}

// SetPendingBlends replaces the pending-blend queue. Used by the scheduler
// after a tick pass.
func (m *Model) SetPendingBlends(pbs []PendingBlend) {
	m.pending = append([]PendingBlend(nil), pbs...)
}

// #endregion pending-blends

// #region self-ray

// SetSelfRay points the self-ray at a target.
func (m *Model) SetSelfRay(cloudID string) {
	m.selfRay = &SelfRay{TargetCloudID: cloudID}
}

// ClearSelfRay removes the self-ray.
func (m *Model) ClearSelfRay() {
	m.selfRay = nil
}

// SelfRayTarget returns the id the self-ray points at, or "".
func (m *Model) SelfRayTarget() string {
	if m.selfRay == nil {
		return ""
	}
	return m.selfRay.TargetCloudID
}

// #endregion self-ray

// #region messages

// QueueMessage appends an utterance with a monotonic id.
func (m *Model) QueueMessage(fromID, text string) Message {
	m.nextMsgID++
	msg := Message{ID: m.nextMsgID, FromID: fromID, Text: text}
	m.messages = append(m.messages, msg)
	return msg
}

// Messages returns a copy of the message queue.
func (m *Model) Messages() []Message {
	return append([]Message(nil), m.messages...)
}

// HasMessageContaining reports whether any queued message contains the
// given substring. Used by scenario assertions.
func (m *Model) HasMessageContaining(substr string) bool {
	for _, msg := range m.messages {
		if strings.Contains(msg.Text, substr) {
			return true
		}
	}
	return false
}

// #endregion messages

// #region victory

// EvaluateVictory checks the terminal condition: no protection edges left,
// nothing blended, and every part's trust at its ceiling. Sets and returns
// VictoryAchieved.
func (m *Model) EvaluateVictory(pm *parts.Manager) bool {
	if pm.ProtectionCount() > 0 || len(m.blended) > 0 {
		m.VictoryAchieved = false
		return false
	}
	for _, id := range pm.IDs() {
		if pm.Trust(id) < pm.MaxTrust(id) {
			m.VictoryAchieved = false
			return false
		}
	}
	m.VictoryAchieved = true
	return true
}

// #endregion victory
