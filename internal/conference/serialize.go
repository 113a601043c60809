package conference

import (
	"encoding/json"
	"fmt"

	"github.com/jpritikin/urbb-web-sub002/internal/parts"
)

// #region serialized-model

// BlendEntry is the wire form of one blended part.
type BlendEntry struct {
	Reason BlendReason `json:"reason"`
	Degree float64     `json:"degree,omitempty"`
}

// PendingBlendEntry is the wire form of one queued blend.
type PendingBlendEntry struct {
	CloudID string      `json:"cloudId"`
	Reason  BlendReason `json:"reason"`
	Timer   float64     `json:"timer,omitempty"`
}

// SelfRayEntry is the wire form of the self-ray pointer.
type SelfRayEntry struct {
	TargetCloudID string `json:"targetCloudId"`
}

// SerializedModel is the stable snapshot format shared with recorded
// sessions. The field set must not drift: replay compares these documents
// byte-for-byte across runs.
type SerializedModel struct {
	TargetCloudIDs     []string                        `json:"targetCloudIds"`
	BlendedParts       map[string]BlendEntry           `json:"blendedParts"`
	PendingBlends      []PendingBlendEntry             `json:"pendingBlends"`
	SelfRay            *SelfRayEntry                   `json:"selfRay"`
	PartStates         map[string]parts.SerializedPart `json:"partStates"`
	Protections        map[string][]string             `json:"protections"`
	InterPartRelations []parts.InterPartRelation       `json:"interPartRelations"`
	Proxies            map[string][]string             `json:"proxies"`
	AttackedBy         []parts.AttackEntry             `json:"attackedBy"`
	DisplacedParts     []string                        `json:"displacedParts,omitempty"`
	VictoryAchieved    bool                            `json:"victoryAchieved,omitempty"`
	Mode               string                          `json:"mode,omitempty"`
	PendingAction      string                          `json:"pendingAction,omitempty"`
}

// #endregion serialized-model

// #region snapshot

// Snapshot produces the combined deep-copied wire form of the conference
// model and the part store.
func (m *Model) Snapshot(pm *parts.Manager) SerializedModel {
	ps := pm.Snapshot()
	s := SerializedModel{
		TargetCloudIDs:     append([]string(nil), m.targets...),
		BlendedParts:       make(map[string]BlendEntry, len(m.blended)),
		PendingBlends:      make([]PendingBlendEntry, 0, len(m.pending)),
		PartStates:         ps.PartStates,
		Protections:        ps.Protections,
		InterPartRelations: ps.InterPartRelations,
		Proxies:            ps.Proxies,
		AttackedBy:         ps.AttackedBy,
		DisplacedParts:     append([]string(nil), m.displaced...),
		VictoryAchieved:    m.VictoryAchieved,
		Mode:               m.Mode,
		PendingAction:      m.PendingAction,
	}
	if m.selfRay != nil {
		s.SelfRay = &SelfRayEntry{TargetCloudID: m.selfRay.TargetCloudID}
	}
	for id, b := range m.blended {
		s.BlendedParts[id] = BlendEntry{Reason: b.Reason, Degree: b.Degree}
	}
	for _, pb := range m.pending {
		s.PendingBlends = append(s.PendingBlends, PendingBlendEntry{
			CloudID: pb.CloudID, Reason: pb.Reason, Timer: pb.Timer,
		})
	}
	return s
}

// #endregion snapshot

// #region restore

// Restore rebuilds a conference model and part store from a snapshot.
func Restore(s SerializedModel) (*Model, *parts.Manager) {
	pm := parts.FromSerialized(parts.Serialized{
		PartStates:         s.PartStates,
		Protections:        s.Protections,
		InterPartRelations: s.InterPartRelations,
		Proxies:            s.Proxies,
		AttackedBy:         s.AttackedBy,
	})
	m := NewModel()
	m.targets = append([]string(nil), s.TargetCloudIDs...)
	for id, e := range s.BlendedParts {
		m.blended[id] = &Blend{Reason: e.Reason, Degree: e.Degree}
	}
	for _, e := range s.PendingBlends {
		m.pending = append(m.pending, PendingBlend{CloudID: e.CloudID, Reason: e.Reason, Timer: e.Timer})
	}
	if s.SelfRay != nil {
		m.selfRay = &SelfRay{TargetCloudID: s.SelfRay.TargetCloudID}
	}
	m.displaced = append([]string(nil), s.DisplacedParts...)
	m.VictoryAchieved = s.VictoryAchieved
	m.Mode = s.Mode
	m.PendingAction = s.PendingAction
	return m, pm
}

// #endregion restore

// #region json

// ToJSON marshals a combined snapshot.
func (m *Model) ToJSON(pm *parts.Manager) ([]byte, error) {
	data, err := json.Marshal(m.Snapshot(pm))
	if err != nil {
		return nil, fmt.Errorf("marshal model: %w", err)
	}
	return data, nil
}

// FromJSON rebuilds model and part store from snapshot JSON.
func FromJSON(data []byte) (*Model, *parts.Manager, error) {
	var s SerializedModel
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil, fmt.Errorf("unmarshal model: %w", err)
	}
	m, pm := Restore(s)
	return m, pm, nil
}

// #endregion json
