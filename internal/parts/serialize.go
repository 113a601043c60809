package parts

import (
	"encoding/json"
	"fmt"
	"sort"
)

// #region serialized-types

// SerializedGrievance is the wire form of one sender's grievance. It rides
// inside the sender's part record so the top-level snapshot field set stays
// stable for recorded-session interop.
type SerializedGrievance struct {
	TargetIDs []string `json:"targetIds"`
	Dialogues []string `json:"dialogues"`
}

// SerializedPart is the wire form of one part's state.
type SerializedPart struct {
	Name          string               `json:"name"`
	Trust         float64              `json:"trust"`
	NeedAttention float64              `json:"needAttention"`
	WasProxy      bool                 `json:"wasProxy,omitempty"`
	Biography     Biography            `json:"biography"`
	Dialogues     map[string][]string  `json:"dialogues,omitempty"`
	Grievance     *SerializedGrievance `json:"grievance,omitempty"`
}

// AttackEntry is the wire form of one victim's attacker set.
type AttackEntry struct {
	VictimID    string   `json:"victimId"`
	AttackerIDs []string `json:"attackerIds"`
}

// Serialized is the manager's full wire form.
type Serialized struct {
	PartStates         map[string]SerializedPart `json:"partStates"`
	Protections        map[string][]string       `json:"protections"`
	InterPartRelations []InterPartRelation       `json:"interPartRelations"`
	Proxies            map[string][]string       `json:"proxies"`
	AttackedBy         []AttackEntry             `json:"attackedBy"`
}

// #endregion serialized-types

// #region snapshot

// Snapshot produces a deep-copied wire form of the manager. Nested objects
// (biography, dialogues, target sets) are copied, never aliased, so each
// snapshot is isolated from later mutation.
func (m *Manager) Snapshot() Serialized {
	s := Serialized{
		PartStates:  make(map[string]SerializedPart, len(m.parts)),
		Protections: make(map[string][]string, len(m.protections)),
		Proxies:     make(map[string][]string, len(m.proxies)),
	}
	for _, id := range m.IDs() {
		p := m.parts[id]
		sp := SerializedPart{
			Name:          p.Name,
			Trust:         p.Trust,
			NeedAttention: p.NeedAttention,
			WasProxy:      p.WasProxy,
			Biography:     p.Biography,
			Dialogues:     copyDialogues(p.Dialogues),
		}
		if g, ok := m.grievances[id]; ok {
			sp.Grievance = &SerializedGrievance{
				TargetIDs: sortedKeys(g.targets),
				Dialogues: append([]string(nil), g.dialogues...),
			}
		}
		s.PartStates[id] = sp
	}
	for protector, set := range m.protections {
		s.Protections[protector] = sortedKeys(set)
	}
	for principal, set := range m.proxies {
		s.Proxies[principal] = sortedKeys(set)
	}
	for _, rel := range m.Relations() {
		cp := *rel
		cp.RuminationDialogues = append([]string(nil), rel.RuminationDialogues...)
		cp.ImpactRecognitionDialogues = append([]string(nil), rel.ImpactRecognitionDialogues...)
		cp.ImpactRejectionDialogues = append([]string(nil), rel.ImpactRejectionDialogues...)
		s.InterPartRelations = append(s.InterPartRelations, cp)
	}
	for _, victim := range sortedBoolMapKeys(m.attackedBy) {
		s.AttackedBy = append(s.AttackedBy, AttackEntry{
			VictimID:    victim,
			AttackerIDs: sortedKeys(m.attackedBy[victim]),
		})
	}
	return s
}

func sortedBoolMapKeys(m map[string]map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion snapshot

// #region restore

// FromSerialized rebuilds a Manager from its wire form with deep copies.
func FromSerialized(s Serialized) *Manager {
	m := NewManager()
	for id, sp := range s.PartStates {
		p := m.RegisterPart(id, sp.Name, PartOptions{
			Trust:         sp.Trust,
			NeedAttention: sp.NeedAttention,
			Dialogues:     sp.Dialogues,
		})
		p.WasProxy = sp.WasProxy
		p.Biography = sp.Biography
		if sp.Grievance != nil && len(sp.Grievance.Dialogues) > 0 {
			// Invariant already held at record time; ignore the error path.
			_ = m.SetGrievance(id, sp.Grievance.TargetIDs, sp.Grievance.Dialogues)
		}
	}
	for protector, protected := range s.Protections {
		for _, id := range protected {
			m.AddProtection(protector, id)
		}
	}
	for principal, proxies := range s.Proxies {
		for _, id := range proxies {
			set, ok := m.proxies[principal]
			if !ok {
				set = make(map[string]bool)
				m.proxies[principal] = set
			}
			set[id] = true
		}
	}
	for _, rel := range s.InterPartRelations {
		m.SetRelation(rel)
	}
	for _, entry := range s.AttackedBy {
		set := make(map[string]bool, len(entry.AttackerIDs))
		for _, a := range entry.AttackerIDs {
			set[a] = true
		}
		if len(set) > 0 {
			m.attackedBy[entry.VictimID] = set
		}
	}
	return m
}

// Clone returns an independent deep copy of the manager.
func (m *Manager) Clone() *Manager {
	return FromSerialized(m.Snapshot())
}

// #endregion restore

// #region json

// ToJSON marshals the manager's snapshot.
func (m *Manager) ToJSON() ([]byte, error) {
	data, err := json.Marshal(m.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshal part states: %w", err)
	}
	return data, nil
}

// FromJSON rebuilds a Manager from snapshot JSON.
func FromJSON(data []byte) (*Manager, error) {
	var s Serialized
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal part states: %w", err)
	}
	return FromSerialized(s), nil
}

// #endregion json
