package parts

import (
	"errors"
	"sort"
)

// ErrEmptyGrievance indicates a grievance was created with no dialogue.
var ErrEmptyGrievance = errors.New("grievance must carry at least one dialogue line")

// #region grievance

// Grievance is a sender's complaint against one or more targets, carrying
// the dialogue lines the sender delivers about it.
type Grievance struct {
	targets   map[string]bool
	dialogues []string
}

// SetGrievance records a grievance from sender against targets. The ≥1
// dialogue invariant is enforced here: an empty dialogue list is a
// programmer error and is rejected outright.
func (m *Manager) SetGrievance(senderID string, targets []string, dialogues []string) error {
	if len(dialogues) == 0 {
		return ErrEmptyGrievance
	}
	g, ok := m.grievances[senderID]
	if !ok {
		g = &Grievance{targets: make(map[string]bool)}
		m.grievances[senderID] = g
	}
	for _, t := range targets {
		g.targets[t] = true
	}
	g.dialogues = append([]string(nil), dialogues...)
	return nil
}

// GrievanceTargets returns the sorted target ids of a sender's grievances.
func (m *Manager) GrievanceTargets(senderID string) []string {
	g, ok := m.grievances[senderID]
	if !ok {
		return nil
	}
	return sortedKeys(g.targets)
}

// GrievanceDialogues returns a copy of the sender's grievance dialogue lines.
func (m *Manager) GrievanceDialogues(senderID string) []string {
	g, ok := m.grievances[senderID]
	if !ok {
		return nil
	}
	return append([]string(nil), g.dialogues...)
}

// HasGrievances reports whether a part holds any grievances.
func (m *Manager) HasGrievances(id string) bool {
	g, ok := m.grievances[id]
	return ok && len(g.targets) > 0
}

// RemoveGrievance with an empty target removes all of a sender's
// grievances; with a target it removes just that target, pruning the whole
// relation once the target set empties.
func (m *Manager) RemoveGrievance(senderID, targetID string) {
	if targetID == "" {
		delete(m.grievances, senderID)
		return
	}
	g, ok := m.grievances[senderID]
	if !ok {
		return
	}
	delete(g.targets, targetID)
	if len(g.targets) == 0 {
		delete(m.grievances, senderID)
	}
}

// #endregion grievance

// #region protection

// AddProtection records that protector protects protected. Duplicate edges
// are checked before insert and silently skipped.
func (m *Manager) AddProtection(protectorID, protectedID string) {
	set, ok := m.protections[protectorID]
	if !ok {
		set = make(map[string]bool)
		m.protections[protectorID] = set
	}
	if set[protectedID] {
		return
	}
	set[protectedID] = true
}

// RemoveProtection deletes one protection edge, pruning the protector's
// entry when its set empties.
func (m *Manager) RemoveProtection(protectorID, protectedID string) {
	set, ok := m.protections[protectorID]
	if !ok {
		return
	}
	delete(set, protectedID)
	if len(set) == 0 {
		delete(m.protections, protectorID)
	}
}

// Protecting returns the sorted ids the given part protects.
func (m *Manager) Protecting(protectorID string) []string {
	set, ok := m.protections[protectorID]
	if !ok {
		return nil
	}
	return sortedKeys(set)
}

// ProtectorsOf returns the sorted ids of every part protecting protectedID.
func (m *Manager) ProtectorsOf(protectedID string) []string {
	var out []string
	for protector, set := range m.protections {
		if set[protectedID] {
			out = append(out, protector)
		}
	}
	sort.Strings(out)
	return out
}

// IsProtecting reports whether a part protects at least one other part.
func (m *Manager) IsProtecting(id string) bool {
	set, ok := m.protections[id]
	return ok && len(set) > 0
}

// ProtectionCount returns the total number of protection edges.
func (m *Manager) ProtectionCount() int {
	n := 0
	for _, set := range m.protections {
		n += len(set)
	}
	return n
}

// #endregion protection

// #region proxy

// AddProxy records that proxy stands in for principal.
func (m *Manager) AddProxy(principalID, proxyID string) {
	set, ok := m.proxies[principalID]
	if !ok {
		set = make(map[string]bool)
		m.proxies[principalID] = set
	}
	set[proxyID] = true
}

// ProxiesFor returns the sorted ids standing in for principal.
func (m *Manager) ProxiesFor(principalID string) []string {
	set, ok := m.proxies[principalID]
	if !ok {
		return nil
	}
	return sortedKeys(set)
}

// HasProxies reports whether a part is currently hiding behind proxies.
func (m *Manager) HasProxies(principalID string) bool {
	set, ok := m.proxies[principalID]
	return ok && len(set) > 0
}

// IsProxyForSomeone reports whether id stands in for any principal.
func (m *Manager) IsProxyForSomeone(id string) bool {
	for _, set := range m.proxies {
		if set[id] {
			return true
		}
	}
	return false
}

// ReleaseProxies removes all of a principal's proxies, marking each former
// stand-in with the WasProxy flag, and returns the released ids.
func (m *Manager) ReleaseProxies(principalID string) []string {
	released := m.ProxiesFor(principalID)
	for _, proxyID := range released {
		if p, ok := m.parts[proxyID]; ok {
			p.WasProxy = true
		}
	}
	delete(m.proxies, principalID)
	return released
}

// #endregion proxy

// #region attack

// AddAttacker records an attack edge and re-clamps the victim's trust to
// the depressed ceiling so the trust invariant holds immediately.
func (m *Manager) AddAttacker(victimID, attackerID string) {
	set, ok := m.attackedBy[victimID]
	if !ok {
		set = make(map[string]bool)
		m.attackedBy[victimID] = set
	}
	set[attackerID] = true
	if p, ok := m.parts[victimID]; ok {
		p.Trust = m.clampTrust(victimID, p.Trust)
	}
}

// RemoveAttacker deletes one attack edge, pruning the victim entry when its
// attacker set empties.
func (m *Manager) RemoveAttacker(victimID, attackerID string) {
	set, ok := m.attackedBy[victimID]
	if !ok {
		return
	}
	delete(set, attackerID)
	if len(set) == 0 {
		delete(m.attackedBy, victimID)
	}
}

// IsAttacked reports whether a part has any attackers.
func (m *Manager) IsAttacked(victimID string) bool {
	set, ok := m.attackedBy[victimID]
	return ok && len(set) > 0
}

// Attackers returns the sorted attacker ids of a victim.
func (m *Manager) Attackers(victimID string) []string {
	set, ok := m.attackedBy[victimID]
	if !ok {
		return nil
	}
	return sortedKeys(set)
}

// #endregion attack

// #region inter-part-relations

func relationKey(fromID, toID string) string {
	return fromID + "\x00" + toID
}

// SetRelation stores (or replaces) a directed inter-part relation.
func (m *Manager) SetRelation(rel InterPartRelation) {
	stored := rel
	stored.RuminationDialogues = append([]string(nil), rel.RuminationDialogues...)
	stored.ImpactRecognitionDialogues = append([]string(nil), rel.ImpactRecognitionDialogues...)
	stored.ImpactRejectionDialogues = append([]string(nil), rel.ImpactRejectionDialogues...)
	m.relations[relationKey(rel.FromID, rel.ToID)] = &stored
}

// Relation returns the stored relation from→to, if any.
func (m *Manager) Relation(fromID, toID string) (*InterPartRelation, bool) {
	rel, ok := m.relations[relationKey(fromID, toID)]
	return rel, ok
}

// Relations returns all inter-part relations ordered by (from, to).
func (m *Manager) Relations() []*InterPartRelation {
	keys := make([]string, 0, len(m.relations))
	for k := range m.relations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*InterPartRelation, len(keys))
	for i, k := range keys {
		out[i] = m.relations[k]
	}
	return out
}

// SetRelationTrust writes a relation's trust, respecting its floor.
func (m *Manager) SetRelationTrust(fromID, toID string, v float64) {
	rel, ok := m.Relation(fromID, toID)
	if !ok {
		return
	}
	if v < rel.TrustFloor {
		v = rel.TrustFloor
	}
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	rel.Trust = v
}

// #endregion inter-part-relations
