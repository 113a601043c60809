package parts

import (
	"sort"
)

// #region manager

// Manager is the in-memory relational store for part state and the four
// relation sets (protection, grievance, proxy, attack) plus inter-part
// relations. It performs no I/O and draws no randomness.
type Manager struct {
	parts       map[string]*PartState
	protections map[string]map[string]bool // protector → protected set
	grievances  map[string]*Grievance      // sender → grievance
	proxies     map[string]map[string]bool // principal → proxy set
	attackedBy  map[string]map[string]bool // victim → attacker set
	relations   map[string]*InterPartRelation
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		parts:       make(map[string]*PartState),
		protections: make(map[string]map[string]bool),
		grievances:  make(map[string]*Grievance),
		proxies:     make(map[string]map[string]bool),
		attackedBy:  make(map[string]map[string]bool),
		relations:   make(map[string]*InterPartRelation),
	}
}

// #endregion manager

// #region register

// RegisterPart creates (or overwrites) a part's state and returns the stored
// instance.
func (m *Manager) RegisterPart(id, name string, opts PartOptions) *PartState {
	p := &PartState{
		Name:          name,
		Trust:         opts.Trust,
		NeedAttention: opts.NeedAttention,
		Dialogues:     copyDialogues(opts.Dialogues),
	}
	m.parts[id] = p
	return p
}

// Part returns the stored state for id.
func (m *Manager) Part(id string) (*PartState, bool) {
	p, ok := m.parts[id]
	return p, ok
}

// Has reports whether a part with the given id exists.
func (m *Manager) Has(id string) bool {
	_, ok := m.parts[id]
	return ok
}

// IDs returns all part ids in sorted order. Sorted so that callers iterating
// parts stay deterministic across runs.
func (m *Manager) IDs() []string {
	ids := make([]string, 0, len(m.parts))
	for id := range m.parts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// #endregion register

// #region trust

// MaxTrust returns the trust ceiling for a part: 0.8 while under attack,
// 1.0 otherwise.
func (m *Manager) MaxTrust(id string) float64 {
	if m.IsAttacked(id) {
		return 0.8
	}
	return 1.0
}

// Trust returns the current trust of a part, or 0 if unknown.
func (m *Manager) Trust(id string) float64 {
	if p, ok := m.parts[id]; ok {
		return p.Trust
	}
	return 0
}

// clampTrust is the single funnel for every trust write.
func (m *Manager) clampTrust(id string, v float64) float64 {
	if v < 0 {
		return 0
	}
	if max := m.MaxTrust(id); v > max {
		return max
	}
	return v
}

// SetTrust sets a part's trust, clamped to [0, MaxTrust].
func (m *Manager) SetTrust(id string, v float64) {
	if p, ok := m.parts[id]; ok {
		p.Trust = m.clampTrust(id, v)
	}
}

// AddTrust adds amount (may be negative) to a part's trust, clamped.
func (m *Manager) AddTrust(id string, amount float64) {
	if p, ok := m.parts[id]; ok {
		p.Trust = m.clampTrust(id, p.Trust+amount)
	}
}

// AdjustTrust multiplies a part's trust by multiplier, clamped.
func (m *Manager) AdjustTrust(id string, multiplier float64) {
	if p, ok := m.parts[id]; ok {
		p.Trust = m.clampTrust(id, p.Trust*multiplier)
	}
}

// #endregion trust

// #region need-attention

// NeedAttention returns a part's current attention need.
func (m *Manager) NeedAttention(id string) float64 {
	if p, ok := m.parts[id]; ok {
		return p.NeedAttention
	}
	return 0
}

// SetNeedAttention sets a part's attention need, floored at zero.
func (m *Manager) SetNeedAttention(id string, v float64) {
	if p, ok := m.parts[id]; ok {
		if v < 0 {
			v = 0
		}
		p.NeedAttention = v
	}
}

// AddNeedAttention raises a part's attention need.
func (m *Manager) AddNeedAttention(id string, amount float64) {
	if p, ok := m.parts[id]; ok {
		p.NeedAttention += amount
		if p.NeedAttention < 0 {
			p.NeedAttention = 0
		}
	}
}

// AssessNeedAttention is the scheduler priority heuristic: 0.5 for a part
// that protects someone or holds grievances, 0.1 for a proxy, 0.3 otherwise.
func (m *Manager) AssessNeedAttention(id string) float64 {
	if m.IsProtecting(id) || m.HasGrievances(id) {
		return 0.5
	}
	if m.IsProxyForSomeone(id) {
		return 0.1
	}
	return 0.3
}

// #endregion need-attention

// #region biography

// RevealField sets the named biography flag. Idempotent: revealing an
// already-revealed field is a no-op that still succeeds.
func (m *Manager) RevealField(id string, field Field) {
	p, ok := m.parts[id]
	if !ok {
		return
	}
	desc, ok := biographyFields[field]
	if !ok {
		return
	}
	if desc.revealed(&p.Biography) {
		return
	}
	desc.reveal(&p.Biography)
}

// IsFieldRevealed reports whether the named biography field is revealed.
func (m *Manager) IsFieldRevealed(id string, field Field) bool {
	p, ok := m.parts[id]
	if !ok {
		return false
	}
	desc, ok := biographyFields[field]
	if !ok {
		return false
	}
	return desc.revealed(&p.Biography)
}

// RevealAge marks a part's age as disclosed.
func (m *Manager) RevealAge(id string) { m.RevealField(id, FieldAge) }

// RevealIdentity marks a part's identity as disclosed.
func (m *Manager) RevealIdentity(id string) { m.RevealField(id, FieldIdentity) }

// RevealJob marks a part's job as disclosed.
func (m *Manager) RevealJob(id string) { m.RevealField(id, FieldJob) }

// RevealJobAppraisal marks a part's job appraisal as disclosed.
func (m *Manager) RevealJobAppraisal(id string) { m.RevealField(id, FieldJobAppraisal) }

// RevealJobImpact marks a part's job impact as disclosed.
func (m *Manager) RevealJobImpact(id string) { m.RevealField(id, FieldJobImpact) }

// RevealRelationships marks a part's relationships as disclosed.
func (m *Manager) RevealRelationships(id string) { m.RevealField(id, FieldRelationships) }

// RevealProtects marks a part's protection role as disclosed.
func (m *Manager) RevealProtects(id string) { m.RevealField(id, FieldProtects) }

// SetUnburdened marks a part as unburdened. One-way, idempotent.
func (m *Manager) SetUnburdened(id string) {
	if p, ok := m.parts[id]; ok {
		p.Biography.Unburdened = true
	}
}

// IsUnburdened reports whether a part has been unburdened.
func (m *Manager) IsUnburdened(id string) bool {
	if p, ok := m.parts[id]; ok {
		return p.Biography.Unburdened
	}
	return false
}

// SetConsentedToHelp marks a part as having consented to help. One-way.
func (m *Manager) SetConsentedToHelp(id string) {
	if p, ok := m.parts[id]; ok {
		p.Biography.ConsentedToHelp = true
	}
}

// HasConsentedToHelp reports whether a part consented to help.
func (m *Manager) HasConsentedToHelp(id string) bool {
	if p, ok := m.parts[id]; ok {
		return p.Biography.ConsentedToHelp
	}
	return false
}

// Openness is the derived disclosure metric, recomputed on every call:
// a weighted sum over the revealed biography fields.
func (m *Manager) Openness(id string) float64 {
	p, ok := m.parts[id]
	if !ok {
		return 0
	}
	var sum float64
	for _, desc := range biographyFields {
		if desc.opennessWeight > 0 && desc.revealed(&p.Biography) {
			sum += desc.opennessWeight
		}
	}
	return sum
}

// #endregion biography

// #region dialogues

// Dialogue returns the part's dialogue bank for a context, or nil.
func (m *Manager) Dialogue(id, context string) []string {
	if p, ok := m.parts[id]; ok {
		return p.Dialogues[context]
	}
	return nil
}

// #endregion dialogues

// #region remove-cloud

// RemoveCloud deletes a part and prunes every relation referencing it as
// either endpoint. Observers never see a relation pointing at the removed
// id: all pruning happens before the call returns and nothing in between
// can interleave (single synchronous mutation).
func (m *Manager) RemoveCloud(id string) {
	delete(m.parts, id)

	// Protection: drop edges where id is the protector, and prune id from
	// every other protector's set.
	delete(m.protections, id)
	for protector, set := range m.protections {
		delete(set, id)
		if len(set) == 0 {
			delete(m.protections, protector)
		}
	}

	// Grievances: drop those id sent, prune id as a target elsewhere.
	delete(m.grievances, id)
	for sender, g := range m.grievances {
		delete(g.targets, id)
		if len(g.targets) == 0 {
			delete(m.grievances, sender)
		}
	}

	// Proxies: both as principal and as stand-in.
	delete(m.proxies, id)
	for principal, set := range m.proxies {
		delete(set, id)
		if len(set) == 0 {
			delete(m.proxies, principal)
		}
	}

	// Attacks: as victim and as attacker, pruning empty victim entries.
	delete(m.attackedBy, id)
	for victim, set := range m.attackedBy {
		delete(set, id)
		if len(set) == 0 {
			delete(m.attackedBy, victim)
		}
	}

	// Inter-part relations touching id on either side.
	for key, rel := range m.relations {
		if rel.FromID == id || rel.ToID == id {
			delete(m.relations, key)
		}
	}
}

// #endregion remove-cloud

// #region helpers

func copyDialogues(src map[string][]string) map[string][]string {
	if src == nil {
		return nil
	}
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		lines := make([]string, len(v))
		copy(lines, v)
		dst[k] = lines
	}
	return dst
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion helpers
