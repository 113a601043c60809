// Package scenario defines the declarative test fixture format: parts,
// relationships, an action script, and assertions over the final state.
package scenario

// #region part-config

// PartConfig declares one part.
type PartConfig struct {
	ID            string              `json:"id" yaml:"id"`
	Name          string              `json:"name" yaml:"name"`
	Trust         float64             `json:"trust" yaml:"trust"`
	NeedAttention float64             `json:"needAttention" yaml:"needAttention"`
	Dialogues     map[string][]string `json:"dialogues,omitempty" yaml:"dialogues,omitempty"`
}

// #endregion part-config

// #region relationship-config

// ProtectionConfig declares one protection edge.
type ProtectionConfig struct {
	ProtectorID string `json:"protectorId" yaml:"protectorId"`
	ProtectedID string `json:"protectedId" yaml:"protectedId"`
}

// GrievanceConfig declares one grievance.
type GrievanceConfig struct {
	SenderID  string   `json:"senderId" yaml:"senderId"`
	TargetIDs []string `json:"targetIds" yaml:"targetIds"`
	Dialogues []string `json:"dialogues" yaml:"dialogues"`
}

// ProxyConfig declares one proxy edge.
type ProxyConfig struct {
	PrincipalID string `json:"principalId" yaml:"principalId"`
	ProxyID     string `json:"proxyId" yaml:"proxyId"`
}

// AttackConfig declares one attack edge.
type AttackConfig struct {
	VictimID   string `json:"victimId" yaml:"victimId"`
	AttackerID string `json:"attackerId" yaml:"attackerId"`
}

// InterPartConfig declares one directed inter-part relation.
type InterPartConfig struct {
	FromID         string   `json:"fromId" yaml:"fromId"`
	ToID           string   `json:"toId" yaml:"toId"`
	Trust          float64  `json:"trust" yaml:"trust"`
	TrustFloor     float64  `json:"trustFloor,omitempty" yaml:"trustFloor,omitempty"`
	Stance         int      `json:"stance" yaml:"stance"`
	StanceFlipOdds float64  `json:"stanceFlipOdds,omitempty" yaml:"stanceFlipOdds,omitempty"`
	Rumination     []string `json:"ruminationDialogues,omitempty" yaml:"ruminationDialogues,omitempty"`
	Recognition    []string `json:"impactRecognitionDialogues,omitempty" yaml:"impactRecognitionDialogues,omitempty"`
	Rejection      []string `json:"impactRejectionDialogues,omitempty" yaml:"impactRejectionDialogues,omitempty"`
}

// RelationshipConfig bundles all relation declarations.
type RelationshipConfig struct {
	Protections []ProtectionConfig `json:"protections,omitempty" yaml:"protections,omitempty"`
	Grievances  []GrievanceConfig  `json:"grievances,omitempty" yaml:"grievances,omitempty"`
	Proxies     []ProxyConfig      `json:"proxies,omitempty" yaml:"proxies,omitempty"`
	Attacks     []AttackConfig     `json:"attacks,omitempty" yaml:"attacks,omitempty"`
	InterPart   []InterPartConfig  `json:"interPart,omitempty" yaml:"interPart,omitempty"`
}

// #endregion relationship-config

// #region scenario

// ActionStep is one scripted action.
type ActionStep struct {
	Action        string `json:"action" yaml:"action"`
	CloudID       string `json:"cloudId" yaml:"cloudId"`
	TargetCloudID string `json:"targetCloudId,omitempty" yaml:"targetCloudId,omitempty"`
	Field         string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Assertion is one declarative check over the final state. Value decodes to
// float64, bool, or string depending on the field.
type Assertion struct {
	Field          string      `json:"field" yaml:"field"` // trust | blended | target | message | biography | victory
	CloudID        string      `json:"cloudId,omitempty" yaml:"cloudId,omitempty"`
	BiographyField string      `json:"biographyField,omitempty" yaml:"biographyField,omitempty"`
	Op             string      `json:"op" yaml:"op"` // == | != | >= | <= | contains
	Value          interface{} `json:"value" yaml:"value"`
}

// Scenario is the full declarative fixture.
type Scenario struct {
	Name           string             `json:"name" yaml:"name"`
	Seed           int64              `json:"seed,omitempty" yaml:"seed,omitempty"`
	Parts          []PartConfig       `json:"parts" yaml:"parts"`
	Relationships  RelationshipConfig `json:"relationships" yaml:"relationships"`
	InitialTargets []string           `json:"initialTargets,omitempty" yaml:"initialTargets,omitempty"`
	InitialBlended []string           `json:"initialBlended,omitempty" yaml:"initialBlended,omitempty"`
	Actions        []ActionStep       `json:"actions" yaml:"actions"`
	Assertions     []Assertion        `json:"assertions,omitempty" yaml:"assertions,omitempty"`
}

// #endregion scenario
