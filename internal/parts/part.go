package parts

// #region part-state

// Biography holds the one-way disclosure flags for a part. Flags only ever
// go from false to true; there is no "unreveal".
type Biography struct {
	AgeRevealed           bool `json:"ageRevealed"`
	IdentityRevealed      bool `json:"identityRevealed"`
	JobRevealed           bool `json:"jobRevealed"`
	JobAppraisalRevealed  bool `json:"jobAppraisalRevealed"`
	JobImpactRevealed     bool `json:"jobImpactRevealed"`
	RelationshipsRevealed bool `json:"relationshipsRevealed"`
	ProtectsRevealed      bool `json:"protectsRevealed"`
	ConsentedToHelp       bool `json:"consentedToHelp"`
	Unburdened            bool `json:"unburdened"`
}

// PartState is the mutable per-part record owned by the Manager. Callers
// receive the stored instance from RegisterPart, so mutations through it are
// visible to later Manager queries.
type PartState struct {
	Name          string              `json:"name"`
	Trust         float64             `json:"trust"`
	NeedAttention float64             `json:"needAttention"`
	WasProxy      bool                `json:"wasProxy"`
	Biography     Biography           `json:"biography"`
	Dialogues     map[string][]string `json:"dialogues,omitempty"`
}

// PartOptions configures a part at registration time.
type PartOptions struct {
	Trust         float64
	NeedAttention float64
	Dialogues     map[string][]string
}

// #endregion part-state

// #region biography-fields

// Field names a biography disclosure field.
type Field string

// Biography field identifiers. Gratitude and compassion are ray fields that
// carry no disclosure flag; they live in the controller's ray-field table.
const (
	FieldAge           Field = "age"
	FieldIdentity      Field = "identity"
	FieldJob           Field = "job"
	FieldJobAppraisal  Field = "jobAppraisal"
	FieldJobImpact     Field = "jobImpact"
	FieldRelationships Field = "relationships"
	FieldProtects      Field = "protects"
)

// fieldDescriptor centralizes the flag accessor and reveal trigger for one
// biography field, so adding a field touches exactly one table.
type fieldDescriptor struct {
	revealed func(*Biography) bool
	reveal   func(*Biography)
	// opennessWeight contributes to the derived openness metric; zero for
	// fields that do not affect it.
	opennessWeight float64
}

var biographyFields = map[Field]fieldDescriptor{
	FieldAge: {
		revealed:       func(b *Biography) bool { return b.AgeRevealed },
		reveal:         func(b *Biography) { b.AgeRevealed = true },
		opennessWeight: 0.5,
	},
	FieldIdentity: {
		revealed:       func(b *Biography) bool { return b.IdentityRevealed },
		reveal:         func(b *Biography) { b.IdentityRevealed = true },
		opennessWeight: 0.2,
	},
	FieldJob: {
		revealed: func(b *Biography) bool { return b.JobRevealed },
		reveal:   func(b *Biography) { b.JobRevealed = true },
	},
	FieldJobAppraisal: {
		revealed:       func(b *Biography) bool { return b.JobAppraisalRevealed },
		reveal:         func(b *Biography) { b.JobAppraisalRevealed = true },
		opennessWeight: 0.15,
	},
	FieldJobImpact: {
		revealed:       func(b *Biography) bool { return b.JobImpactRevealed },
		reveal:         func(b *Biography) { b.JobImpactRevealed = true },
		opennessWeight: 0.15,
	},
	FieldRelationships: {
		revealed: func(b *Biography) bool { return b.RelationshipsRevealed },
		reveal:   func(b *Biography) { b.RelationshipsRevealed = true },
	},
	FieldProtects: {
		revealed: func(b *Biography) bool { return b.ProtectsRevealed },
		reveal:   func(b *Biography) { b.ProtectsRevealed = true },
	},
}

// #endregion biography-fields

// #region inter-part-relation

// InterPartRelation is a directed edge between two parts carrying its own
// trust value, an optional floor set by impact recognition, a stance
// polarity, and the dialogue pools used for hostile-relation exchanges.
type InterPartRelation struct {
	FromID         string  `json:"fromId"`
	ToID           string  `json:"toId"`
	Trust          float64 `json:"trust"`
	TrustFloor     float64 `json:"trustFloor,omitempty"`
	Stance         int     `json:"stance"` // +1 friendly, -1 hostile
	StanceFlipOdds float64 `json:"stanceFlipOdds,omitempty"`

	RuminationDialogues        []string `json:"ruminationDialogues,omitempty"`
	ImpactRecognitionDialogues []string `json:"impactRecognitionDialogues,omitempty"`
	ImpactRejectionDialogues   []string `json:"impactRejectionDialogues,omitempty"`
}

// #endregion inter-part-relation
