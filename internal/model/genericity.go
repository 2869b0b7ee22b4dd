package model

// GenericityCategory classifies what a subject noun phrase refers to.
type GenericityCategory string

const (
	GenericityGeneric   GenericityCategory = "Generic"   // a kind ("Dogs bark")
	GenericityInstance  GenericityCategory = "Instance"  // a particular ("The dog barked")
	GenericityUniversal GenericityCategory = "Universal" // explicit quantification ("Every dog")
	GenericityAmbiguous GenericityCategory = "Ambiguous" // unresolved
)

// GenericityAlternative is a second reading kept alongside the primary one.
type GenericityAlternative struct {
	Category   GenericityCategory `json:"category"`
	Confidence float64            `json:"confidence"`
}

// GenericityRecord is the per-subject-entity verdict of the genericity
// classifier. Rule names the decision rule that produced the verdict so the
// arbitration stays auditable.
type GenericityRecord struct {
	HeadID      string                 `json:"head_id"`
	Category    GenericityCategory     `json:"category"`
	Confidence  float64                `json:"confidence"`
	Alternative *GenericityAlternative `json:"alternative,omitempty"`
	Rule        string                 `json:"rule,omitempty"`
}
