package model

// AmbiguityOutcome partitions detected ambiguities in the audit trail.
type AmbiguityOutcome string

const (
	// AmbiguityPreserved: an alternative reading was kept in the lattice.
	AmbiguityPreserved AmbiguityOutcome = "preserved"
	// AmbiguityResolved: a heuristic picked one reading; the choice is logged.
	AmbiguityResolved AmbiguityOutcome = "resolved"
	// AmbiguityFlagged: advisory only, e.g. a selectional anomaly.
	AmbiguityFlagged AmbiguityOutcome = "flagged"
)

// AmbiguitySource names the linguistic decision that produced an ambiguity.
type AmbiguitySource string

const (
	SourceStativeEventive    AmbiguitySource = "stative-eventive"
	SourceGenericity         AmbiguitySource = "genericity"
	SourceAttachment         AmbiguitySource = "attachment"
	SourceCoordination       AmbiguitySource = "coordination"
	SourceControl            AmbiguitySource = "control"
	SourceErgative           AmbiguitySource = "ergative"
	SourceSelectionalAnomaly AmbiguitySource = "selectional-anomaly"
)

// AmbiguityRecord is one entry in the lattice's audit trail.
type AmbiguityRecord struct {
	NodeID      string           `json:"node_id"`
	Source      AmbiguitySource  `json:"source"`
	Outcome     AmbiguityOutcome `json:"outcome"`
	Description string           `json:"description"`
}

// AlternativeReading is a scored non-default reading kept in the lattice,
// with a back-reference to the node it was derived from.
type AlternativeReading struct {
	NodeID       string                 `json:"node_id"`
	Source       AmbiguitySource        `json:"source"`
	Plausibility float64                `json:"plausibility"`
	Description  string                 `json:"description"`
	// Patch holds the field values that differ from the default reading.
	Patch map[string]interface{} `json:"patch,omitempty"`
}
