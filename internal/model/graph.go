package model

// Graph is the combined typed output for one document: classified acts,
// structural assertions, inference nodes, derived roles, genericity verdicts
// and any entities the extractor synthesized. It is the default reading of
// the interpretation lattice and the whole output when ambiguity preservation
// is disabled.
type Graph struct {
	DocumentID string `json:"document_id,omitempty"`

	Acts       []Act                 `json:"acts"`
	Assertions []StructuralAssertion `json:"assertions,omitempty"`
	Inferences []InferenceNode       `json:"inferences,omitempty"`
	Roles      []Role                `json:"roles"`

	// Genericity is keyed by the subject entity head ID. Map keys marshal
	// in sorted order, keeping serialized output deterministic.
	Genericity map[string]GenericityRecord `json:"genericity,omitempty"`

	// ImplicitEntities are synthesized by the extractor (imperative
	// addressees) and must be merged into the entity set by the caller.
	ImplicitEntities []Entity `json:"implicit_entities,omitempty"`
}

// NodeCount returns the number of act-like nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Acts) + len(g.Assertions) + len(g.Inferences)
}

// FindAct returns the act with the given ID, or nil.
func (g *Graph) FindAct(id string) *Act {
	for i := range g.Acts {
		if g.Acts[i].ID == id {
			return &g.Acts[i]
		}
	}
	return nil
}
