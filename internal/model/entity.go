package model

// OntoCategory is the upper-ontology tag assigned to an entity by the
// upstream resolver.
type OntoCategory string

const (
	CategoryOccurrent      OntoCategory = "occurrent"
	CategoryContinuant     OntoCategory = "continuant"
	CategoryPerson         OntoCategory = "person"
	CategoryGroupOfPersons OntoCategory = "group-of-persons"
	CategoryOrganization   OntoCategory = "organization"
	CategoryArtifact       OntoCategory = "artifact"
	CategoryInformation    OntoCategory = "information-content-entity"
	CategoryQuality        OntoCategory = "quality"
	CategoryTemporalRegion OntoCategory = "temporal-region"
)

// IsPersonLike reports whether the category may bear a PatientRole.
func (c OntoCategory) IsPersonLike() bool {
	return c == CategoryPerson || c == CategoryGroupOfPersons
}

// IsAgentCapable reports whether the category may bear an AgentRole.
func (c OntoCategory) IsAgentCapable() bool {
	return c == CategoryPerson || c == CategoryGroupOfPersons || c == CategoryOrganization
}

// IsAnimate reports whether the category denotes an animate referent for
// the purposes of ergative demotion and inference-verb retyping.
func (c OntoCategory) IsAnimate() bool {
	return c == CategoryPerson || c == CategoryGroupOfPersons || c == CategoryOrganization
}

// Entity is a referring expression resolved upstream. It is read-only to the
// analysis core except for role-bearer back-links appended by the role deriver.
type Entity struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Span     Span         `json:"span"`
	Category OntoCategory `json:"category"`

	// Denotes refines Category for selectional-restriction matching, e.g. a
	// "document" entity whose category is artifact but which denotes
	// information content. Empty when not provided.
	Denotes OntoCategory `json:"denotes,omitempty"`

	// Dep is the dependency label of the entity head token (nsubj, dobj, ...).
	Dep string `json:"dep,omitempty"`

	// Members lists member entity IDs when the entity is an aggregate
	// (e.g. a committee with named members).
	Members []string `json:"members,omitempty"`

	// IsConjunct marks entities split out of an "X and Y" coordination;
	// Conjunction records the coordinating word.
	IsConjunct  bool   `json:"is_conjunct,omitempty"`
	Conjunction string `json:"conjunction,omitempty"`

	// Implicit marks entities synthesized by the extractor (the imperative
	// addressee) rather than resolved upstream.
	Implicit bool `json:"implicit,omitempty"`

	// BearerOf accumulates IDs of roles that inhere in this entity.
	// Appended by the role deriver; empty on input.
	BearerOf []string `json:"bearer_of,omitempty"`
}

// SelectionalCategory returns the category used for selectional-restriction
// lookups: the refined Denotes tag when present, the plain category otherwise.
func (e *Entity) SelectionalCategory() OntoCategory {
	if e.Denotes != "" {
		return e.Denotes
	}
	return e.Category
}
