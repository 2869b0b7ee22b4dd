package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Modality is the deontic force attached to an act. Empty means none.
type Modality string

const (
	ModalityObligation     Modality = "obligation"
	ModalityPermission     Modality = "permission"
	ModalityProhibition    Modality = "prohibition"
	ModalityRecommendation Modality = "recommendation"
	ModalityIntention      Modality = "intention"
	ModalityClaim          Modality = "claim"
	ModalityPower          Modality = "power"
	ModalityImmunity       Modality = "immunity"
)

// Actuality records whether the act is asserted as occurring, merely
// prescribed, negated, queried, and so on. Every act carries exactly one.
type Actuality string

const (
	ActualityActual        Actuality = "Actual"
	ActualityPrescribed    Actuality = "Prescribed"
	ActualityPermitted     Actuality = "Permitted"
	ActualityProhibited    Actuality = "Prohibited"
	ActualityPlanned       Actuality = "Planned"
	ActualityEntitled      Actuality = "Entitled"
	ActualityEmpowered     Actuality = "Empowered"
	ActualityProtected     Actuality = "Protected"
	ActualityNegated       Actuality = "Negated"
	ActualityHypothetical  Actuality = "Hypothetical"
	ActualityInterrogative Actuality = "Interrogative"
)

// FromModality maps a deontic modality to its default actuality status.
// Negation and sentence type override the result downstream.
func FromModality(m Modality) Actuality {
	switch m {
	case ModalityObligation, ModalityRecommendation:
		return ActualityPrescribed
	case ModalityPermission:
		return ActualityPermitted
	case ModalityProhibition:
		return ActualityProhibited
	case ModalityIntention:
		return ActualityPlanned
	case ModalityClaim:
		return ActualityEntitled
	case ModalityPower:
		return ActualityEmpowered
	case ModalityImmunity:
		return ActualityProtected
	default:
		return ActualityActual
	}
}

// Tense of the finite verb.
type Tense string

const (
	TensePast    Tense = "past"
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
)

// Aspect of the verb phrase.
type Aspect string

const (
	AspectSimple      Aspect = "simple"
	AspectProgressive Aspect = "progressive"
	AspectPerfect     Aspect = "perfect"
)

// Relation identifiers used on role links and graph edges.
const (
	RelationHasAgent          = "has-agent"
	RelationHasPatient        = "has-patient"
	RelationHasRecipient      = "has-recipient"
	RelationHasInstrument     = "has-instrument"
	RelationHasBeneficiary    = "has-beneficiary"
	RelationHasLocation       = "has-location"
	RelationHasSource         = "has-source"
	RelationHasDestination    = "has-destination"
	RelationHasComitative     = "has-comitative"
	RelationAffects           = "affects"
	RelationRealizedIn        = "realized-in"
	RelationWouldBeRealizedIn = "would-be-realized-in"
	RelationIsBearerOf        = "is-bearer-of"
	RelationIsAbout           = "is-about"
	RelationSupportsInference = "supports-inference"
)

// RoleLink connects an act to a participating entity under a named relation.
type RoleLink struct {
	EntityID string `json:"entity_id"`
	Relation string `json:"relation"`
}

// Act is a classified instance of an intentional or causal process extracted
// from one verb occurrence.
type Act struct {
	ID         string `json:"id"`
	Type       string `json:"type"` // ontology act type from the verb mapping
	Infinitive string `json:"infinitive"`
	Text       string `json:"text,omitempty"` // surface verb phrase
	Span       Span   `json:"span"`

	Modality    Modality  `json:"modality,omitempty"`
	DeonticType string    `json:"deontic_type,omitempty"`
	Actuality   Actuality `json:"actuality"`
	Negated     bool      `json:"negated"`
	Tense       Tense     `json:"tense,omitempty"`
	Aspect      Aspect    `json:"aspect,omitempty"`

	Agent       *RoleLink `json:"agent,omitempty"`
	Patient     *RoleLink `json:"patient,omitempty"`
	Recipient   *RoleLink `json:"recipient,omitempty"`
	Instrument  *RoleLink `json:"instrument,omitempty"`
	Beneficiary *RoleLink `json:"beneficiary,omitempty"`
	Location    *RoleLink `json:"location,omitempty"`
	Source      *RoleLink `json:"source,omitempty"`
	Destination *RoleLink `json:"destination,omitempty"`
	Comitative  *RoleLink `json:"comitative,omitempty"`

	// CoAgents and CoPatients carry coordination-expanded entities beyond the
	// primary link, so "X and Y deployed Z" assigns the agent role to both.
	CoAgents   []string `json:"co_agents,omitempty"`
	CoPatients []string `json:"co_patients,omitempty"`

	// Affects links clearly inanimate direct objects, which participate in
	// the act but never bear a patient role.
	Affects []string `json:"affects,omitempty"`

	// Participants is the de-duplicated union of every linked entity.
	Participants []string `json:"participants"`
}

// Links returns every populated role link in a stable order.
func (a *Act) Links() []RoleLink {
	var out []RoleLink
	for _, l := range []*RoleLink{
		a.Agent, a.Patient, a.Recipient, a.Instrument, a.Beneficiary,
		a.Location, a.Source, a.Destination, a.Comitative,
	} {
		if l != nil {
			out = append(out, *l)
		}
	}
	return out
}

// StructuralAssertion records an atemporal continuant relation (containment,
// possession, location) between two entities. It carries no actuality or
// modality because it does not denote a process.
type StructuralAssertion struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Object   string `json:"object"`
	Relation string `json:"relation"`
	Inverse  string `json:"inverse,omitempty"`
	Verb     string `json:"verb"`
	Span     Span   `json:"span"`
}

// InferenceNode replaces an act when an inference verb has an inanimate
// subject: "the data suggest X" asserts evidential support, not an act.
type InferenceNode struct {
	ID      string `json:"id"`
	Verb    string `json:"verb"`
	Span    Span   `json:"span"`
	IsAbout string `json:"is_about"`           // the inanimate source entity
	Target  string `json:"supports,omitempty"` // the inferred target entity
	Negated bool   `json:"negated"`
}

// graphNamespace seeds all deterministic identifiers. Re-running on the same
// input must yield byte-identical IDs; callers persist and diff output.
var graphNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ppiankov/semograph"))

func deterministicID(prefix, key string) string {
	return prefix + "-" + uuid.NewSHA1(graphNamespace, []byte(key)).String()
}

// ActID derives the identifier of an act from its infinitive and span.
func ActID(infinitive string, span Span) string {
	return deterministicID("act", fmt.Sprintf("act|%s|%d|%d", infinitive, span.Start, span.End))
}

// AssertionID derives the identifier of a structural assertion.
func AssertionID(relation string, span Span) string {
	return deterministicID("assertion", fmt.Sprintf("assertion|%s|%d|%d", relation, span.Start, span.End))
}

// InferenceID derives the identifier of an inference node.
func InferenceID(verb string, span Span) string {
	return deterministicID("inference", fmt.Sprintf("inference|%s|%d|%d", verb, span.Start, span.End))
}

// RoleID derives the identifier of a role from its type, bearer and act.
func RoleID(roleType, bearerID, actID string) string {
	return deterministicID("role", fmt.Sprintf("role|%s|%s|%s", roleType, bearerID, actID))
}

// ImplicitEntityID derives the identifier of a synthesized entity, keyed by
// document so parallel runs over the same input agree.
func ImplicitEntityID(kind, docID string) string {
	return deterministicID("entity", fmt.Sprintf("implicit|%s|%s", kind, docID))
}
