package extract

import (
	"github.com/ppiankov/semograph/internal/mode"
	"github.com/ppiankov/semograph/internal/model"
)

// GenericActType is the fallback ontology type for unmapped verbs.
const GenericActType = "act"

// verbTypes maps infinitives to their unqualified act ontology type.
var verbTypes = map[string]string{
	"treat": "care-act", "diagnose": "care-act", "examine": "care-act",
	"cure": "care-act", "operate": "care-act", "consent": "care-act",

	"deploy": "technical-act", "install": "technical-act", "configure": "technical-act",
	"reboot": "technical-act", "restart": "technical-act", "upgrade": "technical-act",
	"patch": "technical-act", "migrate": "technical-act",

	"say": "communication-act", "tell": "communication-act", "announce": "communication-act",
	"report": "communication-act", "notify": "communication-act", "ask": "communication-act",
	"inform": "communication-act", "explain": "communication-act", "speak": "communication-act",
	"communicate": "communication-act", "declare": "communication-act",

	"give": "transfer-act", "send": "transfer-act", "deliver": "transfer-act",
	"grant": "transfer-act", "transfer": "transfer-act", "pay": "transfer-act",
	"receive": "transfer-act", "obtain": "transfer-act", "award": "transfer-act",
	"lend": "transfer-act", "offer": "transfer-act", "hand": "transfer-act",
	"acquire": "transfer-act", "inherit": "transfer-act",

	"go": "motion-act", "move": "motion-act", "travel": "motion-act",
	"arrive": "motion-act", "return": "motion-act", "depart": "motion-act",

	"create": "creation-act", "build": "creation-act", "produce": "creation-act",
	"write": "creation-act", "establish": "creation-act", "found": "creation-act",
	"make": "creation-act", "develop": "creation-act",

	"destroy": "destruction-act", "remove": "destruction-act", "delete": "destruction-act",
	"demolish": "destruction-act",

	"suggest": "communication-act", "indicate": "communication-act", "show": "communication-act",
	"imply": "communication-act", "demonstrate": "communication-act", "reveal": "communication-act",

	"bark": "expression-act", "shout": "expression-act", "sign": "endorsement-act",
	"approve": "endorsement-act", "authorize": "endorsement-act",
	"process": "handling-act", "handle": "handling-act", "address": "handling-act",
	"review": "inspection-act", "inspect": "inspection-act", "audit": "inspection-act",
}

// fallbackObjectCategory is used for selectional lookup when the direct
// object's category cannot be resolved. Treating unknown object types as
// plain continuants is a deliberate, independently tested judgment call.
const fallbackObjectCategory = model.CategoryContinuant

// selectionalRestrictions refines a verb's act type by the ontological
// category of its direct object.
var selectionalRestrictions = map[string]map[model.OntoCategory]string{
	"treat": {
		model.CategoryPerson:         "care-act",
		model.CategoryGroupOfPersons: "care-act",
		model.CategoryArtifact:       "processing-act",
		model.CategoryInformation:    "processing-act",
		model.CategoryContinuant:     "processing-act",
	},
	"process": {
		model.CategoryInformation:    "computation-act",
		model.CategoryPerson:         "administrative-act",
		model.CategoryGroupOfPersons: "administrative-act",
	},
	"serve": {
		model.CategoryPerson:         "service-act",
		model.CategoryGroupOfPersons: "service-act",
		model.CategoryArtifact:       "provision-act",
	},
	"examine": {
		model.CategoryPerson:      "care-act",
		model.CategoryArtifact:    "inspection-act",
		model.CategoryInformation: "inspection-act",
	},
	"address": {
		model.CategoryPerson:         "communication-act",
		model.CategoryGroupOfPersons: "communication-act",
		model.CategoryInformation:    "handling-act",
		model.CategoryQuality:        "handling-act",
	},
	"handle": {
		model.CategoryPerson:      "administrative-act",
		model.CategoryArtifact:    "manipulation-act",
		model.CategoryInformation: "computation-act",
	},
}

// ActTypeFor resolves the ontology type for a verb occurrence. The
// caller-supplied override table is checked first, then the built-in
// selectional-restriction table, then the unqualified verb mapping.
// Unknown verbs fall back to the generic act type; an unresolvable object
// category falls back to the unqualified mapping.
func ActTypeFor(infinitive string, objectCategory model.OntoCategory, overrides map[string]map[string]string) string {
	cat := objectCategory
	if cat == "" {
		cat = fallbackObjectCategory
	}

	if byVerb, ok := overrides[infinitive]; ok {
		if t, ok := byVerb[string(cat)]; ok {
			return t
		}
		if t, ok := byVerb["*"]; ok {
			return t
		}
	}

	if byCat, ok := selectionalRestrictions[infinitive]; ok {
		if t, ok := byCat[cat]; ok {
			return t
		}
	}

	if t, ok := verbTypes[infinitive]; ok {
		return t
	}
	return GenericActType
}

// ergativeVerbs have a patient-like subject when used intransitively:
// "the server rebooted" does not make the server an agent.
var ergativeVerbs = map[string]bool{
	"reboot": true, "restart": true, "crash": true, "break": true,
	"open": true, "close": true, "start": true, "stop": true,
	"sink": true, "melt": true, "burn": true, "shut": true, "fail": true,
}

// inferenceVerbs assert evidential support when their subject is inanimate:
// "the data suggest" is an inference, not an act of suggesting.
var inferenceVerbs = map[string]bool{
	"suggest": true, "indicate": true, "show": true, "imply": true,
	"demonstrate": true, "reveal": true, "signal": true, "confirm": true,
}

// ditransitiveVerbs take recipient + patient after the verb.
var ditransitiveVerbs = map[string]bool{
	"give": true, "send": true, "offer": true, "grant": true, "award": true,
	"tell": true, "show": true, "teach": true, "lend": true, "pay": true,
	"hand": true, "deliver": true,
}

// receiveClassVerbs flip the subject into the recipient role.
var receiveClassVerbs = map[string]bool{
	"receive": true, "obtain": true, "acquire": true, "inherit": true,
}

// communicationVerbs make a following "to" phrase a recipient, not a
// destination.
var communicationVerbs = map[string]bool{
	"say": true, "tell": true, "announce": true, "report": true,
	"notify": true, "explain": true, "speak": true, "communicate": true,
	"write": true, "declare": true,
}

// controlVerbs take an infinitive complement and contribute modality to it
// instead of denoting their own act.
var controlVerbs = map[string]model.Modality{
	"need":    model.ModalityObligation,
	"require": model.ModalityObligation,
	"want":    model.ModalityIntention,
	"intend":  model.ModalityIntention,
	"plan":    model.ModalityIntention,
	"hope":    model.ModalityIntention,
	"wish":    model.ModalityIntention,
	"seek":    model.ModalityIntention,
	"try":     model.ModalityIntention,
	"aim":     model.ModalityIntention,
}

// animacyRequiring lists act types whose agent is expected to be animate;
// a clearly inanimate agent raises a selectional anomaly flag.
var animacyRequiring = map[string]bool{
	"communication-act": true,
	"care-act":          true,
	"endorsement-act":   true,
	"creation-act":      true,
}

func isKnownVerb(inf string) bool {
	if _, ok := verbTypes[inf]; ok {
		return true
	}
	if _, ok := controlVerbs[inf]; ok {
		return true
	}
	return ergativeVerbs[inf] || inferenceVerbs[inf] || ditransitiveVerbs[inf] ||
		receiveClassVerbs[inf] || communicationVerbs[inf] || mode.IsStativePredicate(inf)
}
