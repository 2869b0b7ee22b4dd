package genericity

import (
	"strings"

	"github.com/ppiankov/semograph/internal/mode"
	"github.com/ppiankov/semograph/internal/model"
)

// Classifier decides, per subject entity, whether the noun phrase refers to a
// kind, a particular, or stays ambiguous. It is a pure function of the
// analyzed sentence plus an optional register hint.
type Classifier struct {
	register string
}

// NewClassifier creates a classifier. register biases heuristics toward a
// text domain; "legal" lets definite descriptions keep a Generic alternative.
func NewClassifier(register string) *Classifier {
	return &Classifier{register: register}
}

// massNouns is the closed list used for bare singular subjects: these read
// generically without a determiner ("Water boils at 100C").
var massNouns = map[string]bool{
	"water": true, "information": true, "software": true, "money": true,
	"music": true, "rice": true, "equipment": true, "furniture": true,
	"advice": true, "knowledge": true, "evidence": true, "electricity": true,
	"air": true, "blood": true, "data": true, "traffic": true,
	"bread": true, "milk": true, "research": true, "legislation": true,
}

var deonticModals = map[string]bool{
	"must": true, "shall": true, "should": true, "ought": true,
}

var epistemicModals = map[string]bool{
	"may": true, "might": true, "could": true,
}

var universalDeterminers = map[string]bool{
	"each": true, "every": true, "all": true, "any": true,
}

var demonstrativeDeterminers = map[string]bool{
	"this": true, "that": true, "these": true, "those": true,
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true,
}

// votes tallies kind-reference support from the tense/aspect/modal signal and
// the predicate-stativity signal. The determiner signal is handled separately
// because it can short-circuit.
type votes struct {
	generic  int
	instance int
}

func (v votes) margin() int { return v.generic - v.instance }

// Classify returns one GenericityRecord per subject-labeled entity, keyed by
// entity ID. Non-subject entities are skipped. No input combination errors;
// a voting tie yields Ambiguous rather than dropping the ambiguity.
func (c *Classifier) Classify(sentence *model.Sentence) map[string]model.GenericityRecord {
	out := make(map[string]model.GenericityRecord)
	if sentence == nil {
		return out
	}

	v := c.collectVotes(sentence)

	for i := range sentence.Entities {
		ent := &sentence.Entities[i]
		if !isSubject(ent.Dep) {
			continue
		}
		out[ent.ID] = c.classifySubject(sentence, ent, v)
	}
	return out
}

// collectVotes gathers the sentence-level signals shared by every subject:
// tense/aspect/modal (Signal 2) and predicate stativity (Signal 3).
func (c *Classifier) collectVotes(sentence *model.Sentence) votes {
	var v votes

	verb, hasVerb := mainVerb(sentence)
	if hasVerb {
		switch {
		case verb.POS == "VBD" || verb.POS == "VBN":
			v.instance++
		case verb.POS == "VBG":
			v.instance++
		case verb.POS == "VBZ" || verb.POS == "VBP":
			v.generic++
		}

		if mode.IsStativePredicate(verbLemma(verb)) {
			v.generic++
		} else {
			v.instance++
		}
	}

	for _, tok := range sentence.Tokens {
		if !tok.IsModal() {
			continue
		}
		word := strings.ToLower(tok.Text)
		if deonticModals[word] {
			// Deontic modals are strong kind-reference cues: the extra vote
			// outweighs a dynamic-verb instance vote.
			v.generic += 2
		}
		if epistemicModals[word] {
			v.instance--
		}
	}

	// Temporal adverbs anchor the event to a particular occasion.
	for _, tok := range sentence.Tokens {
		switch strings.ToLower(tok.Text) {
		case "yesterday", "today", "tonight", "ago":
			v.instance++
		}
	}

	return v
}

func (c *Classifier) classifySubject(sentence *model.Sentence, ent *model.Entity, v votes) model.GenericityRecord {
	det, head := nounPhraseShape(sentence, ent)

	// Signal 1: determiner lookup. High-confidence cases short-circuit.
	switch {
	case universalDeterminers[det]:
		return record(ent.ID, model.GenericityUniversal, 0.9, nil, "determiner:universal")
	case demonstrativeDeterminers[det]:
		return record(ent.ID, model.GenericityInstance, 0.9, nil, "determiner:demonstrative")
	case head.POS == "NNP" || head.POS == "NNPS":
		return record(ent.ID, model.GenericityInstance, 0.9, nil, "proper-noun")
	}

	plural := head.POS == "NNS"
	headWord := strings.ToLower(headText(head))

	if det == "" {
		if plural {
			return c.barePlural(ent, v)
		}
		if massNouns[headWord] {
			return c.bareMass(ent, v)
		}
		return c.voteOnly(ent, v)
	}

	if det == "a" || det == "an" {
		return c.indefinite(ent, v)
	}

	if det == "the" {
		return c.definite(ent, v, plural)
	}

	return c.voteOnly(ent, v)
}

// barePlural: "Dogs bark." Bare plural subjects read generically; votes only
// adjust confidence.
func (c *Classifier) barePlural(ent *model.Entity, v votes) model.GenericityRecord {
	conf := clamp(0.75 + 0.05*float64(v.margin()))
	if v.margin() < 0 {
		alt := &model.GenericityAlternative{Category: model.GenericityInstance, Confidence: 1 - conf}
		return record(ent.ID, model.GenericityGeneric, clamp(0.65), alt, "bare-plural")
	}
	return record(ent.ID, model.GenericityGeneric, conf, nil, "bare-plural")
}

func (c *Classifier) bareMass(ent *model.Entity, v votes) model.GenericityRecord {
	conf := clamp(0.7 + 0.05*float64(v.margin()))
	return record(ent.ID, model.GenericityGeneric, conf, nil, "bare-mass-noun")
}

func (c *Classifier) indefinite(ent *model.Entity, v votes) model.GenericityRecord {
	if v.margin() > 0 {
		// "A dog has four legs": indefinite singular with generic-supporting
		// tense and predicate keeps the kind reading alongside.
		alt := &model.GenericityAlternative{Category: model.GenericityGeneric, Confidence: 0.4}
		return record(ent.ID, model.GenericityInstance, 0.6, alt, "indefinite")
	}
	return record(ent.ID, model.GenericityInstance, clamp(0.65+0.05*float64(-v.margin())), nil, "indefinite")
}

func (c *Classifier) definite(ent *model.Entity, v votes, plural bool) model.GenericityRecord {
	if !plural && v.margin() > 0 {
		return ruleInstitutionalThe(ent)
	}

	conf := clamp(0.6 + 0.05*float64(-v.margin()))
	if v.margin() == 0 {
		alt := &model.GenericityAlternative{Category: model.GenericityGeneric, Confidence: 0.5}
		return record(ent.ID, model.GenericityAmbiguous, 0.5, alt, "vote-tie")
	}
	if v.margin() > 0 {
		// Plural definite with generic support: "The dinosaurs are extinct."
		return record(ent.ID, model.GenericityGeneric, clamp(0.6+0.05*float64(v.margin())), nil, "definite-description")
	}
	if c.register == "legal" {
		// Legal register: "the buyer" usually denotes the role kind, so an
		// otherwise-Instance definite keeps a Generic alternative.
		alt := &model.GenericityAlternative{Category: model.GenericityGeneric, Confidence: 0.35}
		return record(ent.ID, model.GenericityInstance, conf, alt, "definite-description:legal")
	}
	return record(ent.ID, model.GenericityInstance, conf, nil, "definite-description")
}

// ruleInstitutionalThe is the named special case for definite descriptions
// over bare singular count nouns with generic-supporting tense and predicate:
// "The electron has negative charge." Kept independent of the vote tally so
// it can be corrected without re-deriving the decision table.
func ruleInstitutionalThe(ent *model.Entity) model.GenericityRecord {
	alt := &model.GenericityAlternative{Category: model.GenericityGeneric, Confidence: 0.45}
	return record(ent.ID, model.GenericityAmbiguous, 0.5, alt, "institutional-the")
}

func (c *Classifier) voteOnly(ent *model.Entity, v votes) model.GenericityRecord {
	switch {
	case v.margin() > 0:
		return record(ent.ID, model.GenericityGeneric, clamp(0.55+0.05*float64(v.margin())), nil, "vote-margin")
	case v.margin() < 0:
		return record(ent.ID, model.GenericityInstance, clamp(0.55+0.05*float64(-v.margin())), nil, "vote-margin")
	default:
		alt := &model.GenericityAlternative{Category: model.GenericityGeneric, Confidence: 0.5}
		return record(ent.ID, model.GenericityAmbiguous, 0.5, alt, "vote-tie")
	}
}

func record(headID string, cat model.GenericityCategory, conf float64, alt *model.GenericityAlternative, rule string) model.GenericityRecord {
	return model.GenericityRecord{
		HeadID:      headID,
		Category:    cat,
		Confidence:  conf,
		Alternative: alt,
		Rule:        rule,
	}
}

func isSubject(dep string) bool {
	return strings.HasPrefix(dep, "nsubj") || dep == "subj" || dep == "csubj"
}

// nounPhraseShape returns the determiner (lowercased, "" when bare) and the
// head noun token of the entity span.
func nounPhraseShape(sentence *model.Sentence, ent *model.Entity) (string, model.Token) {
	det := ""
	head := model.Token{POS: "NN"}
	found := false

	for _, tok := range sentence.Tokens {
		if !ent.Span.Overlaps(tok.Span()) {
			continue
		}
		if tok.POS == "DT" || tok.POS == "PRP$" {
			det = strings.ToLower(tok.Text)
		}
		if strings.HasPrefix(tok.POS, "NN") {
			head = tok // last noun in span wins
			found = true
		}
	}
	if !found {
		head.Text = ent.Text
	}
	return det, head
}

// mainVerb returns the root verb of the sentence, falling back to the first
// non-auxiliary verb token.
func mainVerb(sentence *model.Sentence) (model.Token, bool) {
	for _, tok := range sentence.Tokens {
		if tok.Head == -1 && tok.IsVerb() {
			return tok, true
		}
	}
	for _, tok := range sentence.Tokens {
		if tok.IsVerb() && !isAuxiliaryWord(tok.Text) {
			return tok, true
		}
	}
	return model.Token{}, false
}

func isAuxiliaryWord(word string) bool {
	switch strings.ToLower(word) {
	case "is", "are", "was", "were", "am", "be", "been", "being",
		"do", "does", "did", "has", "have", "had":
		return true
	}
	return false
}

func verbLemma(tok model.Token) string {
	if tok.Lemma != "" {
		return strings.ToLower(tok.Lemma)
	}
	return strings.ToLower(tok.Text)
}

func headText(tok model.Token) string {
	return tok.Text
}

func clamp(v float64) float64 {
	if v > 0.95 {
		return 0.95
	}
	if v < 0.05 {
		return 0.05
	}
	return v
}
