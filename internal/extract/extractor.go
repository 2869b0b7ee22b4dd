package extract

import (
	"strings"

	"github.com/ppiankov/semograph/internal/mode"
	"github.com/ppiankov/semograph/internal/model"
)

// sentenceKind distinguishes the three sentence types that influence
// actuality resolution.
type sentenceKind int

const (
	sentenceDeclarative sentenceKind = iota
	sentenceInterrogative
	sentenceImperative
)

var whWords = map[string]bool{
	"who": true, "what": true, "when": true, "where": true,
	"why": true, "how": true, "which": true, "whom": true, "whose": true,
}

func detectSentenceKind(s *model.Sentence) sentenceKind {
	text := strings.TrimSpace(s.Text)
	if strings.HasSuffix(text, "?") {
		return sentenceInterrogative
	}
	if len(s.Tokens) == 0 {
		return sentenceDeclarative
	}

	first := s.Tokens[0]
	word := strings.ToLower(first.Text)
	if whWords[word] || ((first.IsModal() || isAuxiliaryForm(word)) && nextVerbWithin(s.Tokens, 1, 5)) {
		return sentenceInterrogative
	}
	// bare base-form verb with no subject before it reads as an imperative
	if first.POS == "VB" && len(eligibleBefore(s, first.Span().Start)) == 0 {
		return sentenceImperative
	}
	return sentenceDeclarative
}

// Options configure an Extractor.
type Options struct {
	// Overrides is a verb -> object-category -> act-type table layered over
	// the built-in selectional restrictions. "*" matches any category.
	Overrides map[string]map[string]string
}

// Extractor turns analyzed sentences into acts, structural assertions and
// inference nodes. Safe for concurrent use; all state lives in Context.
type Extractor struct {
	opts Options
}

func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Context carries per-document extraction state, chiefly the implicit
// addressee shared by every imperative in the document.
type Context struct {
	DocID string

	addressee *model.Entity
	implicit  []model.Entity
}

func NewContext(docID string) *Context {
	return &Context{DocID: docID}
}

// Addressee returns the document's implicit addressee entity, synthesizing
// it on first use. Its ID is deterministic in the document ID, so every
// imperative in the document binds the same entity.
func (c *Context) Addressee() *model.Entity {
	if c.addressee == nil {
		c.addressee = &model.Entity{
			ID:       model.ImplicitEntityID("addressee", c.DocID),
			Text:     "addressee",
			Category: model.CategoryPerson,
			Implicit: true,
		}
		c.implicit = append(c.implicit, *c.addressee)
	}
	return c.addressee
}

// Result is the extraction output for one or more sentences.
type Result struct {
	Acts         []model.Act
	Assertions   []model.StructuralAssertion
	Inferences   []model.InferenceNode
	Implicit     []model.Entity
	Ambiguities  []model.AmbiguityRecord
	Alternatives []model.AlternativeReading
}

// Document runs extraction over every sentence of a document.
func (x *Extractor) Document(doc *model.Document) *Result {
	ctx := NewContext(doc.ID)
	res := &Result{}
	for i := range doc.Sentences {
		x.Sentence(&doc.Sentences[i], ctx, res)
	}
	res.Implicit = append(res.Implicit, ctx.implicit...)
	return res
}

// Sentence extracts semantic nodes from one sentence into res. The stages
// run in a fixed order: deontic pattern matching, verb-phrase collection,
// stative classification, inference retyping, ergative demotion, modality
// and actuality resolution, then act emission.
func (x *Extractor) Sentence(s *model.Sentence, ctx *Context, res *Result) {
	kind := detectSentenceKind(s)

	matches := matchDeonticPatterns(s.Text)
	for _, m := range matches {
		occ := VerbOccurrence{
			Span:       m.span,
			Text:       sliceText(s.Text, m.span),
			Infinitive: m.verb,
			Tense:      model.TensePresent,
			Aspect:     model.AspectSimple,
			MainIndex:  mainIndexFor(s, m.span),
		}
		ra := linkRoles(s, occ, kind, ctx)
		v := modalityVerdict{
			modality:    m.pattern.modality,
			deonticType: string(m.pattern.modality),
		}
		x.emitAct(occ, ra, v, kind, res)
	}

	for _, occ := range collectVerbOccurrences(s) {
		if spanMatched(occ.Span, matches) {
			continue
		}

		ra := linkRoles(s, occ, kind, ctx)
		cues := cuesFor(ra)

		verdict := mode.Classify(occ.Infinitive, mode.Context{FollowedBy: tokenAfter(s, occ.MainIndex)})
		var stativeAlt *mode.Verdict
		switch verdict.Category {
		case mode.StativeDefinite:
			emitAssertion(occ, verdict, ra, res)
			continue
		case mode.StativeAmbiguous:
			if mode.DisambiguateStative(occ.Infinitive, cues) == mode.StativeDefinite {
				a := emitAssertion(occ, verdict, ra, res)
				res.Ambiguities = append(res.Ambiguities, model.AmbiguityRecord{
					NodeID:      a.ID,
					Source:      model.SourceStativeEventive,
					Outcome:     model.AmbiguityResolved,
					Description: "cues selected the structural reading of " + occ.Infinitive,
				})
				res.Alternatives = append(res.Alternatives, model.AlternativeReading{
					NodeID:       a.ID,
					Source:       model.SourceStativeEventive,
					Plausibility: 0.35,
					Description:  "eventive act reading of " + occ.Infinitive,
					Patch:        map[string]interface{}{"reading": "eventive"},
				})
				continue
			}
			// eventive won; keep the structural reading as an alternative
			v := verdict
			stativeAlt = &v
		}

		// inference verbs with inanimate subjects assert evidential support
		if inferenceVerbs[occ.Infinitive] && ra.subject != nil && !ra.subject.Category.IsAnimate() {
			emitInference(occ, ra, res)
			continue
		}

		// intransitive ergatives demote the inanimate subject out of agency
		if ergativeVerbs[occ.Infinitive] && !occ.Passive &&
			ra.agent != nil && !ra.agent.Category.IsAgentCapable() &&
			ra.patient == nil && ra.recipient == nil && len(ra.affects) == 0 {
			ra.affects = append(ra.affects, ra.agent.ID)
			ra.agent = nil
			ra.coAgents = nil
			ra.notes = append(ra.notes, model.AmbiguityRecord{
				Source:      model.SourceErgative,
				Outcome:     model.AmbiguityResolved,
				Description: "ergative " + occ.Infinitive + ": inanimate subject demoted to affected participant",
			})
		}

		v := detectModality(s, occ)
		act := x.emitAct(occ, ra, v, kind, res)

		if stativeAlt != nil {
			res.Ambiguities = append(res.Ambiguities, model.AmbiguityRecord{
				NodeID:      act.ID,
				Source:      model.SourceStativeEventive,
				Outcome:     model.AmbiguityResolved,
				Description: "cues selected the eventive reading of " + occ.Infinitive,
			})
			res.Alternatives = append(res.Alternatives, model.AlternativeReading{
				NodeID:       act.ID,
				Source:       model.SourceStativeEventive,
				Plausibility: 0.35,
				Description:  "structural " + stativeAlt.Relation + " reading of " + occ.Infinitive,
				Patch: map[string]interface{}{
					"reading":  "structural",
					"relation": stativeAlt.Relation,
					"inverse":  stativeAlt.Inverse,
				},
			})
		}
	}
}

// emitAct assembles and appends the act for a linked verb occurrence.
func (x *Extractor) emitAct(occ VerbOccurrence, ra roleAssignment, v modalityVerdict, kind sentenceKind, res *Result) *model.Act {
	// passives have no surface object; the patient carries the selectional cue
	objCat := model.OntoCategory("")
	switch {
	case ra.directObj != nil:
		objCat = ra.directObj.SelectionalCategory()
	case ra.patient != nil:
		objCat = ra.patient.SelectionalCategory()
	}

	act := model.Act{
		ID:          model.ActID(occ.Infinitive, occ.Span),
		Type:        ActTypeFor(occ.Infinitive, objCat, x.opts.Overrides),
		Infinitive:  occ.Infinitive,
		Text:        occ.Text,
		Span:        occ.Span,
		Modality:    v.modality,
		DeonticType: v.deonticType,
		Actuality:   resolveActuality(v, occ, kind),
		Negated:     occ.Negated,
		Tense:       occ.Tense,
		Aspect:      occ.Aspect,
		CoAgents:    ra.coAgents,
		CoPatients:  ra.coPatients,
		Affects:     ra.affects,
	}

	link := func(e *model.Entity, rel string) *model.RoleLink {
		if e == nil {
			return nil
		}
		return &model.RoleLink{EntityID: e.ID, Relation: rel}
	}
	act.Agent = link(ra.agent, model.RelationHasAgent)
	act.Patient = link(ra.patient, model.RelationHasPatient)
	act.Recipient = link(ra.recipient, model.RelationHasRecipient)
	for rel, ent := range ra.obliques {
		switch rel {
		case model.RelationHasInstrument:
			act.Instrument = link(ent, rel)
		case model.RelationHasBeneficiary:
			act.Beneficiary = link(ent, rel)
		case model.RelationHasLocation:
			act.Location = link(ent, rel)
		case model.RelationHasSource:
			act.Source = link(ent, rel)
		case model.RelationHasDestination:
			act.Destination = link(ent, rel)
		case model.RelationHasComitative:
			act.Comitative = link(ent, rel)
		case model.RelationHasRecipient:
			if act.Recipient == nil {
				act.Recipient = link(ent, rel)
			}
		}
	}

	seen := map[string]bool{}
	addParticipant := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			act.Participants = append(act.Participants, id)
		}
	}
	for _, l := range act.Links() {
		addParticipant(l.EntityID)
	}
	for _, id := range act.CoAgents {
		addParticipant(id)
	}
	for _, id := range act.CoPatients {
		addParticipant(id)
	}
	for _, id := range act.Affects {
		addParticipant(id)
	}

	if animacyRequiring[act.Type] && ra.agent != nil &&
		(ra.agent.Category == model.CategoryArtifact || ra.agent.Category == model.CategoryInformation) {
		res.Ambiguities = append(res.Ambiguities, model.AmbiguityRecord{
			NodeID:      act.ID,
			Source:      model.SourceSelectionalAnomaly,
			Outcome:     model.AmbiguityFlagged,
			Description: ra.agent.Text + " is an unexpected agent for a " + act.Type,
		})
	}
	for _, note := range ra.notes {
		note.NodeID = act.ID
		res.Ambiguities = append(res.Ambiguities, note)
	}

	res.Acts = append(res.Acts, act)
	return &res.Acts[len(res.Acts)-1]
}

// emitAssertion appends a structural assertion for a stative reading.
func emitAssertion(occ VerbOccurrence, verdict mode.Verdict, ra roleAssignment, res *Result) *model.StructuralAssertion {
	a := model.StructuralAssertion{
		ID:       model.AssertionID(verdict.Relation, occ.Span),
		Relation: verdict.Relation,
		Inverse:  verdict.Inverse,
		Verb:     occ.Infinitive,
		Span:     occ.Span,
	}
	if ra.subject != nil {
		a.Subject = ra.subject.ID
	}
	if ra.directObj != nil {
		a.Object = ra.directObj.ID
	}
	res.Assertions = append(res.Assertions, a)
	return &res.Assertions[len(res.Assertions)-1]
}

// emitInference appends an inference node in place of an act.
func emitInference(occ VerbOccurrence, ra roleAssignment, res *Result) *model.InferenceNode {
	n := model.InferenceNode{
		ID:      model.InferenceID(occ.Infinitive, occ.Span),
		Verb:    occ.Infinitive,
		Span:    occ.Span,
		IsAbout: ra.subject.ID,
		Negated: occ.Negated,
	}
	if ra.directObj != nil {
		n.Target = ra.directObj.ID
	}
	res.Inferences = append(res.Inferences, n)
	return &res.Inferences[len(res.Inferences)-1]
}

func cuesFor(ra roleAssignment) mode.Cues {
	var cues mode.Cues
	if ra.subject != nil {
		cues.SubjectType = ra.subject.Category
	}
	if ra.directObj != nil {
		cues.ObjectType = ra.directObj.Category
		cues.ObjectLabel = ra.directObj.Text
	}
	return cues
}

// tokenAfter returns the text of the token following the given index.
func tokenAfter(s *model.Sentence, idx int) string {
	for i, tok := range s.Tokens {
		if tok.Index == idx && i+1 < len(s.Tokens) {
			return s.Tokens[i+1].Text
		}
	}
	return ""
}

// mainIndexFor finds the last verb-like token inside a pattern span, so role
// linking anchors on the matched construction's main verb.
func mainIndexFor(s *model.Sentence, span model.Span) int {
	idx := -1
	for _, tok := range s.Tokens {
		if tok.Span().Overlaps(span) {
			idx = tok.Index
		}
	}
	return idx
}

func spanMatched(span model.Span, matches []deonticMatch) bool {
	for _, m := range matches {
		if span.Overlaps(m.span) {
			return true
		}
	}
	return false
}
