package extract

import (
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// roleAssignment is the thematic-role outcome for one verb occurrence.
// Entities are referenced by pointer into the sentence's entity list.
type roleAssignment struct {
	agent     *model.Entity
	patient   *model.Entity
	recipient *model.Entity
	obliques  map[string]*model.Entity // relation constant -> entity

	coAgents   []string
	coPatients []string
	affects    []string

	subject   *model.Entity // pre-demotion subject, for retyping rules
	directObj *model.Entity // first unclaimed post-verb entity

	notes []model.AmbiguityRecord // node ID filled in at emission
}

var relativizers = map[string]bool{
	"who": true, "whom": true, "whose": true, "which": true, "that": true,
}

var reflexivePronouns = map[string]bool{
	"himself": true, "herself": true, "itself": true, "themselves": true,
	"myself": true, "yourself": true, "ourselves": true, "oneself": true,
}

// excludedForAgent lists categories that never fill agent/patient positions.
func excludedForAgent(c model.OntoCategory) bool {
	return c == model.CategoryQuality || c == model.CategoryTemporalRegion
}

func eligibleBefore(s *model.Sentence, pos int) []*model.Entity {
	var out []*model.Entity
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Span.End <= pos && !excludedForAgent(e.Category) {
			out = append(out, e)
		}
	}
	return out
}

func eligibleAfter(s *model.Sentence, pos int) []*model.Entity {
	var out []*model.Entity
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Span.Start >= pos && !excludedForAgent(e.Category) {
			out = append(out, e)
		}
	}
	return out
}

// hasRelativizerBetween reports an explicit relative pronoun between the
// candidate subject and the verb: in "the report that the committee filed",
// the committee is inside the relative clause, not the matrix subject.
func hasRelativizerBetween(s *model.Sentence, from, to int) bool {
	for _, tok := range s.Tokens {
		sp := tok.Span()
		if sp.Start >= from && sp.End <= to && relativizers[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}

// reducedRelativeBetween detects the zero-relativizer pattern: a past
// participle directly after an entity that is not this occurrence's verb
// ("the patch deployed yesterday failed").
func reducedRelativeBetween(s *model.Sentence, from, to int) bool {
	for _, tok := range s.Tokens {
		sp := tok.Span()
		if sp.Start >= from && sp.End <= to && tok.POS == "VBN" {
			return true
		}
	}
	return false
}

// postArg is a post-verb entity with its governing preposition ("" for a
// bare object).
type postArg struct {
	ent  *model.Entity
	prep string
}

// classifyPostArgs pairs each entity after the verb with the preposition
// governing it, stopping at the next verb so arguments of a later clause are
// not claimed.
func classifyPostArgs(s *model.Sentence, occ VerbOccurrence) []postArg {
	boundary := len(s.Text) + 1
	for _, tok := range s.Tokens {
		if tok.Index > occ.MainIndex && tok.IsVerb() && tok.Span().Start >= occ.Span.End {
			boundary = tok.Span().Start
			break
		}
	}

	var args []postArg
	prev := occ.Span.End
	for _, ent := range eligibleAfter(s, occ.Span.End) {
		if ent.Span.Start >= boundary {
			break
		}
		prep := ""
		for _, tok := range s.Tokens {
			sp := tok.Span()
			if sp.Start < prev || sp.End > ent.Span.Start {
				continue
			}
			word := strings.ToLower(tok.Text)
			if tok.POS == "IN" || tok.POS == "TO" || word == "to" {
				prep = word
			}
		}
		args = append(args, postArg{ent: ent, prep: prep})
		prev = ent.Span.End
	}
	return args
}

func hasReflexiveAfter(s *model.Sentence, occ VerbOccurrence) bool {
	for _, tok := range s.Tokens {
		sp := tok.Span()
		if sp.Start >= occ.Span.End && reflexivePronouns[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}

// obliqueRelation maps a preposition to the role relation it introduces,
// sensitive to the verb class and the entity's category.
func obliqueRelation(prep, infinitive string, ent *model.Entity) string {
	switch prep {
	case "with":
		if ent.Category.IsPersonLike() {
			return model.RelationHasComitative
		}
		return model.RelationHasInstrument
	case "for":
		return model.RelationHasBeneficiary
	case "in", "at", "on":
		return model.RelationHasLocation
	case "from":
		return model.RelationHasSource
	case "to":
		if communicationVerbs[infinitive] {
			return model.RelationHasRecipient
		}
		return model.RelationHasDestination
	case "into", "onto", "toward", "towards":
		return model.RelationHasDestination
	case "via", "through", "using":
		return model.RelationHasInstrument
	}
	return ""
}

// conjunctGroup returns the IDs of the contiguous conjunct run the entity
// belongs to, excluding the entity itself. Coordinated entities sharing a
// role receive it identically.
func conjunctGroup(s *model.Sentence, ent *model.Entity) []string {
	if !ent.IsConjunct {
		return nil
	}
	idx := -1
	for i := range s.Entities {
		if s.Entities[i].ID == ent.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	var ids []string
	for i := idx - 1; i >= 0; i-- {
		if !s.Entities[i].IsConjunct || s.Entities[i].Conjunction != ent.Conjunction {
			break
		}
		ids = append(ids, s.Entities[i].ID)
	}
	for i := idx + 1; i < len(s.Entities); i++ {
		if !s.Entities[i].IsConjunct || s.Entities[i].Conjunction != ent.Conjunction {
			break
		}
		ids = append(ids, s.Entities[i].ID)
	}
	return ids
}

// linkRoles assigns thematic roles for one verb occurrence: nearest
// preceding eligible entity as agent (with relative-clause adjustment),
// post-verb arguments split into patient/recipient/obliques, passive and
// reflexive rearrangements, and coordination expansion.
func linkRoles(s *model.Sentence, occ VerbOccurrence, kind sentenceKind, ctx *Context) roleAssignment {
	ra := roleAssignment{obliques: make(map[string]*model.Entity)}

	before := eligibleBefore(s, occ.Span.Start)
	if len(before) > 0 {
		subject := before[len(before)-1]
		if len(before) > 1 &&
			(hasRelativizerBetween(s, subject.Span.End, occ.Span.Start) ||
				reducedRelativeBetween(s, subject.Span.End, occ.Span.Start)) {
			subject = before[0]
			ra.notes = append(ra.notes, model.AmbiguityRecord{
				Source:      model.SourceAttachment,
				Outcome:     model.AmbiguityResolved,
				Description: "relative-clause attachment: matrix subject taken as farthest preceding entity",
			})
		}
		ra.subject = subject
	}

	if ra.subject == nil && kind == sentenceImperative {
		ra.subject = ctx.Addressee()
	}

	args := classifyPostArgs(s, occ)
	var direct []*model.Entity
	for _, a := range args {
		if a.prep == "" {
			direct = append(direct, a.ent)
			continue
		}
		if occ.Passive && a.prep == "by" {
			ra.agent = a.ent
			continue
		}
		if rel := obliqueRelation(a.prep, occ.Infinitive, a.ent); rel != "" {
			if _, taken := ra.obliques[rel]; !taken {
				ra.obliques[rel] = a.ent
			}
		}
	}
	if len(direct) > 0 {
		ra.directObj = direct[0]
	}

	switch {
	case occ.Passive:
		// passive swaps subject into the patient position; the "by" phrase
		// above supplies the true agent when present
		if ra.subject != nil {
			ra.assignPatient(ra.subject)
		}
	case receiveClassVerbs[occ.Infinitive]:
		// "receive"-class verbs make the subject a recipient, not an agent
		ra.recipient = ra.subject
		if len(direct) > 0 {
			ra.assignPatient(direct[0])
		}
	case ditransitiveVerbs[occ.Infinitive] && len(direct) >= 2:
		ra.agent = ra.subject
		ra.recipient = direct[0]
		ra.assignPatient(direct[1])
	default:
		ra.agent = ra.subject
		if hasReflexiveAfter(s, occ) && ra.subject != nil {
			ra.assignPatient(ra.subject)
		} else if len(direct) > 0 {
			ra.assignPatient(direct[0])
		}
	}

	if ra.agent != nil {
		ra.coAgents = conjunctGroup(s, ra.agent)
	}
	if ra.patient != nil {
		ra.coPatients = conjunctGroup(s, ra.patient)
	}
	return ra
}

// assignPatient routes the object either into the patient link or, for
// artifacts and information content, into the affects list: those
// participate in the act but never bear a patient role.
func (ra *roleAssignment) assignPatient(ent *model.Entity) {
	if ent.Category == model.CategoryArtifact || ent.Category == model.CategoryInformation {
		ra.affects = append(ra.affects, ent.ID)
		return
	}
	ra.patient = ent
}
