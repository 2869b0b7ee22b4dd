package extract

import (
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// VerbOccurrence is one verb phrase found in a sentence, with its
// grammatical features resolved. Transient: never serialized.
type VerbOccurrence struct {
	Span       model.Span
	Text       string
	Infinitive string
	Tense      model.Tense
	Aspect     model.Aspect
	Aux        string
	Passive    bool
	Negated    bool
	MainIndex  int // token index of the main verb

	// Control is set when a governing control verb was consumed and its
	// modality flows into this occurrence's act.
	Control    *ControlAnnotation
	Complement bool // true for infinitive complements
}

// ControlAnnotation records the consumed control verb.
type ControlAnnotation struct {
	Verb     string
	Modality model.Modality
}

func isAuxiliaryForm(word string) bool {
	switch strings.ToLower(word) {
	case "is", "are", "am", "was", "were", "be", "been", "being",
		"has", "have", "had", "do", "does", "did":
		return true
	}
	return false
}

func isBeForm(word string) bool {
	switch word {
	case "is", "are", "am", "was", "were", "be", "been", "being":
		return true
	}
	return false
}

func isHaveForm(word string) bool {
	switch word {
	case "has", "have", "had":
		return true
	}
	return false
}

func isNegationWord(word string) bool {
	switch strings.ToLower(word) {
	case "not", "never", "n't", "no":
		return true
	}
	return false
}

func nextVerbWithin(toks []model.Token, from, within int) bool {
	for k := from; k < len(toks) && k < from+within; k++ {
		if toks[k].IsVerb() {
			return true
		}
	}
	return false
}

// collectVerbOccurrences walks the token stream grouping auxiliaries,
// negation and main verbs into verb phrases, then supplements tokenizer
// misses with the morphological fallback, drops pure auxiliaries and
// do-support, and pairs control verbs with their infinitive complements.
func collectVerbOccurrences(s *model.Sentence) []VerbOccurrence {
	toks := s.Tokens
	var occs []VerbOccurrence

	i := 0
	for i < len(toks) {
		t := toks[i]
		if !t.IsVerb() && !t.IsModal() {
			i++
			continue
		}

		start := i
		var aux []string
		negated := false
		mainIdx := -1
		j := i

	scan:
		for j < len(toks) {
			t := toks[j]
			word := strings.ToLower(t.Text)
			switch {
			case word == "cannot":
				aux = append(aux, "can")
				negated = true
				j++
			case t.IsModal():
				aux = append(aux, word)
				j++
			case t.IsVerb() && isAuxiliaryForm(word) && nextVerbWithin(toks, j+1, 3):
				aux = append(aux, word)
				j++
			case isNegationWord(word):
				negated = true
				j++
			case t.POS == "RB":
				j++
			case t.POS == "TO" && len(aux) > 0:
				aux = append(aux, "to")
				j++
			case t.IsVerb():
				mainIdx = j
				j++
				break scan
			default:
				break scan
			}
		}

		if mainIdx < 0 {
			i = j
			continue
		}

		main := toks[mainIdx]
		occ := VerbOccurrence{
			Span:      model.Span{Start: toks[start].Start, End: main.Span().End},
			Negated:   negated,
			Aux:       strings.Join(aux, " "),
			MainIndex: mainIdx,
		}
		occ.Text = sliceText(s.Text, occ.Span)
		if main.Lemma != "" {
			occ.Infinitive = strings.ToLower(main.Lemma)
		} else {
			occ.Infinitive = Infinitive(main.Text)
		}
		occ.Tense, occ.Aspect, occ.Passive = verbFeatures(aux, main.POS)
		occs = append(occs, occ)
		i = j
	}

	occs = supplementMorphological(s, occs)
	occs = dropAuxiliaries(occs)
	occs = pairControlVerbs(s, occs)
	return occs
}

func verbFeatures(aux []string, mainPOS string) (model.Tense, model.Aspect, bool) {
	tense := model.TensePresent
	aspect := model.AspectSimple
	passive := false

	for _, a := range aux {
		switch a {
		case "will", "shall":
			tense = model.TenseFuture
		case "was", "were", "did", "had":
			tense = model.TensePast
		}
		if isBeForm(a) {
			if mainPOS == "VBG" {
				aspect = model.AspectProgressive
			}
			if mainPOS == "VBN" {
				passive = true
			}
		}
		if isHaveForm(a) && mainPOS == "VBN" {
			aspect = model.AspectPerfect
		}
	}

	if mainPOS == "VBD" && tense == model.TensePresent {
		tense = model.TensePast
	}
	return tense, aspect, passive
}

// supplementMorphological recovers verbs the tokenizer mistagged, but only
// in clauses the token scan left verbless: a verb-shaped noun next to a
// collected verb phrase is an argument ("gave ... an award"), not a miss.
func supplementMorphological(s *model.Sentence, occs []VerbOccurrence) []VerbOccurrence {
	if len(occs) > 0 {
		return occs
	}
	for idx, tok := range s.Tokens {
		if tok.IsVerb() || tok.IsModal() {
			continue
		}
		if !strings.HasPrefix(tok.POS, "NN") && tok.POS != "JJ" {
			continue
		}
		if !LooksLikeVerb(tok.Text) {
			continue
		}
		// a determiner marks the token as nominal regardless of its shape
		if idx > 0 && s.Tokens[idx-1].POS == "DT" {
			continue
		}
		tense := model.TensePresent
		if strings.HasSuffix(strings.ToLower(tok.Text), "ed") {
			tense = model.TensePast
		}
		occs = append(occs, VerbOccurrence{
			Span:       tok.Span(),
			Text:       tok.Text,
			Infinitive: Infinitive(tok.Text),
			Tense:      tense,
			Aspect:     model.AspectSimple,
			MainIndex:  idx,
		})
	}
	sortBySpan(occs)
	return occs
}

// dropAuxiliaries removes copular "be" occurrences and do-support when a
// non-auxiliary verb exists in the same sentence.
func dropAuxiliaries(occs []VerbOccurrence) []VerbOccurrence {
	hasLexical := false
	for _, occ := range occs {
		if occ.Infinitive != "be" && occ.Infinitive != "do" {
			hasLexical = true
			break
		}
	}

	var out []VerbOccurrence
	for _, occ := range occs {
		if occ.Infinitive == "be" {
			continue
		}
		if occ.Infinitive == "do" && hasLexical {
			continue
		}
		out = append(out, occ)
	}
	return out
}

// pairControlVerbs consumes a control verb immediately governing an
// infinitive complement, transferring its modality onto the complement.
func pairControlVerbs(s *model.Sentence, occs []VerbOccurrence) []VerbOccurrence {
	var out []VerbOccurrence
	for i := 0; i < len(occs); i++ {
		occ := occs[i]
		modality, isControl := controlVerbs[occ.Infinitive]
		if !isControl || i+1 >= len(occs) {
			out = append(out, occ)
			continue
		}
		next := occs[i+1]
		if !onlyInfinitiveMarkerBetween(s, occ.Span.End, next.Span.Start) {
			out = append(out, occ)
			continue
		}
		next.Control = &ControlAnnotation{Verb: occ.Infinitive, Modality: modality}
		next.Complement = true
		if occ.Negated {
			next.Negated = true
		}
		out = append(out, next)
		i++ // the complement is consumed here
	}
	return out
}

// onlyInfinitiveMarkerBetween reports whether the tokens between two spans
// are just the infinitive marker "to" (plus adverbs).
func onlyInfinitiveMarkerBetween(s *model.Sentence, from, to int) bool {
	sawTo := false
	for _, tok := range s.Tokens {
		sp := tok.Span()
		if sp.Start < from || sp.End > to {
			continue
		}
		switch {
		case tok.POS == "TO" || strings.EqualFold(tok.Text, "to"):
			sawTo = true
		case tok.POS == "RB":
		default:
			return false
		}
	}
	return sawTo
}

func sliceText(text string, span model.Span) string {
	if span.Start < 0 || span.End > len(text) || span.Start > span.End {
		return ""
	}
	return text[span.Start:span.End]
}

func sortBySpan(occs []VerbOccurrence) {
	for i := 1; i < len(occs); i++ {
		for j := i; j > 0 && occs[j].Span.Start < occs[j-1].Span.Start; j-- {
			occs[j], occs[j-1] = occs[j-1], occs[j]
		}
	}
}
