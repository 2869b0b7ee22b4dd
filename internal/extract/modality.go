package extract

import (
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// auxModalities maps modal auxiliaries to the deontic force they carry.
var auxModalities = map[string]model.Modality{
	"must":   model.ModalityObligation,
	"shall":  model.ModalityObligation,
	"should": model.ModalityRecommendation,
	"ought":  model.ModalityRecommendation,
	"may":    model.ModalityPermission,
	"can":    model.ModalityPermission,
}

// hypotheticalAuxes carry epistemic rather than deontic force; they leave
// modality empty and mark the act hypothetical.
var hypotheticalAuxes = map[string]bool{
	"might": true, "could": true, "would": true,
}

// lexicalModalityPatterns extends modality detection beyond auxiliaries.
// Checked against the sentence text preceding the verb occurrence.
var lexicalModalityPatterns = []struct {
	marker   string
	modality model.Modality
}{
	{"is obliged to", model.ModalityObligation},
	{"is bound to", model.ModalityObligation},
	{"has a duty to", model.ModalityObligation},
	{"it is recommended that", model.ModalityRecommendation},
	{"is advised to", model.ModalityRecommendation},
	{"is free to", model.ModalityPermission},
	{"is entitled to", model.ModalityClaim},
	{"has a claim to", model.ModalityClaim},
	{"is empowered to", model.ModalityPower},
	{"is competent to", model.ModalityPower},
	{"is immune from", model.ModalityImmunity},
	{"is exempt from", model.ModalityImmunity},
	{"intends to", model.ModalityIntention},
	{"plans to", model.ModalityIntention},
}

// modalityVerdict is the structured result of modality detection.
type modalityVerdict struct {
	modality     model.Modality
	deonticType  string
	hypothetical bool
}

// detectModality derives the deontic force of a verb occurrence from its
// auxiliaries, the lexical-pattern table, and any consumed control verb.
// Auxiliary force wins over lexical patterns; a control verb contributes its
// modality only when the occurrence has none of its own.
func detectModality(s *model.Sentence, occ VerbOccurrence) modalityVerdict {
	var v modalityVerdict

	for _, aux := range strings.Fields(occ.Aux) {
		if m, ok := auxModalities[aux]; ok {
			v.modality = m
			break
		}
		if hypotheticalAuxes[aux] {
			v.hypothetical = true
		}
	}

	// "have to" reads as obligation, in any surface form
	if v.modality == "" {
		for _, form := range []string{"have to", "has to", "had to"} {
			if strings.Contains(occ.Aux, form) {
				v.modality = model.ModalityObligation
				break
			}
		}
	}

	if v.modality == "" {
		preceding := strings.ToLower(sliceText(s.Text, model.Span{Start: 0, End: occ.Span.Start}))
		for _, pat := range lexicalModalityPatterns {
			if strings.HasSuffix(strings.TrimSpace(preceding), pat.marker) {
				v.modality = pat.modality
				break
			}
		}
	}

	if v.modality == "" && occ.Control != nil {
		v.modality = occ.Control.Modality
	}

	if v.modality != "" {
		v.deonticType = string(v.modality)
	}
	return v
}

// resolveActuality computes the single actuality status of an act.
// Precedence, lowest to highest: modality-derived default, tense, sentence
// type overrides, then negation, which always wins.
func resolveActuality(v modalityVerdict, occ VerbOccurrence, kind sentenceKind) model.Actuality {
	status := model.FromModality(v.modality)

	if v.modality == "" {
		switch {
		case v.hypothetical:
			status = model.ActualityHypothetical
		case occ.Tense == model.TenseFuture:
			status = model.ActualityPlanned
		case occ.Complement:
			status = model.ActualityPrescribed
		}
	}

	if kind == sentenceInterrogative {
		status = model.ActualityInterrogative
	}
	if kind == sentenceImperative && v.modality == "" {
		status = model.ActualityPrescribed
	}
	if occ.Negated {
		status = model.ActualityNegated
	}
	return status
}
