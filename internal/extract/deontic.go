package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// deonticPattern matches a sentence-level deontic construction independently
// of verb tokenization. Each match yields one act directly.
type deonticPattern struct {
	name     string
	re       *regexp.Regexp
	modality model.Modality
	// verb is the act infinitive when the pattern has no capture group.
	verb string
}

var deonticPatterns = []deonticPattern{
	{
		name:     "shall-not",
		re:       regexp.MustCompile(`(?i)\bshall\s+not\s+([a-z]+)`),
		modality: model.ModalityProhibition,
	},
	{
		name:     "must-not",
		re:       regexp.MustCompile(`(?i)\bmust\s+not\s+([a-z]+)`),
		modality: model.ModalityProhibition,
	},
	{
		name:     "may-not",
		re:       regexp.MustCompile(`(?i)\bmay\s+not\s+([a-z]+)`),
		modality: model.ModalityProhibition,
	},
	{
		name:     "is-entitled-to",
		re:       regexp.MustCompile(`(?i)\bis\s+entitled\s+to(?:\s+([a-z]+))?`),
		modality: model.ModalityClaim,
		verb:     "entitle",
	},
	{
		name:     "has-the-right-to",
		re:       regexp.MustCompile(`(?i)\bha(?:s|ve)\s+the\s+right\s+to(?:\s+([a-z]+))?`),
		modality: model.ModalityClaim,
		verb:     "entitle",
	},
	{
		name:     "delegates-authority",
		re:       regexp.MustCompile(`(?i)\bdelegates?\s+(?:the\s+)?authority\b`),
		modality: model.ModalityPower,
		verb:     "delegate",
	},
	{
		name:     "has-the-power-to",
		re:       regexp.MustCompile(`(?i)\bha(?:s|ve)\s+the\s+(?:power|authority)\s+to\s+([a-z]+)`),
		modality: model.ModalityPower,
	},
	{
		name:     "is-authorized-to",
		re:       regexp.MustCompile(`(?i)\bis\s+authori[sz]ed\s+to\s+([a-z]+)`),
		modality: model.ModalityPower,
	},
	{
		name:     "is-immune-from",
		re:       regexp.MustCompile(`(?i)\bis\s+(?:immune|exempt)\s+from\b`),
		modality: model.ModalityImmunity,
		verb:     "exempt",
	},
	{
		name:     "is-prohibited-from",
		re:       regexp.MustCompile(`(?i)\bis\s+(?:prohibited|forbidden|banned)\s+from(?:\s+([a-z]+))?`),
		modality: model.ModalityProhibition,
	},
	{
		name:     "is-required-to",
		re:       regexp.MustCompile(`(?i)\bis\s+required\s+to\s+([a-z]+)`),
		modality: model.ModalityObligation,
	},
	{
		name:     "is-permitted-to",
		re:       regexp.MustCompile(`(?i)\bis\s+(?:permitted|allowed)\s+to\s+([a-z]+)`),
		modality: model.ModalityPermission,
	},
}

// deonticMatch is one matched pattern with its span and act infinitive.
type deonticMatch struct {
	pattern deonticPattern
	span    model.Span
	verb    string
}

// matchDeonticPatterns scans the sentence text for deontic constructions.
// Matched spans are excluded from the per-verb pipeline so the same
// construction never yields two acts.
func matchDeonticPatterns(text string) []deonticMatch {
	var matches []deonticMatch
	for _, pat := range deonticPatterns {
		for _, loc := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			m := deonticMatch{
				pattern: pat,
				span:    model.Span{Start: loc[0], End: loc[1]},
			}
			if len(loc) >= 4 && loc[2] >= 0 {
				// optional captures can grab a noun ("entitled to treatment");
				// only trust those when the word actually looks like a verb
				cand := Infinitive(text[loc[2]:loc[3]])
				if pat.verb == "" || isKnownVerb(cand) || LooksLikeVerb(cand) {
					m.verb = cand
				}
			}
			if m.verb == "" {
				m.verb = pat.verb
			}
			if m.verb == "" {
				m.verb = strings.ToLower(string(pat.modality))
			}
			matches = append(matches, m)
		}
	}
	return matches
}
