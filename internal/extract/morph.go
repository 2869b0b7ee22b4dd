package extract

import "strings"

// irregularForms maps inflected irregular verb forms to their infinitive.
var irregularForms = map[string]string{
	"is": "be", "are": "be", "am": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"went": "go", "gone": "go",
	"took": "take", "taken": "take",
	"gave": "give", "given": "give",
	"made": "make",
	"ran": "run",
	"said": "say",
	"told": "tell",
	"sent": "send",
	"built": "build",
	"found": "find",
	"got": "get", "gotten": "get",
	"held": "hold",
	"kept": "keep",
	"left": "leave",
	"met": "meet",
	"paid": "pay",
	"saw": "see", "seen": "see",
	"sold": "sell",
	"shown": "show", "showed": "show",
	"spoke": "speak", "spoken": "speak",
	"stood": "stand",
	"thought": "think",
	"understood": "understand",
	"wrote": "write", "written": "write",
	"broke": "break", "broken": "break",
	"chose": "choose", "chosen": "choose",
	"drove": "drive", "driven": "drive",
	"knew": "know", "known": "know",
	"grew": "grow", "grown": "grow",
	"came": "come", "became": "become",
	"began": "begin", "begun": "begin",
	"brought": "bring",
	"bought": "buy",
	"caught": "catch",
	"taught": "teach",
	"felt": "feel",
	"fell": "fall", "fallen": "fall",
	"lost": "lose",
	"meant": "mean",
	"led": "lead",
	"won": "win",
}

// Infinitive reduces an inflected verb form to its infinitive: irregular
// lookup first, then suffix stripping with doubled-consonant collapse and
// silent-e restoration against the known-verb tables.
func Infinitive(word string) string {
	lower := strings.ToLower(word)
	if inf, ok := irregularForms[lower]; ok {
		return inf
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "ied") && len(lower) > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "xes"), strings.HasSuffix(lower, "zes"):
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return restoreStem(lower[:len(lower)-3])
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return restoreStem(lower[:len(lower)-2])
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 2:
		return lower[:len(lower)-1]
	}
	return lower
}

// restoreStem repairs a stem after suffix removal: "plann" -> "plan",
// "giv" -> "give" (when the e-restored form is a known verb).
func restoreStem(stem string) string {
	if isKnownVerb(stem) {
		return stem
	}
	// doubled final consonant: planned -> plann -> plan
	if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] && !isVowel(stem[len(stem)-1]) {
		return stem[:len(stem)-1]
	}
	// silent e: giv -> give, creat -> create
	if isKnownVerb(stem + "e") {
		return stem + "e"
	}
	return stem
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// verbSuffixes mark words the tokenizer may have missed as likely verbs.
var verbSuffixes = []string{"ize", "ise", "ify", "ate"}

// notVerbs lists -ate/-ize lookalikes that are nouns or adjectives; the
// morphological fallback must never promote these.
var notVerbs = map[string]bool{
	"climate": true, "private": true, "senate": true, "estate": true,
	"mandate": true, "candidate": true, "certificate": true, "chocolate": true,
	"appropriate": true, "separate": true, "delegate": true, "adequate": true,
	"immediate": true, "ultimate": true, "intermediate": true, "corporate": true,
	"accurate": true, "state": true, "gate": true, "rate": true, "date": true,
	"enterprise": true, "exercise": true, "size": true, "prize": true,
}

// LooksLikeVerb is the morphological fallback for tokenizer misses: suffix
// heuristics plus the exception list. It recognizes inflected forms of verbs
// from the built-in tables as well.
func LooksLikeVerb(word string) bool {
	lower := strings.ToLower(word)
	if notVerbs[lower] {
		return false
	}
	if isKnownVerb(Infinitive(lower)) {
		return true
	}
	for _, suf := range verbSuffixes {
		if strings.HasSuffix(lower, suf) && len(lower) > len(suf)+2 {
			return true
		}
	}
	return false
}
