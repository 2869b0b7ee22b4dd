package mode

import (
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// Category is the stative/eventive verdict for a verb occurrence.
type Category string

const (
	// StativeDefinite verbs always denote a structural relation.
	StativeDefinite Category = "stative-definite"
	// StativeAmbiguous verbs need cue-based disambiguation.
	StativeAmbiguous Category = "stative-ambiguous"
	// Eventive verbs denote processes and go through full act extraction.
	Eventive Category = "eventive"
)

// Verdict is the classifier output: the category plus, for stative readings,
// the structural relation it maps to.
type Verdict struct {
	Category Category
	Relation string
	Inverse  string
}

// Context carries the token immediately following the verb, needed to split
// possessive "have" from modal "have to".
type Context struct {
	FollowedBy string
}

// Cues are the ontological signals used to disambiguate stative-ambiguous
// verbs: categories of subject and object plus the object's surface label.
type Cues struct {
	SubjectType model.OntoCategory
	ObjectType  model.OntoCategory
	ObjectLabel string
}

type relationPair struct {
	relation string
	inverse  string
}

// stativeDefinite maps containment/composition/possession/location verbs to
// the structural relation they assert. These never yield acts.
var stativeDefinite = map[string]relationPair{
	"contain":    {"contains", "is-contained-in"},
	"comprise":   {"comprises", "is-part-of"},
	"include":    {"includes", "is-included-in"},
	"consist":    {"consists-of", "is-part-of"},
	"constitute": {"constitutes", "is-constituted-by"},
	"possess":    {"possesses", "is-possessed-by"},
	"own":        {"owns", "is-owned-by"},
	"belong":     {"belongs-to", "owns"},
	"border":     {"borders", "borders"},
	"adjoin":     {"adjoins", "adjoins"},
	"surround":   {"surrounds", "is-surrounded-by"},
	"overlap":    {"overlaps", "overlaps"},
}

// nationIndicators mark labels of political/institutional referents for the
// "represent" disambiguation.
var nationIndicators = []string{
	"nation", "state", "country", "republic", "union", "council",
	"ministry", "agency", "government", "committee", "organization",
}

type stativeRule struct {
	relation string
	inverse  string
	// stative reports whether the cues support the stative reading.
	// Unmatched cues fall through to eventive.
	stative func(Cues) bool
}

// stativeAmbiguous lists verbs with both a structural and a process sense,
// each with its disambiguation rule.
var stativeAmbiguous = map[string]stativeRule{
	"represent": {
		relation: "represents",
		inverse:  "is-represented-by",
		stative: func(c Cues) bool {
			if c.SubjectType == model.CategoryOrganization {
				return true
			}
			return containsAny(c.ObjectLabel, nationIndicators)
		},
	},
	"support": {
		relation: "supports",
		inverse:  "is-supported-by",
		stative: func(c Cues) bool {
			return c.ObjectType == model.CategoryArtifact ||
				c.ObjectType == model.CategoryInformation
		},
	},
	"cover": {
		relation: "covers",
		inverse:  "is-covered-by",
		stative: func(c Cues) bool {
			return c.ObjectType == model.CategoryContinuant ||
				c.ObjectType == model.CategoryInformation ||
				containsAny(c.ObjectLabel, []string{"area", "region", "territory", "topic", "domain"})
		},
	},
	"serve": {
		relation: "serves",
		inverse:  "is-served-by",
		stative: func(c Cues) bool {
			return c.SubjectType == model.CategoryOrganization &&
				(c.ObjectType == model.CategoryGroupOfPersons || c.ObjectType == model.CategoryOrganization)
		},
	},
	"hold": {
		relation: "holds",
		inverse:  "is-held-by",
		stative: func(c Cues) bool {
			return c.ObjectType == model.CategoryInformation
		},
	},
}

// Classify decides whether a verb denotes a structural relation or a process.
// "have" is dual: stative possessive unless the next token marks the modal
// "have to" reading.
func Classify(infinitive string, ctx Context) Verdict {
	inf := strings.ToLower(infinitive)

	if inf == "have" {
		if strings.EqualFold(ctx.FollowedBy, "to") {
			return Verdict{Category: Eventive}
		}
		return Verdict{Category: StativeDefinite, Relation: "possesses", Inverse: "is-possessed-by"}
	}

	if pair, ok := stativeDefinite[inf]; ok {
		return Verdict{Category: StativeDefinite, Relation: pair.relation, Inverse: pair.inverse}
	}

	if rule, ok := stativeAmbiguous[inf]; ok {
		return Verdict{Category: StativeAmbiguous, Relation: rule.relation, Inverse: rule.inverse}
	}

	return Verdict{Category: Eventive}
}

// DisambiguateStative resolves a stative-ambiguous verb against its cues.
// Only called for verbs Classify marked StativeAmbiguous; anything else, and
// any unmatched condition, defaults to Eventive so no information is lost.
func DisambiguateStative(infinitive string, cues Cues) Category {
	rule, ok := stativeAmbiguous[strings.ToLower(infinitive)]
	if !ok {
		return Eventive
	}
	if rule.stative(cues) {
		return StativeDefinite
	}
	return Eventive
}

// IsStativePredicate reports whether a verb belongs to the stative taxonomy
// at all (either table, or copular/mental statives). Used by the genericity
// classifier's predicate signal.
func IsStativePredicate(infinitive string) bool {
	inf := strings.ToLower(infinitive)
	if _, ok := stativeDefinite[inf]; ok {
		return true
	}
	if _, ok := stativeAmbiguous[inf]; ok {
		return true
	}
	switch inf {
	case "be", "have", "know", "mean", "resemble", "lack", "depend", "weigh", "cost":
		return true
	}
	return false
}

func containsAny(label string, keywords []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
