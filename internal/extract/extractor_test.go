package extract

import (
	"strings"
	"testing"

	"github.com/ppiankov/semograph/internal/model"
)

// toks builds a token list from "word/POS" specs, computing offsets by
// progressive search so repeated words land on the right occurrence.
func toks(text string, specs ...string) []model.Token {
	out := make([]model.Token, 0, len(specs))
	cursor := 0
	for i, spec := range specs {
		parts := strings.SplitN(spec, "/", 2)
		word, pos := parts[0], parts[1]
		at := strings.Index(text[cursor:], word)
		if at < 0 {
			panic("token not in text: " + word)
		}
		start := cursor + at
		out = append(out, model.Token{Index: i, Text: word, POS: pos, Head: -1, Start: start})
		cursor = start + len(word)
	}
	return out
}

func findEnt(text, phrase, id string, cat model.OntoCategory) model.Entity {
	at := strings.Index(text, phrase)
	if at < 0 {
		panic("entity not in text: " + phrase)
	}
	return model.Entity{
		ID:       id,
		Text:     phrase,
		Span:     model.Span{Start: at, End: at + len(phrase)},
		Category: cat,
	}
}

func extractOne(t *testing.T, s model.Sentence) *Result {
	t.Helper()
	x := New(Options{})
	res := &Result{}
	x.Sentence(&s, NewContext("doc-test"), res)
	return res
}

func TestObligationAct(t *testing.T) {
	text := "The doctor must treat the patient."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "doctor/NN", "must/MD", "treat/VB", "the/DT", "patient/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "doctor", "e-doctor", model.CategoryPerson),
			findEnt(text, "patient", "e-patient", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Type != "care-act" {
		t.Errorf("type = %q, want care-act", act.Type)
	}
	if act.Modality != model.ModalityObligation {
		t.Errorf("modality = %q, want obligation", act.Modality)
	}
	if act.Actuality != model.ActualityPrescribed {
		t.Errorf("actuality = %q, want Prescribed", act.Actuality)
	}
	if act.Negated {
		t.Error("act should not be negated")
	}
	if act.Agent == nil || act.Agent.EntityID != "e-doctor" {
		t.Errorf("agent = %+v, want e-doctor", act.Agent)
	}
	if act.Patient == nil || act.Patient.EntityID != "e-patient" {
		t.Errorf("patient = %+v, want e-patient", act.Patient)
	}
}

func TestProhibitionPatternIsNotNegation(t *testing.T) {
	text := "The operator must not delete the logs."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "operator/NN", "must/MD", "not/RB",
			"delete/VB", "the/DT", "logs/NNS", "./."),
		Entities: []model.Entity{
			findEnt(text, "operator", "e-op", model.CategoryPerson),
			findEnt(text, "logs", "e-logs", model.CategoryInformation),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Infinitive != "delete" {
		t.Errorf("infinitive = %q, want delete", act.Infinitive)
	}
	if act.Modality != model.ModalityProhibition {
		t.Errorf("modality = %q, want prohibition", act.Modality)
	}
	// the prohibition construction is not sentence negation
	if act.Actuality != model.ActualityProhibited {
		t.Errorf("actuality = %q, want Prohibited", act.Actuality)
	}
	if act.Negated {
		t.Error("prohibited act must not carry the negation flag")
	}
	if act.Agent == nil || act.Agent.EntityID != "e-op" {
		t.Errorf("agent = %+v, want e-op", act.Agent)
	}
}

func TestNegationOverridesActuality(t *testing.T) {
	text := "The admin did not deploy the service."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "admin/NN", "did/VBD", "not/RB",
			"deploy/VB", "the/DT", "service/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "admin", "e-admin", model.CategoryPerson),
			findEnt(text, "service", "e-svc", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if !act.Negated {
		t.Fatal("act should be negated")
	}
	if act.Actuality != model.ActualityNegated {
		t.Errorf("actuality = %q, want Negated", act.Actuality)
	}
	if act.Tense != model.TensePast {
		t.Errorf("tense = %q, want past", act.Tense)
	}
	// service is an artifact: affected participant, never a patient
	if act.Patient != nil {
		t.Errorf("patient = %+v, want nil", act.Patient)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-svc" {
		t.Errorf("affects = %v, want [e-svc]", act.Affects)
	}
}

func TestErgativeDemotion(t *testing.T) {
	text := "The server rebooted."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "server/NN", "rebooted/VBD", "./."),
		Entities: []model.Entity{
			findEnt(text, "server", "e-server", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Agent != nil {
		t.Errorf("agent = %+v, want nil for ergative subject", act.Agent)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-server" {
		t.Errorf("affects = %v, want [e-server]", act.Affects)
	}

	found := false
	for _, rec := range res.Ambiguities {
		if rec.Source == model.SourceErgative && rec.Outcome == model.AmbiguityResolved && rec.NodeID == act.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("no resolved ergative record in %+v", res.Ambiguities)
	}
}

func TestInferenceRetyping(t *testing.T) {
	text := "The data suggest a correlation."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "data/NNS", "suggest/VBP", "a/DT", "correlation/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "data", "e-data", model.CategoryInformation),
			findEnt(text, "correlation", "e-corr", model.CategoryContinuant),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 0 {
		t.Fatalf("got %d acts, want 0 (inference node instead)", len(res.Acts))
	}
	if len(res.Inferences) != 1 {
		t.Fatalf("got %d inference nodes, want 1", len(res.Inferences))
	}
	n := res.Inferences[0]
	if n.IsAbout != "e-data" {
		t.Errorf("is_about = %q, want e-data", n.IsAbout)
	}
	if n.Target != "e-corr" {
		t.Errorf("target = %q, want e-corr", n.Target)
	}
}

func TestAnimateSubjectKeepsCommunicationAct(t *testing.T) {
	text := "The analyst suggests a fix."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "analyst/NN", "suggests/VBZ", "a/DT", "fix/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "analyst", "e-analyst", model.CategoryPerson),
			findEnt(text, "fix", "e-fix", model.CategoryContinuant),
		},
	}

	res := extractOne(t, s)
	if len(res.Inferences) != 0 {
		t.Fatalf("animate subject must not yield an inference node")
	}
	if len(res.Acts) != 1 || res.Acts[0].Type != "communication-act" {
		t.Fatalf("acts = %+v, want one communication-act", res.Acts)
	}
}

func TestCoordinationExpandsAgents(t *testing.T) {
	text := "Alice and Bob deployed the service."
	alice := findEnt(text, "Alice", "e-alice", model.CategoryPerson)
	alice.IsConjunct = true
	alice.Conjunction = "and"
	bob := findEnt(text, "Bob", "e-bob", model.CategoryPerson)
	bob.IsConjunct = true
	bob.Conjunction = "and"

	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "Alice/NNP", "and/CC", "Bob/NNP", "deployed/VBD",
			"the/DT", "service/NN", "./."),
		Entities: []model.Entity{
			alice, bob,
			findEnt(text, "service", "e-svc", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Agent == nil {
		t.Fatal("no agent")
	}
	agents := map[string]bool{act.Agent.EntityID: true}
	for _, id := range act.CoAgents {
		agents[id] = true
	}
	if !agents["e-alice"] || !agents["e-bob"] || len(agents) != 2 {
		t.Errorf("agent set = %v, want alice+bob", agents)
	}
}

func TestImperativeAddressee(t *testing.T) {
	text := "Deploy the service."
	doc := model.Document{
		ID: "doc-imp",
		Sentences: []model.Sentence{{
			Text:   text,
			Tokens: toks(text, "Deploy/VB", "the/DT", "service/NN", "./."),
			Entities: []model.Entity{
				findEnt(text, "service", "e-svc", model.CategoryArtifact),
			},
		}},
	}

	res := New(Options{}).Document(&doc)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	wantID := model.ImplicitEntityID("addressee", "doc-imp")
	if act.Agent == nil || act.Agent.EntityID != wantID {
		t.Errorf("agent = %+v, want implicit addressee %s", act.Agent, wantID)
	}
	if act.Actuality != model.ActualityPrescribed {
		t.Errorf("actuality = %q, want Prescribed", act.Actuality)
	}
	if len(res.Implicit) != 1 || !res.Implicit[0].Implicit {
		t.Errorf("implicit entities = %+v, want the synthesized addressee", res.Implicit)
	}
}

func TestInterrogativeActuality(t *testing.T) {
	text := "Did the admin deploy the service?"
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "Did/VBD", "the/DT", "admin/NN", "deploy/VB",
			"the/DT", "service/NN", "?/."),
		Entities: []model.Entity{
			findEnt(text, "admin", "e-admin", model.CategoryPerson),
			findEnt(text, "service", "e-svc", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	if res.Acts[0].Actuality != model.ActualityInterrogative {
		t.Errorf("actuality = %q, want Interrogative", res.Acts[0].Actuality)
	}
}

func TestPassiveRoles(t *testing.T) {
	text := "The patient was treated by the doctor."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "patient/NN", "was/VBD", "treated/VBN",
			"by/IN", "the/DT", "doctor/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "patient", "e-patient", model.CategoryPerson),
			findEnt(text, "doctor", "e-doctor", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Type != "care-act" {
		t.Errorf("type = %q, want care-act", act.Type)
	}
	if act.Agent == nil || act.Agent.EntityID != "e-doctor" {
		t.Errorf("agent = %+v, want e-doctor from the by-phrase", act.Agent)
	}
	if act.Patient == nil || act.Patient.EntityID != "e-patient" {
		t.Errorf("patient = %+v, want e-patient", act.Patient)
	}
}

func TestDitransitiveRecipient(t *testing.T) {
	text := "The committee gave the director an award."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "committee/NN", "gave/VBD", "the/DT",
			"director/NN", "an/DT", "award/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "committee", "e-cmte", model.CategoryOrganization),
			findEnt(text, "director", "e-dir", model.CategoryPerson),
			findEnt(text, "award", "e-award", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Type != "transfer-act" {
		t.Errorf("type = %q, want transfer-act", act.Type)
	}
	if act.Agent == nil || act.Agent.EntityID != "e-cmte" {
		t.Errorf("agent = %+v, want e-cmte", act.Agent)
	}
	if act.Recipient == nil || act.Recipient.EntityID != "e-dir" {
		t.Errorf("recipient = %+v, want e-dir", act.Recipient)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-award" {
		t.Errorf("affects = %v, want [e-award]", act.Affects)
	}
}

func TestReceiveClassSubjectIsRecipient(t *testing.T) {
	text := "The clerk received a letter."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "clerk/NN", "received/VBD", "a/DT", "letter/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "clerk", "e-clerk", model.CategoryPerson),
			findEnt(text, "letter", "e-letter", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Agent != nil {
		t.Errorf("agent = %+v, want nil", act.Agent)
	}
	if act.Recipient == nil || act.Recipient.EntityID != "e-clerk" {
		t.Errorf("recipient = %+v, want e-clerk", act.Recipient)
	}
}

func TestStativeDefiniteAssertion(t *testing.T) {
	text := "France contains Paris."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "France/NNP", "contains/VBZ", "Paris/NNP", "./."),
		Entities: []model.Entity{
			findEnt(text, "France", "e-fr", model.CategoryContinuant),
			findEnt(text, "Paris", "e-paris", model.CategoryContinuant),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 0 {
		t.Fatalf("got %d acts, want 0 (structural assertion instead)", len(res.Acts))
	}
	if len(res.Assertions) != 1 {
		t.Fatalf("got %d assertions, want 1", len(res.Assertions))
	}
	a := res.Assertions[0]
	if a.Relation != "contains" || a.Inverse != "is-contained-in" {
		t.Errorf("relation = %q/%q, want contains/is-contained-in", a.Relation, a.Inverse)
	}
	if a.Subject != "e-fr" || a.Object != "e-paris" {
		t.Errorf("subject/object = %q/%q, want e-fr/e-paris", a.Subject, a.Object)
	}
}

func TestStativeAmbiguousResolvedStructural(t *testing.T) {
	text := "The ministry represents the nation."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "ministry/NN", "represents/VBZ",
			"the/DT", "nation/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "ministry", "e-min", model.CategoryOrganization),
			findEnt(text, "nation", "e-nation", model.CategoryContinuant),
		},
	}

	res := extractOne(t, s)
	if len(res.Assertions) != 1 {
		t.Fatalf("got %d assertions, want 1", len(res.Assertions))
	}
	if res.Assertions[0].Relation != "represents" {
		t.Errorf("relation = %q, want represents", res.Assertions[0].Relation)
	}
	if len(res.Ambiguities) == 0 || res.Ambiguities[0].Outcome != model.AmbiguityResolved {
		t.Errorf("ambiguities = %+v, want one resolved stative-eventive record", res.Ambiguities)
	}
	if len(res.Alternatives) != 1 || res.Alternatives[0].Source != model.SourceStativeEventive {
		t.Errorf("alternatives = %+v, want the eventive alternative", res.Alternatives)
	}
}

func TestStativeAmbiguousResolvedEventive(t *testing.T) {
	text := "The lawyer represents the client."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "lawyer/NN", "represents/VBZ",
			"the/DT", "client/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "lawyer", "e-law", model.CategoryPerson),
			findEnt(text, "client", "e-cli", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Assertions) != 0 {
		t.Fatalf("got %d assertions, want 0", len(res.Assertions))
	}
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	if len(res.Alternatives) != 1 {
		t.Fatalf("alternatives = %+v, want the structural alternative", res.Alternatives)
	}
	if rel, ok := res.Alternatives[0].Patch["relation"]; !ok || rel != "represents" {
		t.Errorf("alternative patch = %+v, want relation represents", res.Alternatives[0].Patch)
	}
}

func TestHaveToObligation(t *testing.T) {
	text := "The admin has to restart the server."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "admin/NN", "has/VBZ", "to/TO",
			"restart/VB", "the/DT", "server/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "admin", "e-admin", model.CategoryPerson),
			findEnt(text, "server", "e-server", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1: %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Infinitive != "restart" {
		t.Errorf("infinitive = %q, want restart", act.Infinitive)
	}
	if act.Modality != model.ModalityObligation {
		t.Errorf("modality = %q, want obligation", act.Modality)
	}
	if act.Actuality != model.ActualityPrescribed {
		t.Errorf("actuality = %q, want Prescribed", act.Actuality)
	}
}

func TestEntitlementPattern(t *testing.T) {
	text := "The patient is entitled to treatment."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "patient/NN", "is/VBZ", "entitled/VBN",
			"to/TO", "treatment/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "patient", "e-patient", model.CategoryPerson),
			findEnt(text, "treatment", "e-tx", model.CategoryOccurrent),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1: %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Modality != model.ModalityClaim {
		t.Errorf("modality = %q, want claim", act.Modality)
	}
	if act.Actuality != model.ActualityEntitled {
		t.Errorf("actuality = %q, want Entitled", act.Actuality)
	}
}

func TestExtractionIsDeterministic(t *testing.T) {
	text := "The doctor must treat the patient."
	doc := model.Document{
		ID: "doc-det",
		Sentences: []model.Sentence{{
			Text:   text,
			Tokens: toks(text, "The/DT", "doctor/NN", "must/MD", "treat/VB", "the/DT", "patient/NN", "./."),
			Entities: []model.Entity{
				findEnt(text, "doctor", "e-doctor", model.CategoryPerson),
				findEnt(text, "patient", "e-patient", model.CategoryPerson),
			},
		}},
	}

	x := New(Options{})
	first := x.Document(&doc)
	second := x.Document(&doc)
	if len(first.Acts) != len(second.Acts) {
		t.Fatalf("act counts differ: %d vs %d", len(first.Acts), len(second.Acts))
	}
	for i := range first.Acts {
		if first.Acts[i].ID != second.Acts[i].ID {
			t.Errorf("act %d ID changed between runs: %s vs %s", i, first.Acts[i].ID, second.Acts[i].ID)
		}
	}
}

func TestObjectNounHomographNotPromoted(t *testing.T) {
	text := "The admin deployed the patch."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "admin/NN", "deployed/VBD", "the/DT", "patch/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "admin", "e-admin", model.CategoryPerson),
			findEnt(text, "patch", "e-patch", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1: %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Infinitive != "deploy" {
		t.Errorf("infinitive = %q, want deploy", act.Infinitive)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-patch" {
		t.Errorf("affects = %v, want [e-patch]", act.Affects)
	}
}

func TestMorphologicalFallbackRecoversVerblessClause(t *testing.T) {
	text := "Engineers patch the servers."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "Engineers/NNS", "patch/NN", "the/DT", "servers/NNS", "./."),
		Entities: []model.Entity{
			findEnt(text, "Engineers", "e-eng", model.CategoryGroupOfPersons),
			findEnt(text, "servers", "e-srv", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1: %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Infinitive != "patch" {
		t.Errorf("infinitive = %q, want patch", act.Infinitive)
	}
	if act.Agent == nil || act.Agent.EntityID != "e-eng" {
		t.Errorf("agent = %+v, want e-eng", act.Agent)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-srv" {
		t.Errorf("affects = %v, want [e-srv]", act.Affects)
	}
}

func TestControlVerbPairing(t *testing.T) {
	text := "The ministry wants to deploy the service."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "ministry/NN", "wants/VBZ", "to/TO",
			"deploy/VB", "the/DT", "service/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "ministry", "e-min", model.CategoryOrganization),
			findEnt(text, "service", "e-svc", model.CategoryArtifact),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1 (control verb consumed): %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Infinitive != "deploy" {
		t.Errorf("infinitive = %q, want deploy", act.Infinitive)
	}
	if act.Modality != model.ModalityIntention {
		t.Errorf("modality = %q, want intention from the control verb", act.Modality)
	}
	if act.Actuality != model.ActualityPlanned {
		t.Errorf("actuality = %q, want Planned", act.Actuality)
	}
	if act.Agent == nil || act.Agent.EntityID != "e-min" {
		t.Errorf("agent = %+v, want e-min", act.Agent)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-svc" {
		t.Errorf("affects = %v, want [e-svc]", act.Affects)
	}
}

func TestReflexivePatientBinding(t *testing.T) {
	text := "The director defended himself."
	s := model.Sentence{
		Text:   text,
		Tokens: toks(text, "The/DT", "director/NN", "defended/VBD", "himself/PRP", "./."),
		Entities: []model.Entity{
			findEnt(text, "director", "e-dir", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Agent == nil || act.Agent.EntityID != "e-dir" {
		t.Errorf("agent = %+v, want e-dir", act.Agent)
	}
	if act.Patient == nil || act.Patient.EntityID != "e-dir" {
		t.Errorf("patient = %+v, want the reflexive subject e-dir", act.Patient)
	}
}

func TestReducedRelativeAttachment(t *testing.T) {
	text := "The patch the vendor shipped alarmed the director."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "patch/NN", "the/DT", "vendor/NN",
			"shipped/VBN", "alarmed/VBD", "the/DT", "director/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "patch", "e-patch", model.CategoryArtifact),
			findEnt(text, "vendor", "e-vendor", model.CategoryOrganization),
			findEnt(text, "director", "e-dir", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 2 {
		t.Fatalf("got %d acts, want 2: %+v", len(res.Acts), res.Acts)
	}

	var ship, alarm *model.Act
	for i := range res.Acts {
		switch res.Acts[i].Infinitive {
		case "ship":
			ship = &res.Acts[i]
		case "alarm":
			alarm = &res.Acts[i]
		}
	}
	if ship == nil || alarm == nil {
		t.Fatalf("missing expected acts: %+v", res.Acts)
	}

	// the relative-clause verb keeps its nearest preceding subject
	if ship.Agent == nil || ship.Agent.EntityID != "e-vendor" {
		t.Errorf("relative-clause agent = %+v, want e-vendor", ship.Agent)
	}
	// the matrix verb skips the clause-internal entity for the farthest one
	if alarm.Agent == nil || alarm.Agent.EntityID != "e-patch" {
		t.Errorf("matrix agent = %+v, want e-patch", alarm.Agent)
	}
	if alarm.Patient == nil || alarm.Patient.EntityID != "e-dir" {
		t.Errorf("matrix patient = %+v, want e-dir", alarm.Patient)
	}

	found := false
	for _, rec := range res.Ambiguities {
		if rec.Source == model.SourceAttachment && rec.NodeID == alarm.ID &&
			rec.Outcome == model.AmbiguityResolved {
			found = true
		}
	}
	if !found {
		t.Errorf("no resolved attachment record for the matrix act: %+v", res.Ambiguities)
	}
}

func TestObliqueRoleLinks(t *testing.T) {
	text := "The admin repaired the server with a wrench for the director."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "admin/NN", "repaired/VBD", "the/DT", "server/NN",
			"with/IN", "a/DT", "wrench/NN", "for/IN", "the/DT", "director/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "admin", "e-admin", model.CategoryPerson),
			findEnt(text, "server", "e-server", model.CategoryArtifact),
			findEnt(text, "wrench", "e-wrench", model.CategoryArtifact),
			findEnt(text, "director", "e-dir", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1: %+v", len(res.Acts), res.Acts)
	}
	act := res.Acts[0]
	if act.Instrument == nil || act.Instrument.EntityID != "e-wrench" {
		t.Errorf("instrument = %+v, want e-wrench", act.Instrument)
	}
	if act.Beneficiary == nil || act.Beneficiary.EntityID != "e-dir" {
		t.Errorf("beneficiary = %+v, want e-dir", act.Beneficiary)
	}
	if len(act.Affects) != 1 || act.Affects[0] != "e-server" {
		t.Errorf("affects = %v, want [e-server]", act.Affects)
	}
	if len(act.Participants) != 4 {
		t.Errorf("participants = %v, want all four entities", act.Participants)
	}
}

func TestToPhraseRecipientVersusDestination(t *testing.T) {
	text := "The ministry reported the incident to the director."
	s := model.Sentence{
		Text: text,
		Tokens: toks(text, "The/DT", "ministry/NN", "reported/VBD", "the/DT",
			"incident/NN", "to/TO", "the/DT", "director/NN", "./."),
		Entities: []model.Entity{
			findEnt(text, "ministry", "e-min", model.CategoryOrganization),
			findEnt(text, "incident", "e-inc", model.CategoryOccurrent),
			findEnt(text, "director", "e-dir", model.CategoryPerson),
		},
	}

	res := extractOne(t, s)
	if len(res.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res.Acts))
	}
	act := res.Acts[0]
	if act.Type != "communication-act" {
		t.Errorf("type = %q, want communication-act", act.Type)
	}
	// a communication verb turns the to-phrase into a recipient
	if act.Recipient == nil || act.Recipient.EntityID != "e-dir" {
		t.Errorf("recipient = %+v, want e-dir", act.Recipient)
	}
	if act.Destination != nil {
		t.Errorf("destination = %+v, want nil", act.Destination)
	}

	text2 := "The admin moved the boxes to the warehouse."
	s2 := model.Sentence{
		Text: text2,
		Tokens: toks(text2, "The/DT", "admin/NN", "moved/VBD", "the/DT",
			"boxes/NNS", "to/TO", "the/DT", "warehouse/NN", "./."),
		Entities: []model.Entity{
			findEnt(text2, "admin", "e-admin", model.CategoryPerson),
			findEnt(text2, "boxes", "e-boxes", model.CategoryArtifact),
			findEnt(text2, "warehouse", "e-wh", model.CategoryContinuant),
		},
	}

	res2 := extractOne(t, s2)
	if len(res2.Acts) != 1 {
		t.Fatalf("got %d acts, want 1", len(res2.Acts))
	}
	act2 := res2.Acts[0]
	if act2.Destination == nil || act2.Destination.EntityID != "e-wh" {
		t.Errorf("destination = %+v, want e-wh", act2.Destination)
	}
	if act2.Recipient != nil {
		t.Errorf("recipient = %+v, want nil for a motion verb", act2.Recipient)
	}
}
