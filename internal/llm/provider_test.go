package llm

import (
	"strings"
	"testing"

	"github.com/ppiankov/semograph/internal/lattice"
	"github.com/ppiankov/semograph/internal/model"
)

func testLattice() *lattice.Lattice {
	l := lattice.New(&model.Graph{
		DocumentID: "doc-1",
		Acts:       []model.Act{{ID: "act-aaaaaaaa-0000-0000-0000-000000000000"}},
		Assertions: []model.StructuralAssertion{{ID: "assertion-bbbbbbbb-0000-0000-0000-000000000000"}},
	})
	l.Add([]model.AmbiguityRecord{{
		NodeID:      "act-aaaaaaaa-0000-0000-0000-000000000000",
		Source:      model.SourceErgative,
		Outcome:     model.AmbiguityResolved,
		Description: "inanimate subject demoted",
	}}, nil)
	return l
}

func TestAllowedNodeIDs(t *testing.T) {
	ids := AllowedNodeIDs(testLattice())
	if len(ids) != 2 {
		t.Fatalf("got %d IDs, want 2", len(ids))
	}
}

func TestBuildPromptListsAuditEntries(t *testing.T) {
	l := testLattice()
	prompt := BuildPrompt(l, AllowedNodeIDs(l))

	if !strings.Contains(prompt, "act-aaaaaaaa-0000-0000-0000-000000000000") {
		t.Error("prompt should list the allowed node IDs")
	}
	if !strings.Contains(prompt, "inanimate subject demoted") {
		t.Error("prompt should include the audit entry description")
	}
	if !strings.Contains(prompt, "resolved: 1") {
		t.Error("prompt should count resolved ambiguities")
	}
}

func TestExtractNodeIDs(t *testing.T) {
	text := "Node act-aaaaaaaa-0000-0000-0000-000000000000 was demoted; " +
		"see also act-aaaaaaaa-0000-0000-0000-000000000000 and plain text."
	ids := extractNodeIDs(text)
	if len(ids) != 1 {
		t.Errorf("got %v, want one de-duplicated ID", ids)
	}
}

func TestSummarizerDisabledByDefault(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.IsEnabled() {
		t.Error("empty provider should be disabled")
	}

	if _, err := NewSummarizer(Config{Provider: "mystery"}); err == nil {
		t.Error("unknown provider should error")
	}
	if _, err := NewSummarizer(Config{Provider: "openai"}); err == nil {
		t.Error("openai without API key should error")
	}
}
