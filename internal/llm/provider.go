// Package llm generates an optional natural-language gloss of a document's
// interpretation lattice. The gloss is advisory prose for reviewers; it is
// produced after analysis and never feeds back into the graph.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/semograph/internal/lattice"
	"github.com/ppiankov/semograph/internal/model"
)

// Provider defines the interface for gloss backends.
type Provider interface {
	Name() string

	// Gloss explains the lattice's ambiguities in plain language. Node
	// references outside the request allowlist are rejected.
	Gloss(ctx context.Context, req GlossRequest) (*GlossResponse, error)

	// IsAvailable checks whether the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// GlossRequest is the input for gloss generation.
type GlossRequest struct {
	Lattice *lattice.Lattice

	// AllowedNodeIDs is the strict allowlist of node IDs the model may
	// reference. Any other "act-"/"assertion-"/"inference-" reference in the
	// output fails the request rather than passing invented nodes to readers.
	AllowedNodeIDs []string

	Prompt    string // optional custom prompt
	Model     string
	MaxTokens int
}

// GlossResponse is the generated gloss plus verification metadata.
type GlossResponse struct {
	Gloss         string
	ReferencedIDs []string // node IDs the model actually referenced
	Model         string
	TokensUsed    int
}

// Config holds provider configuration.
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel adapts the runtime configuration section.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// AllowedNodeIDs collects every node ID present in the lattice's default
// reading, forming the reference allowlist.
func AllowedNodeIDs(l *lattice.Lattice) []string {
	var ids []string
	for _, act := range l.Default.Acts {
		ids = append(ids, act.ID)
	}
	for _, a := range l.Default.Assertions {
		ids = append(ids, a.ID)
	}
	for _, n := range l.Default.Inferences {
		ids = append(ids, n.ID)
	}
	return ids
}

// BuildPrompt constructs the default gloss prompt from the audit trail.
func BuildPrompt(l *lattice.Lattice, allowed []string) string {
	trail := l.AuditTrail()

	var b strings.Builder
	fmt.Fprintf(&b, `You are explaining the output of a semantic-graph analyzer. It records every
ambiguous reading it encountered; your job is to gloss those decisions for a
human reviewer.

RULES:
1. You may ONLY reference node IDs from this list:
%s
2. Do not invent readings, nodes or sentences not described below.
3. Describe what was ambiguous and how it was handled. Never assert which
   reading is "correct".

Analysis summary:
- Acts: %d, structural assertions: %d, inference nodes: %d
- Ambiguities preserved: %d, resolved: %d, flagged: %d
`, joinIDs(allowed), len(l.Default.Acts), len(l.Default.Assertions), len(l.Default.Inferences),
		len(trail.Preserved), len(trail.Resolved), len(trail.Flagged))

	b.WriteString("\nAudit entries:\n")
	wrote := 0
	for _, rec := range l.Audit {
		if wrote >= 15 {
			fmt.Fprintf(&b, "... and %d more entries\n", len(l.Audit)-wrote)
			break
		}
		fmt.Fprintf(&b, "- [%s/%s] %s: %s\n", rec.Source, rec.Outcome, rec.NodeID, rec.Description)
		wrote++
	}

	b.WriteString("\nProvide a 3-5 sentence gloss of the preserved and flagged ambiguities.")
	return b.String()
}

func joinIDs(ids []string) string {
	if len(ids) == 0 {
		return "(no nodes)"
	}
	var b strings.Builder
	for i, id := range ids {
		if i >= 40 {
			fmt.Fprintf(&b, "\n... and %d more node IDs", len(ids)-40)
			break
		}
		fmt.Fprintf(&b, "\n- %s", id)
	}
	return b.String()
}
