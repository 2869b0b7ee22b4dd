package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/semograph/internal/lattice"
)

// Summarizer wraps a configured provider behind a stable front. A nil or
// unconfigured summarizer is simply disabled; analysis never depends on it.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer builds a summarizer for the configured provider.
func NewSummarizer(cfg Config) (*Summarizer, error) {
	switch cfg.Provider {
	case "":
		return &Summarizer{config: cfg}, nil
	case "openai":
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &Summarizer{provider: p, config: cfg}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateGloss produces the lattice gloss with the node-ID allowlist
// derived from the default reading.
func (s *Summarizer) GenerateGloss(ctx context.Context, l *lattice.Lattice) (*GlossResponse, error) {
	if !s.IsEnabled() {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	return s.provider.Gloss(ctx, GlossRequest{
		Lattice:        l,
		AllowedNodeIDs: AllowedNodeIDs(l),
		Model:          s.config.Model,
		MaxTokens:      s.config.MaxTokens,
	})
}

// RenderGlossMarkdown formats a gloss for a standalone markdown file.
func RenderGlossMarkdown(resp *GlossResponse) string {
	var b strings.Builder
	b.WriteString("# Analysis Gloss\n\n")
	b.WriteString(resp.Gloss)
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "Generated by %s", resp.Model)
	if resp.TokensUsed > 0 {
		fmt.Fprintf(&b, " (%d tokens)", resp.TokensUsed)
	}
	b.WriteString(". Advisory only; the graph above is authoritative.\n")
	return b.String()
}
