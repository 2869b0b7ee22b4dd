// Package pipeline wires the analysis stages together: ingest, extraction,
// role derivation, genericity classification and lattice assembly, with
// optional caching and an optional LLM gloss on top.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/semograph/internal/cache"
	"github.com/ppiankov/semograph/internal/extract"
	"github.com/ppiankov/semograph/internal/genericity"
	"github.com/ppiankov/semograph/internal/ingest"
	"github.com/ppiankov/semograph/internal/lattice"
	"github.com/ppiankov/semograph/internal/llm"
	"github.com/ppiankov/semograph/internal/model"
	"github.com/ppiankov/semograph/internal/roles"
)

// Pipeline orchestrates the complete analysis of one document.
type Pipeline struct {
	extractor  *extract.Extractor
	generic    *genericity.Classifier
	store      cache.Cache     // nil when caching is disabled
	summarizer *llm.Summarizer // nil or disabled unless configured
	renderer   *Renderer
	config     *model.Config
}

// New creates a pipeline from the resolved configuration.
func New(cfg *model.Config) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		extractor:  extract.New(extract.Options{Overrides: cfg.Analysis.Overrides}),
		generic:    genericity.NewClassifier(cfg.Analysis.Register),
		store:      store,
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}
}

// Analyze runs the full analysis over an already-loaded document.
func (p *Pipeline) Analyze(ctx context.Context, doc *model.Document) (*lattice.Lattice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := p.extractor.Document(doc)

	gen := make(map[string]model.GenericityRecord)
	for i := range doc.Sentences {
		for head, rec := range p.generic.Classify(&doc.Sentences[i]) {
			gen[head] = rec
		}
	}
	if len(gen) == 0 {
		gen = nil
	}

	idx := roles.IndexDocument(doc, res.Implicit)
	graph := &model.Graph{
		DocumentID:       doc.ID,
		Acts:             res.Acts,
		Assertions:       res.Assertions,
		Inferences:       res.Inferences,
		Roles:            roles.Derive(res.Acts, idx),
		Genericity:       gen,
		ImplicitEntities: res.Implicit,
	}

	l := lattice.New(graph)
	l.Add(res.Ambiguities, res.Alternatives)
	l.AddGenericity(gen)
	if !p.config.Analysis.PreserveAmbiguity {
		l.Resolve()
	}
	return l, nil
}

// AnalyzeFile loads, analyzes and caches one document file. The cache key
// covers the file content and the analysis settings, so edits and
// configuration changes both invalidate cleanly.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*lattice.Lattice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	key := cache.Key(docID, data, p.settingsFingerprint())
	if p.store != nil {
		if raw, found := p.store.Get(key); found {
			var cached lattice.Lattice
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			// corrupt entry: fall through and recompute
			_ = p.store.Delete(key)
		}
	}

	doc, err := ingest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.ID == "" {
		doc.ID = docID
	}

	l, err := p.Analyze(ctx, doc)
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		if raw, err := json.Marshal(l); err == nil {
			_ = p.store.Set(key, raw, 0)
		}
	}
	return l, nil
}

// Gloss generates the optional LLM gloss, or nil when no provider is
// configured.
func (p *Pipeline) Gloss(ctx context.Context, l *lattice.Lattice) (*llm.GlossResponse, error) {
	if !p.summarizer.IsEnabled() {
		return nil, nil
	}
	return p.summarizer.GenerateGloss(ctx, l)
}

// settingsFingerprint folds every analysis-affecting setting into the cache
// key. Map rendering is sorted by key, keeping the fingerprint stable.
func (p *Pipeline) settingsFingerprint() string {
	return fmt.Sprintf("register=%s|preserve=%t|overrides=%v",
		p.config.Analysis.Register,
		p.config.Analysis.PreserveAmbiguity,
		p.config.Analysis.Overrides)
}

// Render writes the requested outputs for one analyzed document.
func (p *Pipeline) Render(l *lattice.Lattice, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(l, jsonPath, p.config.Analysis.PreserveAmbiguity); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(l, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(l)
	return nil
}

// RenderGloss writes the LLM gloss next to the markdown output.
func (p *Pipeline) RenderGloss(resp *llm.GlossResponse, mdPath string, verbose bool) error {
	if resp == nil || mdPath == "" {
		return nil
	}
	glossPath := strings.TrimSuffix(mdPath, ".md") + ".gloss.md"
	if err := os.WriteFile(glossPath, []byte(llm.RenderGlossMarkdown(resp)), 0644); err != nil {
		return fmt.Errorf("write gloss: %w", err)
	}
	if verbose {
		fmt.Printf("✓ Wrote Gloss: %s\n", glossPath)
	}
	return nil
}
