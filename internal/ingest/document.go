// Package ingest loads analyzed documents and prepares raw corpora. The
// analyzer proper never parses text: it consumes documents whose sentences
// already carry tokens, dependency labels and resolved entities.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/semograph/internal/model"
)

// Load reads an analyzed document from a JSON file. A missing document ID
// defaults to the file name without its extension.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.ID == "" {
		base := filepath.Base(path)
		doc.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// Parse decodes and validates one analyzed document.
func Parse(data []byte) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// validate checks span integrity and entity ID uniqueness, and fills in the
// default ontological category for untagged entities.
func validate(doc *model.Document) error {
	seen := make(map[string]bool)
	for si := range doc.Sentences {
		s := &doc.Sentences[si]
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("sentence %d: empty text", si)
		}

		for ti, tok := range s.Tokens {
			sp := tok.Span()
			if sp.Start < 0 || sp.End > len(s.Text) {
				return fmt.Errorf("sentence %d token %d: span [%d,%d) outside text", si, ti, sp.Start, sp.End)
			}
			if got := s.Text[sp.Start:sp.End]; got != tok.Text {
				return fmt.Errorf("sentence %d token %d: offset mismatch, text has %q", si, ti, got)
			}
		}

		for ei := range s.Entities {
			e := &s.Entities[ei]
			if e.ID == "" {
				return fmt.Errorf("sentence %d: entity %q has no ID", si, e.Text)
			}
			if seen[e.ID] {
				return fmt.Errorf("duplicate entity ID %s", e.ID)
			}
			seen[e.ID] = true
			if e.Span.Start < 0 || e.Span.End > len(s.Text) || e.Span.Start >= e.Span.End {
				return fmt.Errorf("entity %s: invalid span [%d,%d)", e.ID, e.Span.Start, e.Span.End)
			}
			if e.Category == "" {
				e.Category = model.CategoryContinuant
			}
		}
	}
	return nil
}
