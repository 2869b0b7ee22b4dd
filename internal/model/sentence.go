package model

import "strings"

// Span is a half-open character range [Start, End) into the sentence text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether other lies fully inside the span.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Overlaps reports whether the two spans share at least one character.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Token is one word of an analyzed sentence, as emitted by the upstream
// tokenizer/tagger/parser.
type Token struct {
	Index int    `json:"index"`           // position in the sentence, 0-based
	Text  string `json:"text"`            // surface form
	Lemma string `json:"lemma,omitempty"` // lemma if the tagger provides one
	POS   string `json:"pos"`             // Penn Treebank tag (NN, VBD, MD, ...)
	Dep   string `json:"dep,omitempty"`   // dependency label (nsubj, dobj, ...)
	Head  int    `json:"head"`            // index of the governing token, -1 for root
	Start int    `json:"idx"`             // character offset of the token start
}

// Span returns the character span covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.Start + len(t.Text)}
}

// IsVerb reports whether the token carries a verbal POS tag.
func (t Token) IsVerb() bool {
	return strings.HasPrefix(t.POS, "VB")
}

// IsModal reports whether the token is a modal auxiliary (MD tag).
func (t Token) IsModal() bool {
	return t.POS == "MD"
}

// Sentence is one syntactically-analyzed sentence: raw text, its tokens,
// and the referring-expression entities resolved upstream.
type Sentence struct {
	Text     string   `json:"text"`
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// TokenAt returns the token whose span covers the given character offset.
func (s *Sentence) TokenAt(offset int) (Token, bool) {
	for _, tok := range s.Tokens {
		sp := tok.Span()
		if offset >= sp.Start && offset < sp.End {
			return tok, true
		}
	}
	return Token{}, false
}

// Document is an ordered list of analyzed sentences processed as one unit.
// Per-document state (the implicit addressee cache) never leaks across
// documents.
type Document struct {
	ID        string     `json:"id"`
	SourceURL string     `json:"source_url,omitempty"`
	Sentences []Sentence `json:"sentences"`
}
