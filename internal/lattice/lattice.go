// Package lattice holds the ambiguity-preserving interpretation of one
// document: a default reading plus scored alternative readings and an audit
// trail of every ambiguity the analysis encountered.
package lattice

import (
	"encoding/json"
	"sort"

	"github.com/ppiankov/semograph/internal/model"
)

// Lattice is the full interpretation of a document. The default reading is
// always a complete, self-contained graph; alternatives are patches against
// it, never free-standing nodes.
type Lattice struct {
	Default      *model.Graph               `json:"default"`
	Alternatives []model.AlternativeReading `json:"alternatives,omitempty"`
	Audit        []model.AmbiguityRecord    `json:"audit,omitempty"`
}

// New wraps a graph as the default reading of an empty lattice.
func New(g *model.Graph) *Lattice {
	return &Lattice{Default: g}
}

// Add appends audit records and alternative readings.
func (l *Lattice) Add(records []model.AmbiguityRecord, alts []model.AlternativeReading) {
	l.Audit = append(l.Audit, records...)
	l.Alternatives = append(l.Alternatives, alts...)
}

// AddAlternative preserves one alternative reading with its audit record.
func (l *Lattice) AddAlternative(record model.AmbiguityRecord, alt model.AlternativeReading) {
	l.Audit = append(l.Audit, record)
	l.Alternatives = append(l.Alternatives, alt)
}

// AddGenericity folds ambiguous genericity verdicts into the lattice: every
// record carrying an alternative category yields a preserved audit entry and
// a scored alternative reading keyed by the subject entity.
func (l *Lattice) AddGenericity(records map[string]model.GenericityRecord) {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		rec := records[k]
		if rec.Alternative == nil {
			continue
		}
		l.Audit = append(l.Audit, model.AmbiguityRecord{
			NodeID:      rec.HeadID,
			Source:      model.SourceGenericity,
			Outcome:     model.AmbiguityPreserved,
			Description: "genericity read as " + string(rec.Category) + " by rule " + rec.Rule,
		})
		l.Alternatives = append(l.Alternatives, model.AlternativeReading{
			NodeID:       rec.HeadID,
			Source:       model.SourceGenericity,
			Plausibility: rec.Alternative.Confidence,
			Description:  "alternative genericity reading " + string(rec.Alternative.Category),
			Patch:        map[string]interface{}{"genericity": string(rec.Alternative.Category)},
		})
	}
}

// ByNode returns the alternatives attached to a node, highest plausibility
// first.
func (l *Lattice) ByNode(nodeID string) []model.AlternativeReading {
	var out []model.AlternativeReading
	for _, alt := range l.Alternatives {
		if alt.NodeID == nodeID {
			out = append(out, alt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Plausibility > out[j].Plausibility
	})
	return out
}

// Best returns the highest-plausibility alternative for a node, or nil.
func (l *Lattice) Best(nodeID string) *model.AlternativeReading {
	alts := l.ByNode(nodeID)
	if len(alts) == 0 {
		return nil
	}
	return &alts[0]
}

// AuditTrail partitions the audit records by outcome.
type AuditTrail struct {
	Preserved []model.AmbiguityRecord `json:"preserved,omitempty"`
	Resolved  []model.AmbiguityRecord `json:"resolved,omitempty"`
	Flagged   []model.AmbiguityRecord `json:"flagged,omitempty"`
}

// AuditTrail groups the audit records into the three outcome partitions,
// keeping each partition in encounter order.
func (l *Lattice) AuditTrail() AuditTrail {
	var t AuditTrail
	for _, rec := range l.Audit {
		switch rec.Outcome {
		case model.AmbiguityPreserved:
			t.Preserved = append(t.Preserved, rec)
		case model.AmbiguityResolved:
			t.Resolved = append(t.Resolved, rec)
		case model.AmbiguityFlagged:
			t.Flagged = append(t.Flagged, rec)
		}
	}
	return t
}

// HasSignificantAmbiguity reports whether any ambiguity was preserved rather
// than resolved or merely flagged.
func (l *Lattice) HasSignificantAmbiguity() bool {
	for _, rec := range l.Audit {
		if rec.Outcome == model.AmbiguityPreserved {
			return true
		}
	}
	return false
}

// Resolve collapses the lattice to its default reading: alternatives are
// dropped and preserved audit entries are downgraded to resolved, recording
// that the default was committed to.
func (l *Lattice) Resolve() {
	l.Alternatives = nil
	for i := range l.Audit {
		if l.Audit[i].Outcome == model.AmbiguityPreserved {
			l.Audit[i].Outcome = model.AmbiguityResolved
		}
	}
}

// MarshalFull serializes the whole lattice.
func (l *Lattice) MarshalFull() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// MarshalSimplified serializes only the default reading, byte-identical to
// marshaling the underlying graph directly.
func (l *Lattice) MarshalSimplified() ([]byte, error) {
	return json.MarshalIndent(l.Default, "", "  ")
}
