package pipeline

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/semograph/internal/lattice"
	"github.com/ppiankov/semograph/internal/model"
)

// Renderer writes analysis output as JSON, markdown and a terminal summary.
type Renderer struct {
	includeFooter bool
}

func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes either the full lattice or, when ambiguity preservation
// is off, just the default reading. The simplified form is byte-identical to
// marshaling the graph directly.
func (r *Renderer) RenderJSON(l *lattice.Lattice, path string, full bool) error {
	var data []byte
	var err error
	if full {
		data, err = l.MarshalFull()
	} else {
		data, err = l.MarshalSimplified()
	}
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes a human-readable report of the lattice.
func (r *Renderer) RenderMarkdown(l *lattice.Lattice, path string) error {
	var b strings.Builder
	g := l.Default

	fmt.Fprintf(&b, "# Semantic Graph: %s\n\n", g.DocumentID)

	if len(g.Acts) > 0 {
		b.WriteString("## Acts\n\n")
		for _, act := range g.Acts {
			fmt.Fprintf(&b, "- **%s** (%s", act.Infinitive, act.Type)
			if act.Modality != "" {
				fmt.Fprintf(&b, ", %s", act.Modality)
			}
			fmt.Fprintf(&b, "): %s", act.Actuality)
			if act.Negated {
				b.WriteString(", negated")
			}
			b.WriteString("\n")
			for _, link := range act.Links() {
				fmt.Fprintf(&b, "  - %s → `%s`\n", link.Relation, link.EntityID)
			}
			for _, id := range act.Affects {
				fmt.Fprintf(&b, "  - affects → `%s`\n", id)
			}
		}
		b.WriteString("\n")
	}

	if len(g.Assertions) > 0 {
		b.WriteString("## Structural Assertions\n\n")
		for _, a := range g.Assertions {
			fmt.Fprintf(&b, "- `%s` %s `%s` (inverse: %s)\n", a.Subject, a.Relation, a.Object, a.Inverse)
		}
		b.WriteString("\n")
	}

	if len(g.Inferences) > 0 {
		b.WriteString("## Inference Nodes\n\n")
		for _, n := range g.Inferences {
			fmt.Fprintf(&b, "- %s: about `%s`", n.Verb, n.IsAbout)
			if n.Target != "" {
				fmt.Fprintf(&b, ", supports `%s`", n.Target)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(g.Genericity) > 0 {
		b.WriteString("## Genericity\n\n")
		b.WriteString("| Subject | Category | Confidence | Rule |\n")
		b.WriteString("|---|---|---|---|\n")
		heads := make([]string, 0, len(g.Genericity))
		for head := range g.Genericity {
			heads = append(heads, head)
		}
		sort.Strings(heads)
		for _, head := range heads {
			rec := g.Genericity[head]
			fmt.Fprintf(&b, "| `%s` | %s | %.2f | %s |\n", head, rec.Category, rec.Confidence, rec.Rule)
		}
		b.WriteString("\n")
	}

	if len(g.Roles) > 0 {
		fmt.Fprintf(&b, "## Roles\n\n%d derived roles", len(g.Roles))
		realized := 0
		for _, role := range g.Roles {
			if role.RealizedIn != "" {
				realized++
			}
		}
		fmt.Fprintf(&b, " (%d realized, %d unrealized)\n\n", realized, len(g.Roles)-realized)
	}

	trail := l.AuditTrail()
	if len(l.Audit) > 0 {
		b.WriteString("## Ambiguity Audit\n\n")
		writeTrailSection(&b, "Preserved", trail.Preserved)
		writeTrailSection(&b, "Resolved", trail.Resolved)
		writeTrailSection(&b, "Flagged", trail.Flagged)
	}

	if len(l.Alternatives) > 0 {
		b.WriteString("## Alternative Readings\n\n")
		for _, alt := range l.Alternatives {
			fmt.Fprintf(&b, "- `%s` [%s, %.2f] %s\n", alt.NodeID, alt.Source, alt.Plausibility, alt.Description)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n*Generated by Semograph. The graph records readings, not truth.*\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func writeTrailSection(b *strings.Builder, title string, recs []model.AmbiguityRecord) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, rec := range recs {
		fmt.Fprintf(b, "- [%s] `%s`: %s\n", rec.Source, rec.NodeID, rec.Description)
	}
	b.WriteString("\n")
}

// RenderSummary prints a one-screen overview to stdout.
func (r *Renderer) RenderSummary(l *lattice.Lattice) {
	g := l.Default
	trail := l.AuditTrail()

	fmt.Printf("\nDocument: %s\n", g.DocumentID)
	fmt.Printf("  Acts: %d  Assertions: %d  Inferences: %d  Roles: %d\n",
		len(g.Acts), len(g.Assertions), len(g.Inferences), len(g.Roles))
	fmt.Printf("  Ambiguities: %d preserved, %d resolved, %d flagged\n",
		len(trail.Preserved), len(trail.Resolved), len(trail.Flagged))
	if l.HasSignificantAmbiguity() {
		fmt.Printf("  ⚠ Alternative readings were preserved; see the audit trail.\n")
	}
}
