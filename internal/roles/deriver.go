// Package roles derives BFO-style realizable roles from extracted acts.
// A role inheres in its bearer entity and points at the act it is (or would
// be) realized in, depending on the act's actuality.
package roles

import (
	"github.com/ppiankov/semograph/internal/model"
)

// EntityIndex resolves entity IDs during derivation.
type EntityIndex map[string]*model.Entity

// IndexDocument builds the ID index over a document's resolved entities plus
// any the extractor synthesized.
func IndexDocument(doc *model.Document, implicit []model.Entity) EntityIndex {
	idx := make(EntityIndex)
	for si := range doc.Sentences {
		s := &doc.Sentences[si]
		for ei := range s.Entities {
			idx[s.Entities[ei].ID] = &s.Entities[ei]
		}
	}
	for i := range implicit {
		idx[implicit[i].ID] = &implicit[i]
	}
	return idx
}

// Derive produces the role set for a slice of acts. Bearers failing the
// eligibility test for agent or patient are demoted to participant roles
// rather than dropped; aggregate bearers expand to their members, which bear
// the role in the aggregate's place. BearerOf back-links are appended onto
// the indexed entities.
func Derive(acts []model.Act, idx EntityIndex) []model.Role {
	d := &deriver{idx: idx, seen: make(map[string]bool)}
	for i := range acts {
		d.act(&acts[i])
	}
	return d.out
}

type deriver struct {
	idx  EntityIndex
	seen map[string]bool
	out  []model.Role
}

func (d *deriver) act(act *model.Act) {
	realized := act.Actuality == model.ActualityActual

	if act.Agent != nil {
		d.add(model.RoleAgent, act.Agent.EntityID, act.ID, realized)
	}
	for _, id := range act.CoAgents {
		d.add(model.RoleAgent, id, act.ID, realized)
	}
	if act.Patient != nil {
		d.add(model.RolePatient, act.Patient.EntityID, act.ID, realized)
	}
	for _, id := range act.CoPatients {
		d.add(model.RolePatient, id, act.ID, realized)
	}
	if act.Instrument != nil {
		d.add(model.RoleInstrument, act.Instrument.EntityID, act.ID, realized)
	}
	if act.Beneficiary != nil {
		d.add(model.RoleBeneficiary, act.Beneficiary.EntityID, act.ID, realized)
	}
	if act.Recipient != nil {
		d.add(model.RoleParticipant, act.Recipient.EntityID, act.ID, realized)
	}
	if act.Comitative != nil {
		d.add(model.RoleParticipant, act.Comitative.EntityID, act.ID, realized)
	}
	for _, id := range act.Affects {
		d.add(model.RoleParticipant, id, act.ID, realized)
	}
}

// add appends one role, enforcing bearer eligibility, expanding aggregates
// and de-duplicating on the deterministic role ID.
func (d *deriver) add(roleType model.RoleType, bearerID, actID string, realized bool) {
	ent := d.idx[bearerID]

	// an aggregate bearer expands to its members; the role inheres in each
	// eligible member, never in the aggregate itself
	if ent != nil && len(ent.Members) > 0 {
		for _, member := range ent.Members {
			d.add(roleType, member, actID, realized)
		}
		return
	}

	rt := roleType
	if ent != nil {
		switch roleType {
		case model.RoleAgent:
			if !ent.Category.IsAgentCapable() {
				rt = model.RoleParticipant
			}
		case model.RolePatient:
			if !ent.Category.IsPersonLike() {
				rt = model.RoleParticipant
			}
		}
	}

	id := model.RoleID(string(rt), bearerID, actID)
	if d.seen[id] {
		return
	}
	d.seen[id] = true

	role := model.Role{ID: id, Type: rt, Bearer: bearerID}
	if realized {
		role.RealizedIn = actID
	} else {
		role.WouldBeRealizedIn = actID
	}
	d.out = append(d.out, role)

	if ent != nil {
		ent.BearerOf = append(ent.BearerOf, id)
	}
}
