package roles

import (
	"testing"

	"github.com/ppiankov/semograph/internal/model"
)

func index(ents ...*model.Entity) EntityIndex {
	idx := make(EntityIndex)
	for _, e := range ents {
		idx[e.ID] = e
	}
	return idx
}

func findRole(roles []model.Role, roleType model.RoleType, bearer string) *model.Role {
	for i := range roles {
		if roles[i].Type == roleType && roles[i].Bearer == bearer {
			return &roles[i]
		}
	}
	return nil
}

func TestRealizationFollowsActuality(t *testing.T) {
	doctor := &model.Entity{ID: "e-doctor", Category: model.CategoryPerson}
	patient := &model.Entity{ID: "e-patient", Category: model.CategoryPerson}
	idx := index(doctor, patient)

	prescribed := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityPrescribed,
		Agent:     &model.RoleLink{EntityID: "e-doctor", Relation: model.RelationHasAgent},
		Patient:   &model.RoleLink{EntityID: "e-patient", Relation: model.RelationHasPatient},
	}
	actual := model.Act{
		ID:        "act-2",
		Actuality: model.ActualityActual,
		Agent:     &model.RoleLink{EntityID: "e-doctor", Relation: model.RelationHasAgent},
	}

	roles := Derive([]model.Act{prescribed, actual}, idx)

	agent1 := findRole(roles[:2], model.RoleAgent, "e-doctor")
	if agent1 == nil {
		t.Fatal("no agent role for prescribed act")
	}
	if agent1.WouldBeRealizedIn != "act-1" || agent1.RealizedIn != "" {
		t.Errorf("prescribed act role = %+v, want would-be-realized-in act-1", agent1)
	}

	agent2 := findRole(roles[2:], model.RoleAgent, "e-doctor")
	if agent2 == nil {
		t.Fatal("no agent role for actual act")
	}
	if agent2.RealizedIn != "act-2" || agent2.WouldBeRealizedIn != "" {
		t.Errorf("actual act role = %+v, want realized-in act-2", agent2)
	}
}

func TestPatientEligibility(t *testing.T) {
	org := &model.Entity{ID: "e-org", Category: model.CategoryOrganization}
	idx := index(org)

	act := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityActual,
		Patient:   &model.RoleLink{EntityID: "e-org", Relation: model.RelationHasPatient},
	}

	roles := Derive([]model.Act{act}, idx)
	if findRole(roles, model.RolePatient, "e-org") != nil {
		t.Error("an organization must not bear a patient role")
	}
	if findRole(roles, model.RoleParticipant, "e-org") == nil {
		t.Error("ineligible patient bearer should demote to participant")
	}
}

func TestAffectedEntitiesGetParticipantRoles(t *testing.T) {
	svc := &model.Entity{ID: "e-svc", Category: model.CategoryArtifact}
	idx := index(svc)

	act := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityActual,
		Affects:   []string{"e-svc"},
	}

	roles := Derive([]model.Act{act}, idx)
	if len(roles) != 1 || roles[0].Type != model.RoleParticipant || roles[0].Bearer != "e-svc" {
		t.Errorf("roles = %+v, want one participant role for e-svc", roles)
	}
}

func TestAggregateBearerExpandsToMembers(t *testing.T) {
	committee := &model.Entity{
		ID:       "e-cmte",
		Category: model.CategoryOrganization,
		Members:  []string{"e-alice", "e-bob"},
	}
	alice := &model.Entity{ID: "e-alice", Category: model.CategoryPerson}
	bob := &model.Entity{ID: "e-bob", Category: model.CategoryPerson}
	idx := index(committee, alice, bob)

	act := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityActual,
		Agent:     &model.RoleLink{EntityID: "e-cmte", Relation: model.RelationHasAgent},
	}

	roles := Derive([]model.Act{act}, idx)
	for _, bearer := range []string{"e-alice", "e-bob"} {
		if findRole(roles, model.RoleAgent, bearer) == nil {
			t.Errorf("no agent role for member %s", bearer)
		}
	}
	// the role inheres in the members, not the aggregate
	if findRole(roles, model.RoleAgent, "e-cmte") != nil {
		t.Error("aggregate bearer must not keep the role its members carry")
	}
	if len(roles) != 2 {
		t.Errorf("got %d roles, want 2", len(roles))
	}
	if len(committee.BearerOf) != 0 {
		t.Errorf("aggregate bearer_of = %v, want empty", committee.BearerOf)
	}
}

func TestBearerBackLinks(t *testing.T) {
	doctor := &model.Entity{ID: "e-doctor", Category: model.CategoryPerson}
	idx := index(doctor)

	act := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityActual,
		Agent:     &model.RoleLink{EntityID: "e-doctor", Relation: model.RelationHasAgent},
	}

	roles := Derive([]model.Act{act}, idx)
	if len(roles) != 1 {
		t.Fatalf("got %d roles, want 1", len(roles))
	}
	if len(doctor.BearerOf) != 1 || doctor.BearerOf[0] != roles[0].ID {
		t.Errorf("bearer_of = %v, want [%s]", doctor.BearerOf, roles[0].ID)
	}
}

func TestDuplicateRolesCollapse(t *testing.T) {
	doctor := &model.Entity{ID: "e-doctor", Category: model.CategoryPerson}
	idx := index(doctor)

	act := model.Act{
		ID:        "act-1",
		Actuality: model.ActualityActual,
		Agent:     &model.RoleLink{EntityID: "e-doctor", Relation: model.RelationHasAgent},
		CoAgents:  []string{"e-doctor"},
	}

	roles := Derive([]model.Act{act}, idx)
	if len(roles) != 1 {
		t.Errorf("got %d roles, want 1 after de-duplication", len(roles))
	}
}
