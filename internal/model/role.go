package model

// RoleType classifies a BFO-style role borne by an entity.
type RoleType string

const (
	RoleAgent       RoleType = "agent"
	RolePatient     RoleType = "patient"
	RoleInstrument  RoleType = "instrument"
	RoleBeneficiary RoleType = "beneficiary"
	RoleParticipant RoleType = "participant"
)

// Role is a dependent entity that inheres in a bearer and is realized in an
// act. The bearer link is always present; exactly one of RealizedIn and
// WouldBeRealizedIn is set, depending on the act's actuality.
type Role struct {
	ID     string   `json:"id"`
	Type   RoleType `json:"type"`
	Bearer string   `json:"bearer"`

	RealizedIn        string `json:"realized_in,omitempty"`
	WouldBeRealizedIn string `json:"would_be_realized_in,omitempty"`
}

// ActLink returns the act the role points at regardless of realization.
func (r *Role) ActLink() string {
	if r.RealizedIn != "" {
		return r.RealizedIn
	}
	return r.WouldBeRealizedIn
}
