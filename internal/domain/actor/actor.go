package actor

import "github.com/google/uuid"

// Role is the side of the marketplace the caller acts for. The identity
// provider is external; the workflow trusts the role carried by a validated
// session token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor identifies the authenticated caller of a workflow operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsCustomer() bool { return a.Role == RoleCustomer }
func (a Actor) IsVendor() bool   { return a.Role == RoleVendor }
func (a Actor) IsAdmin() bool    { return a.Role == RoleAdmin }
