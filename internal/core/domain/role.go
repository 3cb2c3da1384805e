package domain

// Role is the closed set of authorization roles.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// ParseRole maps a raw role string to a Role. Unknown input is data, not a
// failure: anything unrecognised resolves to RoleCustomer. The mapping is
// symmetric with String(), so a serialized role always resolves back to itself.
func ParseRole(raw string) Role {
	switch raw {
	case string(RoleOwner):
		return RoleOwner
	case string(RoleStaff):
		return RoleStaff
	default:
		return RoleCustomer
	}
}

func (r Role) String() string {
	return string(r)
}
