package models

// Role defines the kind of account and therefore which profile table it owns
type Role string

const (
	RoleStudent    Role = "student"
	RoleDepartment Role = "department"
	RoleCompany    Role = "company"
)

// Roles lists every role accepted at registration
var Roles = []Role{RoleStudent, RoleDepartment, RoleCompany}

func (r Role) String() string {
	return string(r)
}
