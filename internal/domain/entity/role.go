package entity

// Role names carried in access-token claims for stateless authorization.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Roles is a list of role names.
type Roles []string

// RolesFor derives the roles of a user from its flags.
func RolesFor(user *User) Roles {
	roles := Roles{RoleCustomer}
	if user.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
