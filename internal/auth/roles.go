// AngelaMos | 2026
// roles.go

package auth

const (
	RoleAdmin      = "ADMIN"
	RoleFarmer     = "FARMER"
	RoleManager    = "MANAGER"
	RoleEmployee   = "EMPLOYEE"
	RoleVet        = "VET"
	RoleAgronomist = "AGRONOMIST"
	RoleConsultant = "CONSULTANT"
)

var validRoles = map[string]struct{}{
	RoleAdmin:      {},
	RoleFarmer:     {},
	RoleManager:    {},
	RoleEmployee:   {},
	RoleVet:        {},
	RoleAgronomist: {},
	RoleConsultant: {},
}

func IsValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}
