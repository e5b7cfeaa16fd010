package entity

import "time"

// Role tipo de usuario tal como lo guarda el store (campo "type").
type Role string

// Roles válidos para User.
const (
	RoleVendor              Role = "VENDOR"
	RoleSystemAdministrator Role = "SYSTEM_ADMINISTRATOR"
	RoleClient              Role = "CLIENT"
)

// ParseRole normaliza el texto del store; devuelve false si el rol no es conocido.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleVendor, RoleSystemAdministrator, RoleClient:
		return r, true
	default:
		return r, false
	}
}

// User representa un usuario del sistema: staff (vendedor / administrador) o cliente final.
type User struct {
	ID           string
	Username     string
	DisplayName  string // complete_name, o apellido/nombre cuando no existe
	UserNumber   string
	Role         Role
	PasswordHash string // bcrypt; nunca sale por la API
	RegisteredAt time.Time
	// RegisteredOK es false cuando created_at no se pudo interpretar.
	RegisteredOK bool
}

// IsStaff indica si el usuario puede iniciar sesión en el panel.
func (u User) IsStaff() bool {
	return u.Role == RoleVendor || u.Role == RoleSystemAdministrator
}
