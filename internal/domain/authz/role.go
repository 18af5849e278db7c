package authz

// Role nivel de privilegio de un usuario. Conjunto cerrado: cualquier valor no
// reconocido se normaliza a RoleUnknown (mínimo privilegio), nunca a un pase silencioso.
type Role string

const (
	RolePlatformAdmin Role = "PLATFORM_ADMIN"
	RoleAdmin         Role = "ADMIN"
	RoleManager       Role = "MANAGER"
	RoleCashier       Role = "CASHIER"
	RoleUnknown       Role = ""
)

// ParseRole normaliza un rol serializado (claim JWT, columna DB) al conjunto cerrado.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePlatformAdmin, RoleAdmin, RoleManager, RoleCashier:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Principal snapshot del usuario autenticado para decisiones de autorización.
// Lo construye la capa de autenticación; es inmutable durante la petición.
type Principal struct {
	UserID   string
	TenantID string
	Role     Role
	Active   bool
}
