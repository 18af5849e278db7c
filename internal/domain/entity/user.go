package entity

import "time"

// Roles válidos para User. PLATFORM_ADMIN opera a nivel de plataforma (sin tenant);
// el resto pertenece a exactamente un tenant.
const (
	RolePlatformAdmin = "PLATFORM_ADMIN"
	RoleAdmin         = "ADMIN"
	RoleManager       = "MANAGER"
	RoleCashier       = "CASHIER"
)

// User representa un usuario del sistema (pertenece a un Tenant, salvo plataforma).
type User struct {
	ID           string
	TenantID     string // vacío solo para usuarios de plataforma
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role*
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
