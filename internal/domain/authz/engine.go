// Package authz decide, para un rol y un recurso protegido, si el acceso está
// permitido. Es una única tabla declarativa consumida por los dos puntos de
// enforcement: el middleware HTTP (autoritativo) y el route guard de navegación
// (pkg/routeguard, consultivo). Mantener una sola tabla evita que ambas copias
// se desincronicen.
package authz

// cashierAllow conjunto fijo de recursos permitidos a CASHIER.
var cashierAllow = map[Resource]struct{}{
	ResourceDashboard: {},
	ResourcePOS:       {},
	ResourceSales:     {},
	ResourceCustomers: {},
	ResourceCredit:    {},
	ResourceReports:   {},
	ResourceInventory: {},
	ResourceSettings:  {},
	ResourceAIChat:    {},
}

// CanAccess decide si el rol puede acceder al recurso. Pura, O(1), sin I/O.
//
// Reglas:
//  1. Recursos de plataforma: solo PLATFORM_ADMIN, sin excepción por jerarquía.
//  2. PLATFORM_ADMIN y ADMIN: acceso incondicional al resto.
//  3. MANAGER: lo de CASHIER más gestión de sucursales.
//  4. CASHIER: el conjunto fijo cashierAllow.
//  5. Rol desconocido: solo dashboard.
func CanAccess(role Role, resource Resource) bool {
	if resource.IsPlatform() {
		return role == RolePlatformAdmin
	}
	switch role {
	case RolePlatformAdmin, RoleAdmin:
		return true
	case RoleManager:
		if resource == ResourceBranches {
			return true
		}
		_, ok := cashierAllow[resource]
		return ok
	case RoleCashier:
		_, ok := cashierAllow[resource]
		return ok
	default:
		return resource == ResourceDashboard
	}
}

// PlatformOnly verificación estrecha para operaciones cross-tenant
// (ej. cambiar el plan de pago de un tenant): exige PLATFORM_ADMIN exacto.
func PlatformOnly(role Role) bool {
	return role == RolePlatformAdmin
}

// Allowed devuelve, en orden estable, los recursos accesibles para el rol.
// Lo consume el endpoint de navegación del cliente.
func Allowed(role Role) []Resource {
	var out []Resource
	for _, r := range allResources {
		if CanAccess(role, r) {
			out = append(out, r)
		}
	}
	return out
}
