package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain/authz"
)

// Matriz de decisiones esperadas por rol. Cualquier recurso que no aparece en
// la lista se espera denegado para ese rol.
var expectedAllow = map[authz.Role][]authz.Resource{
	authz.RolePlatformAdmin: {
		authz.ResourceDashboard, authz.ResourcePOS, authz.ResourceSales,
		authz.ResourceCustomers, authz.ResourceCredit, authz.ResourceReports,
		authz.ResourceInventory, authz.ResourceSettings, authz.ResourceAIChat,
		authz.ResourceBranches, authz.ResourceUsers,
		authz.ResourceTenants, authz.ResourceBilling,
	},
	authz.RoleAdmin: {
		authz.ResourceDashboard, authz.ResourcePOS, authz.ResourceSales,
		authz.ResourceCustomers, authz.ResourceCredit, authz.ResourceReports,
		authz.ResourceInventory, authz.ResourceSettings, authz.ResourceAIChat,
		authz.ResourceBranches, authz.ResourceUsers,
	},
	authz.RoleManager: {
		authz.ResourceDashboard, authz.ResourcePOS, authz.ResourceSales,
		authz.ResourceCustomers, authz.ResourceCredit, authz.ResourceReports,
		authz.ResourceInventory, authz.ResourceSettings, authz.ResourceAIChat,
		authz.ResourceBranches,
	},
	authz.RoleCashier: {
		authz.ResourceDashboard, authz.ResourcePOS, authz.ResourceSales,
		authz.ResourceCustomers, authz.ResourceCredit, authz.ResourceReports,
		authz.ResourceInventory, authz.ResourceSettings, authz.ResourceAIChat,
	},
	authz.RoleUnknown: {
		authz.ResourceDashboard,
	},
}

func allowSet(rs []authz.Resource) map[authz.Resource]bool {
	m := make(map[authz.Resource]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// Recorre el producto completo rol × recurso contra la matriz esperada.
func TestCanAccess_MatrizCompleta(t *testing.T) {
	for role, allowed := range expectedAllow {
		set := allowSet(allowed)
		for _, resource := range authz.AllResources() {
			got := authz.CanAccess(role, resource)
			assert.Equal(t, set[resource], got,
				"rol %q, recurso %q: decisión inesperada", role, resource)
		}
	}
}

// Los recursos de plataforma jamás se conceden por jerarquía: ADMIN los tiene
// denegados aunque tenga acceso incondicional al resto.
func TestCanAccess_PlataformaSoloParaPlatformAdmin(t *testing.T) {
	for _, resource := range []authz.Resource{authz.ResourceTenants, authz.ResourceBilling} {
		require.True(t, resource.IsPlatform())
		assert.True(t, authz.CanAccess(authz.RolePlatformAdmin, resource))
		for _, role := range []authz.Role{authz.RoleAdmin, authz.RoleManager, authz.RoleCashier, authz.RoleUnknown} {
			assert.False(t, authz.CanAccess(role, resource),
				"rol %q no debe acceder al recurso de plataforma %q", role, resource)
		}
	}
}

// MANAGER es exactamente CASHIER más sucursales: ni usuarios ni nada extra.
func TestCanAccess_ManagerEsCashierMasSucursales(t *testing.T) {
	assert.True(t, authz.CanAccess(authz.RoleManager, authz.ResourceBranches))
	assert.False(t, authz.CanAccess(authz.RoleCashier, authz.ResourceBranches))
	assert.False(t, authz.CanAccess(authz.RoleManager, authz.ResourceUsers))

	for _, resource := range authz.AllResources() {
		if resource == authz.ResourceBranches {
			continue
		}
		assert.Equal(t,
			authz.CanAccess(authz.RoleCashier, resource),
			authz.CanAccess(authz.RoleManager, resource),
			"fuera de branches, MANAGER y CASHIER deben coincidir en %q", resource)
	}
}

// Un rol fuera del conjunto cerrado se normaliza a mínimo privilegio.
func TestParseRole_DesconocidoEsMinimoPrivilegio(t *testing.T) {
	role := authz.ParseRole("SUPERVISOR")
	assert.Equal(t, authz.RoleUnknown, role)
	assert.True(t, authz.CanAccess(role, authz.ResourceDashboard))
	assert.False(t, authz.CanAccess(role, authz.ResourcePOS))
}

func TestParseRole_ConjuntoCerrado(t *testing.T) {
	assert.Equal(t, authz.RolePlatformAdmin, authz.ParseRole("PLATFORM_ADMIN"))
	assert.Equal(t, authz.RoleAdmin, authz.ParseRole("ADMIN"))
	assert.Equal(t, authz.RoleManager, authz.ParseRole("MANAGER"))
	assert.Equal(t, authz.RoleCashier, authz.ParseRole("CASHIER"))
	// sensible a mayúsculas: no hay normalización de caso
	assert.Equal(t, authz.RoleUnknown, authz.ParseRole("admin"))
	assert.Equal(t, authz.RoleUnknown, authz.ParseRole(""))
}

// Allowed devuelve exactamente los recursos de la matriz, en orden estable.
func TestAllowed_CoincideConCanAccess(t *testing.T) {
	for role := range expectedAllow {
		allowed := authz.Allowed(role)
		set := allowSet(allowed)
		for _, resource := range authz.AllResources() {
			assert.Equal(t, authz.CanAccess(role, resource), set[resource],
				"Allowed y CanAccess deben coincidir para rol %q recurso %q", role, resource)
		}
	}
}

func TestPlatformOnly(t *testing.T) {
	assert.True(t, authz.PlatformOnly(authz.RolePlatformAdmin))
	assert.False(t, authz.PlatformOnly(authz.RoleAdmin))
	assert.False(t, authz.PlatformOnly(authz.RoleUnknown))
}
