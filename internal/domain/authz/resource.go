package authz

// Resource etiqueta canónica de una ruta u operación protegida. Conjunto cerrado:
// una etiqueta no registrada no compila (las rutas referencian constantes, no strings).
type Resource string

const (
	ResourceDashboard Resource = "dashboard"
	ResourcePOS       Resource = "pos"
	ResourceSales     Resource = "sales"
	ResourceCustomers Resource = "customers"
	ResourceCredit    Resource = "credit-management"
	ResourceReports   Resource = "reports"
	ResourceInventory Resource = "inventory"
	ResourceSettings  Resource = "settings"
	ResourceAIChat    Resource = "ai-chat"
	ResourceBranches  Resource = "branches"
	ResourceUsers     Resource = "users"

	// Recursos exclusivos de plataforma (operaciones cross-tenant).
	ResourceTenants Resource = "tenants"
	ResourceBilling Resource = "billing"
)

// allResources en orden estable, para navegación y tests exhaustivos.
var allResources = []Resource{
	ResourceDashboard,
	ResourcePOS,
	ResourceSales,
	ResourceCustomers,
	ResourceCredit,
	ResourceReports,
	ResourceInventory,
	ResourceSettings,
	ResourceAIChat,
	ResourceBranches,
	ResourceUsers,
	ResourceTenants,
	ResourceBilling,
}

// AllResources devuelve una copia del conjunto completo de recursos.
func AllResources() []Resource {
	out := make([]Resource, len(allResources))
	copy(out, allResources)
	return out
}

// ParseResource normaliza una etiqueta serializada. ok=false si no pertenece al conjunto.
func ParseResource(s string) (Resource, bool) {
	for _, r := range allResources {
		if Resource(s) == r {
			return r, true
		}
	}
	return "", false
}

// IsPlatform informa si el recurso es exclusivo de plataforma (regla aparte de la jerarquía).
func (r Resource) IsPlatform() bool {
	return r == ResourceTenants || r == ResourceBilling
}

// Route devuelve la ruta de navegación canónica del recurso (lado cliente).
func (r Resource) Route() string {
	return "/" + string(r)
}
