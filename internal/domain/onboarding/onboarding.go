// Package onboarding deriva el paso de configuración pendiente de un tenant a
// partir de cuatro hechos booleanos. No hay estado persistido ni transiciones
// explícitas: el paso se recalcula en cada consulta y puede retroceder si un
// hecho deja de cumplirse.
package onboarding

// Step paso de onboarding, en orden estricto.
type Step string

const (
	StepSetupBranches   Step = "SETUP_BRANCHES"
	StepAddUsers        Step = "ADD_USERS"
	StepAddProducts     Step = "ADD_PRODUCTS"
	StepManageInventory Step = "MANAGE_INVENTORY"
	StepCompleted       Step = "COMPLETED"
)

// Facts hechos actuales del tenant, obtenidos de conteos en vivo.
type Facts struct {
	HasBranches  bool
	HasUsers     bool
	HasProducts  bool
	HasInventory bool
}

// Derive devuelve el primer paso cuyo hecho es falso; COMPLETED si todos se cumplen.
func Derive(f Facts) Step {
	switch {
	case !f.HasBranches:
		return StepSetupBranches
	case !f.HasUsers:
		return StepAddUsers
	case !f.HasProducts:
		return StepAddProducts
	case !f.HasInventory:
		return StepManageInventory
	default:
		return StepCompleted
	}
}

// StepInfo metadatos de presentación de un paso (consumidos por la UI de onboarding).
type StepInfo struct {
	Step        Step
	Title       string
	Description string
	Route       string
	Icon        string
}

// steps tabla ordenada de pasos accionables (COMPLETED no tiene acción).
var steps = []StepInfo{
	{
		Step:        StepSetupBranches,
		Title:       "Configura tus sucursales",
		Description: "Crea al menos una sucursal para empezar a operar",
		Route:       "/branches",
		Icon:        "store",
	},
	{
		Step:        StepAddUsers,
		Title:       "Agrega tu equipo",
		Description: "Invita a los usuarios que trabajarán en el sistema",
		Route:       "/users",
		Icon:        "users",
	},
	{
		Step:        StepAddProducts,
		Title:       "Registra tus productos",
		Description: "Carga el catálogo de productos de tu farmacia",
		Route:       "/inventory",
		Icon:        "package",
	},
	{
		Step:        StepManageInventory,
		Title:       "Gestiona tu inventario",
		Description: "Registra existencias iniciales por sucursal",
		Route:       "/inventory",
		Icon:        "clipboard-list",
	},
}

// Steps devuelve una copia de la tabla ordenada de pasos accionables.
func Steps() []StepInfo {
	out := make([]StepInfo, len(steps))
	copy(out, steps)
	return out
}
