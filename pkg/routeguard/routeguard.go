// Package routeguard es el espejo consultivo del motor de autorización para la
// navegación del cliente. Consume exactamente la misma tabla que el middleware
// HTTP (internal/domain/authz); su única diferencia es el modo de fallo: ante
// una denegación devuelve una redirección al dashboard en lugar de un 403.
//
// NO es una frontera de seguridad. El gate autoritativo es siempre el
// middleware del servidor; este paquete solo evita estados de UI confusos.
package routeguard

import "github.com/jhoicas/Farmacia-api/internal/domain/authz"

// DefaultRoute destino seguro al denegar navegación.
const DefaultRoute = "/dashboard"

// Decision resultado de evaluar una navegación.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"` // destino al denegar
}

// Evaluate decide si el rol puede navegar al recurso identificado por tag.
// Una etiqueta desconocida se deniega (redirección al dashboard), nunca pasa.
func Evaluate(role authz.Role, tag string) Decision {
	resource, ok := authz.ParseResource(tag)
	if !ok {
		return Decision{Allowed: false, RedirectTo: DefaultRoute}
	}
	if !authz.CanAccess(role, resource) {
		return Decision{Allowed: false, RedirectTo: DefaultRoute}
	}
	return Decision{Allowed: true}
}

// NavEntry entrada de navegación permitida para un rol.
type NavEntry struct {
	Tag   string `json:"tag"`
	Route string `json:"route"`
}

// AllowedNavigation devuelve las entradas de navegación visibles para el rol,
// en orden estable. Lo sirve GET /api/auth/navigation.
func AllowedNavigation(role authz.Role) []NavEntry {
	resources := authz.Allowed(role)
	out := make([]NavEntry, 0, len(resources))
	for _, r := range resources {
		out = append(out, NavEntry{Tag: string(r), Route: r.Route()})
	}
	return out
}
