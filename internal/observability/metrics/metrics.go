// Package metrics expone contadores Prometheus del núcleo de aislamiento y
// autorización. Las métricas no llevan identificadores de tenant como label
// (cardinalidad), solo rol, recurso y resultado.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authzDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_authz_decisions_total",
		Help: "Authorization decisions by role, resource and outcome",
	}, []string{"role", "resource", "decision"})

	tenantScopeResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_tenant_scope_resolutions_total",
		Help: "Tenant scope resolutions at the request boundary by outcome",
	}, []string{"outcome"})

	onboardingQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_onboarding_status_queries_total",
		Help: "Onboarding status derivations by resulting step",
	}, []string{"step"})
)

// ObserveAuthzDecision registra una decisión de autorización.
func ObserveAuthzDecision(role, resource, decision string) {
	authzDecisions.WithLabelValues(role, resource, decision).Inc()
}

// ObserveScopeResolution registra el resultado de resolver el tenant en el
// límite de la petición: scoped, platform (sin tenant) o unresolved (denegado).
func ObserveScopeResolution(outcome string) {
	tenantScopeResolutions.WithLabelValues(outcome).Inc()
}

// ObserveOnboardingStep registra el paso derivado en una consulta de estado.
func ObserveOnboardingStep(step string) {
	onboardingQueries.WithLabelValues(step).Inc()
}
