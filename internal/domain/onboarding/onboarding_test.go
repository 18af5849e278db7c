package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/onboarding"
)

// Derive devuelve el primer paso cuyo hecho es falso, en orden estricto.
func TestDerive_PrimerHechoFalso(t *testing.T) {
	cases := []struct {
		name  string
		facts onboarding.Facts
		want  onboarding.Step
	}{
		{
			name:  "tenant recién creado",
			facts: onboarding.Facts{},
			want:  onboarding.StepSetupBranches,
		},
		{
			name:  "con sucursal, sin usuarios",
			facts: onboarding.Facts{HasBranches: true},
			want:  onboarding.StepAddUsers,
		},
		{
			name:  "con equipo, sin productos",
			facts: onboarding.Facts{HasBranches: true, HasUsers: true},
			want:  onboarding.StepAddProducts,
		},
		{
			name:  "con catálogo, sin inventario",
			facts: onboarding.Facts{HasBranches: true, HasUsers: true, HasProducts: true},
			want:  onboarding.StepManageInventory,
		},
		{
			name:  "todo configurado",
			facts: onboarding.Facts{HasBranches: true, HasUsers: true, HasProducts: true, HasInventory: true},
			want:  onboarding.StepCompleted,
		},
		{
			// El orden manda: aunque haya productos e inventario, sin
			// sucursales el paso vuelve al primero.
			name:  "hechos fuera de orden",
			facts: onboarding.Facts{HasProducts: true, HasInventory: true},
			want:  onboarding.StepSetupBranches,
		},
		{
			// Sin estado persistido el paso puede retroceder si un hecho
			// deja de cumplirse (ej. se eliminó la última sucursal).
			name:  "retroceso al eliminar sucursales",
			facts: onboarding.Facts{HasBranches: false, HasUsers: true, HasProducts: true, HasInventory: true},
			want:  onboarding.StepSetupBranches,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, onboarding.Derive(tc.facts))
		})
	}
}

// La tabla de pasos accionables cubre todos los pasos salvo COMPLETED y
// mantiene el orden estricto.
func TestSteps_OrdenYCobertura(t *testing.T) {
	steps := onboarding.Steps()
	want := []onboarding.Step{
		onboarding.StepSetupBranches,
		onboarding.StepAddUsers,
		onboarding.StepAddProducts,
		onboarding.StepManageInventory,
	}
	assert.Len(t, steps, len(want))
	for i, s := range steps {
		assert.Equal(t, want[i], s.Step)
		assert.NotEmpty(t, s.Title, "cada paso debe tener título")
		assert.NotEmpty(t, s.Route, "cada paso debe apuntar a una ruta")
	}
}
