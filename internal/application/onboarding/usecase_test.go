package onboarding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apponboarding "github.com/jhoicas/Farmacia-api/internal/application/onboarding"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorios: solo los conteos importan para el onboarding
// ──────────────────────────────────────────────────────────────────────────────

type stubBranchRepo struct{ count int }

func (s *stubBranchRepo) Create(context.Context, *entity.Branch) error { return nil }
func (s *stubBranchRepo) GetByID(context.Context, string) (*entity.Branch, error) {
	return nil, nil
}
func (s *stubBranchRepo) List(context.Context, int, int) ([]*entity.Branch, error) {
	return nil, nil
}
func (s *stubBranchRepo) Count(context.Context) (int, error) { return s.count, nil }

type stubUserRepo struct{ count int }

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) ListByTenant(context.Context, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) CountByTenant(context.Context) (int, error) { return s.count, nil }

type stubProductRepo struct{ count int }

func (s *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) GetBySKU(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Count(context.Context) (int, error) { return s.count, nil }

type stubInventoryRepo struct{ count int }

func (s *stubInventoryRepo) Upsert(context.Context, *entity.InventoryLevel) error { return nil }
func (s *stubInventoryRepo) GetByBranchAndProduct(context.Context, string, string) (*entity.InventoryLevel, error) {
	return nil, nil
}
func (s *stubInventoryRepo) ListByBranch(context.Context, string, int, int) ([]*entity.InventoryLevel, error) {
	return nil, nil
}
func (s *stubInventoryRepo) Count(context.Context) (int, error) { return s.count, nil }

func buildUseCase(branches, users, products, inventory int) *apponboarding.StatusUseCase {
	return apponboarding.NewStatusUseCase(
		&stubBranchRepo{count: branches},
		&stubUserRepo{count: users},
		&stubProductRepo{count: products},
		&stubInventoryRepo{count: inventory},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_DerivaPasoDesdeConteos(t *testing.T) {
	cases := []struct {
		name                                 string
		branches, users, products, inventory int
		wantStep                             string
	}{
		{"tenant recién creado", 0, 0, 0, 0, "SETUP_BRANCHES"},
		{"con sucursal", 1, 0, 0, 0, "ADD_USERS"},
		{"con equipo", 2, 3, 0, 0, "ADD_PRODUCTS"},
		{"con catálogo", 1, 1, 50, 0, "MANAGE_INVENTORY"},
		{"todo configurado", 1, 1, 50, 50, "COMPLETED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := buildUseCase(tc.branches, tc.users, tc.products, tc.inventory)
			out, err := uc.Status(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.wantStep, out.CurrentStep)
		})
	}
}

func TestStatus_ExponeLosHechos(t *testing.T) {
	uc := buildUseCase(1, 0, 3, 0)
	out, err := uc.Status(context.Background())
	require.NoError(t, err)

	assert.True(t, out.HasBranches)
	assert.False(t, out.HasUsers)
	assert.True(t, out.HasProducts)
	assert.False(t, out.HasInventory)
	assert.Equal(t, "ADD_USERS", out.CurrentStep, "el orden manda aunque haya productos")
	assert.Len(t, out.Steps, 4, "la respuesta incluye los pasos accionables")
}
