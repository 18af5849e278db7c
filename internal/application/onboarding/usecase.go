package onboarding

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	domonboarding "github.com/jhoicas/Farmacia-api/internal/domain/onboarding"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// StatusUseCase deriva el estado de onboarding del tenant activo.
// Recalcula los hechos con conteos en vivo en cada consulta: no hay estado
// persistido y el paso puede retroceder si un hecho deja de cumplirse.
type StatusUseCase struct {
	branchRepo    repository.BranchRepository
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

// NewStatusUseCase construye el caso de uso de estado de onboarding.
func NewStatusUseCase(
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) *StatusUseCase {
	return &StatusUseCase{
		branchRepo:    branchRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Status consulta los conteos del tenant activo (las consultas corren con el
// filtro de aislamiento) y deriva el paso actual.
func (uc *StatusUseCase) Status(ctx context.Context) (*dto.OnboardingStatusResponse, error) {
	branches, err := uc.branchRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.CountByTenant(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.inventoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	facts := domonboarding.Facts{
		HasBranches:  branches > 0,
		HasUsers:     users > 0,
		HasProducts:  products > 0,
		HasInventory: inventory > 0,
	}
	current := domonboarding.Derive(facts)

	steps := domonboarding.Steps()
	stepDTOs := make([]dto.OnboardingStepDTO, 0, len(steps))
	for _, s := range steps {
		stepDTOs = append(stepDTOs, dto.OnboardingStepDTO{
			Step:        string(s.Step),
			Title:       s.Title,
			Description: s.Description,
			Route:       s.Route,
			Icon:        s.Icon,
		})
	}

	return &dto.OnboardingStatusResponse{
		CurrentStep:  string(current),
		Steps:        stepDTOs,
		HasBranches:  facts.HasBranches,
		HasUsers:     facts.HasUsers,
		HasProducts:  facts.HasProducts,
		HasInventory: facts.HasInventory,
	}, nil
}
