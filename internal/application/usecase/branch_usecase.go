package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/tenantctx"
)

// BranchUseCase casos de uso de sucursales (ámbito de tenant).
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso de sucursales.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create da de alta una sucursal en el tenant activo.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	tenantID, ok := tenantctx.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantNotResolved
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return &dto.BranchResponse{ID: branch.ID, Name: branch.Name, Address: branch.Address, Phone: branch.Phone}, nil
}

// GetByID obtiene una sucursal del tenant activo.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return &dto.BranchResponse{ID: branch.ID, Name: branch.Name, Address: branch.Address, Phone: branch.Phone}, nil
}

// List devuelve las sucursales del tenant activo.
func (uc *BranchUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.BranchListResponse, error) {
	page.DefaultPage()
	branches, err := uc.branchRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address, Phone: b.Phone})
	}
	return &dto.BranchListResponse{
		Branches: out,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
