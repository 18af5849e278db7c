package inventory

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

// UseCase casos de uso de existencias por sucursal.
type UseCase struct {
	txRunner      TxRunner
	branchRepo    repository.BranchRepository
	inventoryRepo repository.InventoryRepository
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(txRunner TxRunner, branchRepo repository.BranchRepository, inventoryRepo repository.InventoryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, branchRepo: branchRepo, inventoryRepo: inventoryRepo}
}

// SetLevel fija (upsert) las existencias de un producto en una sucursal.
// La validación del producto y el upsert corren en una sola transacción
// filtrada: si el producto pertenece a otro tenant, la validación no lo ve.
func (uc *UseCase) SetLevel(ctx context.Context, in dto.SetInventoryRequest) (*dto.InventoryLevelResponse, error) {
	tenantID, ok := tenantctx.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantNotResolved
	}
	branch, err := uc.branchRepo.GetByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	level := &entity.InventoryLevel{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return inventoryRepo.Upsert(ctx, level)
	})
	if err != nil {
		return nil, err
	}

	return &dto.InventoryLevelResponse{
		ID:           level.ID,
		BranchID:     level.BranchID,
		ProductID:    level.ProductID,
		Quantity:     level.Quantity,
		ReorderLevel: level.ReorderLevel,
	}, nil
}

// ListByBranch devuelve las existencias de una sucursal del tenant activo.
func (uc *UseCase) ListByBranch(ctx context.Context, branchID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	levels, err := uc.inventoryRepo.ListByBranch(ctx, branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLevelResponse, 0, len(levels))
	for _, lv := range levels {
		out = append(out, dto.InventoryLevelResponse{
			ID:           lv.ID,
			BranchID:     lv.BranchID,
			ProductID:    lv.ProductID,
			Quantity:     lv.Quantity,
			ReorderLevel: lv.ReorderLevel,
		})
	}
	return &dto.InventoryListResponse{
		Levels: out,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
