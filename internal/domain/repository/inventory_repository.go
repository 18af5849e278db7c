package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryLevel (DIP).
type InventoryRepository interface {
	Upsert(ctx context.Context, level *entity.InventoryLevel) error
	GetByBranchAndProduct(ctx context.Context, branchID, productID string) (*entity.InventoryLevel, error)
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*entity.InventoryLevel, error)
	Count(ctx context.Context) (int, error)
}
