package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
// Todas las operaciones corren con el filtro de aislamiento activo.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Branch, error)
	Count(ctx context.Context) (int, error)
}
