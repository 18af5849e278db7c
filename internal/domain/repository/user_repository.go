package repository

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail corre sin ámbito de tenant: es la búsqueda de la capa de
// autenticación, anterior a que exista contexto de tenant en la petición.
// El resto de operaciones exige contexto de tenant activo.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByTenant(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountByTenant(ctx context.Context) (int, error)
}
