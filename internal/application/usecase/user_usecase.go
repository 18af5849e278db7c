package usecase

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// UserUseCase listado de usuarios del tenant activo (gestión de equipo).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve los usuarios del tenant activo (sin hash de password).
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.ListByTenant(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.ID,
			TenantID: u.TenantID,
			Email:    u.Email,
			Name:     u.Name,
			Role:     u.Role,
			Active:   u.Active,
		})
	}
	return &dto.UserListResponse{
		Users: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
