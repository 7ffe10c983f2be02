package auth

import (
	"context"

	"fleetrental/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
}

type jwtService interface {
	GenerateToken(userID int64, username, role string) (string, error)
}
