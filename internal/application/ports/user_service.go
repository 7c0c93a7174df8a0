package ports

import (
	"context"

	"user-registration-api/internal/domain/user"
)

type UserService interface {
	RegisterUser(ctx context.Context, u user.User, password string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	TouchLastLogin(ctx context.Context, id user.UUID) (*user.User, error)
}
