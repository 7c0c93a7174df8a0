package ports

import (
	"context"

	"user-registration-api/internal/domain/user"
)

type Auth interface {
	Login(ctx context.Context, email, password string) (*user.User, error)
}
