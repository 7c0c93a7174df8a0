package user

import (
	"context"
)

// Repository is the persistence contract the engine depends on. Lookups
// return (nil, nil) on a miss; CreateUser persists the user together with
// its phones in one transaction and reports a duplicate email as a
// conflict error.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateToken(ctx context.Context, id UUID, token string) (*User, error)
	TouchLastLogin(ctx context.Context, id UUID) (*User, error)
}
