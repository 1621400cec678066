//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"errandgo/internal/entities"
)

type UserRepository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID int64, role entities.UserRoleType) (string, error)
	Delete(ctx context.Context, token string) error
}
