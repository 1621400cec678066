//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runner_test
package runner

import (
	"context"

	"errandgo/internal/entities"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profileModifyEntity entities.RunnerProfileModify) (*entities.RunnerProfile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*entities.RunnerProfile, error)
	UpdateProfile(ctx context.Context, profileModifyEntity entities.RunnerProfileModify) (*entities.RunnerProfile, error)
	ListByCity(ctx context.Context, city string) ([]entities.RunnerListing, error)
}

type ErrandRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Errand, error)
	ListPendingByCity(ctx context.Context, city string, runnerID int64) ([]entities.AvailableErrand, error)
}

type UserService interface {
	UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
