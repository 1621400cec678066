//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_test
package errand

import (
	"context"

	"errandgo/internal/entities"
	"errandgo/internal/pkg/factory/price_estimate"
)

type Repository interface {
	Create(ctx context.Context, errandModifyEntity entities.ErrandModify) (*entities.Errand, error)
	GetByID(ctx context.Context, id int64) (*entities.Errand, error)
	Update(ctx context.Context, errandModifyEntity entities.ErrandModify) (*entities.Errand, error)
	ListByClient(ctx context.Context, clientID int64) ([]entities.Errand, error)
	ListCompletedByClient(ctx context.Context, clientID int64) ([]entities.Errand, error)
	StatusCounts(ctx context.Context, clientID int64) (entities.ErrandStatusCounts, error)
}

type ActiveErrandRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.ActiveErrand, error)
	GetByErrandID(ctx context.Context, errandID int64) (*entities.ActiveErrand, error)
	Complete(ctx context.Context, id, runnerID int64) (*entities.ActiveErrand, error)
}

type FeeConfigRepository interface {
	GetLatest(ctx context.Context) (*entities.FeeConfig, error)
}

type PriceFactory interface {
	Estimate(category entities.ErrandCategory, in price_estimate.Input) (float64, error)
}

type EventGateway interface {
	PublishStatusChanged(ctx context.Context, event entities.ErrandEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
