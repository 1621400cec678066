//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feedback_test
package feedback

import (
	"context"

	"errandgo/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, feedback entities.AppFeedback) (*entities.AppFeedback, error)
	Summary(ctx context.Context) (*entities.FeedbackSummary, error)
}
