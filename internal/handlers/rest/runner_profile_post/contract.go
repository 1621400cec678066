//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runner_profile_post_test
package runner_profile_post

import (
	"context"
	"io"

	"errandgo/internal/entities"
	"errandgo/internal/pkg/session"
	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RegisterRunner(ctx context.Context, profileModify entities.RunnerProfileModify) (*entities.RunnerProfile, error)
}

type UploadStore interface {
	Save(userID int64, kind, originalName string, src io.Reader) (string, error)
}

type SessionStore interface {
	Update(ctx context.Context, token string, sess session.Session) error
}
