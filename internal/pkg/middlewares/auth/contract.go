package auth

import (
	"context"

	"errandgo/internal/pkg/session"
	"errandgo/pkg/logger"
)

type SessionStore interface {
	Get(ctx context.Context, token string) (session.Session, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
