package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"errandgo/internal/entities"
	"errandgo/internal/pkg/session"
	"errandgo/pkg/logger"
)

type contextKey int

const (
	sessionKey contextKey = iota
	tokenKey
)

// FromContext returns the session resolved by Middleware. The bool is false
// on routes that are not behind the middleware.
func FromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(session.Session)
	return sess, ok
}

// ContextWithSession attaches a resolved session to the context the same way
// Middleware does.
func ContextWithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// TokenFromContext returns the bearer token the session was resolved from.
// Handlers that rewrite the session under the same token need it.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// ContextWithToken attaches the bearer token the same way Middleware does.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Middleware resolves the Authorization bearer token into a session and puts
// it on the request context. Requests without a valid session get 401.
func Middleware(log handlerLogger, store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			sess, err := store.Get(r.Context(), token)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Error("resolve session")
				}
				writeUnauthorized(w)
				return
			}

			ctx := ContextWithToken(ContextWithSession(r.Context(), sess), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a route to a single role. It must be mounted behind
// Middleware.
func RequireRole(role entities.UserRoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := FromContext(r.Context())
			if !ok {
				writeUnauthorized(w)
				return
			}
			if sess.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
