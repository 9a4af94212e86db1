// Package auth проверяет сессионную cookie и кладёт Principal в контекст.
// Выдача токенов - вне этого сервиса, мы только проверяем подпись.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"service/internal/entities"
	"service/pkg/logger"
)

const SessionCookieName = "session"

type principalKey struct{}

type sessionClaims struct {
	UserID  int64  `json:"user_id"`
	DonorID int64  `json:"donor_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware разрешает личность вызывающего один раз на запрос.
// Запрос без валидной cookie дальше не проходит.
func Middleware(log handlerLogger, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			principal, err := parseSession(cookie.Value, secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid session token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole навешивается после Middleware на admin/driver/marketplace маршруты.
func RequireRole(role entities.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if principal.Role != role {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(entities.Principal)
	return principal, ok
}

// ContextWithPrincipal используется в тестах хэндлеров.
func ContextWithPrincipal(ctx context.Context, principal entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func parseSession(token string, secret []byte) (entities.Principal, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return entities.Principal{}, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return entities.Principal{}, fmt.Errorf("session token is not valid")
	}

	return entities.Principal{
		UserID:  claims.UserID,
		DonorID: claims.DonorID,
		Role:    entities.UserRole(claims.Role),
	}, nil
}
