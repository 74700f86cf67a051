package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/pkg/token"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	shopSlugKey contextKey = "shop_slug"

	bearerPrefix = "Bearer "

	msgMissingToken = "Отсутствует заголовок Authorization"
	msgInvalidToken = "Недействительный токен"
	msgExpiredToken = "Срок действия токена истёк"
)

// Auth проверяет Bearer токен и кладёт user_id владельца барбершопа в контекст
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Warn("%s %s - Missing Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Invalid Authorization format", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				if errors.Is(err, token.ErrExpiredToken) {
					logger.Warn("%s %s - Token expired", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredToken)
					return
				}
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = context.WithValue(ctx, shopSlugKey, claims.ShopSlug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID кладёт user_id в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает user_id из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// GetShopSlug извлекает slug барбершопа из контекста
func GetShopSlug(ctx context.Context) string {
	slug, _ := ctx.Value(shopSlugKey).(string)
	return slug
}
