package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"

	requestIDKey contextKey = "request_id"
)

// RequestID берёт X-Request-ID из запроса или генерирует новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderXRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}

		w.Header().Set(HeaderXRequestID, rid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
	})
}

// GetRequestID возвращает request id из контекста
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}
