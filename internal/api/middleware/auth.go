package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rainbowtours/RTG-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"

	// HeaderUserID идентификатор пользователя, проставляется API gateway
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя, проставляется API gateway
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Auth требует валидный X-User-ID header и кладет userID в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пускает только запросы с ролью admin
// Навешивается поверх Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserRole) != roleAdmin {
			handlers.RespondForbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext достает userID, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
