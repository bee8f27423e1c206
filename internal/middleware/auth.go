package middleware

import (
	"context"
	"net/http"
	"plinko_backend/internal/config"
	"plinko_backend/internal/repository"
	"plinko_backend/pkg/resp"
	"plinko_backend/pkg/token"
	"strings"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIDFromContext - возвращает UID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey).(string)
	return uid, ok
}

// Auth проверяет Bearer access токен и кладет UID пользователя в контекст
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				resp.WriteJSONError(w, http.StatusUnauthorized, "authentication token is required")
				return
			}

			claims, err := token.VerifyToken(tokenStr, jwtCfg.AccessTokenSecretKey())
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пускает дальше только пользователей с ролью admin.
// Ставится после Auth
func RequireAdmin(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := UserIDFromContext(r.Context())
			if !ok {
				resp.WriteJSONError(w, http.StatusUnauthorized, "authentication token is required")
				return
			}

			user, err := userRepo.GetUserByUID(r.Context(), uid)
			if err != nil || user.Role != "admin" {
				resp.WriteJSONError(w, http.StatusForbidden, "admin role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
