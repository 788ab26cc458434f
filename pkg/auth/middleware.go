package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Stiofain-MacMathuna/airgead/pkg/utils"
)

type ContextKey string

const UsernameKey ContextKey = "username"

// AuthMiddleware resolves the principal from the bearer token and stores the
// username in the request context. Handlers pass it on explicitly; nothing
// below the middleware reads ambient auth state.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
