package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avelinom/vidgate/internal/api/response"
	"github.com/avelinom/vidgate/internal/security"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware handles bearer token authentication
type AuthMiddleware struct {
	jwt *security.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwt *security.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// Authenticate validates the Authorization header and stores the token
// subject in the request context. Missing, malformed, and expired tokens
// all answer 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		userID, err := m.jwt.Validate(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID gets the authenticated user id from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
