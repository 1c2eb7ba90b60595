package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the Bearer token to a full user record and stores it
// as the request's actor. Capability flags always come from the database, not
// the token: a revoked admin loses access on the next request even while their
// token is still valid.
func AuthMiddleware(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header must be a Bearer token", nil)
			c.Abort()
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			// Valid token but no user row: account was deleted.
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyActor), user)
		c.Next()
	}
}

// Actor returns the resolved user for the current request, or nil on
// unauthenticated routes.
func Actor(c *gin.Context) *domain.User {
	v, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
