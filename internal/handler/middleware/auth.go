package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		act, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, act)
		c.Set("jwt_claims", map[string]any{
			"actor_id": act.ID.String(),
			"role":     act.Role.String(),
		})
		c.Next()
	}
}

// RequireRole restricts a route to one role beyond authentication; admins
// always pass.
func (m *AuthMiddleware) RequireRole(role actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		act, ok := GetActor(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if act.Role != role && !act.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (actor.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Actor{}, false
	}

	act, ok := v.(actor.Actor)
	return act, ok
}
