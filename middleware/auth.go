package middleware

import (
	"alertsystem/models"
	"alertsystem/services"
	"alertsystem/utils"
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthMiddleware struct {
	authService *services.AuthService
}

func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth validates the bearer token and loads the user into the context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Authentication token required")
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, claims, err := am.authService.Authenticate(ctx, token)
		if err != nil {
			logrus.WithField("path", c.Request.URL.Path).Debugf("Rejected token: %v", err)
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(utils.ContextUser, user)
		c.Set(utils.ContextUserID, user.ID.Hex())
		c.Set(utils.ContextUserRole, string(user.Role))
		c.Set(utils.ContextClaims, claims)

		c.Next()
	}
}

// RequireRole admits callers holding any of roles. It must run after RequireAuth.
func (am *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetCurrentUser(c)
		if user == nil {
			utils.UnauthorizedResponse(c, "User not authenticated")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.ForbiddenResponse(c, "Insufficient permissions")
		c.Abort()
	}
}

// ExtractToken reads the bearer header, then the token query parameter.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	return c.Query("token")
}
