package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/utils"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

// ContextUserKey is where Auth stores the resolved *models.User.
const ContextUserKey = "currentUser"

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// Auth resolves the caller from the bearer token and attaches the user
// record to the request context. The token only carries the subject id;
// the user row is loaded on every request so deleted accounts lose access
// immediately.
func Auth(users *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "Authorization header required.")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthenticated(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			abortUnauthenticated(c, "Invalid or expired token.")
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			logger.Log.Error("Failed to resolve token subject",
				zap.String("user_id", claims.UserID.String()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal Server Error",
			})
			return
		}
		if user == nil {
			// Token is valid but the account is gone
			abortUnauthenticated(c, "User not authenticated.")
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Auth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireRoles gates a route to the given set of roles. Responds 401 when
// no authenticated user is present at all, 403 on a role mismatch.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthenticated(c, "User not authenticated.")
			return
		}

		allowed := make([]string, len(roles))
		for i, role := range roles {
			allowed[i] = string(role)
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. Required role: " + strings.Join(allowed, " or "),
		})
	}
}
