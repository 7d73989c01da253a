package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity carries the role and status flags of an authenticated account.
type Identity struct {
	IsAdmin  bool
	IsSitter bool // sitter role, already approved
	IsActive bool
}

// IdentityLoader resolves the account behind a validated token subject.
type IdentityLoader func(ctx context.Context, userID string) (Identity, error)

// AuthRequired is a Gin middleware that validates JWT from
// Authorization: Bearer <token> and loads the caller's identity.
func AuthRequired(jwtManager *JWTManager, loadIdentity IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		if loadIdentity != nil {
			identity, err := loadIdentity(c.Request.Context(), claims.UserID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "account not found",
				})
				return
			}
			if !identity.IsActive {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "account is deactivated",
				})
				return
			}
			SetRoles(c, identity.IsAdmin, identity.IsSitter)
		}

		// Store user info into Gin context for later handlers.
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)

		c.Next()
	}
}
