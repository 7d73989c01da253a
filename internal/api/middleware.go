package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/user"
)

// NewIdentityLoader adapts the user service into the loader the auth
// middleware uses to attach role flags to every authenticated request.
func NewIdentityLoader(userService user.Service) auth.IdentityLoader {
	return func(ctx context.Context, userID string) (auth.Identity, error) {
		u, err := userService.GetByID(ctx, userID)
		if err != nil {
			return auth.Identity{}, err
		}
		return auth.Identity{
			IsAdmin:  u.IsAdmin,
			IsSitter: u.IsSitter && u.SitterApproved,
			IsActive: u.IsActive,
		}, nil
	}
}

// RequireSitter ensures the caller is an approved sitter.
// It MUST be used after auth.AuthRequired.
func RequireSitter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.GetIsSitter(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: approved sitter account required",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin ensures the caller has the admin role.
// It MUST be used after auth.AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.GetIsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: admin access required",
			})
			return
		}
		c.Next()
	}
}
