package auth

import "github.com/gin-gonic/gin"

const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxIsAdmin   = "userIsAdmin"
	ctxIsSitter  = "userIsSitter"
)

// SetRoles stores the caller's role flags. Called by the identity
// middleware after loading the user record.
func SetRoles(c *gin.Context, isAdmin, isSitter bool) {
	c.Set(ctxIsAdmin, isAdmin)
	c.Set(ctxIsSitter, isSitter)
}

// GetIsAdmin reports whether the caller has the admin role.
func GetIsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(ctxIsAdmin); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetIsSitter reports whether the caller is an approved sitter.
func GetIsSitter(c *gin.Context) bool {
	if v, ok := c.Get(ctxIsSitter); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	if v, ok := c.Get(ctxUserEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
