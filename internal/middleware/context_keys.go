package middleware

import (
	"github.com/blogweb/backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userCtxKey is the key used to store the authenticated user in the request
// context.
const userCtxKey = contextKey("authUser")

// GetUserFromContext retrieves the authenticated user from the Gin context.
// It returns the user (safe view, no password hash) and a boolean indicating
// whether a user was attached by the auth middleware.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal := c.Request.Context().Value(userCtxKey)
	if userVal == nil {
		return nil, false
	}
	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
