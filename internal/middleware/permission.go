package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/model"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

// RequireCapability gates a route group on the session role's static
// capability set. It runs after Authenticate; a missing session user is
// treated as unauthorized rather than panicking.
func RequireCapability(capability model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok {
			abortWithError(c, apperrors.NewUnauthorized("authentication required", nil))
			return
		}
		if !model.PermissionsFor(user.Role).Allows(capability) {
			abortWithError(c, apperrors.NewForbidden("permission denied"))
			return
		}
		c.Next()
	}
}
