package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

// SetupGate blocks every non-admin request until the setup wizard has
// completed. Admins pass so they can run the wizard. Runs after
// Authenticate.
func SetupGate(reg *repository.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reg.Settings.Get().IsSetupComplete {
			c.Next()
			return
		}
		user, ok := SessionUser(c)
		if !ok {
			abortWithError(c, apperrors.NewUnauthorized("authentication required", nil))
			return
		}
		if user.Role != model.RoleAdmin {
			abortWithError(c, apperrors.NewLocked("system setup is not complete"))
			return
		}
		c.Next()
	}
}
