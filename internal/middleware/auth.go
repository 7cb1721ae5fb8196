package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/model"
	authsvc "github.com/jwalitptl/clinic-api/internal/service/auth"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

// ContextUser is the gin context key under which Authenticate stores the
// resolved user.
const ContextUser = "session_user"

type AuthMiddleware struct {
	authService *authsvc.Service
}

func NewAuthMiddleware(authService *authsvc.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and resolves it to a live user.
// A user deleted or disabled since login fails here even with a valid
// token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.NewUnauthorized("missing authorization header", nil))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.NewUnauthorized("invalid authorization format", nil))
			return
		}

		user, err := m.authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorized("invalid token", err))
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// SessionUser fetches the user Authenticate stored on the context.
func SessionUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
