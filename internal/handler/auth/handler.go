package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/model"
	authsvc "github.com/jwalitptl/clinic-api/internal/service/auth"
)

type Handler struct {
	svc *authsvc.Service
}

func NewHandler(svc *authsvc.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the unauthenticated endpoints.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// RegisterRoutes mounts the endpoints that need a session.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/logout", h.Logout)
	r.GET("/session", h.Session)
	r.GET("/nav", h.Nav)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid credentials"))
		return
	case errors.Is(err, authsvc.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, handler.NewErrorResponse("account disabled"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("login failed"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("logout failed"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("logged out"))
}

// Session returns the persisted session user, restored across restarts.
func (h *Handler) Session(c *gin.Context) {
	user, err := h.svc.CurrentSession(c.Request.Context())
	if errors.Is(err, authsvc.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to read session"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(user.Sanitized()))
}

// Nav returns the navigation items the session role may see, in fixed
// menu order.
func (h *Handler) Nav(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}
	perms := model.PermissionsFor(user.Role)
	items := make([]model.NavItem, 0)
	for _, cap := range model.AllCapabilities {
		if perms.Allows(cap) {
			items = append(items, model.NavItem{Capability: cap, Path: "/" + string(cap)})
		}
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}
