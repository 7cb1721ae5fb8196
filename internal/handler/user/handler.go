package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	usersvc "github.com/jwalitptl/clinic-api/internal/service/user"
)

type Handler struct {
	svc *usersvc.Service
}

func NewHandler(svc *usersvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	u, err := h.svc.Create(c.Request.Context(), &req)
	switch {
	case errors.Is(err, usersvc.ErrUsernameTaken):
		c.JSON(http.StatusConflict, handler.NewErrorResponse("username already taken"))
		return
	case errors.Is(err, usersvc.ErrLinkedDoctorMissing):
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("linked doctor not found"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to create user"))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(u))
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.List(c.Request.Context())))
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("user not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to get user"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	u, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("user not found"))
		return
	case errors.Is(err, usersvc.ErrUsernameTaken):
		c.JSON(http.StatusConflict, handler.NewErrorResponse("username already taken"))
		return
	case errors.Is(err, usersvc.ErrBootstrapImmutable):
		c.JSON(http.StatusForbidden, handler.NewErrorResponse("bootstrap admin cannot be managed"))
		return
	case errors.Is(err, usersvc.ErrLinkedDoctorMissing):
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("linked doctor not found"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to update user"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("user not found"))
		return
	case errors.Is(err, usersvc.ErrBootstrapImmutable):
		c.JSON(http.StatusForbidden, handler.NewErrorResponse("bootstrap admin cannot be managed"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to delete user"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("user deleted"))
}
