package notification

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	alertsvc "github.com/jwalitptl/clinic-api/internal/service/alert"
	notificationsvc "github.com/jwalitptl/clinic-api/internal/service/notification"
)

type Handler struct {
	svc    *notificationsvc.Service
	alerts *alertsvc.Service
}

func NewHandler(svc *notificationsvc.Service, alerts *alertsvc.Service) *Handler {
	return &Handler{svc: svc, alerts: alerts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/unread-count", h.UnreadCount)
	r.GET("/alerts", h.Alerts)
	r.POST("/:id/read", h.MarkRead)
	r.POST("/read-all", h.MarkAllRead)
	r.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	n, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to create notification"))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(n))
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.List(c.Request.Context())))
}

func (h *Handler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count": h.svc.UnreadCount(c.Request.Context()),
	}))
}

// Alerts returns the live alert set recomputed from current data.
func (h *Handler) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(
		h.alerts.Derive(c.Request.Context(), time.Now())))
}

func (h *Handler) MarkRead(c *gin.Context) {
	n, err := h.svc.MarkRead(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("notification not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to mark notification read"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(n))
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to mark notifications read"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("all notifications marked read"))
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("notification not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to delete notification"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("notification deleted"))
}
