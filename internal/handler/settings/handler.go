package settings

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/model"
	backupsvc "github.com/jwalitptl/clinic-api/internal/service/backup"
	setupsvc "github.com/jwalitptl/clinic-api/internal/service/setup"
)

type Handler struct {
	setup  *setupsvc.Service
	backup *backupsvc.Service
}

func NewHandler(setup *setupsvc.Service, backup *backupsvc.Service) *Handler {
	return &Handler{setup: setup, backup: backup}
}

// RegisterStatusRoutes mounts the setup status probe, readable by any
// authenticated session so clients can tell whether the wizard is due.
func (h *Handler) RegisterStatusRoutes(r *gin.RouterGroup) {
	r.GET("/status", h.Status)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/setup", h.CompleteSetup)
	r.PUT("", h.Update)
	r.POST("/clear-data", h.ClearData)
	r.GET("/backup", h.Export)
	r.POST("/backup", h.Import)
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.setup.Status(c.Request.Context())))
}

func (h *Handler) CompleteSetup(c *gin.Context) {
	var req model.CompleteSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	settings, err := h.setup.Complete(c.Request.Context(), &req)
	if errors.Is(err, setupsvc.ErrAlreadyComplete) {
		c.JSON(http.StatusConflict, handler.NewErrorResponse("setup already completed"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to complete setup"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(settings))
}

func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	settings, err := h.setup.Update(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to update settings"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(settings))
}

func (h *Handler) ClearData(c *gin.Context) {
	if err := h.setup.ClearData(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to clear data"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("all data cleared"))
}

func (h *Handler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="clinic-backup.json"`)
	c.JSON(http.StatusOK, h.backup.Export(c.Request.Context()))
}

func (h *Handler) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("failed to read backup"))
		return
	}
	if err := h.backup.Import(c.Request.Context(), data); err != nil {
		if errors.Is(err, backupsvc.ErrParse) {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("malformed backup document"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to import backup"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("backup imported"))
}
