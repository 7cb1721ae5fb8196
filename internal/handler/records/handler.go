package records

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	recordsvc "github.com/jwalitptl/clinic-api/internal/service/records"
)

type Handler struct {
	svc *recordsvc.Service
}

func NewHandler(svc *recordsvc.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterFileRoutes mounts the aggregated patient-file view.
func (h *Handler) RegisterFileRoutes(r *gin.RouterGroup) {
	r.GET("/:id/file", h.PatientFile)
}

func (h *Handler) RegisterNoteRoutes(r *gin.RouterGroup) {
	r.POST("", h.CreateNote)
	r.GET("", h.ListNotes)
	r.DELETE("/:id", h.DeleteNote)
}

func (h *Handler) RegisterPrescriptionRoutes(r *gin.RouterGroup) {
	r.POST("", h.CreatePrescription)
	r.GET("", h.ListPrescriptions)
	r.GET("/:id", h.GetPrescription)
	r.DELETE("/:id", h.DeletePrescription)
}

func (h *Handler) RegisterXRayRoutes(r *gin.RouterGroup) {
	r.POST("", h.CreateXRay)
	r.GET("", h.ListXRays)
	r.GET("/:id", h.GetXRay)
	r.DELETE("/:id", h.DeleteXRay)
}

func (h *Handler) PatientFile(c *gin.Context) {
	file, err := h.svc.File(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to load patient file"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(file))
}

func (h *Handler) CreateNote(c *gin.Context) {
	var req model.CreatePatientNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	createdBy := ""
	if user, ok := middleware.SessionUser(c); ok {
		createdBy = user.Name
	}
	note, err := h.svc.CreateNote(c.Request.Context(), &req, createdBy)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to create note"))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(note))
}

func (h *Handler) ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(
		h.svc.ListNotes(c.Request.Context(), c.Query("patient_id"))))
}

func (h *Handler) DeleteNote(c *gin.Context) {
	err := h.svc.DeleteNote(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("note not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to delete note"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("note deleted"))
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	p, err := h.svc.CreatePrescription(c.Request.Context(), &req)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to create prescription"))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) ListPrescriptions(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(
		h.svc.ListPrescriptions(c.Request.Context(), c.Query("patient_id"))))
}

func (h *Handler) GetPrescription(c *gin.Context) {
	p, err := h.svc.GetPrescription(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("prescription not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to get prescription"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) DeletePrescription(c *gin.Context) {
	err := h.svc.DeletePrescription(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("prescription not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to delete prescription"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("prescription deleted"))
}

func (h *Handler) CreateXRay(c *gin.Context) {
	var req model.CreateXRayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	x, err := h.svc.CreateXRay(c.Request.Context(), &req)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to store x-ray"))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(x))
}

func (h *Handler) ListXRays(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(
		h.svc.ListXRays(c.Request.Context(), c.Query("patient_id"))))
}

func (h *Handler) GetXRay(c *gin.Context) {
	x, err := h.svc.GetXRay(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("x-ray not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to get x-ray"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(x))
}

func (h *Handler) DeleteXRay(c *gin.Context) {
	err := h.svc.DeleteXRay(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("x-ray not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to delete x-ray"))
		return
	}
	c.JSON(http.StatusOK, handler.NewMessageResponse("x-ray deleted"))
}
