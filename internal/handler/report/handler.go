package report

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/handler"
	reportsvc "github.com/jwalitptl/clinic-api/internal/service/report"
)

var (
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

type Handler struct {
	svc *reportsvc.Service
}

func NewHandler(svc *reportsvc.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterDashboardRoutes mounts the dashboard snapshot separately since
// every role that can log in may see it.
func (h *Handler) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("", h.Dashboard)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/monthly", h.Monthly)
	r.GET("/yearly", h.Yearly)
	r.GET("/doctors", h.Doctors)
	r.GET("/treatments", h.TreatmentTypes)
	r.GET("/financial", h.Financial)
}

func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(
		h.svc.Dashboard(c.Request.Context(), time.Now())))
}

func (h *Handler) Monthly(c *gin.Context) {
	month := c.Query("month")
	if !monthPattern.MatchString(month) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("month must be YYYY-MM"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Monthly(c.Request.Context(), month)))
}

func (h *Handler) Yearly(c *gin.Context) {
	year := c.Query("year")
	if !yearPattern.MatchString(year) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("year must be YYYY"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Yearly(c.Request.Context(), year)))
}

func (h *Handler) Doctors(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Doctors(c.Request.Context())))
}

func (h *Handler) TreatmentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.TreatmentTypes(c.Request.Context())))
}

func (h *Handler) Financial(c *gin.Context) {
	year := c.Query("year")
	if !yearPattern.MatchString(year) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("year must be YYYY"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Financial(c.Request.Context(), year)))
}
