package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-api/internal/handler"
	apptH "github.com/jwalitptl/clinic-api/internal/handler/appointment"
	authH "github.com/jwalitptl/clinic-api/internal/handler/auth"
	doctorH "github.com/jwalitptl/clinic-api/internal/handler/doctor"
	inventoryH "github.com/jwalitptl/clinic-api/internal/handler/inventory"
	invoiceH "github.com/jwalitptl/clinic-api/internal/handler/invoice"
	notificationH "github.com/jwalitptl/clinic-api/internal/handler/notification"
	patientH "github.com/jwalitptl/clinic-api/internal/handler/patient"
	recordsH "github.com/jwalitptl/clinic-api/internal/handler/records"
	reportH "github.com/jwalitptl/clinic-api/internal/handler/report"
	settingsH "github.com/jwalitptl/clinic-api/internal/handler/settings"
	treatmentH "github.com/jwalitptl/clinic-api/internal/handler/treatment"
	userH "github.com/jwalitptl/clinic-api/internal/handler/user"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth         *authH.Handler
	Patient      *patientH.Handler
	Doctor       *doctorH.Handler
	Appointment  *apptH.Handler
	Treatment    *treatmentH.Handler
	Invoice      *invoiceH.Handler
	Records      *recordsH.Handler
	Inventory    *inventoryH.Handler
	Notification *notificationH.Handler
	Report       *reportH.Handler
	Settings     *settingsH.Handler
	User         *userH.Handler
	Health       *handler.Health
}

type Config struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORSConfig       middleware.CORSConfig
	MetricsEnabled   bool
	MetricsPrefix    string
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	reg      *repository.Registry
	handlers Handlers
	metrics  *routerMetrics
	config   Config
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func New(auth *middleware.AuthMiddleware, reg *repository.Registry, handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		reg:      reg,
		handlers: handlers,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	if config.MetricsEnabled {
		r.metrics = initRouterMetrics(config.MetricsPrefix)
		engine.Use(r.metricsMiddleware())
	}
	if config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	return r
}

// Setup mounts all routes. Every capability-gated group carries both the
// gate and its handlers, so a role without the capability gets 403 from
// the same route the permitted role uses. Session management and the
// setup status probe stay reachable while setup is pending, so a locked
// role can still see the wait state and log out.
func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.setupHealthCheck(api)

	authGroup := api.Group("/auth")
	r.handlers.Auth.RegisterPublicRoutes(authGroup)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())

	protectedAuth := protected.Group("/auth")
	r.handlers.Auth.RegisterRoutes(protectedAuth)

	settingsStatus := protected.Group("/settings")
	r.handlers.Settings.RegisterStatusRoutes(settingsStatus)

	gated := protected.Group("")
	gated.Use(middleware.SetupGate(r.reg))
	r.setupCapabilityRoutes(gated)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.handlers.Health.LivenessCheck)
		health.GET("/ready", r.handlers.Health.ReadinessCheck)
		health.GET("/metrics", r.handlers.Health.MetricsHandler)
	}
}

func (r *Router) setupCapabilityRoutes(rg *gin.RouterGroup) {
	gate := middleware.RequireCapability

	dashboard := rg.Group("/dashboard", gate(model.CapDashboard))
	r.handlers.Report.RegisterDashboardRoutes(dashboard)

	patients := rg.Group("/patients", gate(model.CapPatients))
	r.handlers.Patient.RegisterRoutes(patients)

	files := rg.Group("/patients", gate(model.CapPatientFiles))
	r.handlers.Records.RegisterFileRoutes(files)

	notes := rg.Group("/patient-notes", gate(model.CapPatientNotes))
	r.handlers.Records.RegisterNoteRoutes(notes)

	doctors := rg.Group("/doctors", gate(model.CapDoctors))
	r.handlers.Doctor.RegisterRoutes(doctors)

	appointments := rg.Group("/appointments", gate(model.CapAppointments))
	r.handlers.Appointment.RegisterRoutes(appointments)

	treatments := rg.Group("/treatments", gate(model.CapTreatments))
	r.handlers.Treatment.RegisterRoutes(treatments)

	invoices := rg.Group("/invoices", gate(model.CapInvoices))
	r.handlers.Invoice.RegisterRoutes(invoices)

	prescriptions := rg.Group("/prescriptions", gate(model.CapPrescriptions))
	r.handlers.Records.RegisterPrescriptionRoutes(prescriptions)

	xrays := rg.Group("/xrays", gate(model.CapXRays))
	r.handlers.Records.RegisterXRayRoutes(xrays)

	inventory := rg.Group("/inventory", gate(model.CapInventory))
	r.handlers.Inventory.RegisterRoutes(inventory)

	notifications := rg.Group("/notifications", gate(model.CapNotifications))
	r.handlers.Notification.RegisterRoutes(notifications)

	reports := rg.Group("/reports", gate(model.CapReports))
	r.handlers.Report.RegisterRoutes(reports)

	settings := rg.Group("/settings", gate(model.CapSettings))
	r.handlers.Settings.RegisterRoutes(settings)

	users := rg.Group("/users", gate(model.CapUserManagement))
	r.handlers.User.RegisterRoutes(users)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
