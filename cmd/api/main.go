package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-api/config"
	"github.com/jwalitptl/clinic-api/internal/email"
	"github.com/jwalitptl/clinic-api/internal/handler"
	appointmentHandler "github.com/jwalitptl/clinic-api/internal/handler/appointment"
	authHandler "github.com/jwalitptl/clinic-api/internal/handler/auth"
	doctorHandler "github.com/jwalitptl/clinic-api/internal/handler/doctor"
	inventoryHandler "github.com/jwalitptl/clinic-api/internal/handler/inventory"
	invoiceHandler "github.com/jwalitptl/clinic-api/internal/handler/invoice"
	notificationHandler "github.com/jwalitptl/clinic-api/internal/handler/notification"
	patientHandler "github.com/jwalitptl/clinic-api/internal/handler/patient"
	recordsHandler "github.com/jwalitptl/clinic-api/internal/handler/records"
	reportHandler "github.com/jwalitptl/clinic-api/internal/handler/report"
	settingsHandler "github.com/jwalitptl/clinic-api/internal/handler/settings"
	treatmentHandler "github.com/jwalitptl/clinic-api/internal/handler/treatment"
	userHandler "github.com/jwalitptl/clinic-api/internal/handler/user"
	"github.com/jwalitptl/clinic-api/internal/middleware"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/router"
	alertService "github.com/jwalitptl/clinic-api/internal/service/alert"
	appointmentService "github.com/jwalitptl/clinic-api/internal/service/appointment"
	authService "github.com/jwalitptl/clinic-api/internal/service/auth"
	backupService "github.com/jwalitptl/clinic-api/internal/service/backup"
	billingService "github.com/jwalitptl/clinic-api/internal/service/billing"
	doctorService "github.com/jwalitptl/clinic-api/internal/service/doctor"
	inventoryService "github.com/jwalitptl/clinic-api/internal/service/inventory"
	notificationService "github.com/jwalitptl/clinic-api/internal/service/notification"
	patientService "github.com/jwalitptl/clinic-api/internal/service/patient"
	recordsService "github.com/jwalitptl/clinic-api/internal/service/records"
	reportService "github.com/jwalitptl/clinic-api/internal/service/report"
	setupService "github.com/jwalitptl/clinic-api/internal/service/setup"
	treatmentService "github.com/jwalitptl/clinic-api/internal/service/treatment"
	userService "github.com/jwalitptl/clinic-api/internal/service/user"
	"github.com/jwalitptl/clinic-api/internal/store"
	pkgauth "github.com/jwalitptl/clinic-api/pkg/auth"
	"github.com/jwalitptl/clinic-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "clinic-api",
	})

	st, err := openStore(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	ctx := context.Background()
	reg, err := repository.NewRegistry(ctx, st)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load registry")
	}

	jwtSvc := pkgauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	var sender email.Sender = email.NopSender{}
	if cfg.SMTP.Enabled {
		sender = email.NewSMTPSender(cfg.SMTP)
	}

	authSvc := authService.NewService(reg, st, jwtSvc, cfg.Auth)
	patientSvc := patientService.NewService(reg)
	doctorSvc := doctorService.NewService(reg)
	appointmentSvc := appointmentService.NewService(reg)
	treatmentSvc := treatmentService.NewService(reg)
	billingSvc := billingService.NewService(reg)
	recordsSvc := recordsService.NewService(reg)
	inventorySvc := inventoryService.NewService(reg)
	notificationSvc := notificationService.NewService(reg, sender, cfg.SMTP.NotifyTo)
	alertSvc := alertService.NewService(reg)
	reportSvc := reportService.NewService(reg)
	setupSvc := setupService.NewService(reg)
	backupSvc := backupService.NewService(reg)
	userSvc := userService.NewService(reg, authSvc.Hasher(), cfg.Auth.BootstrapUsername)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	handlers := router.Handlers{
		Auth:         authHandler.NewHandler(authSvc),
		Patient:      patientHandler.NewHandler(patientSvc),
		Doctor:       doctorHandler.NewHandler(doctorSvc),
		Appointment:  appointmentHandler.NewHandler(appointmentSvc),
		Treatment:    treatmentHandler.NewHandler(treatmentSvc),
		Invoice:      invoiceHandler.NewHandler(billingSvc),
		Records:      recordsHandler.NewHandler(recordsSvc),
		Inventory:    inventoryHandler.NewHandler(inventorySvc),
		Notification: notificationHandler.NewHandler(notificationSvc, alertSvc),
		Report:       reportHandler.NewHandler(reportSvc),
		Settings:     settingsHandler.NewHandler(setupSvc, backupSvc),
		User:         userHandler.NewHandler(userSvc),
		Health:       handler.NewHealth(nil),
	}

	r := router.New(authMiddleware, reg, handlers, router.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:        cfg.RateLimit.Burst,
		CORSConfig:       middleware.DefaultCORSConfig(),
		MetricsEnabled:   cfg.Monitoring.PrometheusEnabled,
		MetricsPrefix:    "clinic_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("store", cfg.Store.Backend).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

// openStore builds the configured slot store, wrapping it with at-rest
// encryption when a key is set.
func openStore(cfg config.StoreConfig) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		st = store.NewMemoryStore()
	case config.BackendFile:
		st, err = store.NewFileStore(cfg.Dir)
	case config.BackendRedis:
		st, err = store.NewRedisStore(cfg.RedisURL)
	case config.BackendPostgres:
		st, err = store.NewPostgresStore(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	if cfg.EncryptionKey != "" {
		return store.NewEncryptedStore(st, cfg.EncryptionKey)
	}
	return st, nil
}
