package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-booking-backend/config"
	_ "go-booking-backend/docs" // Important for Swagger
	v1 "go-booking-backend/internal/delivery/http/v1"
	"go-booking-backend/internal/domain"
	"go-booking-backend/internal/repository/postgres"
	pgmigrations "go-booking-backend/internal/repository/postgres/migrations"
	"go-booking-backend/internal/repository/sqlite"
	"go-booking-backend/internal/usecase"
	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/database"
	"go-booking-backend/pkg/email"
	"go-booking-backend/pkg/logger"
	"go-booking-backend/pkg/validation"
)

// store bundles the repositories of whichever driver is configured.
type store struct {
	appointments domain.AppointmentRepository
	contacts     domain.ContactRepository
	roles        domain.RoleRepository
	pinger       usecase.Pinger
	close        func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Database connection established", "driver", "sqlite", "path", cfg.SQLitePath)
		return &store{
			appointments: s.Appointments(),
			contacts:     s.Contacts(),
			roles:        s.Roles(),
			pinger:       s,
			close:        func() { _ = s.Close() },
		}, nil
	default:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := database.ApplyPostgresMigrations(ctx, pool, pgmigrations.FS, ""); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			appointments: postgres.NewAppointmentRepository(pool),
			contacts:     postgres.NewContactRepository(pool),
			roles:        postgres.NewRoleRepository(pool),
			pinger:       pool,
			close:        pool.Close,
		}, nil
	}
}

// @title           Booking Backend API
// @version         1.0
// @description     Appointment booking and contact intake with email notification and an authenticated review dashboard.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting booking backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Database
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStore(startCtx, cfg)
	if err != nil {
		cancelStart()
		logger.Log.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.close()

	for _, id := range cfg.AdminUserIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if err := st.roles.GrantRole(startCtx, id, domain.RoleAdmin); err != nil {
			logger.Log.Error("Failed to grant admin role", "user_id", id, "error", err)
		}
	}
	cancelStart()

	// 4. Setup Email Service
	notifier, err := email.NewNotifier(cfg)
	if err != nil {
		logger.Log.Error("Failed to setup email service", "error", err)
		st.close()
		os.Exit(1)
	}
	if !notifier.IsConfigured() {
		logger.Log.Warn("Email service not configured - notifications will be skipped")
	}
	dispatcher := usecase.NewNotifyDispatcher(notifier, cfg.NotifyTimeout)

	// 5. Setup UseCases
	validate := validation.New()
	submissionUC := usecase.NewSubmissionUsecase(st.appointments, st.contacts, validate, dispatcher)
	reviewUC := usecase.NewReviewUsecase(st.appointments, st.contacts)
	healthUC := usecase.NewHealthUsecase(st.pinger, notifier)

	// 6. Setup Auth (HS256 secret, RS256 via JWKS)
	var jwks *auth.Provider
	if url := cfg.JWKSURL(); url != "" {
		jwks = auth.NewProvider(url)
	}
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret, jwks)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		ReviewUC:     reviewUC,
		HealthUC:     healthUC,
		Notifier:     notifier,
		Roles:        st.roles,
		Verifier:     verifier,
		Validator:    validate,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.NotifyTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	if err := dispatcher.Close(ctx); err != nil {
		logger.Log.Error("Pending notifications abandoned", "error", err)
	}

	logger.Log.Info("Server exiting")
}
