package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/induspriya/attendance-portal/internal/config"
	"github.com/induspriya/attendance-portal/internal/domain/auth"
	appHTTP "github.com/induspriya/attendance-portal/internal/handler/http"
	"github.com/induspriya/attendance-portal/internal/pkg/database"
	"github.com/induspriya/attendance-portal/internal/pkg/jwt"
	"github.com/induspriya/attendance-portal/internal/pkg/oauth"
	"github.com/induspriya/attendance-portal/internal/repository/postgresql"
	attendanceService "github.com/induspriya/attendance-portal/internal/service/attendance"
	authService "github.com/induspriya/attendance-portal/internal/service/auth"
	holidayService "github.com/induspriya/attendance-portal/internal/service/holiday"
	leaveService "github.com/induspriya/attendance-portal/internal/service/leave"
	newsService "github.com/induspriya/attendance-portal/internal/service/news"
	userService "github.com/induspriya/attendance-portal/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	newsRepo := postgresql.NewNewsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	// The verifier backing AuthRequired is chosen by configuration; the
	// static mode exists for test rigs and never ships with a secret.
	var verifier auth.Verifier = jwtService
	if cfg.Auth.Mode == "static" {
		verifier = jwt.NewStaticVerifier(nil)
		logger.Warn("Static auth mode enabled; all bearer tokens will be rejected unless registered")
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, nil)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, nil)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, nil)
	newsSvc := newsService.NewNewsService(newsRepo, nil)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Logger:      logger,
		FrontendURL: cfg.App.FrontendURL,
		Verifier:    verifier,

		AuthHandler:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		HolidayHandler:    appHTTP.NewHolidayHandler(holidaySvc),
		NewsHandler:       appHTTP.NewNewsHandler(newsSvc),
		UserHandler:       appHTTP.NewUserHandler(userSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-portal"),
		slog.String("env", cfg.App.Env),
	)
}
