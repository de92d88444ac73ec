package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lawconnect.backend/internal/config"
	"lawconnect.backend/internal/infrastructure/datasources/postgres"
	"lawconnect.backend/internal/infrastructure/email"
	"lawconnect.backend/internal/infrastructure/jobs"
	"lawconnect.backend/internal/infrastructure/repositories"
	"lawconnect.backend/internal/infrastructure/storage"
	"lawconnect.backend/internal/interfaces/http/handlers"
	"lawconnect.backend/internal/interfaces/http/middleware"
	"lawconnect.backend/internal/usecases"
	"lawconnect.backend/internal/validation"
	"lawconnect.backend/pkg/jwt"
	"lawconnect.backend/pkg/logger"
	"lawconnect.backend/pkg/redis"
)

const (
	shutdownTimeout   = 10 * time.Second
	limiterIdle       = 10 * time.Minute
	limiterPruneEvery = time.Minute
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	migrateDB  = postgres.Migrate
	newStorage = storage.New
	runServer  = func(srv *http.Server) error { return srv.ListenAndServe() }
	notifyStop = func() <-chan os.Signal {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		return quit
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it token revocation and idempotency are disabled
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer func() { _ = redis.Close() }()
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := migrateDB(db); err != nil {
		return err
	}
	logger.Info(context.Background(), "Connected to database")

	if err := validation.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app := buildApp(cfg, db, store)

	otpJob := jobs.NewOTPExpiryJob(app.otpRepo, cfg.OTP.TTL, cfg.OTP.SweepInterval)
	go otpJob.Start(ctx)
	defer otpJob.Stop()
	go app.authLimiter.Run(ctx, limiterPruneEvery)

	r, err := newRouter(cfg, app.routes, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "LawConnect backend starting", zap.String("port", cfg.Server.Port))

	errCh := make(chan error, 1)
	go func() { errCh <- runServer(srv) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-notifyStop():
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type app struct {
	routes      routeDeps
	otpRepo     *repositories.OTPRepository
	authLimiter *middleware.RateLimiter
}

func buildApp(cfg *config.Config, db *gorm.DB, store storage.Storage) *app {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	userRepo := repositories.NewUserRepository(db)
	caseRepo := repositories.NewCaseRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	feeRepo := repositories.NewFeeRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	uow := repositories.NewUnitOfWork(db)

	mailer := email.NewResendMailer(cfg.Email.APIKey, cfg.Email.From)
	if mailer.DevMode() {
		logger.Warn(context.Background(), "EMAIL_PROVIDER_API_KEY not set, OTP emails are logged only")
	}

	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, mailer, jwtService, redis.NewRevocationList(), cfg.OTP.TTL)
	caseUsecase := usecases.NewCaseUsecase(caseRepo, userRepo, uow)
	clientUsecase := usecases.NewClientUsecase(clientRepo)
	feeUsecase := usecases.NewFeeUsecase(feeRepo)
	uploadUsecase := usecases.NewUploadUsecase(userRepo, fileRepo, store, uow)
	profileUsecase := usecases.NewProfileUsecase(userRepo, uploadUsecase)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst, limiterIdle)

	return &app{
		otpRepo:     otpRepo,
		authLimiter: limiter,
		routes: routeDeps{
			authHandler:     handlers.NewAuthHandler(authUsecase, cfg.IsProduction()),
			caseHandler:     handlers.NewCaseHandler(caseUsecase),
			clientHandler:   handlers.NewClientHandler(clientUsecase),
			feeHandler:      handlers.NewFeeHandler(feeUsecase),
			userHandler:     handlers.NewUserHandler(profileUsecase, cfg.Upload.MaxBytes),
			uploadHandler:   handlers.NewUploadHandler(uploadUsecase, cfg.Upload.MaxBytes),
			authMiddleware:  middleware.AuthMiddleware(authUsecase),
			adminMiddleware: middleware.AdminMiddleware(cfg.Security.AdminToken),
			authRateLimit:   limiter.Middleware(),
		},
	}
}
