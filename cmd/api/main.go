package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-screening-backend/config"
	_ "go-screening-backend/docs" // Important for Swagger
	v1 "go-screening-backend/internal/delivery/http/v1"
	"go-screening-backend/internal/repository/postgres"
	"go-screening-backend/internal/usecase"
	"go-screening-backend/pkg/auth"
	"go-screening-backend/pkg/database"
	"go-screening-backend/pkg/logger"
	"go-screening-backend/pkg/security"
	"go-screening-backend/pkg/security/antivirus"
	"go-screening-backend/pkg/storage"
	"go-screening-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Candidate Screening API
// @version         1.0
// @description     Backend for candidate screening: questions, answers, interview videos and CVs.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting screening backend", "port", cfg.Port, "env", cfg.AppEnv)

	auditLog := security.InitSecurityLogger("screening-backend", cfg.AppEnv)
	defer auditLog.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.BootstrapSchema {
		if err := database.EnsureSchema(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to bootstrap schema", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup CV Storage
	cvStore, err := newCVStorage(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to setup CV storage", "storage", cfg.StorageType, "error", err)
		os.Exit(1)
	}

	var scanner antivirus.Scanner = antivirus.NewNoOpScanner()
	if cfg.ClamAVAddress != "" {
		clam := antivirus.NewClamAVScanner(cfg.ClamAVAddress, cfg.ClamAVTimeout)
		if !clam.Available(ctx) {
			logger.Log.Warn("ClamAV not reachable, CV uploads will fail until it is", "address", cfg.ClamAVAddress)
		}
		scanner = clam
	} else {
		logger.Log.Warn("CLAMAV_ADDRESS not set, CV uploads are not scanned")
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	questionRepo := postgres.NewQuestionRepository(dbPool)
	answerRepo := postgres.NewAnswerRepository(dbPool)
	videoRepo := postgres.NewVideoRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      usecase.NewAuthUsecase(userRepo, tokens, auditLog, validate),
		QuestionUC:  usecase.NewQuestionUsecase(questionRepo, validate),
		AnswerUC:    usecase.NewAnswerUsecase(answerRepo, questionRepo, validate),
		VideoUC:     usecase.NewVideoUsecase(videoRepo, validate),
		CVUC:        usecase.NewCVUsecase(cvRepo, cvStore, scanner, cfg.PublicBaseURL),
		DirectoryUC: usecase.NewDirectoryUsecase(userRepo, videoRepo, answerRepo),
		UserUC:      usecase.NewUserUsecase(userRepo, auditLog, validate),
		HealthUC:    usecase.NewHealthUsecase(dbPool),

		Tokens:  tokens,
		Auditor: auditLog,
		Logger:  logger.Log,

		RequireAuth:        cfg.RequireAuth,
		ExposeErrorDetails: cfg.ExposeErrorDetails,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StrictTransport:    cfg.AppEnv == "production",
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newCVStorage(ctx context.Context, cfg *config.Config) (storage.FileStorage, error) {
	if cfg.StorageType != config.StorageS3 {
		return storage.NewLocalStorage(cfg.UploadDir)
	}

	client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
		Provider:        storage.S3Provider(cfg.S3.Provider),
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		Endpoint:        cfg.S3.WasabiEndpoint,
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewS3Storage(client, cfg.S3.Bucket, "cvs/")
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		return nil, err
	}
	return store, nil
}
