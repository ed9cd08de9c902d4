// Package main runs the celebration site HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grace-celebration/backend/config"
	"github.com/grace-celebration/backend/internal/auth"
	"github.com/grace-celebration/backend/internal/emails"
	"github.com/grace-celebration/backend/internal/gallery"
	"github.com/grace-celebration/backend/internal/gifts"
	"github.com/grace-celebration/backend/internal/middleware"
	"github.com/grace-celebration/backend/internal/notes"
	"github.com/grace-celebration/backend/internal/rsvps"
	"github.com/grace-celebration/backend/pkg/database"
	"github.com/grace-celebration/backend/pkg/mailer"
	"github.com/grace-celebration/backend/pkg/queue"
	"github.com/grace-celebration/backend/pkg/redis"
	"github.com/grace-celebration/backend/pkg/response"
	"github.com/grace-celebration/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Email queue is a best-effort side channel; the site stays up without it.
	var jobQueue *queue.Queue
	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("email queue disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		jobQueue = queue.NewQueue(rdb.Client, logger)
	}

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Cfg := storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			MediaBucket:          cfg.AWS.MediaBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}
		s3Client, err = storage.NewS3(ctx, s3Cfg, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	mailClient := mailer.NewClient(mailer.Config{
		APIKey:      cfg.Email.APIKey,
		BaseURL:     cfg.Email.APIBaseURL,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		Timeout:     time.Duration(cfg.Email.TimeoutSec) * time.Second,
	}, logger)

	// Access gate
	gate := auth.NewGate(cfg.Access.AdminCode, cfg.Access.AdminCodeHash, cfg.Access.GuestCodes)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	authHandler := auth.NewHandler(gate, jwtService, logger)

	// RSVPs
	rsvpRepo := rsvps.NewRepository(pool)
	var enqueuer rsvps.EmailEnqueuer
	if jobQueue != nil {
		enqueuer = jobQueue
	}
	rsvpHandler := rsvps.NewHandler(rsvpRepo, enqueuer, logger)

	// Guestbook notes
	noteRepo := notes.NewRepository(pool)
	noteHandler := notes.NewHandler(noteRepo, logger)

	// Gallery
	galleryRepo := gallery.NewRepository(pool)
	galleryHandler := gallery.NewHandler(galleryRepo, s3Client, logger)

	// Gift intents
	giftRepo := gifts.NewRepository(pool)
	giftHandler := gifts.NewHandler(giftRepo, logger)

	// Transactional email
	emailRepo := emails.NewRepository(pool)
	var emailJobs emails.Enqueuer
	if jobQueue != nil {
		emailJobs = jobQueue
	}
	emailHandler := emails.NewHandler(emailRepo, mailClient, emailJobs, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Access gate (public)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/access/validate", authHandler.ValidateGuestCode)

	// Guest-facing
	router.POST("/rsvps", rsvpHandler.Submit)
	router.POST("/notes", noteHandler.Create)
	router.GET("/notes", noteHandler.ListPublic)
	router.GET("/gallery", galleryHandler.List)
	router.POST("/gallery", galleryHandler.Register)
	router.POST("/gallery/upload", galleryHandler.Upload)
	router.POST("/gifts", giftHandler.Create)
	router.POST("/api/rsvp-confirmation", emailHandler.SendConfirmation)

	// Admin (session token required)
	admin := router.Group("/admin")
	admin.Use(middleware.JWT(jwtService))
	{
		admin.GET("/rsvps", rsvpHandler.List)
		admin.PATCH("/rsvps/:id/status", rsvpHandler.SetStatus)
		admin.GET("/rsvps/export", rsvpHandler.Export)
		admin.GET("/notes", noteHandler.ListAll)
		admin.GET("/gifts", giftHandler.List)
		admin.POST("/gallery/generate-upload-url", galleryHandler.GenerateUploadURL)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)
		admin.GET("/emails", emailHandler.List)
		admin.POST("/emails/resend", emailHandler.Resend)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
