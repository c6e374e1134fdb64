package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingo-backend/internal/cache"
	"lingo-backend/internal/config"
	"lingo-backend/internal/database"
	"lingo-backend/internal/handler"
	"lingo-backend/internal/repository"
	"lingo-backend/internal/router"
	"lingo-backend/internal/service"
	"lingo-backend/internal/storage"
	"lingo-backend/internal/validator"
	"lingo-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Lingo Backend API
// @version         1.0
// @description     REST API for a language-learning platform built with Gin, MongoDB, Redis, and S3.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	packageRepo := repository.NewPackageRepository(mongoDB.Database)
	bundleRepo := repository.NewBundleRepository(mongoDB.Database)
	examRepo := repository.NewExamHistoryRepository(mongoDB.Database)
	faqRepo := repository.NewFAQRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, s3Client, jwtManager, service.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	userService := service.NewUserService(userRepo, s3Client, redisCache)
	packageService := service.NewPackageService(packageRepo, s3Client)
	examService := service.NewExamService(examRepo)
	catalogService := service.NewCatalogService(bundleRepo, faqRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(userService)
	packageHandler := handler.NewPackageHandler(packageService)
	examHandler := handler.NewExamHandler(examService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	uploadHandler := handler.NewUploadHandler(s3Client)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		PackageHandler: packageHandler,
		ExamHandler:    examHandler,
		CatalogHandler: catalogHandler,
		UploadHandler:  uploadHandler,
		JWTManager:     jwtManager,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
