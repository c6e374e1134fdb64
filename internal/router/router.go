// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "lingo-backend/swagger" // Import generated swagger docs

	"lingo-backend/internal/handler"
	"lingo-backend/internal/middleware"
	"lingo-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PackageHandler *handler.PackageHandler
	ExamHandler    *handler.ExamHandler
	CatalogHandler *handler.CatalogHandler
	UploadHandler  *handler.UploadHandler
	JWTManager     *auth.JWTManager
}

// Setup creates and configures the Gin router. The fixed top-level paths are
// the platform's public contract; the /api/v1 group carries the token-based
// session surface.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is live!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Registration and login
	r.POST("/register", cfg.AuthHandler.Register)
	r.POST("/admin/login", cfg.AuthHandler.AdminLogin)

	// Profile
	r.GET("/profile", cfg.ProfileHandler.GetProfile)
	r.PUT("/profile/update", cfg.ProfileHandler.UpdateProfile)
	r.PUT("/update-password", cfg.ProfileHandler.UpdatePassword)

	// Package catalog
	r.GET("/get-all-packages", cfg.PackageHandler.ListPackages)
	r.POST("/add-package", cfg.PackageHandler.AddPackage)

	// Bundles and FAQs
	r.GET("/get-all-bundles", cfg.CatalogHandler.ListBundles)
	r.GET("/get-faqs", cfg.CatalogHandler.ListFAQs)

	// Exam history
	r.GET("/get-exam-history", cfg.ExamHandler.GetExamHistory)
	r.POST("/submit-exam", cfg.ExamHandler.SubmitExam)

	// Uploaded files, served via pre-signed redirects
	r.GET("/uploads/*filepath", cfg.UploadHandler.Serve)

	// Token-based session surface
	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", cfg.AuthHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTManager))
		{
			protected.GET("/me", cfg.ProfileHandler.Me)
		}
	}

	return r
}
