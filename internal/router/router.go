// Package router wires services and handlers into the HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "fluxo/internal/docs" // Import swagger docs
	"fluxo/internal/handlers"
	"fluxo/internal/ledger"
	"fluxo/internal/middleware"
	"fluxo/internal/services"
)

// Options tune the router. The zero value is the production setup.
type Options struct {
	// Now replaces the wall clock for record ids and the current month of
	// reports.
	Now func() time.Time
	// Ledger options applied to every loaded profile, e.g. a fixed clock in tests.
	Ledger []ledger.Option
	// Quiet disables request logging.
	Quiet bool
}

// New builds the API engine on top of db.
func New(db *gorm.DB, opts Options) *gin.Engine {
	// Services
	activityService := services.NewActivityService(db)
	userService := services.NewUserService(db)
	ledgerOpts := opts.Ledger
	if opts.Now != nil {
		ledgerOpts = append([]ledger.Option{ledger.WithClock(opts.Now)}, ledgerOpts...)
	}
	transactionService := services.NewTransactionService(db, activityService, ledgerOpts...)
	categoryService := services.NewCategoryService(db, activityService)
	paymentMethodService := services.NewPaymentMethodService(db, activityService)
	profileService := services.NewProfileService(db, activityService)
	reportService := services.NewReportService(db, opts.Now)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(paymentMethodService)
	profileHandler := handlers.NewProfileHandler(profileService, activityService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	if !opts.Quiet {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", authHandler.GetMe)

	profile := protected.Group("/profiles/:profile_id")

	transactions := profile.Group("/transactions")
	transactions.POST("", transactionHandler.CreateEntry)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PATCH("/:id/paid", transactionHandler.TogglePaid)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := profile.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/options", categoryHandler.GetFilterOptions)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:flow_type/:name", categoryHandler.DeleteCategory)

	paymentMethods := profile.Group("/payment-methods")
	paymentMethods.GET("", paymentMethodHandler.GetPaymentMethods)
	paymentMethods.POST("", paymentMethodHandler.CreateBank)
	paymentMethods.DELETE("/:name", paymentMethodHandler.DeleteBank)

	profile.GET("/name", profileHandler.GetName)
	profile.PUT("/name", profileHandler.SetName)
	profile.DELETE("/data", profileHandler.ClearData)
	profile.GET("/activity", profileHandler.GetActivity)

	reports := profile.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/breakdown", reportHandler.GetBreakdown)
	reports.GET("/breakdown/chart", reportHandler.GetBreakdownChart)
	reports.GET("/projection", reportHandler.GetProjection)
	reports.GET("/projection/chart", reportHandler.GetProjectionChart)

	return router
}
