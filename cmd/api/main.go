package main

import (
	"fmt"
	"net/http"
	"os"

	"moneybook/internal/config"
	"moneybook/internal/database"
	"moneybook/internal/handlers"
	"moneybook/internal/logger"
	"moneybook/internal/middleware"
	"moneybook/internal/services"
	"moneybook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moneybook/internal/docs" // Import swagger docs
)

// @title           moneybook API
// @version         1.0
// @description     moneybook is a personal finance backend for managing budgets, tracking expenditures, and getting budget recommendations based on spending history.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	budgetService := services.NewBudgetService(db, categoryService)
	expenditureService := services.NewExpenditureService(db, categoryService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	expenditureHandler := handlers.NewExpenditureHandler(expenditureService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	users := v1.Group("/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)
	users.POST("/token/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile and logout
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/users/logout", authHandler.Logout)

	// Budget routes
	budget := protected.Group("/budget")
	budget.GET("/", budgetHandler.GetBudgets)
	budget.POST("/", budgetHandler.CreateBudgets)
	budget.POST("/recommend/", budgetHandler.RecommendBudgets)
	budget.GET("/:id/", budgetHandler.GetBudget)
	budget.PUT("/:id/", budgetHandler.UpdateBudget)
	budget.DELETE("/:id/", budgetHandler.DeleteBudget)

	// Expenditure routes
	expenditure := protected.Group("/expenditure")
	expenditure.GET("/", expenditureHandler.GetExpenditures)
	expenditure.POST("/", expenditureHandler.CreateExpenditure)
	expenditure.GET("/:id/", expenditureHandler.GetExpenditure)
	expenditure.PUT("/:id/", expenditureHandler.UpdateExpenditure)
	expenditure.DELETE("/:id/", expenditureHandler.DeleteExpenditure)

	// Category catalog (read-only)
	protected.GET("/categories/", categoryHandler.GetCategories)

	log.Infof("Starting moneybook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
