package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"momentum/internal/ai"
	"momentum/internal/config"
	"momentum/internal/database"
	"momentum/internal/handlers"
	"momentum/internal/logger"
	"momentum/internal/middleware"
	"momentum/internal/services"
	"momentum/internal/validator"
)

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

	// Register custom request validators
	validator.Register()

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	analyticsService := services.NewAnalyticsService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewSavingsGoalService(db)
	taskService := services.NewTaskService(db)
	noteService := services.NewNoteService(db)
	pomodoroService := services.NewPomodoroService(db)
	habitService := services.NewHabitService(db)

	aiClient := ai.NewClient(appConfig.DeepSeekAPIKey, appConfig.DeepSeekBaseURL, appConfig.DeepSeekModel)
	insightService := services.NewInsightService(db, aiClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewSavingsGoalHandler(goalService)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewNoteHandler(noteService)
	pomodoroHandler := handlers.NewPomodoroHandler(pomodoroService)
	habitHandler := handlers.NewHabitHandler(habitService)
	insightHandler := handlers.NewInsightHandler(insightService)

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

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Analytics routes
	protected.GET("/dashboard", analyticsHandler.GetDashboard)
	protected.GET("/reports", analyticsHandler.GetReport)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Savings goal routes
	goals := protected.Group("/savings-goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Task routes
	tasks := protected.Group("/tasks")
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Note routes
	notes := protected.Group("/notes")
	notes.POST("", noteHandler.CreateNote)
	notes.GET("", noteHandler.GetNotes)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	// Pomodoro routes
	pomodoros := protected.Group("/pomodoros")
	pomodoros.POST("", pomodoroHandler.CreateSession)
	pomodoros.GET("/stats", pomodoroHandler.GetStats)

	// Habit routes
	habits := protected.Group("/habits")
	habits.POST("", habitHandler.CreateHabit)
	habits.GET("", habitHandler.GetHabits)
	habits.GET("/:id", habitHandler.GetHabitByID)
	habits.PUT("/:id", habitHandler.UpdateHabit)
	habits.DELETE("/:id", habitHandler.DeleteHabit)
	habits.POST("/:id/complete", habitHandler.CompleteHabit)

	// AI insight routes
	insights := protected.Group("/ai")
	insights.GET("/recommendations", insightHandler.GetRecommendations)
	insights.GET("/analysis", insightHandler.GetAnalysis)
	insights.GET("/motivation", insightHandler.GetMotivation)

	log.Infof("Starting Momentum backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
