package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"momentum/internal/handlers"
	"momentum/internal/logger"
	"momentum/internal/middleware"
	"momentum/internal/models"
	"momentum/internal/services"
	"momentum/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Gen    *scriptedGenerator
}

// scriptedGenerator stands in for the AI provider with canned responses.
type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) Generate(_ context.Context, _ string, _ int) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Transaction{},
		&models.Budget{},
		&models.SavingsGoal{},
		&models.Task{},
		&models.Note{},
		&models.PomodoroSession{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.AIInteraction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	gen := &scriptedGenerator{}

	// Services
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	analyticsService := services.NewAnalyticsService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewSavingsGoalService(db)
	taskService := services.NewTaskService(db)
	noteService := services.NewNoteService(db)
	pomodoroService := services.NewPomodoroService(db)
	habitService := services.NewHabitService(db)
	insightService := services.NewInsightService(db, gen)

	// Handlers
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	protected.GET("/dashboard", analyticsHandler.GetDashboard)
	protected.GET("/reports", analyticsHandler.GetReport)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := protected.Group("/savings-goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	tasks := protected.Group("/tasks")
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.GetTasks)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	notes := protected.Group("/notes")
	notes.POST("", noteHandler.CreateNote)
	notes.GET("", noteHandler.GetNotes)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	pomodoros := protected.Group("/pomodoros")
	pomodoros.POST("", pomodoroHandler.CreateSession)
	pomodoros.GET("/stats", pomodoroHandler.GetStats)

	habits := protected.Group("/habits")
	habits.POST("", habitHandler.CreateHabit)
	habits.GET("", habitHandler.GetHabits)
	habits.GET("/:id", habitHandler.GetHabitByID)
	habits.PUT("/:id", habitHandler.UpdateHabit)
	habits.DELETE("/:id", habitHandler.DeleteHabit)
	habits.POST("/:id/complete", habitHandler.CompleteHabit)

	insights := protected.Group("/ai")
	insights.GET("/recommendations", insightHandler.GetRecommendations)
	insights.GET("/analysis", insightHandler.GetAnalysis)
	insights.GET("/motivation", insightHandler.GetMotivation)

	return &testApp{DB: db, Router: router, Gen: gen}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string), result["refresh_token"].(string)
}
