package services

import (
	"context"
	"time"

	"momentum/internal/models"
	"momentum/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name, mobile string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID, name, email, mobile string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *string
}

// TransactionUpdate holds the mutable transaction fields; nil means unchanged.
type TransactionUpdate struct {
	Type               *models.TransactionType
	Amount             *int64
	Category           *string
	Description        *string
	Source             *string
	Date               *time.Time
	IsRecurring        *bool
	RecurringFrequency *models.RecurringFrequency
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, amount int64, category, description, source string, date time.Time, isRecurring bool, frequency models.RecurringFrequency) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// AnalyticsServicer computes dashboard summaries and reports over a user's
// transactions. Both operations are read-only.
type AnalyticsServicer interface {
	GetDashboard(userID string, startDate, endDate *time.Time) (*DashboardResult, error)
	GetReport(userID string, startDate, endDate time.Time) (*ReportResult, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, category string, amount int64, period models.BudgetPeriod) (*models.Budget, error)
	GetActiveBudgets(userID string) ([]models.Budget, error)
	UpdateBudget(userID, budgetID string, category *string, amount *int64, period *models.BudgetPeriod, isActive *bool) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// SavingsGoalServicer defines the contract for savings-goal business logic.
type SavingsGoalServicer interface {
	CreateGoal(userID, name string, targetAmount int64, targetDate *time.Time) (*models.SavingsGoal, error)
	GetUserGoals(userID string) ([]models.SavingsGoal, error)
	UpdateGoal(userID, goalID string, name *string, targetAmount *int64, targetDate *time.Time) (*models.SavingsGoal, error)
	DeleteGoal(userID, goalID string) error
}

// TaskServicer defines the contract for task-related business logic.
type TaskServicer interface {
	CreateTask(userID, title, description string, dueDate *time.Time) (*models.Task, error)
	GetUserTasks(userID string) ([]models.Task, error)
	UpdateTask(userID, taskID string, title, description *string, dueDate *time.Time, completed *bool) (*models.Task, error)
	DeleteTask(userID, taskID string) error
}

// NoteServicer defines the contract for note-related business logic.
type NoteServicer interface {
	CreateNote(userID, title, description string) (*models.Note, error)
	GetUserNotes(userID string) ([]models.Note, error)
	UpdateNote(userID, noteID, title, description string) (*models.Note, error)
	DeleteNote(userID, noteID string) error
}

// PomodoroServicer defines the contract for pomodoro-session business logic.
type PomodoroServicer interface {
	CreateSession(userID string, sessionType models.PomodoroType, duration int, tasks []string) (*models.PomodoroSession, error)
	GetStats(userID string) (*PomodoroStats, error)
}

// HabitServicer defines the contract for habit-related business logic,
// including the streak tracker.
type HabitServicer interface {
	CreateHabit(userID, name, description string, habitType models.HabitType, frequency models.HabitFrequency, goal string, reminderEnabled bool, reminderTime string) (*models.Habit, error)
	GetUserHabits(userID string) ([]models.Habit, error)
	GetHabitByID(userID, habitID string) (*models.Habit, error)
	UpdateHabit(userID, habitID string, name, description, goal *string, frequency *models.HabitFrequency, reminderEnabled *bool, reminderTime *string) (*models.Habit, error)
	DeleteHabit(userID, habitID string) error
	CompleteHabit(userID, habitID string) (*models.Habit, error)
}

// InsightServicer enriches habit data through the AI collaborator. Failures
// of the AI dependency degrade to fixed fallbacks; they never propagate.
type InsightServicer interface {
	Recommendations(ctx context.Context, userID, goals string) ([]HabitRecommendation, error)
	Analysis(ctx context.Context, userID string) (string, error)
	Motivation(ctx context.Context, userID string) (string, error)
}
