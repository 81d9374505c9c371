package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"momentum/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given type, category,
// amount (in cents), and date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:             userID,
		Type:               txType,
		Amount:             amount,
		Category:           category,
		Date:               date,
		RecurringFrequency: models.RecurringNone,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   10000, // $100.00
		Period:   models.BudgetPeriodMonthly,
		IsActive: true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestHabit creates a daily positive habit.
func CreateTestHabit(t *testing.T, db *gorm.DB, userID string) *models.Habit {
	t.Helper()

	habit := &models.Habit{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Habit %d", nextID()),
		Type:         models.HabitTypePositive,
		Frequency:    models.HabitFrequencyDaily,
		ReminderTime: "09:00",
	}
	if err := db.Create(habit).Error; err != nil {
		t.Fatalf("failed to create test habit: %v", err)
	}
	return habit
}

// CreateTestCompletion appends a completion entry for a habit at the given time.
func CreateTestCompletion(t *testing.T, db *gorm.DB, habitID string, completedAt time.Time) *models.HabitCompletion {
	t.Helper()

	completion := &models.HabitCompletion{
		HabitID:     habitID,
		CompletedAt: completedAt,
	}
	if err := db.Create(completion).Error; err != nil {
		t.Fatalf("failed to create test habit completion: %v", err)
	}
	return completion
}

// CreateTestTask creates an open task.
func CreateTestTask(t *testing.T, db *gorm.DB, userID string) *models.Task {
	t.Helper()

	task := &models.Task{
		UserID: userID,
		Title:  fmt.Sprintf("Test Task %d", nextID()),
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestNote creates a note.
func CreateTestNote(t *testing.T, db *gorm.DB, userID string) *models.Note {
	t.Helper()

	note := &models.Note{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Note %d", nextID()),
		Description: "test note body",
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

// CreateTestPomodoroSession records a completed work session of the given
// duration (in seconds) at the given time.
func CreateTestPomodoroSession(t *testing.T, db *gorm.DB, userID string, sessionType models.PomodoroType, duration int, completedAt time.Time) *models.PomodoroSession {
	t.Helper()

	session := &models.PomodoroSession{
		UserID:      userID,
		Type:        sessionType,
		Duration:    duration,
		CompletedAt: completedAt,
		Tasks:       "[]",
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test pomodoro session: %v", err)
	}
	return session
}
