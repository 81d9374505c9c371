// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var reminderTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("recurring_frequency", validateRecurringFrequency)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("habit_type", validateHabitType)
		_ = v.RegisterValidation("habit_frequency", validateHabitFrequency)
		_ = v.RegisterValidation("pomodoro_type", validatePomodoroType)
		_ = v.RegisterValidation("reminder_time", validateReminderTime)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateRecurringFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "none", "daily", "weekly", "monthly", "yearly":
		return true
	}
	return false
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly", "yearly":
		return true
	}
	return false
}

func validateHabitType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "positive", "negative":
		return true
	}
	return false
}

func validateHabitFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}

func validatePomodoroType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "work", "short_break", "long_break":
		return true
	}
	return false
}

func validateReminderTime(fl validator.FieldLevel) bool {
	return reminderTimeRegex.MatchString(fl.Field().String())
}
