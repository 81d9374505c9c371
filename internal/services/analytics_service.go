package services

import (
	"time"

	"gorm.io/gorm"

	"momentum/internal/analytics"
	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// recentTransactionLimit caps the dashboard's recent-activity preview.
const recentTransactionLimit = 10

// DashboardSummary is the income/expense/savings triple of the dashboard.
type DashboardSummary struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Savings  int64 `json:"savings"`
}

// DashboardResult is the response payload of the dashboard endpoint.
type DashboardResult struct {
	Summary           DashboardSummary     `json:"summary"`
	ExpenseCategories map[string]int64     `json:"expenseCategories"`
	IncomeCategories  map[string]int64     `json:"incomeCategories"`
	Transactions      []models.Transaction `json:"transactions"`
}

// ReportSummary is the flat totals triple of a report.
type ReportSummary struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpenses int64 `json:"totalExpenses"`
	Net           int64 `json:"net"`
}

// ReportResult is the response payload of the reports endpoint.
type ReportResult struct {
	Summary            ReportSummary                  `json:"summary"`
	IncomeByCategory   map[string]int64               `json:"incomeByCategory"`
	ExpensesByCategory map[string]int64               `json:"expensesByCategory"`
	DailyData          map[string]analytics.DayTotals `json:"dailyData"`
}

// analyticsService computes aggregates over a user's transactions.
type analyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, now: time.Now}
}

// GetDashboard computes the dashboard summary over an inclusive date window.
// When both bounds are nil the window defaults to the current calendar month
// in server-local time. Supplying only one bound is a caller error.
func (s *analyticsService) GetDashboard(userID string, startDate, endDate *time.Time) (*DashboardResult, error) {
	var start, end time.Time
	switch {
	case startDate == nil && endDate == nil:
		start, end = analytics.MonthWindow(s.now())
	case startDate != nil && endDate != nil:
		start = *startDate
		end = analytics.EndOfDay(*endDate)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "startDate and endDate must be provided together")
	}
	if end.Before(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "endDate must not be before startDate")
	}

	transactions, err := s.fetchWindow(userID, start, end)
	if err != nil {
		return nil, err
	}

	income, expenses := analytics.SplitByType(transactions)
	incomeTotal := analytics.SumAmounts(income)
	expenseTotal := analytics.SumAmounts(expenses)

	// fetchWindow returns newest first, so the preview is the ten most recent.
	recent := transactions
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return &DashboardResult{
		Summary: DashboardSummary{
			Income:   incomeTotal,
			Expenses: expenseTotal,
			Savings:  incomeTotal - expenseTotal,
		},
		ExpenseCategories: analytics.SumByCategory(expenses),
		IncomeCategories:  analytics.SumByCategory(income),
		Transactions:      recent,
	}, nil
}

// GetReport computes per-category and per-day breakdowns over an explicit
// inclusive date range. The summary is derived from the category maps so the
// two views reconcile by construction.
func (s *analyticsService) GetReport(userID string, startDate, endDate time.Time) (*ReportResult, error) {
	end := analytics.EndOfDay(endDate)
	if end.Before(startDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "endDate must not be before startDate")
	}

	transactions, err := s.fetchWindow(userID, startDate, end)
	if err != nil {
		return nil, err
	}

	income, expenses := analytics.SplitByType(transactions)
	incomeByCategory := analytics.SumByCategory(income)
	expensesByCategory := analytics.SumByCategory(expenses)

	totalIncome := analytics.SumValues(incomeByCategory)
	totalExpenses := analytics.SumValues(expensesByCategory)

	return &ReportResult{
		Summary: ReportSummary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			Net:           totalIncome - totalExpenses,
		},
		IncomeByCategory:   incomeByCategory,
		ExpensesByCategory: expensesByCategory,
		DailyData:          analytics.DailyData(transactions),
	}, nil
}

// fetchWindow loads all of the user's transactions with date in [start, end],
// newest first.
func (s *analyticsService) fetchWindow(userID string, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
