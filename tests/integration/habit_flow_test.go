package integration

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"momentum/internal/models"
)

func TestHabitFlow_StreakAcrossDays(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "habit@test.com", "password123")

	rec := app.request("POST", "/api/v1/habits",
		`{"name":"Read","type":"positive","goal":"30 pages a day"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	habit := parseJSON(t, rec)["habit"].(map[string]interface{})
	habitID := habit["id"].(string)
	if habit["frequency"] != "daily" {
		t.Errorf("expected default daily frequency, got %v", habit["frequency"])
	}
	if habit["streak"].(float64) != 0 {
		t.Errorf("expected streak 0 on creation, got %v", habit["streak"])
	}

	// First completion starts the streak
	rec = app.request("POST", "/api/v1/habits/"+habitID+"/complete", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	completed := parseJSON(t, rec)["habit"].(map[string]interface{})
	if completed["streak"].(float64) != 1 {
		t.Errorf("expected streak 1 after first completion, got %v", completed["streak"])
	}
	if completed["completed"] != true {
		t.Error("expected habit marked completed for today")
	}

	// Backdate the completion to yesterday, then today's completion extends the streak
	yesterday := time.Now().AddDate(0, 0, -1)
	if err := app.DB.Model(&models.HabitCompletion{}).
		Where("habit_id = ?", habitID).
		Update("completed_at", yesterday).Error; err != nil {
		t.Fatalf("failed to backdate completion: %v", err)
	}

	rec = app.request("POST", "/api/v1/habits/"+habitID+"/complete", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	extended := parseJSON(t, rec)["habit"].(map[string]interface{})
	if extended["streak"].(float64) != 2 {
		t.Errorf("expected streak 2 after consecutive days, got %v", extended["streak"])
	}

	// A second completion on the same calendar day resets the streak
	rec = app.request("POST", "/api/v1/habits/"+habitID+"/complete", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	reset := parseJSON(t, rec)["habit"].(map[string]interface{})
	if reset["streak"].(float64) != 1 {
		t.Errorf("expected streak reset to 1 on same-day repeat, got %v", reset["streak"])
	}

	// The completion history kept every entry
	var count int64
	if err := app.DB.Model(&models.HabitCompletion{}).
		Where("habit_id = ?", habitID).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count completions: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 completion records, got %d", count)
	}
}

func TestHabitFlow_CRUDAndScoping(t *testing.T) {
	app := setupApp(t)
	tokenA, _, _ := app.registerUser(t, "habit-a@test.com", "password123")
	tokenB, _, _ := app.registerUser(t, "habit-b@test.com", "password123")

	rec := app.request("POST", "/api/v1/habits",
		`{"name":"Meditate","type":"positive","reminder_enabled":true,"reminder_time":"07:30"}`, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	habitID := parseJSON(t, rec)["habit"].(map[string]interface{})["id"].(string)

	// Rename without touching the streak machinery
	rec = app.request("PUT", "/api/v1/habits/"+habitID, `{"name":"Morning Meditation"}`, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	renamed := parseJSON(t, rec)["habit"].(map[string]interface{})
	if renamed["name"] != "Morning Meditation" {
		t.Errorf("expected renamed habit, got %v", renamed["name"])
	}
	if renamed["reminder_time"] != "07:30" {
		t.Errorf("expected reminder time unchanged, got %v", renamed["reminder_time"])
	}

	// Another user cannot see or complete it
	rec = app.request("GET", "/api/v1/habits/"+habitID, "", tokenB)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for other user's habit, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/habits/"+habitID+"/complete", "", tokenB)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 completing other user's habit, got %d", rec.Code)
	}

	// Delete removes the habit and its history
	rec = app.request("DELETE", "/api/v1/habits/"+habitID, "", tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/habits/"+habitID, "", tokenA)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after deletion, got %d", rec.Code)
	}
}

func TestHabitFlow_AIInsights(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "insight@test.com", "password123")

	// Analysis before any habits exist is rejected
	rec := app.request("GET", "/api/v1/ai/analysis", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 with no habits, got %d", rec.Code)
	}

	app.request("POST", "/api/v1/habits", `{"name":"Run","type":"positive"}`, token)

	// Recommendations parse the provider's JSON array
	app.Gen.response = `[{"name":"Evening Stretch","description":"10 minutes after dinner","type":"positive","reason":"Complements running"}]`
	app.Gen.err = nil
	rec = app.request("GET", "/api/v1/ai/recommendations?goals=run+a+marathon", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	recs := parseJSON(t, rec)["recommendations"].([]interface{})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].(map[string]interface{})["name"] != "Evening Stretch" {
		t.Errorf("unexpected recommendation: %v", recs[0])
	}

	// Every insight call is logged
	var count int64
	if err := app.DB.Model(&models.AIInteraction{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count interactions: %v", err)
	}
	if count == 0 {
		t.Error("expected interaction log entries")
	}

	// Provider outage degrades to the built-in fallback, never a 5xx
	app.Gen.err = errors.New("connection refused")
	rec = app.request("GET", "/api/v1/ai/motivation", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fallback, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["motivation"] == "" {
		t.Error("expected fallback motivation text")
	}
}
