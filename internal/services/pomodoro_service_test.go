package services

import (
	"testing"
	"time"

	"momentum/internal/models"
	"momentum/internal/testutil"
)

func TestCreateSession(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPomodoroService(db)
		user := testutil.CreateTestUser(t, db)

		session, err := svc.CreateSession(user.ID, models.PomodoroTypeWork, 1500, []string{"write report"})
		testutil.AssertNoError(t, err)

		if session.ID == "" {
			t.Fatal("expected non-empty session ID")
		}
		if session.Tasks != `["write report"]` {
			t.Errorf("unexpected tasks payload: %s", session.Tasks)
		}
		if session.CompletedAt.IsZero() {
			t.Error("expected completion time stamped")
		}
	})

	t.Run("nil_tasks_stored_as_empty_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPomodoroService(db)
		user := testutil.CreateTestUser(t, db)

		session, err := svc.CreateSession(user.ID, models.PomodoroTypeShortBreak, 300, nil)
		testutil.AssertNoError(t, err)

		if session.Tasks != "[]" {
			t.Errorf("expected empty JSON array, got %s", session.Tasks)
		}
	})

	t.Run("non_positive_duration", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPomodoroService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateSession(user.ID, models.PomodoroTypeWork, 0, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetStats(t *testing.T) {
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("today_and_all_time_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := &pomodoroService{db: db, now: func() time.Time { return noon }}

		// Two work sessions today, one break today, one work session yesterday.
		testutil.CreateTestPomodoroSession(t, db, user.ID, models.PomodoroTypeWork, 1500, noon.Add(-2*time.Hour))
		testutil.CreateTestPomodoroSession(t, db, user.ID, models.PomodoroTypeWork, 1500, noon.Add(-1*time.Hour))
		testutil.CreateTestPomodoroSession(t, db, user.ID, models.PomodoroTypeShortBreak, 300, noon.Add(-30*time.Minute))
		testutil.CreateTestPomodoroSession(t, db, user.ID, models.PomodoroTypeWork, 1500, noon.AddDate(0, 0, -1))

		stats, err := svc.GetStats(user.ID)
		testutil.AssertNoError(t, err)

		if stats.Today != 3 {
			t.Errorf("expected 3 sessions today, got %d", stats.Today)
		}
		if stats.TotalPomodoros != 3 {
			t.Errorf("expected 3 all-time work sessions, got %d", stats.TotalPomodoros)
		}
		if stats.TotalWorkTime != 75 {
			t.Errorf("expected 75 work minutes, got %d", stats.TotalWorkTime)
		}
		if len(stats.TodaySessions) != 3 {
			t.Errorf("expected 3 sessions in today list, got %d", len(stats.TodaySessions))
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := &pomodoroService{db: db, now: func() time.Time { return noon }}

		stats, err := svc.GetStats(user.ID)
		testutil.AssertNoError(t, err)

		if stats.Today != 0 || stats.TotalPomodoros != 0 || stats.TotalWorkTime != 0 {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		svc := &pomodoroService{db: db, now: func() time.Time { return noon }}

		testutil.CreateTestPomodoroSession(t, db, user2.ID, models.PomodoroTypeWork, 1500, noon.Add(-time.Hour))

		stats, err := svc.GetStats(user1.ID)
		testutil.AssertNoError(t, err)

		if stats.TotalPomodoros != 0 {
			t.Errorf("expected no sessions for user1, got %d", stats.TotalPomodoros)
		}
	})
}
