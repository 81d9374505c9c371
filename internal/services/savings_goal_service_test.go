package services

import (
	"testing"
	"time"

	"momentum/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsGoalService(db)
		user := testutil.CreateTestUser(t, db)

		targetDate := time.Now().AddDate(1, 0, 0)
		goal, err := svc.CreateGoal(user.ID, "Emergency fund", 500000, &targetDate)
		testutil.AssertNoError(t, err)

		if goal.TargetAmount != 500000 {
			t.Errorf("expected target amount 500000, got %d", goal.TargetAmount)
		}
		if goal.TargetDate == nil {
			t.Error("expected target date set")
		}
	})

	t.Run("target_date_optional", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Vacation", 100000, nil)
		testutil.AssertNoError(t, err)

		if goal.TargetDate != nil {
			t.Error("expected nil target date")
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "", 100000, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Vacation", 100000, nil)
		testutil.AssertNoError(t, err)

		amount := int64(150000)
		updated, err := svc.UpdateGoal(user.ID, goal.ID, nil, &amount, nil)
		testutil.AssertNoError(t, err)

		if updated.TargetAmount != 150000 {
			t.Errorf("expected target amount 150000, got %d", updated.TargetAmount)
		}
		if updated.Name != "Vacation" {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})

	t.Run("other_users_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user2.ID, "Vacation", 100000, nil)
		testutil.AssertNoError(t, err)

		name := "hijack"
		_, err = svc.UpdateGoal(user1.ID, goal.ID, &name, nil, nil)
		testutil.AssertAppError(t, err, "SAVINGS_GOAL_NOT_FOUND")
	})
}

func TestDeleteGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSavingsGoalService(db)
	user := testutil.CreateTestUser(t, db)

	goal, err := svc.CreateGoal(user.ID, "Vacation", 100000, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteGoal(user.ID, goal.ID))

	goals, err := svc.GetUserGoals(user.ID)
	testutil.AssertNoError(t, err)
	if len(goals) != 0 {
		t.Errorf("expected no goals after delete, got %d", len(goals))
	}
}
