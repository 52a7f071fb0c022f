package services

import (
	"testing"
	"time"

	"patrimon/internal/pagination"
	"patrimon/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		deadline := time.Now().AddDate(1, 0, 0)
		goal, err := svc.CreateGoal(Actor{UserID: user.ID}, "Emergency Fund", 1000000, 100000, deadline)
		testutil.AssertNoError(t, err)

		if goal.ID == "" {
			t.Fatal("expected non-empty goal ID")
		}
		if goal.Title != "Emergency Fund" {
			t.Errorf("expected title Emergency Fund, got %s", goal.Title)
		}
		if goal.TargetAmount != 1000000 {
			t.Errorf("expected target 1000000, got %d", goal.TargetAmount)
		}
	})

	t.Run("missing_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(Actor{UserID: user.ID}, "", 1000000, 0, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(Actor{UserID: user.ID}, "Bad", 0, 0, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("viewer_mode_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(Actor{UserID: user.ID, ReadOnly: true}, "Viewer Goal", 1000000, 0, time.Now())
		testutil.AssertAppError(t, err, "READ_ONLY_MODE")
	})
}

func TestGetUserGoals(t *testing.T) {
	t.Run("returns_user_goals_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestGoal(t, db, user1.ID)
		testutil.CreateTestGoal(t, db, user1.ID)
		testutil.CreateTestGoal(t, db, user2.ID)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserGoals(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 goals, got %d", result.TotalItems)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("updates_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		current := int64(500000)
		updated, err := svc.UpdateGoal(Actor{UserID: user.ID}, goal.ID, "Renamed", nil, &current, nil)
		testutil.AssertNoError(t, err)

		fresh, err := svc.GetGoalByID(user.ID, updated.ID)
		testutil.AssertNoError(t, err)
		if fresh.Title != "Renamed" {
			t.Errorf("expected title Renamed, got %s", fresh.Title)
		}
		if fresh.CurrentAmount != 500000 {
			t.Errorf("expected current 500000, got %d", fresh.CurrentAmount)
		}
	})

	t.Run("rejects_non_positive_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		target := int64(-1)
		_, err := svc.UpdateGoal(Actor{UserID: user.ID}, goal.ID, "", &target, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user2.ID)

		_, err := svc.UpdateGoal(Actor{UserID: user1.ID}, goal.ID, "Hijack", nil, nil, nil)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("viewer_mode_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		_, err := svc.UpdateGoal(Actor{UserID: user.ID, ReadOnly: true}, goal.ID, "Nope", nil, nil, nil)
		testutil.AssertAppError(t, err, "READ_ONLY_MODE")
	})
}

func TestDeleteGoal(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteGoal(Actor{UserID: user.ID}, goal.ID))

		_, err := svc.GetGoalByID(user.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("viewer_mode_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)

		err := svc.DeleteGoal(Actor{UserID: user.ID, ReadOnly: true}, goal.ID)
		testutil.AssertAppError(t, err, "READ_ONLY_MODE")
	})
}

func TestGetGoalProgress(t *testing.T) {
	t.Run("computes_percentage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID) // 250000 of 1000000

		progress, err := svc.GetGoalProgress(user.ID, goal.ID)
		testutil.AssertNoError(t, err)

		if progress.Percentage != 25 {
			t.Errorf("expected 25%%, got %f", progress.Percentage)
		}
		if progress.Remaining != 750000 {
			t.Errorf("expected remaining 750000, got %d", progress.Remaining)
		}
		if progress.DaysRemaining <= 0 {
			t.Errorf("expected positive days remaining, got %d", progress.DaysRemaining)
		}
	})

	t.Run("zero_target_guard", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)
		db.Exec("UPDATE financial_goals SET target_amount = 0 WHERE id = ?", goal.ID)

		progress, err := svc.GetGoalProgress(user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if progress.Percentage != 0 {
			t.Errorf("expected 0%% for zero target, got %f", progress.Percentage)
		}
	})

	t.Run("past_deadline_zero_days", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID)
		db.Exec("UPDATE financial_goals SET deadline = ? WHERE id = ?", time.Now().AddDate(0, -1, 0), goal.ID)

		progress, err := svc.GetGoalProgress(user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if progress.DaysRemaining != 0 {
			t.Errorf("expected 0 days remaining past deadline, got %d", progress.DaysRemaining)
		}
	})
}
