package services

import (
	"testing"

	"patrimon/internal/models"
	"patrimon/internal/portfolio"
	"patrimon/internal/testutil"
)

func TestGetStats(t *testing.T) {
	t.Run("consolidated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(NewAssetService(db))
		user := testutil.CreateTestUser(t, db)
		inst := testutil.CreateTestInstitution(t, db, user.ID, 0)

		testutil.CreateTestAsset(t, db, user.ID, inst.ID, models.CategoryStocks, 120000, 100000)
		testutil.CreateTestGlobalAsset(t, db, user.ID, inst.ID, models.CategoryCrypto, 30000, 20000)

		stats, err := svc.GetStats(user.ID, portfolio.ContextConsolidated)
		testutil.AssertNoError(t, err)

		if stats.GrossBalance != 150000 {
			t.Errorf("expected gross 150000, got %d", stats.GrossBalance)
		}
		if stats.InvestedBalance != 120000 {
			t.Errorf("expected invested 120000, got %d", stats.InvestedBalance)
		}
		if stats.TotalReturn != 25 {
			t.Errorf("expected total return 25, got %f", stats.TotalReturn)
		}
	})

	t.Run("empty_ledger_zero_stats", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(NewAssetService(db))
		user := testutil.CreateTestUser(t, db)

		stats, err := svc.GetStats(user.ID, portfolio.ContextConsolidated)
		testutil.AssertNoError(t, err)

		if stats.GrossBalance != 0 || stats.TotalReturn != 0 {
			t.Errorf("expected zero stats for empty ledger, got %+v", stats)
		}
	})

	t.Run("national_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(NewAssetService(db))
		user := testutil.CreateTestUser(t, db)
		inst := testutil.CreateTestInstitution(t, db, user.ID, 0)

		testutil.CreateTestAsset(t, db, user.ID, inst.ID, models.CategoryStocks, 120000, 100000)
		testutil.CreateTestGlobalAsset(t, db, user.ID, inst.ID, models.CategoryCrypto, 30000, 20000)

		stats, err := svc.GetStats(user.ID, portfolio.ContextNational)
		testutil.AssertNoError(t, err)

		if stats.GrossBalance != 120000 {
			t.Errorf("expected national gross 120000, got %d", stats.GrossBalance)
		}
	})
}

func TestGetAllocation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPortfolioService(NewAssetService(db))
	user := testutil.CreateTestUser(t, db)
	inst := testutil.CreateTestInstitution(t, db, user.ID, 0)

	testutil.CreateTestAsset(t, db, user.ID, inst.ID, models.CategoryStocks, 75000, 70000)
	testutil.CreateTestAsset(t, db, user.ID, inst.ID, models.CategoryCash, 25000, 25000)

	groups, err := svc.GetAllocation(user.ID, portfolio.ContextConsolidated)
	testutil.AssertNoError(t, err)

	if len(groups) != 2 {
		t.Fatalf("expected 2 category groups, got %d", len(groups))
	}
	// Groups come back largest first.
	if groups[0].Category != models.CategoryStocks || groups[0].Pct != 75 {
		t.Errorf("expected stocks at 75%%, got %s at %f", groups[0].Category, groups[0].Pct)
	}
}

func TestGetEvolution(t *testing.T) {
	t.Run("six_points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(NewAssetService(db))
		user := testutil.CreateTestUser(t, db)
		inst := testutil.CreateTestInstitution(t, db, user.ID, 0)

		testutil.CreateTestAsset(t, db, user.ID, inst.ID, models.CategoryStocks, 1000000, 900000)

		points, err := svc.GetEvolution(user.ID, portfolio.ContextConsolidated)
		testutil.AssertNoError(t, err)

		if len(points) != 6 {
			t.Fatalf("expected 6 evolution points, got %d", len(points))
		}
		if points[5].Value != 1000000 {
			t.Errorf("expected the last point to equal the gross balance, got %d", points[5].Value)
		}
	})

	t.Run("empty_ledger_empty_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(NewAssetService(db))
		user := testutil.CreateTestUser(t, db)

		points, err := svc.GetEvolution(user.ID, portfolio.ContextConsolidated)
		testutil.AssertNoError(t, err)
		if len(points) != 0 {
			t.Errorf("expected no points for an empty ledger, got %d", len(points))
		}
	})
}
